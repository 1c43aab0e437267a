// internal/services/payment_service.go
package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
	"github.com/stripe/stripe-go/v74/refund"
	"gorm.io/gorm"

	"github.com/clothify/clothify-backend/internal/config"
	"github.com/clothify/clothify-backend/internal/models"
)

type PaymentService struct {
	db  *gorm.DB
	cfg *config.Config
}

type PaymentIntentResponse struct {
	OrderID       uuid.UUID `json:"order_id"`
	ClientSecret  string    `json:"client_secret"`
	PaymentIntent string    `json:"payment_intent_id"`
	Amount        int64     `json:"amount"` // in cents
	Currency      string    `json:"currency"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
}

func NewPaymentService(db *gorm.DB, cfg *config.Config) *PaymentService {
	stripe.Key = cfg.Payment.StripeSecretKey
	return &PaymentService{
		db:  db,
		cfg: cfg,
	}
}

// CreateOrderPayment opens a payment intent for a pending order owned by the
// caller. The amount is derived server-side from the order's line items.
func (s *PaymentService) CreateOrderPayment(orderID, userID uuid.UUID) (*PaymentIntentResponse, error) {
	var order models.Order
	err := s.db.
		Preload("Items").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if order.PaymentStatus != models.PaymentStatusPending && order.PaymentStatus != models.PaymentStatusFailed {
		return nil, errors.New("order is not awaiting payment")
	}

	amountCents := int64(math.Round(order.Total() * 100))
	if amountCents <= 0 {
		return nil, errors.New("order total must be greater than zero")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(s.cfg.Payment.Currency),
	}
	params.Metadata = map[string]string{
		"order_id": order.ID.String(),
		"user_id":  userID.String(),
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	if err := s.db.Model(&order).Update("payment_reference", pi.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to store payment reference: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"order_id":          order.ID,
		"payment_intent_id": pi.ID,
		"amount":            amountCents,
	}).Info("Payment intent created")

	return &PaymentIntentResponse{
		OrderID:       order.ID,
		ClientSecret:  pi.ClientSecret,
		PaymentIntent: pi.ID,
		Amount:        amountCents,
		Currency:      s.cfg.Payment.Currency,
	}, nil
}

// ConfirmPayment re-checks the intent with the payment provider and moves the
// matching order's payment status. Clients cannot set the status directly.
func (s *PaymentService) ConfirmPayment(req *ConfirmPaymentRequest) (*models.Order, error) {
	if req.PaymentIntentID == "" {
		return nil, errors.New("payment intent ID is required")
	}

	pi, err := paymentintent.Get(req.PaymentIntentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}

	var order models.Order
	err = s.db.
		Preload("Items").
		Where("payment_reference = ?", pi.ID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found for payment intent")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var newStatus models.PaymentStatus
	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		newStatus = models.PaymentStatusComplete
	case stripe.PaymentIntentStatusCanceled:
		newStatus = models.PaymentStatusFailed
	default:
		// Still processing on the provider side
		newStatus = models.PaymentStatusPending
	}

	if order.PaymentStatus != newStatus {
		if err := s.db.Model(&order).Update("payment_status", newStatus).Error; err != nil {
			return nil, fmt.Errorf("failed to update payment status: %w", err)
		}
		order.PaymentStatus = newStatus

		logrus.WithFields(logrus.Fields{
			"order_id":          order.ID,
			"payment_intent_id": pi.ID,
			"payment_status":    newStatus,
		}).Info("Order payment status updated")
	}

	return &order, nil
}

// RefundOrder refunds a completed payment. Staff only; the handler enforces
// that before calling in.
func (s *PaymentService) RefundOrder(orderID uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if order.PaymentStatus != models.PaymentStatusComplete {
		return nil, errors.New("only completed payments can be refunded")
	}
	if order.PaymentReference == "" {
		return nil, errors.New("order has no payment reference")
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(order.PaymentReference),
	}

	if _, err := refund.New(params); err != nil {
		return nil, fmt.Errorf("failed to create refund: %w", err)
	}

	if err := s.db.Model(&order).Update("payment_status", models.PaymentStatusRefunded).Error; err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}
	order.PaymentStatus = models.PaymentStatusRefunded

	logrus.WithFields(logrus.Fields{
		"order_id":          order.ID,
		"payment_intent_id": order.PaymentReference,
	}).Info("Order refunded")

	return &order, nil
}
