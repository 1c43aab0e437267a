// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clothify/clothify-backend/internal/models"
	"github.com/clothify/clothify-backend/internal/utils"
)

type OrderService struct {
	db *gorm.DB
}

type CheckoutRequest struct {
	CartID string `json:"cart_id" validate:"required,uuid"`
}

// OrderResponse decorates an order with its computed total.
type OrderResponse struct {
	*models.Order
	TotalAmount float64 `json:"total_amount"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

func (s *OrderService) ListOrders(userID uuid.UUID, params utils.PaginationParams) (*utils.PaginationResult, error) {
	query := s.db.Model(&models.Order{}).
		Preload("Items").
		Preload("Items.Product").
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	allowedSortFields := []string{"created_at", "placed_at", "payment_status"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = OrderResponse{Order: &orders[i], TotalAmount: orders[i].Total()}
	}

	result := utils.CreatePaginationResult(responses, total, params)
	return &result, nil
}

func (s *OrderService) GetOrder(orderID, userID uuid.UUID) (*OrderResponse, error) {
	var order models.Order
	err := s.db.
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Images").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &OrderResponse{Order: &order, TotalAmount: order.Total()}, nil
}

// Checkout converts a cart into an order in a single transaction. Each line
// snapshots the product price at this moment, and the cart is consumed.
func (s *OrderService) Checkout(userID uuid.UUID, req *CheckoutRequest) (*OrderResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	cartID, err := uuid.Parse(req.CartID)
	if err != nil {
		return nil, errors.New("invalid cart ID")
	}

	var orderID uuid.UUID

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		err := tx.
			Preload("Items").
			Preload("Items.Product").
			Where("id = ? AND user_id = ?", cartID, userID).
			First(&cart).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("cart not found")
			}
			return fmt.Errorf("database error: %w", err)
		}

		if len(cart.Items) == 0 {
			return errors.New("cart is empty")
		}

		order := &models.Order{
			UserID:        userID,
			PlacedAt:      time.Now(),
			PaymentStatus: models.PaymentStatusPending,
		}

		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		orderItems, err := snapshotCartItems(order.ID, cart.Items)
		if err != nil {
			return err
		}
		for i := range orderItems {
			if err := tx.Create(&orderItems[i]).Error; err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
		}

		// The cart is consumed by checkout
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart items: %w", err)
		}
		if err := tx.Delete(&cart).Error; err != nil {
			return fmt.Errorf("failed to delete cart: %w", err)
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrder(orderID, userID)
}

// snapshotCartItems turns cart lines into order lines at the product's
// current price. A cart line whose product has been removed from the catalog
// loads as a zero-value association; it must abort the checkout instead of
// pricing the line at zero.
func snapshotCartItems(orderID uuid.UUID, items []models.CartItem) ([]models.OrderItem, error) {
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, cartItem := range items {
		if cartItem.Product.ID == uuid.Nil {
			return nil, errors.New("product no longer available")
		}
		orderItems = append(orderItems, models.OrderItem{
			OrderID:   orderID,
			ProductID: cartItem.ProductID,
			Quantity:  cartItem.Quantity,
			UnitPrice: cartItem.Product.Price,
		})
	}
	return orderItems, nil
}
