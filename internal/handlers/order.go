// internal/handlers/order.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clothify/clothify-backend/internal/services"
	"github.com/clothify/clothify-backend/internal/utils"
)

type OrderHandler struct {
	orderService   *services.OrderService
	paymentService *services.PaymentService
}

func NewOrderHandler(orderService *services.OrderService, paymentService *services.PaymentService) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		paymentService: paymentService,
	}
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	params := utils.GetPaginationParams(c)

	result, err := h.orderService.ListOrders(userID, params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list orders")
		return
	}

	utils.PaginatedResponse(c, *result)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	orderID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	order, err := h.orderService.GetOrder(orderID, userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Order")
			return
		}
		utils.InternalErrorResponse(c, "Failed to get order")
		return
	}

	utils.SuccessResponse(c, order)
}

// Checkout places an order from a cart. The payment status always starts
// pending regardless of anything in the request body.
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	order, err := h.orderService.Checkout(userID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Cart")
			return
		}
		if strings.Contains(err.Error(), "cart is empty") {
			utils.BadRequestResponse(c, "Cart is empty", nil)
			return
		}
		if strings.Contains(err.Error(), "no longer available") {
			utils.ConflictResponse(c, "A product in the cart is no longer available")
			return
		}
		if strings.Contains(err.Error(), "validation failed") || strings.Contains(err.Error(), "invalid") {
			utils.BadRequestResponse(c, "Validation failed", err.Error())
			return
		}
		utils.InternalErrorResponse(c, "Failed to place order")
		return
	}

	utils.CreatedResponse(c, order)
}

// PayOrder opens a payment intent for a pending order.
func (h *OrderHandler) PayOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	orderID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	intent, err := h.paymentService.CreateOrderPayment(orderID, userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Order")
			return
		}
		if strings.Contains(err.Error(), "not awaiting payment") || strings.Contains(err.Error(), "greater than zero") {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, "Failed to create payment")
		return
	}

	utils.SuccessResponse(c, intent)
}
