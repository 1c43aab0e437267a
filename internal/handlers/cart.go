// internal/handlers/cart.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clothify/clothify-backend/internal/services"
	"github.com/clothify/clothify-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) CreateCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	cart, err := h.cartService.CreateCart(userID)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to create cart")
		return
	}

	utils.CreatedResponse(c, cart)
}

func (h *CartHandler) GetCarts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	params := utils.GetPaginationParams(c)

	result, err := h.cartService.ListCarts(userID, params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list carts")
		return
	}

	utils.PaginatedResponse(c, *result)
}

func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	cartID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart ID", nil)
		return
	}

	cart, err := h.cartService.GetCart(cartID, userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Cart")
			return
		}
		utils.InternalErrorResponse(c, "Failed to get cart")
		return
	}

	utils.SuccessResponse(c, cart)
}

func (h *CartHandler) DeleteCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	cartID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart ID", nil)
		return
	}

	if err := h.cartService.DeleteCart(cartID, userID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Cart")
			return
		}
		utils.InternalErrorResponse(c, "Failed to delete cart")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Cart deleted successfully"})
}

func (h *CartHandler) GetCartItems(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	cartID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart ID", nil)
		return
	}

	items, err := h.cartService.ListItems(cartID, userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Cart")
			return
		}
		utils.InternalErrorResponse(c, "Failed to list cart items")
		return
	}

	utils.SuccessResponse(c, items)
}

func (h *CartHandler) GetCartItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	cartID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart ID", nil)
		return
	}

	itemID, err := parseUUIDParam(c, "itemId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart item ID", nil)
		return
	}

	item, err := h.cartService.GetItem(cartID, itemID, userID)
	if err != nil {
		if strings.Contains(err.Error(), "cart not found") {
			utils.NotFoundResponse(c, "Cart")
			return
		}
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Cart item")
			return
		}
		utils.InternalErrorResponse(c, "Failed to get cart item")
		return
	}

	utils.SuccessResponse(c, item)
}

// AddCartItem binds the new item to the cart in the URL path; a cart ID in
// the body is ignored.
func (h *CartHandler) AddCartItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	cartID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart ID", nil)
		return
	}

	var req services.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	item, err := h.cartService.AddItem(cartID, userID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "cart not found") {
			utils.NotFoundResponse(c, "Cart")
			return
		}
		if strings.Contains(err.Error(), "product not found") {
			utils.NotFoundResponse(c, "Product")
			return
		}
		if strings.Contains(err.Error(), "validation failed") || strings.Contains(err.Error(), "invalid") {
			utils.BadRequestResponse(c, "Validation failed", err.Error())
			return
		}
		utils.InternalErrorResponse(c, "Failed to add cart item")
		return
	}

	utils.CreatedResponse(c, item)
}

func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	cartID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart ID", nil)
		return
	}

	itemID, err := parseUUIDParam(c, "itemId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart item ID", nil)
		return
	}

	var req services.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	item, err := h.cartService.UpdateItem(cartID, itemID, userID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Cart item")
			return
		}
		if strings.Contains(err.Error(), "validation failed") {
			utils.BadRequestResponse(c, "Validation failed", err.Error())
			return
		}
		utils.InternalErrorResponse(c, "Failed to update cart item")
		return
	}

	utils.SuccessResponse(c, item)
}

func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	cartID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart ID", nil)
		return
	}

	itemID, err := parseUUIDParam(c, "itemId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart item ID", nil)
		return
	}

	if err := h.cartService.RemoveItem(cartID, itemID, userID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Cart item")
			return
		}
		utils.InternalErrorResponse(c, "Failed to remove cart item")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Cart item removed successfully"})
}
