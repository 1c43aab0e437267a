// internal/handlers/wishlist.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clothify/clothify-backend/internal/services"
	"github.com/clothify/clothify-backend/internal/utils"
)

type WishlistHandler struct {
	wishlistService *services.WishlistService
}

func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService}
}

func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	params := utils.GetPaginationParams(c)

	result, err := h.wishlistService.ListItems(userID, params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list wishlist items")
		return
	}

	utils.PaginatedResponse(c, *result)
}

func (h *WishlistHandler) GetWishlistItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	itemID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid wishlist item ID", nil)
		return
	}

	item, err := h.wishlistService.GetItem(itemID, userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Wishlist item")
			return
		}
		utils.InternalErrorResponse(c, "Failed to get wishlist item")
		return
	}

	utils.SuccessResponse(c, item)
}

func (h *WishlistHandler) AddWishlistItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	item, err := h.wishlistService.AddItem(userID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Product")
			return
		}
		if strings.Contains(err.Error(), "already in") {
			utils.ConflictResponse(c, err.Error())
			return
		}
		if strings.Contains(err.Error(), "validation failed") || strings.Contains(err.Error(), "invalid") {
			utils.BadRequestResponse(c, "Validation failed", err.Error())
			return
		}
		utils.InternalErrorResponse(c, "Failed to add wishlist item")
		return
	}

	utils.CreatedResponse(c, item)
}

func (h *WishlistHandler) RemoveWishlistItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	itemID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid wishlist item ID", nil)
		return
	}

	if err := h.wishlistService.RemoveItem(itemID, userID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Wishlist item")
			return
		}
		utils.InternalErrorResponse(c, "Failed to remove wishlist item")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Wishlist item removed successfully"})
}
