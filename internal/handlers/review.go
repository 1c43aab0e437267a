// internal/handlers/review.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clothify/clothify-backend/internal/services"
	"github.com/clothify/clothify-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// GetProductReviews lists reviews under /products/:id/reviews. Customers only
// see their own; staff see all of them.
func (h *ReviewHandler) GetProductReviews(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	params := utils.GetPaginationParams(c)
	isStaff := utils.IsStaffFromContext(c)

	var viewerID *uuid.UUID
	if userID, ok := currentUserID(c); ok {
		viewerID = &userID
	}

	result, err := h.reviewService.ListProductReviews(productID, viewerID, isStaff, params)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, "Failed to list reviews")
		return
	}

	utils.PaginatedResponse(c, *result)
}

func (h *ReviewHandler) GetMyReviews(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	params := utils.GetPaginationParams(c)

	result, err := h.reviewService.ListUserReviews(userID, params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list reviews")
		return
	}

	utils.PaginatedResponse(c, *result)
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	reviewID, err := parseUUIDParam(c, "reviewId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid review ID", nil)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	review, err := h.reviewService.GetReview(productID, reviewID, userID, utils.IsStaffFromContext(c))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Review")
			return
		}
		utils.InternalErrorResponse(c, "Failed to get review")
		return
	}

	utils.SuccessResponse(c, review)
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	review, err := h.reviewService.CreateReview(productID, userID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Product")
			return
		}
		if strings.Contains(err.Error(), "already reviewed") {
			utils.ConflictResponse(c, err.Error())
			return
		}
		if strings.Contains(err.Error(), "validation failed") {
			utils.BadRequestResponse(c, "Validation failed", err.Error())
			return
		}
		utils.InternalErrorResponse(c, "Failed to create review")
		return
	}

	utils.CreatedResponse(c, review)
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	reviewID, err := parseUUIDParam(c, "reviewId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid review ID", nil)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	review, err := h.reviewService.UpdateReview(productID, reviewID, userID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Review")
			return
		}
		if strings.Contains(err.Error(), "unauthorized") {
			utils.ForbiddenResponse(c, "Only the author can modify this review")
			return
		}
		if strings.Contains(err.Error(), "validation failed") {
			utils.BadRequestResponse(c, "Validation failed", err.Error())
			return
		}
		utils.InternalErrorResponse(c, "Failed to update review")
		return
	}

	utils.SuccessResponse(c, review)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	reviewID, err := parseUUIDParam(c, "reviewId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid review ID", nil)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	if err := h.reviewService.DeleteReview(productID, reviewID, userID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Review")
			return
		}
		if strings.Contains(err.Error(), "unauthorized") {
			utils.ForbiddenResponse(c, "Only the author can delete this review")
			return
		}
		utils.InternalErrorResponse(c, "Failed to delete review")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Review deleted successfully"})
}
