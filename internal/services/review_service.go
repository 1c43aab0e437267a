// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clothify/clothify-backend/internal/models"
	"github.com/clothify/clothify-backend/internal/utils"
)

type ReviewService struct {
	db *gorm.DB
}

type CreateReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"text,omitempty" validate:"omitempty,max=5000"`
}

type UpdateReviewRequest struct {
	Rating *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Text   *string `json:"text,omitempty" validate:"omitempty,max=5000"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// ListProductReviews returns reviews on a product. Regular customers only see
// their own reviews; staff see everything.
func (s *ReviewService) ListProductReviews(productID uuid.UUID, viewerID *uuid.UUID, viewerIsStaff bool, params utils.PaginationParams) (*utils.PaginationResult, error) {
	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	query := s.db.Model(&models.Review{}).
		Preload("User").
		Where("product_id = ?", productID)

	if !viewerIsStaff {
		if viewerID == nil {
			empty := utils.CreatePaginationResult([]models.Review{}, 0, params)
			return &empty, nil
		}
		query = query.Where("user_id = ?", *viewerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count reviews: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "rating"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	result := utils.CreatePaginationResult(reviews, total, params)
	return &result, nil
}

func (s *ReviewService) ListUserReviews(userID uuid.UUID, params utils.PaginationParams) (*utils.PaginationResult, error) {
	query := s.db.Model(&models.Review{}).
		Preload("Product").
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count reviews: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "rating"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	result := utils.CreatePaginationResult(reviews, total, params)
	return &result, nil
}

func (s *ReviewService) GetReview(productID, reviewID uuid.UUID, viewerID uuid.UUID, viewerIsStaff bool) (*models.Review, error) {
	var review models.Review
	err := s.db.
		Preload("User").
		Where("id = ? AND product_id = ?", reviewID, productID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("review not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !viewerIsStaff && review.UserID != viewerID {
		// Hidden rather than forbidden so review existence is not leaked
		return nil, errors.New("review not found")
	}

	return &review, nil
}

// CreateReview stamps the caller as author. One review per user per product.
func (s *ReviewService) CreateReview(productID, userID uuid.UUID, req *CreateReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var existing models.Review
	if err := s.db.Where("product_id = ? AND user_id = ?", productID, userID).First(&existing).Error; err == nil {
		return nil, errors.New("you have already reviewed this product")
	}

	review := &models.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    req.Rating,
		Text:      req.Text,
	}

	if err := s.db.Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}

func (s *ReviewService) UpdateReview(productID, reviewID, userID uuid.UUID, req *UpdateReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var review models.Review
	err := s.db.
		Where("id = ? AND product_id = ?", reviewID, productID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("review not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Only the author can modify a review, staff included
	if review.UserID != userID {
		return nil, errors.New("unauthorized: only the author can modify this review")
	}

	updates := make(map[string]interface{})

	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Text != nil {
		updates["text"] = *req.Text
	}

	if len(updates) > 0 {
		if err := s.db.Model(&review).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update review: %w", err)
		}
	}

	return &review, nil
}

func (s *ReviewService) DeleteReview(productID, reviewID, userID uuid.UUID) error {
	var review models.Review
	err := s.db.
		Where("id = ? AND product_id = ?", reviewID, productID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("review not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if review.UserID != userID {
		return errors.New("unauthorized: only the author can delete this review")
	}

	if err := s.db.Delete(&review).Error; err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	return nil
}
