// internal/services/wishlist_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clothify/clothify-backend/internal/models"
	"github.com/clothify/clothify-backend/internal/utils"
)

type WishlistService struct {
	db *gorm.DB
}

type AddWishlistItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{db: db}
}

func (s *WishlistService) ListItems(userID uuid.UUID, params utils.PaginationParams) (*utils.PaginationResult, error) {
	query := s.db.Model(&models.WishlistItem{}).
		Preload("Product").
		Preload("Product.Category").
		Preload("Product.Images").
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count wishlist items: %w", err)
	}

	allowedSortFields := []string{"created_at"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var items []models.WishlistItem
	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list wishlist items: %w", err)
	}

	result := utils.CreatePaginationResult(items, total, params)
	return &result, nil
}

func (s *WishlistService) GetItem(itemID, userID uuid.UUID) (*models.WishlistItem, error) {
	var item models.WishlistItem
	err := s.db.
		Preload("Product").
		Preload("Product.Category").
		Preload("Product.Images").
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("wishlist item not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &item, nil
}

func (s *WishlistService) AddItem(userID uuid.UUID, req *AddWishlistItemRequest) (*models.WishlistItem, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, errors.New("invalid product ID")
	}

	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var existing models.WishlistItem
	if err := s.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&existing).Error; err == nil {
		return nil, errors.New("product is already in your wishlist")
	}

	item := &models.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	}

	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to add wishlist item: %w", err)
	}

	return s.GetItem(item.ID, userID)
}

func (s *WishlistService) RemoveItem(itemID, userID uuid.UUID) error {
	var item models.WishlistItem
	err := s.db.
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("wishlist item not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", err)
	}

	return nil
}
