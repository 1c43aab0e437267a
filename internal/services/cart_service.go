// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clothify/clothify-backend/internal/models"
	"github.com/clothify/clothify-backend/internal/utils"
)

type CartService struct {
	db *gorm.DB
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

func (s *CartService) CreateCart(userID uuid.UUID) (*models.Cart, error) {
	cart := &models.Cart{UserID: userID}
	if err := s.db.Create(cart).Error; err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) ListCarts(userID uuid.UUID, params utils.PaginationParams) (*utils.PaginationResult, error) {
	query := s.db.Model(&models.Cart{}).
		Preload("Items").
		Preload("Items.Product").
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count carts: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var carts []models.Cart
	if err := query.Find(&carts).Error; err != nil {
		return nil, fmt.Errorf("failed to list carts: %w", err)
	}

	result := utils.CreatePaginationResult(carts, total, params)
	return &result, nil
}

func (s *CartService) GetCart(cartID, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Images").
		Where("id = ? AND user_id = ?", cartID, userID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("cart not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &cart, nil
}

func (s *CartService) DeleteCart(cartID, userID uuid.UUID) error {
	cart, err := s.GetCart(cartID, userID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete cart items: %w", err)
		}
		if err := tx.Delete(cart).Error; err != nil {
			return fmt.Errorf("failed to delete cart: %w", err)
		}
		return nil
	})
}

func (s *CartService) ListItems(cartID, userID uuid.UUID) ([]models.CartItem, error) {
	if _, err := s.GetCart(cartID, userID); err != nil {
		return nil, err
	}

	var items []models.CartItem
	err := s.db.
		Preload("Product").
		Preload("Product.Images").
		Where("cart_id = ?", cartID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	return items, nil
}

func (s *CartService) GetItem(cartID, itemID, userID uuid.UUID) (*models.CartItem, error) {
	if _, err := s.GetCart(cartID, userID); err != nil {
		return nil, err
	}

	var item models.CartItem
	err := s.db.
		Preload("Product").
		Preload("Product.Images").
		Where("id = ? AND cart_id = ?", itemID, cartID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("cart item not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &item, nil
}

// AddItem puts a product into the cart identified by the URL path. The cart
// binding always comes from the path, never from the request body.
func (s *CartService) AddItem(cartID, userID uuid.UUID, req *AddCartItemRequest) (*models.CartItem, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.GetCart(cartID, userID); err != nil {
		return nil, err
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

	// Adding the same product again bumps the quantity
	var existing models.CartItem
	err = s.db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&existing).Error
	if err == nil {
		existing.Quantity += req.Quantity
		if err := s.db.Save(&existing).Error; err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
		return s.GetItem(cartID, existing.ID, userID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	item := &models.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  req.Quantity,
	}

	if err := s.db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}

	return s.GetItem(cartID, item.ID, userID)
}

func (s *CartService) UpdateItem(cartID, itemID, userID uuid.UUID, req *UpdateCartItemRequest) (*models.CartItem, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	item, err := s.GetItem(cartID, itemID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(item).Update("quantity", req.Quantity).Error; err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	return s.GetItem(cartID, itemID, userID)
}

func (s *CartService) RemoveItem(cartID, itemID, userID uuid.UUID) error {
	item, err := s.GetItem(cartID, itemID, userID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(item).Error; err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	return nil
}
