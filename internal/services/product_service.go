// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/clothify/clothify-backend/internal/models"
	"github.com/clothify/clothify-backend/internal/utils"
)

// latestProductLimit caps the storefront "new arrivals" strip.
const latestProductLimit = 8

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=255"`
	Description string   `json:"description" validate:"max=5000"`
	Price       float64  `json:"price" validate:"required,gte=0"`
	CategoryID  string   `json:"category_id" validate:"required,uuid"`
	Tags        []string `json:"tags,omitempty" validate:"max=20,dive,min=1,max=50"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	CategoryID  *string  `json:"category_id,omitempty" validate:"omitempty,uuid"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,max=20,dive,min=1,max=50"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	CategoryID *uuid.UUID
	PriceMin   *float64
	PriceMax   *float64
	Tags       []string
}

type AddProductImageRequest struct {
	URL     string `json:"url" validate:"required,url"`
	AltText string `json:"alt_text,omitempty" validate:"omitempty,max=255"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) SearchProducts(params ProductSearchParams) (*utils.PaginationResult, error) {
	query := s.db.Model(&models.Product{}).
		Preload("Category").
		Preload("Images")

	// Apply filters
	if params.Search != "" {
		searchTerm := "%" + params.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", searchTerm, searchTerm)
	}

	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}

	if params.PriceMin != nil {
		query = query.Where("price >= ?", *params.PriceMin)
	}

	if params.PriceMax != nil {
		query = query.Where("price <= ?", *params.PriceMax)
	}

	if len(params.Tags) > 0 {
		query = query.Where("tags && ?", pq.StringArray(params.Tags))
	}

	// Count total before pagination
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	// Apply sorting and pagination
	allowedSortFields := []string{"created_at", "updated_at", "price", "name"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	result := utils.CreatePaginationResult(products, total, params.PaginationParams)
	return &result, nil
}

// GetLatestProducts returns the most recently added products for the
// storefront landing page.
func (s *ProductService) GetLatestProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.
		Preload("Category").
		Preload("Images").
		Order("created_at DESC").
		Limit(latestProductLimit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get latest products: %w", err)
	}
	return products, nil
}

func (s *ProductService) GetProductByID(productID uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := s.db.
		Preload("Category").
		Preload("Images").
		First(&product, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, errors.New("invalid category ID")
	}

	// Category must exist before a product can reference it
	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  categoryID,
		Tags:        pq.StringArray(req.Tags),
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return s.GetProductByID(product.ID)
}

func (s *ProductService) UpdateProduct(productID uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
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

	updates := make(map[string]interface{})

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, errors.New("invalid category ID")
		}
		var category models.Category
		if err := s.db.First(&category, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("category not found")
			}
			return nil, fmt.Errorf("database error: %w", err)
		}
		updates["category_id"] = categoryID
	}
	if req.Tags != nil {
		updates["tags"] = pq.StringArray(req.Tags)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	return s.GetProductByID(productID)
}

func (s *ProductService) DeleteProduct(productID uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("product not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	// Products referenced by order lines keep their history via soft delete,
	// so removal is always allowed here.
	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

func (s *ProductService) GetProductImages(productID uuid.UUID) ([]models.ProductImage, error) {
	if _, err := s.GetProductByID(productID); err != nil {
		return nil, err
	}

	var images []models.ProductImage
	err := s.db.
		Where("product_id = ?", productID).
		Order("created_at ASC").
		Find(&images).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get product images: %w", err)
	}
	return images, nil
}

func (s *ProductService) GetProductImage(productID, imageID uuid.UUID) (*models.ProductImage, error) {
	var image models.ProductImage
	err := s.db.
		Where("id = ? AND product_id = ?", imageID, productID).
		First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product image not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &image, nil
}

// AddProductImage attaches an already-hosted image by URL. Uploaded files go
// through AttachUploadedImage instead.
func (s *ProductService) AddProductImage(productID uuid.UUID, req *AddProductImageRequest) (*models.ProductImage, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.GetProductByID(productID); err != nil {
		return nil, err
	}

	image := &models.ProductImage{
		ProductID: productID,
		URL:       req.URL,
		AltText:   req.AltText,
	}

	if err := s.db.Create(image).Error; err != nil {
		return nil, fmt.Errorf("failed to add product image: %w", err)
	}

	return image, nil
}

func (s *ProductService) AttachUploadedImage(productID uuid.UUID, url, key, altText string) (*models.ProductImage, error) {
	if _, err := s.GetProductByID(productID); err != nil {
		return nil, err
	}

	image := &models.ProductImage{
		ProductID: productID,
		URL:       url,
		Key:       key,
		AltText:   altText,
	}

	if err := s.db.Create(image).Error; err != nil {
		return nil, fmt.Errorf("failed to add product image: %w", err)
	}

	return image, nil
}

func (s *ProductService) DeleteProductImage(productID, imageID uuid.UUID) (*models.ProductImage, error) {
	image, err := s.GetProductImage(productID, imageID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(image).Error; err != nil {
		return nil, fmt.Errorf("failed to delete product image: %w", err)
	}

	// Returned so the handler can clean up the stored object
	return image, nil
}
