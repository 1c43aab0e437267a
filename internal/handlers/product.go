// internal/handlers/product.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clothify/clothify-backend/internal/services"
	"github.com/clothify/clothify-backend/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	storageService *services.StorageService
}

func NewProductHandler(productService *services.ProductService, storageService *services.StorageService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		storageService: storageService,
	}
}

// GetProducts lists the catalog with filtering, search and pagination.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := services.ProductSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
	}

	if categoryStr := c.Query("category_id"); categoryStr != "" {
		categoryID, err := uuid.Parse(categoryStr)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid category_id", nil)
			return
		}
		params.CategoryID = &categoryID
	}

	if priceMinStr := c.Query("price_min"); priceMinStr != "" {
		priceMin, err := strconv.ParseFloat(priceMinStr, 64)
		if err != nil || priceMin < 0 {
			utils.BadRequestResponse(c, "Invalid price_min", nil)
			return
		}
		params.PriceMin = &priceMin
	}

	if priceMaxStr := c.Query("price_max"); priceMaxStr != "" {
		priceMax, err := strconv.ParseFloat(priceMaxStr, 64)
		if err != nil || priceMax < 0 {
			utils.BadRequestResponse(c, "Invalid price_max", nil)
			return
		}
		params.PriceMax = &priceMax
	}

	if tagsStr := c.Query("tags"); tagsStr != "" {
		for _, tag := range strings.Split(tagsStr, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				params.Tags = append(params.Tags, tag)
			}
		}
	}

	result, err := h.productService.SearchProducts(params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to search products")
		return
	}

	utils.PaginatedResponse(c, *result)
}

func (h *ProductHandler) GetLatestProducts(c *gin.Context) {
	products, err := h.productService.GetLatestProducts()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to get latest products")
		return
	}

	utils.SuccessResponse(c, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	product, err := h.productService.GetProductByID(productID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, "Failed to get product")
		return
	}

	utils.SuccessResponse(c, product)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	product, err := h.productService.CreateProduct(&req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Category")
			return
		}
		if strings.Contains(err.Error(), "validation failed") || strings.Contains(err.Error(), "invalid") {
			utils.BadRequestResponse(c, "Validation failed", err.Error())
			return
		}
		utils.InternalErrorResponse(c, "Failed to create product")
		return
	}

	utils.CreatedResponse(c, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(productID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "product not found") {
			utils.NotFoundResponse(c, "Product")
			return
		}
		if strings.Contains(err.Error(), "category not found") {
			utils.NotFoundResponse(c, "Category")
			return
		}
		if strings.Contains(err.Error(), "validation failed") || strings.Contains(err.Error(), "invalid") {
			utils.BadRequestResponse(c, "Validation failed", err.Error())
			return
		}
		utils.InternalErrorResponse(c, "Failed to update product")
		return
	}

	utils.SuccessResponse(c, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.productService.DeleteProduct(productID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, "Failed to delete product")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Product deleted successfully"})
}

func (h *ProductHandler) GetProductImages(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	images, err := h.productService.GetProductImages(productID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, "Failed to get product images")
		return
	}

	utils.SuccessResponse(c, images)
}

func (h *ProductHandler) GetProductImage(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	imageID, err := parseUUIDParam(c, "imageId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid image ID", nil)
		return
	}

	image, err := h.productService.GetProductImage(productID, imageID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Product image")
			return
		}
		utils.InternalErrorResponse(c, "Failed to get product image")
		return
	}

	utils.SuccessResponse(c, image)
}

// AddProductImage accepts either a multipart file upload or a JSON body with
// an external URL.
func (h *ProductHandler) AddProductImage(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		h.uploadProductImage(c, productID)
		return
	}

	var req services.AddProductImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	image, err := h.productService.AddProductImage(productID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Product")
			return
		}
		if strings.Contains(err.Error(), "validation failed") {
			utils.BadRequestResponse(c, "Validation failed", err.Error())
			return
		}
		utils.InternalErrorResponse(c, "Failed to add product image")
		return
	}

	utils.CreatedResponse(c, image)
}

func (h *ProductHandler) uploadProductImage(c *gin.Context, productID uuid.UUID) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "No file provided", err.Error())
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadProductImage(file, header)
	if err != nil {
		utils.BadRequestResponse(c, "Upload failed", err.Error())
		return
	}

	altText := c.PostForm("alt_text")
	image, err := h.productService.AttachUploadedImage(productID, result.URL, result.Key, altText)
	if err != nil {
		// Roll back the stored object if the product row cannot be written
		_ = h.storageService.DeleteFile(result.Key)
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Product")
			return
		}
		utils.InternalErrorResponse(c, "Failed to add product image")
		return
	}

	utils.CreatedResponse(c, image)
}

func (h *ProductHandler) DeleteProductImage(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	imageID, err := parseUUIDParam(c, "imageId")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid image ID", nil)
		return
	}

	image, err := h.productService.DeleteProductImage(productID, imageID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Product image")
			return
		}
		utils.InternalErrorResponse(c, "Failed to delete product image")
		return
	}

	if image.Key != "" {
		if err := h.storageService.DeleteFile(image.Key); err != nil {
			// The database row is already gone; log and continue
			c.Error(err)
		}
	}

	utils.SuccessResponse(c, gin.H{"message": "Product image deleted successfully"})
}
