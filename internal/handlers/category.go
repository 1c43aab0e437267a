// internal/handlers/category.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clothify/clothify-backend/internal/services"
	"github.com/clothify/clothify-backend/internal/utils"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	result, err := h.categoryService.ListCategories(params)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list categories")
		return
	}

	utils.PaginatedResponse(c, *result)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	categoryID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID", nil)
		return
	}

	category, err := h.categoryService.GetCategoryByID(categoryID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Category")
			return
		}
		utils.InternalErrorResponse(c, "Failed to get category")
		return
	}

	utils.SuccessResponse(c, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			utils.ConflictResponse(c, err.Error())
			return
		}
		if strings.Contains(err.Error(), "validation failed") {
			utils.BadRequestResponse(c, "Validation failed", err.Error())
			return
		}
		utils.InternalErrorResponse(c, "Failed to create category")
		return
	}

	utils.CreatedResponse(c, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID", nil)
		return
	}

	var req services.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err.Error())
		return
	}

	category, err := h.categoryService.UpdateCategory(categoryID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Category")
			return
		}
		if strings.Contains(err.Error(), "already exists") {
			utils.ConflictResponse(c, err.Error())
			return
		}
		if strings.Contains(err.Error(), "validation failed") {
			utils.BadRequestResponse(c, "Validation failed", err.Error())
			return
		}
		utils.InternalErrorResponse(c, "Failed to update category")
		return
	}

	utils.SuccessResponse(c, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := parseUUIDParam(c, "id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID", nil)
		return
	}

	if err := h.categoryService.DeleteCategory(categoryID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "Category")
			return
		}
		if strings.Contains(err.Error(), "existing products") {
			utils.ConflictResponse(c, err.Error())
			return
		}
		utils.InternalErrorResponse(c, "Failed to delete category")
		return
	}

	utils.SuccessResponse(c, gin.H{"message": "Category deleted successfully"})
}
