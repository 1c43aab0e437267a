// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/clothify/clothify-backend/internal/services"
	"github.com/clothify/clothify-backend/internal/utils"
)

type AdminHandler struct {
	reportService *services.ReportService
}

func NewAdminHandler(reportService *services.ReportService) *AdminHandler {
	return &AdminHandler{reportService: reportService}
}

// GetStatistics serves the staff dashboard: monthly sales over the trailing
// year, the ten most ordered products, the ten biggest buyers, and the five
// most recent orders.
func (h *AdminHandler) GetStatistics(c *gin.Context) {
	stats, err := h.reportService.GetStatistics()
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to compute statistics")
		return
	}

	utils.SuccessResponse(c, stats)
}
