package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listingai/listingai-backend/internal/models"
	"github.com/listingai/listingai-backend/internal/services/excel"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExcelHandler handles HTTP requests related to Excel operations
type ExcelHandler struct {
	excelService *excel.Service
}

// NewExcelHandler creates a new ExcelHandler instance
func NewExcelHandler(excelService *excel.Service) *ExcelHandler {
	return &ExcelHandler{
		excelService: excelService,
	}
}

// ExportListings handles POST /api/v1/listings/export
// @Summary Export listings to Excel
// @Description Builds an .xlsx workbook from generated listings for marketplace bulk upload
// @Tags listings
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body models.ExportListingsRequest true "Listings to export"
// @Success 200 {file} binary "Excel file"
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/listings/export [post]
func (h *ExcelHandler) ExportListings(c *gin.Context) {
	var req models.ExportListingsRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}

	result, err := h.excelService.ExportListings(req.Platform, req.Listings)
	if err != nil {
		if errors.Is(err, excel.ErrNoListings) || errors.Is(err, excel.ErrTooManyListings) {
			respondError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to export listings", err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", result.Filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, xlsxContentType, result.Data)
}
