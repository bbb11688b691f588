package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listingai/listingai-backend/internal/models"
	"github.com/listingai/listingai-backend/internal/services"
)

type ListingHandler struct {
	listingService *services.ListingService
}

func NewListingHandler(listingService *services.ListingService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

// GenerateListing godoc
// @Summary Generate a product listing
// @Description Sends the product details to the text generation provider and returns a title, description, bullet points and keywords for the target platform.
// @Tags listings
// @Accept json
// @Produce json
// @Param request body models.ListingRequest true "Product details"
// @Success 200 {object} models.ListingResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/generate [post]
func (h *ListingHandler) GenerateListing(c *gin.Context) {
	var req models.ListingRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}

	listing, err := h.listingService.GenerateListing(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNameRequired):
			respondError(c, http.StatusBadRequest, "Product name is required", err)
		case errors.Is(err, services.ErrMalformedListing):
			respondError(c, http.StatusInternalServerError, "Failed to parse listing", err)
		case errors.Is(err, services.ErrEmptyCompletion):
			respondError(c, http.StatusInternalServerError, "No response from AI", err)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to generate listing", err)
		}
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", listing)
}
