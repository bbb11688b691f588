package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/listingai/listingai-backend/internal/models"
	"github.com/listingai/listingai-backend/internal/services"
)

type CheckoutHandler struct {
	checkoutService *services.CheckoutService
}

func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// CreateCheckoutSession godoc
// @Summary Create a checkout session
// @Description Creates a hosted payment session for the "credits" (one-time, minimum 10 at $0.50) or "unlimited" ($19.00 monthly) plan and returns its redirect URL.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Plan selection"
// @Success 200 {object} models.CheckoutResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/v1/checkout [post]
func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	var req models.CheckoutRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err)
		return
	}

	resp, err := h.checkoutService.CreateCheckoutSession(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPlan) {
			respondError(c, http.StatusBadRequest, "Invalid plan", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to create checkout session", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
