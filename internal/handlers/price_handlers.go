package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dripfolio/dripfolio/internal/models"
	"github.com/dripfolio/dripfolio/internal/services"
)

// PriceHandler handles market price lookup endpoints
type PriceHandler struct {
	pricingSvc *services.PricingService
}

// NewPriceHandler creates a new PriceHandler
func NewPriceHandler(pricingSvc *services.PricingService) *PriceHandler {
	return &PriceHandler{
		pricingSvc: pricingSvc,
	}
}

// GetPrices handles POST /prices
// @Summary Fetch market prices for a batch of symbols
// @Description Look up current prices on NSE with a BSE fallback, serving cached quotes where available
// @Tags prices
// @Accept json
// @Produce json
// @Param request body models.PricesRequest true "Symbols to price"
// @Success 200 {object} models.PricesResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /prices [post]
func (h *PriceHandler) GetPrices(c *gin.Context) {
	var req models.PricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	if len(req.Symbols) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "symbols must not be empty",
		})
		return
	}

	result := h.pricingSvc.GetPrices(c.Request.Context(), req.Symbols)

	c.JSON(http.StatusOK, models.PricesResponse{
		Prices:    result.Prices,
		Exchanges: result.Exchanges,
		Meta:      result.Meta,
		Warnings:  result.Warnings,
	})
}
