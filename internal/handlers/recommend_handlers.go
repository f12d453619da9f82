package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dripfolio/dripfolio/internal/models"
	"github.com/dripfolio/dripfolio/internal/services"
)

// RecommendHandler handles reinvestment recommendation endpoints
type RecommendHandler struct {
	recommendSvc *services.RecommendationService
}

// NewRecommendHandler creates a new RecommendHandler
func NewRecommendHandler(recommendSvc *services.RecommendationService) *RecommendHandler {
	return &RecommendHandler{
		recommendSvc: recommendSvc,
	}
}

// Recommend handles POST /recommendations
// @Summary Compute reinvestment recommendations
// @Description Compute whole-share buy quantities per symbol from aggregated dividends; prices are fetched when not supplied
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body models.RecommendRequest true "Aggregated dividends and optional prices"
// @Success 200 {object} models.RecommendResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /recommendations [post]
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	if len(req.Dividends) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "dividends must not be empty",
		})
		return
	}

	resp := h.recommendSvc.Recommend(c.Request.Context(), req.Dividends, req.Prices)
	c.JSON(http.StatusOK, resp)
}
