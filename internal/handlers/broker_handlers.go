package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dripfolio/dripfolio/internal/brokers"
	"github.com/dripfolio/dripfolio/internal/models"
)

// BrokerHandler handles broker discovery endpoints
type BrokerHandler struct {
	registry *brokers.Registry
}

// NewBrokerHandler creates a new BrokerHandler
func NewBrokerHandler(registry *brokers.Registry) *BrokerHandler {
	return &BrokerHandler{
		registry: registry,
	}
}

// List handles GET /brokers
// @Summary List supported brokers
// @Description List the brokers whose reports can be parsed, optionally filtered by market country
// @Tags brokers
// @Produce json
// @Param country query string false "Filter by country (IN, US, GLOBAL)"
// @Success 200 {array} models.BrokerInfo
// @Router /brokers [get]
func (h *BrokerHandler) List(c *gin.Context) {
	if country := c.Query("country"); country != "" {
		c.JSON(http.StatusOK, h.registry.ByCountry(models.Country(country)))
		return
	}
	c.JSON(http.StatusOK, h.registry.List())
}
