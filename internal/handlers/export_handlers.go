package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dripfolio/dripfolio/internal/export"
	"github.com/dripfolio/dripfolio/internal/models"
)

// ExportHandler handles basket export endpoints
type ExportHandler struct {
	registry *export.Registry
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(registry *export.Registry) *ExportHandler {
	return &ExportHandler{
		registry: registry,
	}
}

// Export handles POST /export/:broker
// @Summary Export orders as a broker basket file
// @Description Build a downloadable basket order file for the named broker; large baskets are split and zipped
// @Tags export
// @Accept json
// @Produce json
// @Param broker path string true "Exporter ID (e.g. kite)"
// @Param request body models.ExportRequest true "Orders and optional symbol to exchange map"
// @Success 200 {file} file
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /export/{broker} [post]
func (h *ExportHandler) Export(c *gin.Context) {
	exporter, err := h.registry.Get(c.Param("broker"))
	if err != nil {
		if errors.Is(err, export.ErrUnknownExporter) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "no exporter registered for broker " + c.Param("broker"),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	var req models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	result, err := exporter.Export(req.Orders, req.Exchanges)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
