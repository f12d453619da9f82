package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dripfolio/dripfolio/internal/brokers"
	"github.com/dripfolio/dripfolio/internal/models"
	"github.com/dripfolio/dripfolio/internal/services"
)

// ReportHandler handles dividend report upload endpoints
type ReportHandler struct {
	reportSvc *services.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportSvc *services.ReportService) *ReportHandler {
	return &ReportHandler{
		reportSvc: reportSvc,
	}
}

// ParseReport handles POST /reports/parse
// @Summary Parse an uploaded broker report
// @Description Parse a dividend report file and return the extracted entries plus per-symbol totals
// @Tags reports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Broker report file (CSV or Excel)"
// @Param broker formData string false "Broker ID (default zerodha)"
// @Success 200 {object} models.ParseReportResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /reports/parse [post]
func (h *ReportHandler) ParseReport(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "missing file upload field 'file'",
		})
		return
	}

	brokerID := c.PostForm("broker")
	if brokerID == "" {
		brokerID = "zerodha"
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: "failed to open uploaded file",
		})
		return
	}
	defer file.Close()

	data, warnings, err := h.reportSvc.ParseReport(file, fileHeader.Filename, brokerID)
	if err != nil {
		if errors.Is(err, brokers.ErrUnknownBroker) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "no parser registered for broker " + brokerID,
			})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "unprocessable",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ParseReportResponse{
		ReportID:   uuid.NewString(),
		Broker:     brokerID,
		Entries:    data.Entries,
		Aggregated: data.Aggregated,
		Warnings:   warnings,
	})
}
