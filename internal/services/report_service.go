package services

import (
	"fmt"
	"io"

	"github.com/dripfolio/dripfolio/internal/brokers"
	"github.com/dripfolio/dripfolio/internal/dividend"
	"github.com/dripfolio/dripfolio/internal/models"
	"github.com/dripfolio/dripfolio/internal/report"
)

// ReportService turns an uploaded broker report into parsed entries and
// per-symbol aggregated totals.
type ReportService struct {
	registry *brokers.Registry
}

// NewReportService creates a new ReportService
func NewReportService(registry *brokers.Registry) *ReportService {
	return &ReportService{registry: registry}
}

// ParseReport parses an uploaded file with the parser registered for
// brokerID. The declared format comes from the file name, never from
// content sniffing. Zero extracted entries is a normal outcome reported via
// a warning; only undecodable input errors.
func (s *ReportService) ParseReport(r io.Reader, filename, brokerID string) (*models.ParsedDividendData, []models.Warning, error) {
	parser, err := s.registry.Get(brokerID)
	if err != nil {
		return nil, nil, err
	}
	if !parser.CanParse(filename) {
		return nil, nil, fmt.Errorf("broker %s cannot parse %q: unsupported file type", brokerID, filename)
	}

	entries, err := parser.Parse(r, report.FormatFromFilename(filename))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse report: %w", err)
	}

	var warnings []models.Warning
	if len(entries) == 0 {
		warnings = append(warnings, models.Warning{
			Code:    models.WarnNoDividendData,
			Message: "no dividend data found in the uploaded report",
		})
	}

	return &models.ParsedDividendData{
		Entries:    entries,
		Aggregated: dividend.Aggregate(entries),
	}, warnings, nil
}
