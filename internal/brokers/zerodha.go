package brokers

import (
	"io"
	"strings"

	"github.com/dripfolio/dripfolio/internal/models"
	"github.com/dripfolio/dripfolio/internal/report"
)

// ZerodhaParser parses Zerodha Tax P&L exports. The section detection and
// header heuristics live in the report package; this type binds them to the
// broker metadata.
type ZerodhaParser struct{}

// NewZerodhaParser creates a new ZerodhaParser
func NewZerodhaParser() *ZerodhaParser {
	return &ZerodhaParser{}
}

// Info returns the broker metadata for Zerodha.
func (p *ZerodhaParser) Info() models.BrokerInfo {
	return models.BrokerInfo{
		ID:               "zerodha",
		Name:             "Zerodha",
		Description:      "Parse Zerodha Tax P&L reports (CSV/Excel)",
		SupportedFormats: []string{"csv", "xlsx", "xls"},
		Country:          models.CountryIndia,
	}
}

// CanParse reports whether the file extension is one Zerodha exports.
func (p *ZerodhaParser) CanParse(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".csv") ||
		strings.HasSuffix(name, ".xlsx") ||
		strings.HasSuffix(name, ".xls")
}

// Parse extracts dividend entries from a Zerodha report in the declared format.
func (p *ZerodhaParser) Parse(r io.Reader, format report.Format) ([]models.DividendEntry, error) {
	return report.Parse(r, format)
}
