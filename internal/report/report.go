package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dripfolio/dripfolio/internal/models"
)

// Format is the declared input format. Dispatch is by declaration, not
// content sniffing; the uploader knows what it exported.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
)

// FormatFromFilename derives the declared format from a file name
// extension. Unknown extensions are treated as delimited text.
func FormatFromFilename(name string) Format {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "xlsx":
		return FormatXLSX
	case "xls":
		return FormatXLS
	default:
		return FormatCSV
	}
}

// isSpreadsheet reports whether the format is a workbook format.
func (f Format) isSpreadsheet() bool {
	return f == FormatXLSX || f == FormatXLS
}

// Parse extracts dividend entries from a report in the declared format.
//
// Delimited text is a single grid: the section-aware strategy runs first
// and the positional strategy is the fallback. Spreadsheets scan every
// sheet section-aware, concatenating entries across sheets; when that
// yields nothing the positional fallback is tried against the first sheet.
//
// Zero entries with a nil error is the normal "no dividend data found"
// outcome; only undecodable input returns an error.
func Parse(r io.Reader, format Format) ([]models.DividendEntry, error) {
	if format.isSpreadsheet() {
		grids, err := ReadWorkbookGrids(r)
		if err != nil {
			return nil, err
		}

		var entries []models.DividendEntry
		for _, grid := range grids {
			entries = append(entries, ExtractSectioned(grid)...)
		}
		if len(entries) == 0 && len(grids) > 0 {
			entries = ExtractPositional(grids[0])
		}
		return entries, nil
	}

	grid, err := ReadCSVGrid(r)
	if err != nil {
		return nil, fmt.Errorf("report parse: %w", err)
	}
	return ExtractEntries(grid), nil
}
