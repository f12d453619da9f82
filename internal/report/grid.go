// Package report extracts dividend line entries from broker-issued tabular
// reports (CSV or spreadsheet). The formats vary by broker and report
// vintage, so extraction is heuristic: a section-aware scan looks for a
// dividend block and resolves column roles from the header row, with a
// positional fallback for plain three-column exports.
package report

import (
	"strconv"
	"strings"
)

// Cell is one grid cell: a string, or a float64 for spreadsheet cells that
// arrive already typed as numbers. nil marks a sparse cell.
type Cell any

// Row is one report row. Rows may be ragged.
type Row []Cell

// Grid is the 2-D cell grid for one sheet (or one whole CSV document).
type Grid []Row

// cellString stringifies a cell for text matching. nil becomes "".
func cellString(c Cell) string {
	switch v := c.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// cellAt returns the trimmed string value of row[idx], or "" when the index
// is out of bounds or negative.
func cellAt(row Row, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(cellString(row[idx]))
}

// amountChars keeps only the characters that can appear in a decimal amount.
func amountChars(r rune) rune {
	if (r >= '0' && r <= '9') || r == '.' || r == '-' {
		return r
	}
	return -1
}

// parseAmount converts an amount cell to a float64. Numeric cells are used
// directly; strings are stripped of thousands separators and any non-numeric
// decoration (currency markers, footnote symbols) before parsing. A failed
// or empty parse yields 0.
func parseAmount(c Cell) float64 {
	if f, ok := c.(float64); ok {
		return f
	}
	s := strings.TrimSpace(cellString(c))
	s = strings.ReplaceAll(s, ",", "")
	s = strings.Map(amountChars, s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
