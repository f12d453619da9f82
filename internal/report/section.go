package report

import (
	"strings"

	"github.com/dripfolio/dripfolio/internal/models"
	"github.com/dripfolio/dripfolio/internal/symbols"
)

// phase is the scanner position relative to a dividend section.
type phase int

const (
	outsideSection phase = iota
	headerSearch
	dataRows
)

// columnLayout holds the resolved column index per role. -1 means the role
// was not found (isin and date are optional).
type columnLayout struct {
	symbol  int
	company int
	isin    int
	amount  int
	date    int
}

// cellPredicate tests one lower-cased, trimmed header cell.
type cellPredicate func(string) bool

func has(sub string) cellPredicate {
	return func(s string) bool { return strings.Contains(s, sub) }
}

func hasAny(subs ...string) cellPredicate {
	return func(s string) bool {
		for _, sub := range subs {
			if strings.Contains(s, sub) {
				return true
			}
		}
		return false
	}
}

func allOf(preds ...cellPredicate) cellPredicate {
	return func(s string) bool {
		for _, p := range preds {
			if !p(s) {
				return false
			}
		}
		return true
	}
}

func not(p cellPredicate) cellPredicate {
	return func(s string) bool { return !p(s) }
}

// Header role rules. Each role is an ordered rule list, first matching rule
// wins, and within a rule the first matching cell wins. The amount rules
// prefer net/total columns over per-share ones.
var (
	symbolRules  = []cellPredicate{hasAny("symbol", "scrip")}
	companyRules = []cellPredicate{hasAny("company", "name")}
	isinRules    = []cellPredicate{has("isin")}
	amountRules  = []cellPredicate{
		allOf(has("net"), hasAny("amount", "dividend")),
		allOf(has("total"), has("amount")),
		allOf(hasAny("amount", "value"), not(has("per share"))),
		hasAny("amount", "value"),
	}
	dateRules = []cellPredicate{has("date")}
)

// findColumn returns the index of the first cell matched by the highest
// priority rule, or -1.
func findColumn(cells []string, rules []cellPredicate) int {
	for _, rule := range rules {
		for i, c := range cells {
			if rule(c) {
				return i
			}
		}
	}
	return -1
}

// resolveHeader tests a candidate header row. It succeeds when at least one
// identifying column (symbol, company or isin) is present; symbol and
// company fall back to each other's index so a single identifying column
// serves both roles. A missing amount column defaults to the row's last
// column, where broker reports usually put the total.
func resolveHeader(row Row) (columnLayout, bool) {
	cells := make([]string, len(row))
	for i, c := range row {
		cells[i] = strings.ToLower(strings.TrimSpace(cellString(c)))
	}

	layout := columnLayout{
		symbol:  findColumn(cells, symbolRules),
		company: findColumn(cells, companyRules),
		isin:    findColumn(cells, isinRules),
		amount:  findColumn(cells, amountRules),
		date:    findColumn(cells, dateRules),
	}

	if layout.symbol < 0 && layout.company < 0 && layout.isin < 0 {
		return columnLayout{}, false
	}
	if layout.symbol < 0 {
		layout.symbol = layout.company
	}
	if layout.company < 0 {
		layout.company = layout.symbol
	}
	if layout.amount < 0 {
		layout.amount = len(row) - 1
	}
	return layout, true
}

// scanState is the finite-state-machine value threaded through the row fold.
// It is immutable from the caller's perspective: step returns the successor
// state rather than mutating in place.
type scanState struct {
	phase phase
	cols  columnLayout
}

// isSectionMarker reports whether a row opens a dividend section: its first
// cell, lower-cased and trimmed, contains "dividend" (covers titles like
// "Equity Dividend" as well as bare section labels).
func isSectionMarker(row Row) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(cellString(row[0])))
	return strings.Contains(first, "dividend")
}

// step advances the scanner by one row and returns the successor state plus
// the entry extracted from the row, if any. A new section marker resets the
// scanner to header search even mid-section, so one document can carry
// several dividend blocks.
func (s scanState) step(row Row) (scanState, *models.DividendEntry) {
	if len(row) == 0 {
		return s, nil
	}

	if isSectionMarker(row) {
		return scanState{phase: headerSearch}, nil
	}

	switch s.phase {
	case headerSearch:
		if cols, ok := resolveHeader(row); ok {
			return scanState{phase: dataRows, cols: cols}, nil
		}
		// Blank separators and decoration rows between the section label
		// and the header are skipped.
		return s, nil

	case dataRows:
		return s, extractEntry(row, s.cols)
	}

	return s, nil
}

// extractEntry pulls a dividend entry out of a data row. Rows with an empty
// symbol or a non-positive amount yield nil, as do symbols that normalize
// to the empty string.
func extractEntry(row Row, cols columnLayout) *models.DividendEntry {
	symbolRaw := cellAt(row, cols.symbol)
	amount := parseAmount(cellValue(row, cols.amount))
	if symbolRaw == "" || amount <= 0 {
		return nil
	}

	symbol := symbols.Normalize(symbolRaw)
	if symbol == "" {
		return nil
	}

	companyName := cellAt(row, cols.company)
	if companyName == "" {
		companyName = symbolRaw
	}

	entry := &models.DividendEntry{
		Symbol:      symbol,
		CompanyName: companyName,
		Amount:      amount,
	}
	if cols.isin >= 0 {
		entry.ISIN = cellAt(row, cols.isin)
	}
	if cols.date >= 0 {
		entry.Date = cellAt(row, cols.date)
	}
	return entry
}

// cellValue returns the raw cell so numeric spreadsheet cells keep their
// type for amount parsing.
func cellValue(row Row, idx int) Cell {
	if idx < 0 || idx >= len(row) {
		return nil
	}
	return row[idx]
}

// ExtractSectioned scans a grid for dividend sections and returns the
// entries of every section found, in row order.
func ExtractSectioned(grid Grid) []models.DividendEntry {
	var entries []models.DividendEntry
	st := scanState{phase: outsideSection}
	for _, row := range grid {
		var entry *models.DividendEntry
		st, entry = st.step(row)
		if entry != nil {
			entries = append(entries, *entry)
		}
	}
	return entries
}
