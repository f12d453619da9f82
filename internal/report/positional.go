package report

import (
	"github.com/dripfolio/dripfolio/internal/models"
	"github.com/dripfolio/dripfolio/internal/symbols"
)

// ExtractPositional recovers plain three-column exports that carry no
// section markers: row 0 is a header to skip, column 0 is the symbol,
// column 1 the company name, column 2 the amount (column 1 when the row has
// no third column). Used as the fallback strategy when the section-aware
// scan finds nothing.
func ExtractPositional(grid Grid) []models.DividendEntry {
	var entries []models.DividendEntry
	for i, row := range grid {
		if i == 0 || len(row) < 2 {
			continue
		}

		symbolRaw := cellAt(row, 0)
		if symbolRaw == "" {
			continue
		}

		amountCell := cellValue(row, 2)
		if amountCell == nil || cellString(amountCell) == "" {
			amountCell = cellValue(row, 1)
		}
		amount := parseAmount(amountCell)
		if amount <= 0 {
			continue
		}

		symbol := symbols.Normalize(symbolRaw)
		if symbol == "" {
			continue
		}

		companyName := cellAt(row, 1)
		if companyName == "" {
			companyName = symbolRaw
		}

		entries = append(entries, models.DividendEntry{
			Symbol:      symbol,
			CompanyName: companyName,
			Amount:      amount,
		})
	}
	return entries
}
