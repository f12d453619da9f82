// Package dividend holds the pure computation core: folding parsed line
// entries into per-symbol totals and turning totals plus prices into a
// whole-share buy list.
package dividend

import (
	"github.com/dripfolio/dripfolio/internal/models"
)

// Aggregate folds line entries into one running total per symbol. The
// company name of the first entry seen for a symbol is retained; amounts
// are commutative so input order affects nothing else. Entries were already
// filtered by the parser, so nothing is dropped here.
func Aggregate(entries []models.DividendEntry) map[string]models.AggregatedDividend {
	aggregated := make(map[string]models.AggregatedDividend)
	for _, entry := range entries {
		agg, ok := aggregated[entry.Symbol]
		if !ok {
			agg = models.AggregatedDividend{
				Symbol:      entry.Symbol,
				CompanyName: entry.CompanyName,
			}
		}
		agg.TotalDividend += entry.Amount
		aggregated[entry.Symbol] = agg
	}
	return aggregated
}
