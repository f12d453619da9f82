package dividend

import (
	"math"
	"sort"

	"github.com/dripfolio/dripfolio/internal/models"
)

// Calculate turns aggregated dividend totals and a price map into a ranked
// buy list. Per symbol: a missing, zero or negative price excludes the
// symbol; quantity is floor(dividend/price) and a quantity below one
// excludes it too (no fractional shares). Summary totals cover included
// symbols only, so the summary reflects what is actually actionable;
// callers wanting the excluded set diff the input symbols against the
// output.
//
// Pure function, float64 throughout. The floor runs on the true
// dividend/price ratio; presentation rounding is the caller's concern.
func Calculate(aggregated map[string]models.AggregatedDividend, prices map[string]float64) models.RecommendationSummary {
	// Iterate in sorted symbol order so equal-dividend symbols keep a
	// deterministic relative order through the stable sort below.
	symbols := make([]string, 0, len(aggregated))
	for symbol := range aggregated {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	var recommendations []models.Recommendation
	for _, symbol := range symbols {
		agg := aggregated[symbol]

		price, ok := prices[symbol]
		if !ok || price <= 0 {
			continue
		}

		quantity := int64(math.Floor(agg.TotalDividend / price))
		if quantity < 1 {
			continue
		}

		totalCost := float64(quantity) * price
		recommendations = append(recommendations, models.Recommendation{
			Symbol:      symbol,
			CompanyName: agg.CompanyName,
			Dividend:    agg.TotalDividend,
			Price:       price,
			Quantity:    quantity,
			TotalCost:   totalCost,
			Remaining:   agg.TotalDividend - totalCost,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Dividend > recommendations[j].Dividend
	})

	summary := models.RecommendationSummary{Recommendations: recommendations}
	for _, r := range recommendations {
		summary.TotalDividend += r.Dividend
		summary.TotalInvestment += r.TotalCost
	}
	summary.UnusedBalance = summary.TotalDividend - summary.TotalInvestment
	return summary
}

// ExcludedSymbols returns the aggregated symbols that produced no
// recommendation, sorted. Unpriced and unaffordable symbols are
// indistinguishable here; cross-reference the price map to tell them apart.
func ExcludedSymbols(aggregated map[string]models.AggregatedDividend, summary models.RecommendationSummary) []string {
	included := make(map[string]bool, len(summary.Recommendations))
	for _, r := range summary.Recommendations {
		included[r.Symbol] = true
	}

	var excluded []string
	for symbol := range aggregated {
		if !included[symbol] {
			excluded = append(excluded, symbol)
		}
	}
	sort.Strings(excluded)
	return excluded
}
