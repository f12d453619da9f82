package dividend

import (
	"math"
	"testing"

	"github.com/dripfolio/dripfolio/internal/models"
)

func aggOf(symbol string, total float64) models.AggregatedDividend {
	return models.AggregatedDividend{Symbol: symbol, CompanyName: symbol + " Ltd", TotalDividend: total}
}

func TestCalculate_WholeShares(t *testing.T) {
	aggregated := map[string]models.AggregatedDividend{"AAA": aggOf("AAA", 800)}
	prices := map[string]float64{"AAA": 250}

	summary := Calculate(aggregated, prices)
	if len(summary.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(summary.Recommendations))
	}

	rec := summary.Recommendations[0]
	if rec.Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", rec.Quantity)
	}
	if rec.TotalCost != 750 {
		t.Errorf("expected total cost 750, got %v", rec.TotalCost)
	}
	if rec.Remaining != 50 {
		t.Errorf("expected remaining 50, got %v", rec.Remaining)
	}
	if summary.TotalDividend != 800 || summary.TotalInvestment != 750 || summary.UnusedBalance != 50 {
		t.Errorf("unexpected totals: %+v", summary)
	}
}

func TestCalculate_UnaffordableSymbolSkipped(t *testing.T) {
	aggregated := map[string]models.AggregatedDividend{"AAA": aggOf("AAA", 100)}
	prices := map[string]float64{"AAA": 150}

	summary := Calculate(aggregated, prices)
	if len(summary.Recommendations) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(summary.Recommendations))
	}
	if summary.TotalDividend != 0 || summary.TotalInvestment != 0 || summary.UnusedBalance != 0 {
		t.Errorf("expected zero totals, got %+v", summary)
	}
}

func TestCalculate_MissingPriceExcludedFromTotals(t *testing.T) {
	aggregated := map[string]models.AggregatedDividend{
		"AAA": aggOf("AAA", 800),
		"BBB": aggOf("BBB", 400),
	}
	prices := map[string]float64{"AAA": 250}

	summary := Calculate(aggregated, prices)
	if len(summary.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(summary.Recommendations))
	}
	if summary.Recommendations[0].Symbol != "AAA" {
		t.Errorf("expected AAA, got %s", summary.Recommendations[0].Symbol)
	}
	// BBB contributes to nothing: totals reflect actionable symbols only
	if summary.TotalDividend != 800 {
		t.Errorf("expected total dividend 800, got %v", summary.TotalDividend)
	}
}

func TestCalculate_NonPositivePriceSkipped(t *testing.T) {
	aggregated := map[string]models.AggregatedDividend{
		"AAA": aggOf("AAA", 800),
		"BBB": aggOf("BBB", 400),
	}
	prices := map[string]float64{"AAA": 0, "BBB": -10}

	summary := Calculate(aggregated, prices)
	if len(summary.Recommendations) != 0 {
		t.Errorf("expected no recommendations, got %d", len(summary.Recommendations))
	}
}

func TestCalculate_SortedByDividendDescending(t *testing.T) {
	aggregated := map[string]models.AggregatedDividend{
		"AAA": aggOf("AAA", 100),
		"BBB": aggOf("BBB", 900),
		"CCC": aggOf("CCC", 500),
	}
	prices := map[string]float64{"AAA": 10, "BBB": 10, "CCC": 10}

	summary := Calculate(aggregated, prices)
	if len(summary.Recommendations) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(summary.Recommendations))
	}
	for i := 1; i < len(summary.Recommendations); i++ {
		if summary.Recommendations[i-1].Dividend < summary.Recommendations[i].Dividend {
			t.Errorf("recommendations not sorted descending at %d: %v < %v",
				i, summary.Recommendations[i-1].Dividend, summary.Recommendations[i].Dividend)
		}
	}
}

func TestCalculate_StableTieOrder(t *testing.T) {
	aggregated := map[string]models.AggregatedDividend{
		"ZZZ": aggOf("ZZZ", 500),
		"AAA": aggOf("AAA", 500),
		"MMM": aggOf("MMM", 500),
	}
	prices := map[string]float64{"ZZZ": 100, "AAA": 100, "MMM": 100}

	first := Calculate(aggregated, prices)
	for i := 0; i < 10; i++ {
		again := Calculate(aggregated, prices)
		for j := range first.Recommendations {
			if first.Recommendations[j].Symbol != again.Recommendations[j].Symbol {
				t.Fatalf("tie order not deterministic: run %d position %d", i, j)
			}
		}
	}
}

func TestCalculate_FloorInvariants(t *testing.T) {
	cases := []struct {
		dividend, price float64
	}{
		{800, 250},
		{999.99, 333.00},
		{1, 0.01},
		{1250.50, 417.10},
		{100000, 7},
	}

	for _, tc := range cases {
		aggregated := map[string]models.AggregatedDividend{"SYM": aggOf("SYM", tc.dividend)}
		summary := Calculate(aggregated, map[string]float64{"SYM": tc.price})
		if len(summary.Recommendations) != 1 {
			t.Fatalf("dividend=%v price=%v: expected a recommendation", tc.dividend, tc.price)
		}
		rec := summary.Recommendations[0]

		if want := int64(math.Floor(tc.dividend / tc.price)); rec.Quantity != want {
			t.Errorf("dividend=%v price=%v: quantity %d, want %d", tc.dividend, tc.price, rec.Quantity, want)
		}
		if rec.TotalCost > tc.dividend {
			t.Errorf("dividend=%v price=%v: total cost %v exceeds dividend", tc.dividend, tc.price, rec.TotalCost)
		}
		if rec.Remaining < 0 || rec.Remaining >= tc.price {
			t.Errorf("dividend=%v price=%v: remaining %v outside [0, price)", tc.dividend, tc.price, rec.Remaining)
		}
		if math.Abs(rec.Remaining-(rec.Dividend-rec.TotalCost)) > 1e-9 {
			t.Errorf("dividend=%v price=%v: remaining != dividend - totalCost", tc.dividend, tc.price)
		}
	}
}

func TestCalculate_TotalsMatchRecommendations(t *testing.T) {
	aggregated := map[string]models.AggregatedDividend{
		"AAA": aggOf("AAA", 812.40),
		"BBB": aggOf("BBB", 95.75),
		"CCC": aggOf("CCC", 4300),
		"DDD": aggOf("DDD", 20),
	}
	prices := map[string]float64{"AAA": 101.5, "BBB": 12.25, "CCC": 995, "DDD": 45}

	summary := Calculate(aggregated, prices)

	var dividendSum, costSum float64
	for _, r := range summary.Recommendations {
		dividendSum += r.Dividend
		costSum += r.TotalCost
	}
	if math.Abs(summary.TotalDividend-dividendSum) > 1e-9 {
		t.Errorf("total dividend %v != sum %v", summary.TotalDividend, dividendSum)
	}
	if math.Abs(summary.TotalInvestment-costSum) > 1e-9 {
		t.Errorf("total investment %v != sum %v", summary.TotalInvestment, costSum)
	}
	if math.Abs(summary.UnusedBalance-(dividendSum-costSum)) > 1e-9 {
		t.Errorf("unused balance %v != %v", summary.UnusedBalance, dividendSum-costSum)
	}
	if summary.UnusedBalance < 0 {
		t.Errorf("unused balance negative: %v", summary.UnusedBalance)
	}
}

func TestExcludedSymbols_DiffAgainstInput(t *testing.T) {
	aggregated := map[string]models.AggregatedDividend{
		"AAA": aggOf("AAA", 800),
		"BBB": aggOf("BBB", 400), // no price
		"CCC": aggOf("CCC", 10),  // unaffordable
	}
	prices := map[string]float64{"AAA": 250, "CCC": 500}

	summary := Calculate(aggregated, prices)
	excluded := ExcludedSymbols(aggregated, summary)
	if len(excluded) != 2 {
		t.Fatalf("expected 2 excluded symbols, got %v", excluded)
	}
	if excluded[0] != "BBB" || excluded[1] != "CCC" {
		t.Errorf("unexpected excluded set: %v", excluded)
	}
}
