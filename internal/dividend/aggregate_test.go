package dividend

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dripfolio/dripfolio/internal/models"
)

func TestAggregate_SumsPerSymbol(t *testing.T) {
	entries := []models.DividendEntry{
		{Symbol: "AAA", CompanyName: "Alpha Ltd", Amount: 500},
		{Symbol: "AAA", CompanyName: "Alpha Limited", Amount: 300},
	}

	aggregated := Aggregate(entries)
	if len(aggregated) != 1 {
		t.Fatalf("expected 1 aggregated symbol, got %d", len(aggregated))
	}

	agg, ok := aggregated["AAA"]
	if !ok {
		t.Fatal("expected AAA in aggregation")
	}
	if agg.TotalDividend != 800 {
		t.Errorf("expected total 800, got %v", agg.TotalDividend)
	}
	if agg.CompanyName != "Alpha Ltd" {
		t.Errorf("expected first-seen company name, got %q", agg.CompanyName)
	}
}

func TestAggregate_MultipleSymbols(t *testing.T) {
	entries := []models.DividendEntry{
		{Symbol: "AAA", CompanyName: "Alpha", Amount: 100},
		{Symbol: "BBB", CompanyName: "Beta", Amount: 250.5},
		{Symbol: "AAA", CompanyName: "Alpha", Amount: 50},
	}

	aggregated := Aggregate(entries)
	if len(aggregated) != 2 {
		t.Fatalf("expected 2 symbols, got %d", len(aggregated))
	}
	if aggregated["AAA"].TotalDividend != 150 {
		t.Errorf("AAA: expected 150, got %v", aggregated["AAA"].TotalDividend)
	}
	if aggregated["BBB"].TotalDividend != 250.5 {
		t.Errorf("BBB: expected 250.5, got %v", aggregated["BBB"].TotalDividend)
	}
}

func TestAggregate_Empty(t *testing.T) {
	aggregated := Aggregate(nil)
	if len(aggregated) != 0 {
		t.Errorf("expected empty aggregation, got %d entries", len(aggregated))
	}
}

func TestAggregate_OrderIndependentTotals(t *testing.T) {
	entries := []models.DividendEntry{
		{Symbol: "AAA", CompanyName: "Alpha", Amount: 12.5},
		{Symbol: "BBB", CompanyName: "Beta", Amount: 40},
		{Symbol: "AAA", CompanyName: "Alpha", Amount: 7.25},
		{Symbol: "CCC", CompanyName: "Gamma", Amount: 99.99},
		{Symbol: "BBB", CompanyName: "Beta", Amount: 1},
	}

	shuffled := make([]models.DividendEntry, len(entries))
	copy(shuffled, entries)
	r := rand.New(rand.NewSource(42))
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	a := Aggregate(entries)
	b := Aggregate(shuffled)
	if len(a) != len(b) {
		t.Fatalf("aggregation sizes differ: %d vs %d", len(a), len(b))
	}
	for symbol, agg := range a {
		if math.Abs(agg.TotalDividend-b[symbol].TotalDividend) > 1e-9 {
			t.Errorf("symbol %s: totals differ, %v vs %v", symbol, agg.TotalDividend, b[symbol].TotalDividend)
		}
	}
}
