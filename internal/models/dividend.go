package models

import (
	"time"
)

// DividendEntry represents one dividend payment extracted from a broker report.
// Symbol is already normalized; rows that normalize to an empty symbol are
// dropped by the parser and never reach this type.
type DividendEntry struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"company_name"`
	ISIN        string  `json:"isin,omitempty"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date,omitempty"` // passthrough from the report, not validated
}

// AggregatedDividend is the running dividend total for one symbol.
// CompanyName keeps the first value seen for that symbol.
type AggregatedDividend struct {
	Symbol        string  `json:"symbol"`
	CompanyName   string  `json:"company_name"`
	TotalDividend float64 `json:"total_dividend"`
}

// ParsedDividendData is the full output of parsing one report: the raw
// entries plus their per-symbol aggregation.
type ParsedDividendData struct {
	Entries    []DividendEntry               `json:"entries"`
	Aggregated map[string]AggregatedDividend `json:"aggregated"`
}

// Quote is a market price for a symbol as returned by the pricing service.
type Quote struct {
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Exchange  string    `json:"exchange"` // venue tag, e.g. "NSE" or "BSE"
	FetchedAt time.Time `json:"fetched_at"`
}

// Recommendation is one whole-share buy suggestion.
// Quantity is floor(Dividend / Price) and is always >= 1; symbols that
// cannot afford a single share never produce a Recommendation.
type Recommendation struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"company_name"`
	Dividend    float64 `json:"dividend"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
	TotalCost   float64 `json:"total_cost"`
	Remaining   float64 `json:"remaining"`
}

// RecommendationSummary is the calculator output: recommendations sorted by
// dividend descending plus totals over the included symbols only.
type RecommendationSummary struct {
	Recommendations []Recommendation `json:"recommendations"`
	TotalDividend   float64          `json:"total_dividend"`
	TotalInvestment float64          `json:"total_investment"`
	UnusedBalance   float64          `json:"unused_balance"`
}
