package models

// ErrorResponse is the standard error body for all endpoints
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ParseReportResponse is returned by POST /reports/parse
type ParseReportResponse struct {
	ReportID   string                        `json:"report_id"`
	Broker     string                        `json:"broker"`
	Entries    []DividendEntry               `json:"entries"`
	Aggregated map[string]AggregatedDividend `json:"aggregated"`
	Warnings   []Warning                     `json:"warnings,omitempty"`
}

// PricesRequest is the request body for POST /prices
type PricesRequest struct {
	Symbols []string `json:"symbols" binding:"required"`
}

// PriceFetchMeta reports how a batch price lookup was served
type PriceFetchMeta struct {
	Requested int `json:"requested"`
	FromCache int `json:"from_cache"`
	Fetched   int `json:"fetched"`
	Found     int `json:"found"`
}

// PricesResponse is returned by POST /prices
type PricesResponse struct {
	Prices    map[string]float64 `json:"prices"`
	Exchanges map[string]string  `json:"exchanges"`
	Meta      PriceFetchMeta     `json:"meta"`
	Warnings  []Warning          `json:"warnings,omitempty"`
}

// RecommendRequest is the request body for POST /recommendations.
// Prices is optional; when omitted the pricing service is consulted for
// every symbol present in Dividends.
type RecommendRequest struct {
	Dividends map[string]AggregatedDividend `json:"dividends" binding:"required"`
	Prices    map[string]float64            `json:"prices"`
}

// RecommendResponse is returned by POST /recommendations.
// Excluded lists the symbols from the request that produced no
// recommendation (missing price or unaffordable).
type RecommendResponse struct {
	Summary   RecommendationSummary `json:"summary"`
	Excluded  []string              `json:"excluded"`
	Exchanges map[string]string     `json:"exchanges,omitempty"`
	Warnings  []Warning             `json:"warnings,omitempty"`
}

// ExportRequest is the request body for POST /export/:broker
type ExportRequest struct {
	Orders    []BasketOrder     `json:"orders" binding:"required"`
	Exchanges map[string]string `json:"exchanges"`
}
