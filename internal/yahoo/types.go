package yahoo

// chartResponse mirrors the subset of the Yahoo Finance v8 chart payload we
// read: the regular market price and currency from the result meta.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

// ParsedQuote is a successfully fetched market quote.
type ParsedQuote struct {
	Symbol   string
	Price    float64
	Currency string
}
