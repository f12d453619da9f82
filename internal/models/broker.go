package models

// Country restricts brokers and exporters to the markets they serve.
type Country string

const (
	CountryIndia  Country = "IN"
	CountryUS     Country = "US"
	CountryGlobal Country = "GLOBAL"
)

// BrokerInfo describes a registered broker parser or basket exporter.
type BrokerInfo struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	SupportedFormats []string `json:"supported_formats"`
	Country          Country  `json:"country"`
}

// BasketOrder is one order line handed to a basket exporter.
type BasketOrder struct {
	Symbol          string `json:"symbol"`
	Exchange        string `json:"exchange"`
	Quantity        int64  `json:"quantity"`
	TransactionType string `json:"transaction_type"` // BUY or SELL
	OrderType       string `json:"order_type"`       // MARKET or LIMIT
	Product         string `json:"product"`
}
