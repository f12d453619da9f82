package export

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dripfolio/dripfolio/internal/models"
)

// Kite rejects baskets with more than 20 orders, so larger exports are
// split into parts and shipped as a zip.
const kiteBasketLimit = 20

// kiteOrder is one order line in the Kite basket JSON format.
type kiteOrder struct {
	Instrument kiteInstrument  `json:"instrument"`
	Weight     float64         `json:"weight"`
	Params     kiteOrderParams `json:"params"`
}

type kiteInstrument struct {
	TradingSymbol string `json:"tradingsymbol"`
	Exchange      string `json:"exchange"`
}

type kiteOrderParams struct {
	Quantity        int64  `json:"quantity"`
	TransactionType string `json:"transactionType"`
	Product         string `json:"product"`
	OrderType       string `json:"orderType"`
	Variety         string `json:"variety"`
}

// KiteExporter writes Zerodha Kite basket order files.
type KiteExporter struct {
	now func() time.Time // injected for deterministic filenames in tests
}

// NewKiteExporter creates a new KiteExporter
func NewKiteExporter() *KiteExporter {
	return &KiteExporter{now: time.Now}
}

// Info returns the exporter metadata for Kite.
func (e *KiteExporter) Info() models.BrokerInfo {
	return models.BrokerInfo{
		ID:               "kite",
		Name:             "Zerodha Kite",
		Description:      "Export to Zerodha Kite basket order format",
		SupportedFormats: []string{"json"},
		Country:          models.CountryIndia,
	}
}

// MaxOrdersPerBasket returns the Kite per-basket order limit.
func (e *KiteExporter) MaxOrdersPerBasket() int {
	return kiteBasketLimit
}

// Export builds the basket artifact: a single JSON file when the orders fit
// in one basket, otherwise a zip of numbered parts. The venue per symbol
// comes from the exchanges map, falling back to the order's own exchange
// and finally NSE.
func (e *KiteExporter) Export(orders []models.BasketOrder, exchanges map[string]string) (*Result, error) {
	if len(orders) == 0 {
		return nil, fmt.Errorf("no orders to export")
	}

	basket := make([]kiteOrder, len(orders))
	for i, order := range orders {
		exchange := exchanges[order.Symbol]
		if exchange == "" {
			exchange = order.Exchange
		}
		if exchange == "" {
			exchange = "NSE"
		}

		basket[i] = kiteOrder{
			Instrument: kiteInstrument{
				TradingSymbol: order.Symbol,
				Exchange:      exchange,
			},
			Params: kiteOrderParams{
				Quantity:        order.Quantity,
				TransactionType: order.TransactionType,
				Product:         order.Product,
				OrderType:       order.OrderType,
				Variety:         "regular",
			},
		}
	}

	var chunks [][]kiteOrder
	for start := 0; start < len(basket); start += kiteBasketLimit {
		end := start + kiteBasketLimit
		if end > len(basket) {
			end = len(basket)
		}
		chunks = append(chunks, basket[start:end])
	}

	dateStr := e.now().Format("2006-01-02")

	if len(chunks) == 1 {
		data, err := json.MarshalIndent(chunks[0], "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal basket: %w", err)
		}
		return &Result{
			Filename:    fmt.Sprintf("dividend-basket-%s.json", dateStr),
			ContentType: "application/json",
			Data:        data,
		}, nil
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, chunk := range chunks {
		data, err := json.MarshalIndent(chunk, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal basket part %d: %w", i+1, err)
		}
		f, err := zw.Create(fmt.Sprintf("dividend-basket-part%d.json", i+1))
		if err != nil {
			return nil, fmt.Errorf("failed to create zip entry: %w", err)
		}
		if _, err := f.Write(data); err != nil {
			return nil, fmt.Errorf("failed to write zip entry: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize zip: %w", err)
	}

	return &Result{
		Filename:    fmt.Sprintf("dividend-baskets-%s.zip", dateStr),
		ContentType: "application/zip",
		Data:        buf.Bytes(),
	}, nil
}
