package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dripfolio/dripfolio/internal/cache"
	"github.com/dripfolio/dripfolio/internal/yahoo"
)

// quoteServer serves chart responses for the given suffixed symbols and
// 404s everything else.
func quoteServer(t *testing.T, quotes map[string]float64, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		symbol := strings.TrimPrefix(r.URL.Path, "/")
		price, ok := quotes[symbol]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprintf(w, `{"chart":{"result":[{"meta":{"currency":"INR","symbol":"%s","regularMarketPrice":%v}}],"error":null}}`, symbol, price)
	}))
}

func newTestPricingService(srvURL string) *PricingService {
	return NewPricingService(
		cache.NewQuoteCache(time.Minute),
		nil, // no persistent cache in tests
		yahoo.NewClientWithBaseURL(srvURL),
		time.Minute,
		4,
	)
}

func TestGetPrices_NSEFirst(t *testing.T) {
	srv := quoteServer(t, map[string]float64{
		"RELIANCE.NS": 2950.25,
		"RELIANCE.BO": 2949.00, // must never be consulted
	}, nil)
	defer srv.Close()

	svc := newTestPricingService(srv.URL)
	result := svc.GetPrices(context.Background(), []string{"RELIANCE"})

	if result.Prices["RELIANCE"] != 2950.25 {
		t.Errorf("expected NSE price, got %v", result.Prices["RELIANCE"])
	}
	if result.Exchanges["RELIANCE"] != "NSE" {
		t.Errorf("expected NSE venue, got %q", result.Exchanges["RELIANCE"])
	}
}

func TestGetPrices_BSEFallback(t *testing.T) {
	srv := quoteServer(t, map[string]float64{
		"SMALLCAP.BO": 120.5,
	}, nil)
	defer srv.Close()

	svc := newTestPricingService(srv.URL)
	result := svc.GetPrices(context.Background(), []string{"SMALLCAP"})

	if result.Prices["SMALLCAP"] != 120.5 {
		t.Errorf("expected BSE price, got %v", result.Prices["SMALLCAP"])
	}
	if result.Exchanges["SMALLCAP"] != "BSE" {
		t.Errorf("expected BSE venue, got %q", result.Exchanges["SMALLCAP"])
	}
}

func TestGetPrices_MissingSymbolWarned(t *testing.T) {
	srv := quoteServer(t, map[string]float64{"AAA.NS": 10}, nil)
	defer srv.Close()

	svc := newTestPricingService(srv.URL)
	result := svc.GetPrices(context.Background(), []string{"AAA", "GONE"})

	if _, ok := result.Prices["GONE"]; ok {
		t.Error("expected GONE to be unpriced")
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(result.Warnings))
	}
	if !strings.Contains(result.Warnings[0].Message, "GONE") {
		t.Errorf("warning should name the symbol: %+v", result.Warnings[0])
	}
	if result.Meta.Found != 1 || result.Meta.Requested != 2 {
		t.Errorf("unexpected meta: %+v", result.Meta)
	}
}

func TestGetPrices_SecondCallServedFromCache(t *testing.T) {
	var hits atomic.Int64
	srv := quoteServer(t, map[string]float64{"TCS.NS": 4100}, &hits)
	defer srv.Close()

	svc := newTestPricingService(srv.URL)
	ctx := context.Background()

	first := svc.GetPrices(ctx, []string{"TCS"})
	if first.Meta.FromCache != 0 || first.Meta.Fetched != 1 {
		t.Errorf("unexpected first meta: %+v", first.Meta)
	}
	fetched := hits.Load()

	second := svc.GetPrices(ctx, []string{"TCS"})
	if second.Meta.FromCache != 1 || second.Meta.Fetched != 0 {
		t.Errorf("unexpected second meta: %+v", second.Meta)
	}
	if hits.Load() != fetched {
		t.Errorf("expected no extra HTTP hits, got %d -> %d", fetched, hits.Load())
	}
	if second.Prices["TCS"] != 4100 {
		t.Errorf("expected cached price, got %v", second.Prices["TCS"])
	}
}

func TestGetPrices_DeduplicatesAndSkipsEmpty(t *testing.T) {
	srv := quoteServer(t, map[string]float64{"INFY.NS": 1500}, nil)
	defer srv.Close()

	svc := newTestPricingService(srv.URL)
	result := svc.GetPrices(context.Background(), []string{"INFY", "", "INFY"})

	if result.Meta.Requested != 1 {
		t.Errorf("expected 1 requested after dedupe, got %d", result.Meta.Requested)
	}
	if result.Prices["INFY"] != 1500 {
		t.Errorf("expected INFY priced, got %+v", result.Prices)
	}
}
