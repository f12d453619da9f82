package brokers

import (
	"errors"
	"strings"
	"testing"

	"github.com/dripfolio/dripfolio/internal/models"
	"github.com/dripfolio/dripfolio/internal/report"
)

func TestRegistry_GetKnownBroker(t *testing.T) {
	reg := DefaultRegistry()
	p, err := reg.Get("zerodha")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Info().Name != "Zerodha" {
		t.Errorf("unexpected broker: %+v", p.Info())
	}
}

func TestRegistry_UnknownBroker(t *testing.T) {
	reg := DefaultRegistry()
	if _, err := reg.Get("etrade"); !errors.Is(err, ErrUnknownBroker) {
		t.Errorf("expected ErrUnknownBroker, got %v", err)
	}
}

func TestRegistry_ByCountry(t *testing.T) {
	reg := DefaultRegistry()
	if got := reg.ByCountry(models.CountryIndia); len(got) != 1 {
		t.Errorf("expected 1 Indian broker, got %d", len(got))
	}
	if got := reg.ByCountry(models.CountryUS); len(got) != 0 {
		t.Errorf("expected no US brokers, got %d", len(got))
	}
}

func TestZerodhaParser_CanParse(t *testing.T) {
	p := NewZerodhaParser()
	for _, name := range []string{"taxpnl.csv", "TaxPNL.XLSX", "report.xls"} {
		if !p.CanParse(name) {
			t.Errorf("expected CanParse(%q) to be true", name)
		}
	}
	if p.CanParse("statement.pdf") {
		t.Error("expected CanParse to reject pdf")
	}
}

func TestZerodhaParser_ParseDelegates(t *testing.T) {
	csvData := "Equity Dividend,,\nSymbol,Company,Net Amount\nAAA,Alpha,100\n"
	entries, err := NewZerodhaParser().Parse(strings.NewReader(csvData), report.FormatCSV)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Symbol != "AAA" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}
