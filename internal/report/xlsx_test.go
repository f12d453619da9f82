package report

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

type testSheet struct {
	name string
	rows [][]any
}

func workbookBytes(t *testing.T, sheets []testSheet) *bytes.Buffer {
	t.Helper()
	wb := excelize.NewFile()
	defer wb.Close()

	for si, sheet := range sheets {
		name, rows := sheet.name, sheet.rows
		if si == 0 {
			if err := wb.SetSheetName("Sheet1", name); err != nil {
				t.Fatalf("failed to rename sheet: %v", err)
			}
		} else {
			if _, err := wb.NewSheet(name); err != nil {
				t.Fatalf("failed to add sheet: %v", err)
			}
		}
		for i, row := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			if err := wb.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("failed to set row: %v", err)
			}
		}
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatalf("failed to serialize workbook: %v", err)
	}
	return buf
}

func TestParse_WorkbookSectioned(t *testing.T) {
	buf := workbookBytes(t, []testSheet{
		{name: "Tax P&L", rows: [][]any{
			{"Equity Dividend"},
			{"Symbol", "Company", "Net Dividend Amount"},
			{"RELI6", "Reliance Ind", 1250.50},
			{"TCS", "Tata Consultancy", "500"},
		}},
	})

	entries, err := Parse(buf, FormatXLSX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Symbol != "RELI" || entries[0].Amount != 1250.50 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
}

func TestParse_WorkbookConcatenatesSheets(t *testing.T) {
	buf := workbookBytes(t, []testSheet{
		{name: "Equity", rows: [][]any{
			{"Equity Dividend"},
			{"Symbol", "Company", "Net Amount"},
			{"AAA", "Alpha", "100"},
		}},
		{name: "Funds", rows: [][]any{
			{"Mutual Fund Dividend"},
			{"Symbol", "Company", "Net Amount"},
			{"BBB", "Beta", "200"},
		}},
	})

	entries, err := Parse(buf, FormatXLSX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected entries from both sheets, got %d", len(entries))
	}
	if entries[0].Symbol != "AAA" || entries[1].Symbol != "BBB" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestParse_WorkbookPositionalFallback(t *testing.T) {
	buf := workbookBytes(t, []testSheet{
		{name: "Holdings", rows: [][]any{
			{"Symbol", "Company", "Amount"},
			{"AAA", "Alpha Ltd", 100},
			{"BBB", "Beta Ltd", 200},
		}},
	})

	entries, err := Parse(buf, FormatXLSX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries via fallback, got %d", len(entries))
	}
}

func TestParse_WorkbookGarbageErrors(t *testing.T) {
	if _, err := Parse(bytes.NewReader([]byte("not a zip archive")), FormatXLSX); err == nil {
		t.Fatal("expected an error for a non-workbook payload")
	}
}
