package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbookGrids opens a spreadsheet and returns one grid per sheet, in
// workbook order. Cells arrive as formatted strings; parseAmount handles
// the numeric cleanup downstream.
func ReadWorkbookGrids(r io.Reader) ([]Grid, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer wb.Close()

	var grids []Grid
	for _, sheet := range wb.GetSheetList() {
		rows, err := wb.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}

		grid := make(Grid, 0, len(rows))
		for _, cells := range rows {
			row := make(Row, len(cells))
			for i, cell := range cells {
				row[i] = cell
			}
			grid = append(grid, row)
		}
		grids = append(grids, grid)
	}
	return grids, nil
}
