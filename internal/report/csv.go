package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSVGrid reads a whole delimited-text document into a single grid.
// Broker exports mix section titles, headers and data in one file, so rows
// are allowed to have any number of fields. Decode failures surface the
// underlying row/column position from the csv reader.
func ReadCSVGrid(r io.Reader) (Grid, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var grid Grid
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		row := make(Row, len(record))
		for i, field := range record {
			row[i] = field
		}
		grid = append(grid, row)
	}
	return grid, nil
}
