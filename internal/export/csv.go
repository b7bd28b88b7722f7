package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/zhubert/tally/internal/sheet"
)

// dataColumns returns the columns holding user data, in index order.
func dataColumns(s sheet.Sheet) []sheet.Column {
	var out []sheet.Column
	for _, c := range s.Columns() {
		if c.Editable() {
			out = append(out, c)
		}
	}
	return out
}

// CSV renders the sheet as a header line followed by one line per row,
// each prefixed with its 1-based row number. Fields containing commas,
// quotes or newlines are quoted.
func CSV(s sheet.Sheet) ([]byte, error) {
	cols := dataColumns(s)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(cols)+1)
	header = append(header, "Row")
	for _, c := range cols {
		header = append(header, c.Title)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	record := make([]string, len(cols)+1)
	for i, r := range s.Rows {
		record[0] = strconv.Itoa(i + 1)
		for j, c := range cols {
			record[j+1] = r.Cell(c.Key)
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
