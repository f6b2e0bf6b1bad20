// Package table holds the in-memory tabular model and its readers and
// writers for CSV files, Excel workbooks and Google Sheets.
package table

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRaggedRow is returned when a data row has more fields than the header
var ErrRaggedRow = errors.New("row has more fields than the header")

// missingTokens are the field values read as missing, in addition to the
// empty field. They mirror the defaults of common dataframe readers so a
// sheet exported with "NA" or "N/A" placeholders round-trips to empty cells.
var missingTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// Cell is a single table value. A missing cell has no text.
type Cell struct {
	Value   string
	Missing bool
}

// Text returns a present cell holding s
func Text(s string) Cell {
	return Cell{Value: s}
}

// Null returns a missing cell
func Null() Cell {
	return Cell{Missing: true}
}

// String returns the cell text, empty for missing cells
func (c Cell) String() string {
	if c.Missing {
		return ""
	}
	return c.Value
}

// IsMissingToken reports whether a raw field is read as a missing value
func IsMissingToken(field string) bool {
	_, ok := missingTokens[field]
	return ok
}

// ParseCell turns a raw field into a cell
func ParseCell(field string) Cell {
	if IsMissingToken(field) {
		return Null()
	}
	return Text(field)
}

// Table is an ordered header row plus rows of cells. Every row has exactly
// len(Headers) cells.
type Table struct {
	Headers []string
	Rows    [][]Cell
}

// NumRows returns the number of data rows
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumColumns returns the number of columns
func (t *Table) NumColumns() int {
	return len(t.Headers)
}

// SetHeaders replaces the header row; the column count must not change
func (t *Table) SetHeaders(headers []string) error {
	if len(headers) != len(t.Headers) {
		return fmt.Errorf("header count mismatch: have %d, got %d", len(t.Headers), len(headers))
	}
	t.Headers = headers
	return nil
}

// ColumnIndex returns the index of the first column named name, or -1
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// FillMissing replaces every missing cell with a present cell holding value
// and returns how many cells were filled.
func (t *Table) FillMissing(value string) int {
	filled := 0
	for _, row := range t.Rows {
		for j := range row {
			if row[j].Missing {
				row[j] = Text(value)
				filled++
			}
		}
	}
	return filled
}

// Records returns the table as string records, header first
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, append([]string{}, t.Headers...))
	for _, row := range t.Rows {
		record := make([]string, len(row))
		for j, c := range row {
			record[j] = c.String()
		}
		records = append(records, record)
	}
	return records
}

// FromRecords builds a table from raw records whose first record is the
// header row. Short rows are padded with missing cells; rows longer than
// the header are rejected.
func FromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no header row found")
	}

	headers := make([]string, len(records[0]))
	copy(headers, records[0])
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}

	t := &Table{
		Headers: headers,
		Rows:    make([][]Cell, 0, len(records)-1),
	}

	for i, record := range records[1:] {
		if len(record) > len(headers) {
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d: %w",
				i+2, len(headers), len(record), ErrRaggedRow)
		}
		row := make([]Cell, len(headers))
		for j := range row {
			if j < len(record) {
				row[j] = ParseCell(record[j])
			} else {
				row[j] = Null()
			}
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}
