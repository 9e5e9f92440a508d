package dataset

import "errors"

var (
	// ErrMissingColumn indicates a required column is absent from the upload.
	ErrMissingColumn = errors.New("required column missing")
	// ErrMalformedValue indicates a cell could not be coerced to a number.
	ErrMalformedValue = errors.New("malformed numeric value")
	// ErrEmptyDataset indicates the upload contained a header but no rows.
	ErrEmptyDataset = errors.New("dataset contains no rows")
)

// Row maps a trimmed column name to the raw cell text.
type Row map[string]string

// Table is an uploaded dataset materialized into rows. Column names are
// trimmed at parse time; cells are kept verbatim.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
