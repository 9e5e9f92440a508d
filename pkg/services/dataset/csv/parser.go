package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/fin-tools/forecast-atlas/pkg/services/dataset"
)

type parser struct{}

// ParserFactory creates the CSV dataset parser.
func ParserFactory() dataset.Parser {
	return &parser{}
}

func (p *parser) Parse(r io.Reader) (*dataset.Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("csv: failed to read header: %w", err)
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	table := &dataset.Table{Columns: columns}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: failed to read record: %w", err)
		}

		row := make(dataset.Row, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
