package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/fin-tools/forecast-atlas/pkg/services/dataset"
	"github.com/xuri/excelize/v2"
)

type parser struct{}

// ParserFactory creates the XLSX dataset parser. The first sheet of the
// workbook is treated as the dataset; the first row as the header.
func ParserFactory() dataset.Parser {
	return &parser{}
}

func (p *parser) Parse(r io.Reader) (*dataset.Table, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("xlsx: failed to open workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx: workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("xlsx: failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("xlsx: sheet %q has no header row", sheets[0])
	}

	columns := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		columns[i] = strings.TrimSpace(name)
	}

	table := &dataset.Table{Columns: columns}
	for _, record := range rows[1:] {
		if isEmpty(record) {
			continue
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

func isEmpty(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
