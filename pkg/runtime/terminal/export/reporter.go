package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/fin-tools/forecast-atlas/pkg/models/domain"
)

// Reporter renders reports as aligned tables, one per section.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"separator": func(s domain.ReportSection) string {
			widths := columnWidths(s)
			parts := make([]string, len(widths))
			for i, w := range widths {
				parts[i] = strings.Repeat("-", w+2)
			}
			return "+" + strings.Join(parts, "+") + "+"
		},
		"headerRow": func(s domain.ReportSection) string {
			return formatRow(columnWidths(s), s.Columns)
		},
		"formatRow": func(s domain.ReportSection, row []string) string {
			return formatRow(columnWidths(s), row)
		},
	}

	tmpl := `
{{.Title}}{{if .Scenario}} - {{.Scenario}} Scenario{{end}}

Rows: {{.LineCount}}
Total Revenue (Group): {{.Currency}} {{printf "%.2f" .TotalRevenue}}
Total Net Income: {{.Currency}} {{printf "%.2f" .TotalNet}}

{{range $section := .Sections}}
=== {{$section.Title}} ===
{{range $key, $value := $section.Summary}}
{{$key}}: {{$value}}
{{end}}
{{separator $section}}
{{headerRow $section}}
{{separator $section}}
{{range $section.Rows}}{{formatRow $section .}}
{{end}}{{separator $section}}
{{end}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

func formatRow(widths []int, row []string) string {
	cells := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		cells[i] = fmt.Sprintf(" %-*s ", w, cell)
	}
	return "|" + strings.Join(cells, "|") + "|"
}

func columnWidths(s domain.ReportSection) []int {
	widths := make([]int, len(s.Columns))
	for i, col := range s.Columns {
		widths[i] = len(col)
	}
	for _, row := range s.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}
