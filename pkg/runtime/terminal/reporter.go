package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/fin-tools/forecast-atlas/pkg/models/domain"
)

// Reporter outputs reports to the console in a compact list form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.Report) error {
	tmpl := `
{{.Title}}{{if .Scenario}} - {{.Scenario}} Scenario{{end}}
Rows: {{.LineCount}}
Total Revenue (Group): {{.Currency}} {{printf "%.2f" .TotalRevenue}}
Total Net Income: {{.Currency}} {{printf "%.2f" .TotalNet}}

{{range .Sections}}
=== {{.Title}} ===
{{range $key, $value := .Summary}}
{{$key}}: {{$value}}
{{end}}
{{range .Rows}}
- {{first .}}: {{rest .}}
{{end}}
{{end}}
`
	funcMap := template.FuncMap{
		"first": func(row []string) string {
			if len(row) == 0 {
				return ""
			}
			return row[0]
		},
		"rest": func(row []string) string {
			out := ""
			for i, cell := range row[1:] {
				if i > 0 {
					out += " | "
				}
				out += cell
			}
			return out
		},
	}

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
