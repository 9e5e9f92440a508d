package commands

import (
	"fmt"
	"os"

	"github.com/fin-tools/forecast-atlas/pkg/services/dataset"
	fileexport "github.com/fin-tools/forecast-atlas/pkg/services/export"
	"github.com/spf13/cobra"
)

type TemplateCmd struct {
	output string
}

// NewTemplateCmd creates the template command: write the sample assumptions
// file users can fill in and feed back to analyze.
func NewTemplateCmd() *cobra.Command {
	tc := &TemplateCmd{}
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write a sample assumptions template",
		RunE:  tc.run,
	}

	cmd.Flags().StringVar(&tc.output, "output", "driver_forecast_template.xlsx",
		"Destination path (csv or xlsx)")

	return cmd
}

func (tc *TemplateCmd) run(cmd *cobra.Command, args []string) error {
	out, err := os.Create(tc.output)
	if err != nil {
		return fmt.Errorf("failed to create template file: %w", err)
	}
	defer out.Close()

	switch dataset.FormatFromPath(tc.output) {
	case "csv":
		err = fileexport.WriteTemplateCSV(out)
	case "xlsx":
		err = fileexport.WriteTemplateXLSX(out)
	default:
		return fmt.Errorf("unsupported template format for %q, expected csv or xlsx", tc.output)
	}
	if err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	return nil
}
