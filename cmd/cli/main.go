package main

import (
	"fmt"
	"os"

	"github.com/fin-tools/forecast-atlas/pkg/runtime/terminal"
	"github.com/fin-tools/forecast-atlas/pkg/services/dataset"
	csvparser "github.com/fin-tools/forecast-atlas/pkg/services/dataset/csv"
	xlsxparser "github.com/fin-tools/forecast-atlas/pkg/services/dataset/xlsx"
	"github.com/fin-tools/forecast-atlas/pkg/services/forecast"
)

func main() {
	registry := dataset.NewRegistry(map[string]dataset.ParserFactory{
		"csv":  csvparser.ParserFactory,
		"xlsx": xlsxparser.ParserFactory,
	})

	cli := terminal.NewCLI(terminal.Options{
		Controller: forecast.NewController(registry),
		Output:     os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
