package terminal

import (
	"io"
	"os"

	"github.com/fin-tools/forecast-atlas/pkg/runtime/terminal/commands"
	"github.com/fin-tools/forecast-atlas/pkg/runtime/terminal/export"
	"github.com/fin-tools/forecast-atlas/pkg/services/forecast"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	controller forecast.Controller
	currency   string
	output     io.Writer
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Controller forecast.Controller
	Currency   string
	Output     io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Currency == "" {
		opts.Currency = "USD"
	}

	cli := &CLI{
		controller: opts.Controller,
		currency:   opts.Currency,
		output:     opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Driver-based financial forecasting tool",
	}

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.controller, cli.currency, cli.reporterFor))
	cmd.AddCommand(commands.NewTemplateCmd())

	return cmd
}

func (cli *CLI) reporterFor(plain bool) commands.Reporter {
	if plain {
		return NewReporter(cli.output)
	}
	return export.NewReporter(cli.output)
}
