package main

import (
	"fmt"
	"net"
	"os"

	"github.com/fin-tools/forecast-atlas/pkg/server"
	"github.com/fin-tools/forecast-atlas/pkg/services/config"
	"github.com/fin-tools/forecast-atlas/pkg/services/dataset"
	csvparser "github.com/fin-tools/forecast-atlas/pkg/services/dataset/csv"
	xlsxparser "github.com/fin-tools/forecast-atlas/pkg/services/dataset/xlsx"
	"github.com/fin-tools/forecast-atlas/pkg/services/forecast"
	"github.com/fin-tools/forecast-atlas/pkg/store/results"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Forecast Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the forecast-atlas config file (YAML); defaults apply when omitted")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file loaded: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	registry := dataset.NewRegistry(map[string]dataset.ParserFactory{
		"csv":  csvparser.ParserFactory,
		"xlsx": xlsxparser.ParserFactory,
	})
	controller := forecast.NewController(registry)
	runs := results.NewStore(cfg.Results.TTL)

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Forecast:       controller,
			Runs:           runs,
			MaxUploadBytes: cfg.Upload.MaxSizeBytes,
		},
	})

	logger.Info().
		Str("host", cfg.Server.Host).
		Str("port", cfg.Server.Port).
		Strs("formats", controller.SupportedFormats()).
		Msg("starting forecast-atlas")

	return api.Start()
}
