package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/fin-tools/forecast-atlas/pkg/handlers/forecast"
	"github.com/fin-tools/forecast-atlas/pkg/services/forecast"
	"github.com/fin-tools/forecast-atlas/pkg/store/results"

	forecastmiddleware "github.com/fin-tools/forecast-atlas/pkg/server/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server

	shutdownTimeout time.Duration
}

type Dependencies struct {
	Forecast       forecast.Controller
	Runs           results.Store
	MaxUploadBytes int64
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	handler := handlers.NewHandler(
		config.Dependencies.Forecast,
		config.Dependencies.Runs,
		config.Dependencies.MaxUploadBytes,
	)

	router := chi.NewRouter()

	router.Use(forecastmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/forecasts", handler.CreateForecast)
		r.Get("/forecasts/{forecast}/export", handler.ExportForecast)
		r.Get("/template", handler.GetTemplate)
	})

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: config.ShutdownTimeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// Router exposes the configured mux, mainly for tests.
func (w *WebAPI) Router() http.Handler {
	return w.router
}
