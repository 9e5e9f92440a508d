package forecast

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fin-tools/forecast-atlas/pkg/adapters"
	"github.com/fin-tools/forecast-atlas/pkg/models/domain"
	"github.com/fin-tools/forecast-atlas/pkg/services/dataset"
	"github.com/fin-tools/forecast-atlas/pkg/services/export"
	"github.com/fin-tools/forecast-atlas/pkg/services/forecast"
	"github.com/fin-tools/forecast-atlas/pkg/store/results"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	controller     forecast.Controller
	runs           results.Store
	maxUploadBytes int64
}

func NewHandler(controller forecast.Controller, runs results.Store, maxUploadBytes int64) *Handler {
	return &Handler{
		controller:     controller,
		runs:           runs,
		maxUploadBytes: maxUploadBytes,
	}
}

// CreateForecast accepts a multipart dataset upload, runs the full forecast
// pass and returns the computed run. A row that cannot be computed aborts
// the whole pass; no partial results are returned.
func (h *Handler) CreateForecast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		http.Error(w, fmt.Sprintf("failed to parse upload (max %d bytes)", h.maxUploadBytes),
			http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing 'file' field in upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	opts, err := runOptionsFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	format := dataset.FormatFromPath(header.Filename)
	run, err := h.controller.Run(ctx, file, format, opts)
	if err != nil {
		logger.Warn().Err(err).Str("filename", header.Filename).Msg("forecast pass failed")
		// The pass is all-or-nothing: one user-visible message, no partials.
		http.Error(w, fmt.Sprintf("error processing file: %v", err), http.StatusBadRequest)
		return
	}

	h.runs.Put(run)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapForecastRunDomainToApi(run)); err != nil {
		logger.Error().Err(err).Msg("failed to encode forecast run")
	}
}

// ExportForecast serves the raw, unformatted result rows of a recent run as
// a downloadable CSV or XLSX file.
func (h *Handler) ExportForecast(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())
	id := chi.URLParam(r, "forecast")

	run, ok := h.runs.Get(id)
	if !ok {
		http.Error(w, "forecast run not found or expired", http.StatusNotFound)
		return
	}

	switch format(r, "csv") {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="forecast_results_by_product.csv"`)
		if err := export.WriteCSV(w, run.Lines); err != nil {
			logger.Error().Err(err).Str("run_id", id).Msg("failed to write csv export")
		}
	case "xlsx":
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="forecast_results_by_product.xlsx"`)
		if err := export.WriteXLSX(w, run.Lines); err != nil {
			logger.Error().Err(err).Str("run_id", id).Msg("failed to write xlsx export")
		}
	default:
		http.Error(w, "unsupported export format, expected csv or xlsx", http.StatusBadRequest)
	}
}

// GetTemplate serves the sample assumptions template.
func (h *Handler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	switch format(r, "xlsx") {
	case "xlsx":
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="driver_forecast_template.xlsx"`)
		if err := export.WriteTemplateXLSX(w); err != nil {
			logger.Error().Err(err).Msg("failed to write xlsx template")
		}
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="driver_forecast_template.csv"`)
		if err := export.WriteTemplateCSV(w); err != nil {
			logger.Error().Err(err).Msg("failed to write csv template")
		}
	default:
		http.Error(w, "unsupported template format, expected csv or xlsx", http.StatusBadRequest)
	}
}

func format(r *http.Request, fallback string) string {
	if f := r.URL.Query().Get("format"); f != "" {
		return f
	}
	return fallback
}

func runOptionsFromRequest(r *http.Request) (forecast.RunOptions, error) {
	opts := forecast.RunOptions{
		Filter: domain.Filter{
			Scenario: r.FormValue("scenario"),
			Regions:  r.Form["region"],
			Years:    r.Form["year"],
		},
		Sorted: r.FormValue("sorted") == "true",
	}

	overrides := []struct {
		param  string
		target **float64
	}{
		{"override_units", &opts.Overrides.UnitsSold},
		{"override_price", &opts.Overrides.PricePerUnit},
		{"override_fx", &opts.Overrides.FXRate},
	}
	for _, o := range overrides {
		raw := r.FormValue(o.param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return forecast.RunOptions{}, fmt.Errorf("invalid %s value %q", o.param, raw)
		}
		*o.target = &v
	}
	return opts, nil
}
