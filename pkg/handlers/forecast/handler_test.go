package forecast

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fin-tools/forecast-atlas/pkg/models/api"
	"github.com/fin-tools/forecast-atlas/pkg/services/dataset"
	csvparser "github.com/fin-tools/forecast-atlas/pkg/services/dataset/csv"
	"github.com/fin-tools/forecast-atlas/pkg/services/export"
	"github.com/fin-tools/forecast-atlas/pkg/services/forecast"
	"github.com/fin-tools/forecast-atlas/pkg/store/results"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Scenario,Product,Region,Year,Units Sold,Price per Unit,FX Rate,COGS %,Operating Expenses,Depreciation,Tax Rate
Base,Product A,Asia,2024,1000,25,1,0.6,20000,2500,0.25
Base,Product B,Europe,2024,800,40,1.1,0.5,18000,2000,0.25
`

func newTestRouter(t *testing.T) (chi.Router, results.Store) {
	t.Helper()

	registry := dataset.NewRegistry(map[string]dataset.ParserFactory{
		"csv": csvparser.ParserFactory,
	})
	runs := results.NewStore(time.Minute)
	handler := NewHandler(forecast.NewController(registry), runs, 1<<20)

	router := chi.NewRouter()
	router.Post("/forecasts", handler.CreateForecast)
	router.Get("/forecasts/{forecast}/export", handler.ExportForecast)
	router.Get("/template", handler.GetTemplate)
	return router, runs
}

func uploadRequest(t *testing.T, target string, filename, content string, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestCreateForecast(t *testing.T) {
	router, _ := newTestRouter(t)

	req := uploadRequest(t, "/forecasts", "assumptions.csv", sampleCSV, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var run api.ForecastRun
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	assert.NotEmpty(t, run.ID)
	require.Len(t, run.Lines, 2)
	assert.Equal(t, "Product A", run.Lines[0].Product)
	assert.InDelta(t, 25000.0, run.Lines[0].RevenueLocal, 1e-9)
	assert.Len(t, run.RegionSummaries, 2)
}

func TestCreateForecast_Filtered(t *testing.T) {
	router, _ := newTestRouter(t)

	req := uploadRequest(t, "/forecasts", "assumptions.csv", sampleCSV,
		map[string]string{"region": "Asia"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var run api.ForecastRun
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	require.Len(t, run.Lines, 1)
	assert.Equal(t, "Asia", run.Lines[0].Region)
}

func TestCreateForecast_MissingFile(t *testing.T) {
	router, _ := newTestRouter(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("scenario", "Base"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/forecasts", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing 'file' field")
}

func TestCreateForecast_BadOverride(t *testing.T) {
	router, _ := newTestRouter(t)

	req := uploadRequest(t, "/forecasts", "assumptions.csv", sampleCSV,
		map[string]string{"override_units": "lots"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid override_units value")
}

func TestCreateForecast_MalformedDataset(t *testing.T) {
	router, _ := newTestRouter(t)

	broken := "Scenario,Product,Units Sold,Price per Unit,FX Rate,COGS %,Operating Expenses\nBase,Product A,abc,25,1,0.6,20000\n"
	req := uploadRequest(t, "/forecasts", "assumptions.csv", broken, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error processing file:")
}

func TestExportForecast(t *testing.T) {
	router, _ := newTestRouter(t)

	req := uploadRequest(t, "/forecasts", "assumptions.csv", sampleCSV, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var run api.ForecastRun
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/forecasts/"+run.ID+"/export?format=csv", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "forecast_results_by_product.csv")

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, export.ResultColumns, records[0])
}

func TestExportForecast_UnknownRun(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/forecasts/nope/export", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not found or expired")
}

func TestExportForecast_UnsupportedFormat(t *testing.T) {
	router, runs := newTestRouter(t)

	req := uploadRequest(t, "/forecasts", "assumptions.csv", sampleCSV, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var run api.ForecastRun
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	_, ok := runs.Get(run.ID)
	require.True(t, ok)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/forecasts/"+run.ID+"/export?format=pdf", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTemplate(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/template", nil))

	// xlsx is the default format.
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "driver_forecast_template.xlsx")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/template?format=csv", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, export.TemplateColumns, records[0])
}
