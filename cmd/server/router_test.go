package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/statlab/census-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApplication() *application {
	cfg := &config.Config{
		Server:   config.ServerConfig{Port: 8080, LogLevel: "error"},
		Sample:   config.SampleConfig{Size: 25, Seed: 42},
		Analysis: config.AnalysisConfig{Precision: 2},
	}
	return newApplication(cfg, slog.Default())
}

func TestRouterHealthCheck(t *testing.T) {
	t.Parallel()

	router := newTestApplication().setupRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouterMatrixStats(t *testing.T) {
	t.Parallel()

	router := newTestApplication().setupRouter()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/matrix/stats",
		strings.NewReader(`{"values":[0,1,2,3,4,5,6,7,8]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Sum struct {
			Flattened float64 `json:"flattened"`
		} `json:"sum"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.InDelta(t, 36.0, result.Sum.Flattened, 1e-9)
}

func TestRouterSampleEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestApplication().setupRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/demographics/sample", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Overview struct {
			TotalRecords int `json:"total_records"`
		} `json:"overview"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 25, resp.Overview.TotalRecords)
}

func TestRouterUnknownRoute(t *testing.T) {
	t.Parallel()

	router := newTestApplication().setupRouter()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
