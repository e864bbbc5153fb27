package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/statlab/census-api/internal/api/shared"
	"github.com/statlab/census-api/internal/config"
	"github.com/statlab/census-api/internal/domain"
	"github.com/statlab/census-api/internal/platform/census"
	"github.com/statlab/census-api/internal/service/demographics"
)

// maxSampleSize bounds the count query parameter of the sample endpoint.
const maxSampleSize = 100000

// previewRows is how many records the sample endpoint echoes back for display.
const previewRows = 10

// DemographicHandler handles demographic analysis HTTP requests
type DemographicHandler struct {
	analyzer  *demographics.Analyzer
	sampleCfg *config.SampleConfig
	logger    *slog.Logger
}

// NewDemographicHandler creates a new DemographicHandler
func NewDemographicHandler(
	analyzer *demographics.Analyzer,
	sampleCfg *config.SampleConfig,
	logger *slog.Logger,
) *DemographicHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DemographicHandler{
		analyzer:  analyzer,
		sampleCfg: sampleCfg,
		logger:    logger,
	}
}

// Analyze handles POST /api/demographics/analyze requests carrying JSON rows
func (h *DemographicHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	h.respondWithAnalysis(w, r, req.Records)
}

// AnalyzeCSV handles POST /api/demographics/analyze/csv requests whose body
// is a raw census CSV file
func (h *DemographicHandler) AnalyzeCSV(w http.ResponseWriter, r *http.Request) {
	ds, err := census.ReadCSV(r.Body)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.respondWithAnalysis(w, r, ds)
}

// Sample handles GET /api/demographics/sample requests. It generates a
// deterministic sample dataset, analyzes it, and returns the summary with a
// short preview of the rows. The optional count query parameter overrides
// the configured sample size.
func (h *DemographicHandler) Sample(w http.ResponseWriter, r *http.Request) {
	count := h.sampleCfg.Size
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxSampleSize {
			shared.RespondWithError(w, r, http.StatusBadRequest,
				"count must be an integer between 1 and "+strconv.Itoa(maxSampleSize))
			return
		}
		count = n
	}

	// A fresh generator per request keeps the endpoint stateless: the same
	// seed and count always return the same dataset.
	ds := census.NewGenerator(h.sampleCfg.Seed).Dataset(count)

	summary, err := h.analyzer.Analyze(ds)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to analyze generated dataset", err)
		return
	}

	datasetID := uuid.NewString()
	h.logger.Info("sample dataset generated",
		"dataset_id", datasetID,
		"records", count,
		"seed", h.sampleCfg.Seed,
		"trace_id", shared.GetTraceID(r.Context()))

	preview := ds
	if len(preview) > previewRows {
		preview = preview[:previewRows]
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SampleResponse{
		DatasetID: datasetID,
		Overview:  h.analyzer.Overview(ds),
		Summary:   summary,
		Preview:   preview,
	})
}

func (h *DemographicHandler) respondWithAnalysis(w http.ResponseWriter, r *http.Request, ds domain.Dataset) {
	summary, err := h.analyzer.Analyze(ds)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("demographic analysis served",
		"records", len(ds),
		"trace_id", shared.GetTraceID(r.Context()))

	shared.RespondWithJSON(w, r, http.StatusOK, AnalysisResponse{
		Overview: h.analyzer.Overview(ds),
		Summary:  summary,
	})
}
