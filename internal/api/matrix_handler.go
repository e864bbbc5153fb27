package api

import (
	"log/slog"
	"net/http"

	"github.com/statlab/census-api/internal/api/shared"
	"github.com/statlab/census-api/internal/domain"
	"github.com/statlab/census-api/internal/service/matrixstats"
)

// MatrixHandler handles matrix statistics HTTP requests
type MatrixHandler struct {
	logger *slog.Logger
}

// NewMatrixHandler creates a new MatrixHandler
func NewMatrixHandler(logger *slog.Logger) *MatrixHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MatrixHandler{logger: logger}
}

// ComputeStats handles POST /api/matrix/stats requests
func (h *MatrixHandler) ComputeStats(w http.ResponseWriter, r *http.Request) {
	var req MatrixStatsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	values := req.Values
	if len(values) == 0 && req.Input != "" {
		var err error
		values, err = domain.ParseMatrixInput(req.Input)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
			return
		}
	}

	result, err := matrixstats.Compute(values)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("matrix statistics computed", "trace_id", shared.GetTraceID(r.Context()))
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
