package api

import (
	"fmt"

	"github.com/statlab/census-api/internal/domain"
	"github.com/statlab/census-api/internal/service/demographics"
	"github.com/statlab/census-api/internal/service/matrixstats"
)

// Common request/response structures

// MatrixStatsRequest defines the payload for the matrix statistics endpoint.
// Callers supply either the nine values directly or the raw comma-separated
// text the user typed; Values wins when both are present.
type MatrixStatsRequest struct {
	Values []float64 `json:"values,omitempty"`
	Input  string    `json:"input,omitempty"`
}

// Validate ensures the request carries something to compute on.
func (r *MatrixStatsRequest) Validate() error {
	if len(r.Values) == 0 && r.Input == "" {
		return fmt.Errorf("%w: provide either values or input", domain.ErrInvalidInput)
	}
	return nil
}

// AnalyzeRequest defines the payload for the JSON demographic analysis
// endpoint. An empty record list is valid and yields the degenerate summary.
type AnalyzeRequest struct {
	Records []domain.PersonRecord `json:"records"`
}

// AnalysisResponse pairs the dataset overview with the full summary.
type AnalysisResponse struct {
	Overview demographics.Overview `json:"overview"`
	Summary  *demographics.Summary `json:"summary"`
}

// SampleResponse defines the response for the sample-data endpoint. The
// DatasetID identifies the generated dataset in logs; Preview holds the
// first rows for display.
type SampleResponse struct {
	DatasetID string                `json:"dataset_id"`
	Overview  demographics.Overview `json:"overview"`
	Summary   *demographics.Summary `json:"summary"`
	Preview   []domain.PersonRecord `json:"preview"`
}

// MatrixStatsResponse is the matrix result as returned to clients.
type MatrixStatsResponse = matrixstats.Result
