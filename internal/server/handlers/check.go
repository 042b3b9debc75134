package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/brandcheck/brandcheck/internal/core"
	apperrors "github.com/brandcheck/brandcheck/internal/errors"
)

// Aggregator runs the full brand check for a candidate name.
type Aggregator interface {
	Check(ctx context.Context, name string) (*core.AggregatedResult, error)
}

// CheckRequest is the inbound payload for POST /api/check.
type CheckRequest struct {
	Name string `json:"name"`
}

// CheckResponse is the outbound payload for POST /api/check.
type CheckResponse struct {
	Success bool                   `json:"success"`
	Results *core.AggregatedResult `json:"results,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// NewCheckHandler builds the handler for POST /api/check.
func NewCheckHandler(aggregator Aggregator, logger *zap.Logger) http.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req CheckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, r, apperrors.WrapInvalidInput(r.Context(), err, "Request body must be JSON with a name field."))
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			respondWithError(w, r, apperrors.NewInvalidInputError("No name provided."))
			return
		}

		results, err := aggregator.Check(r.Context(), name)
		if err != nil {
			logger.Error("brand check failed", zap.String("name", name), zap.Error(err))
			respondWithError(w, r, apperrors.WrapInternal(r.Context(), err, "brand check failed"))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(CheckResponse{Success: true, Results: results})
	}
}
