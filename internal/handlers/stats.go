package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/arpitastudio/studio-api/internal/logger"
	"github.com/arpitastudio/studio-api/internal/models"
)

// Statser defines the interface that the admin service must implement.
type Statser interface {
	Stats(ctx context.Context) (*models.AdminStats, error)
}

// NewStatsHandler returns an HTTP handler for the dashboard stats.
// @Summary Dashboard stats
// @Description Recomputes record counts across all collections on every call.
// @Tags admin
// @Produce json
// @Success 200 {object} models.AdminStats "Aggregated counters"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch stats"
// @Router /api/admin/stats [get]
func NewStatsHandler(svc Statser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		stats, err := svc.Stats(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to compute stats", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to fetch stats"})
			return
		}

		json.NewEncoder(w).Encode(stats)
	}
}
