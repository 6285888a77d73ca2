package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/arpitastudio/studio-api/internal/logger"
	"github.com/arpitastudio/studio-api/internal/models"
)

// DownloadCreator defines the interface that the download service must implement.
type DownloadCreator interface {
	Create(ctx context.Context, input models.DownloadCreate) (*models.Download, error)
}

// DownloadLister defines the read interface for download requests.
type DownloadLister interface {
	List(ctx context.Context) ([]models.Download, error)
	Recent(ctx context.Context, limit int) ([]models.Download, error)
}

// NewCreateDownloadHandler returns an HTTP handler that stores a download request.
// @Summary Record a download request
// @Description Validates the download payload and stores it with a generated id and creation timestamp.
// @Tags downloads
// @Accept json
// @Produce json
// @Param download body models.DownloadCreate true "Download payload"
// @Success 200 {object} models.Download "Created download"
// @Failure 400 {object} handlers.ErrorResponse "Invalid download data"
// @Router /api/downloads [post]
func NewCreateDownloadHandler(svc DownloadCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req models.DownloadCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid download data"})
			return
		}

		download, err := svc.Create(r.Context(), req)
		if err != nil {
			logger.Log.Errorw("failed to create download", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid download data"})
			return
		}

		json.NewEncoder(w).Encode(download)
	}
}
