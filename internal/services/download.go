package services

import (
	"context"
	"errors"

	"github.com/arpitastudio/studio-api/internal/logger"
	"github.com/arpitastudio/studio-api/internal/models"
)

// ErrInvalidDownloadData is returned when a download payload is missing required fields.
var ErrInvalidDownloadData = errors.New("invalid download data")

// DownloadSaver defines write operations for download requests.
type DownloadSaver interface {
	Save(ctx context.Context, input models.DownloadCreate) (*models.Download, error)
}

// DownloadLister defines read operations for download requests.
type DownloadLister interface {
	List(ctx context.Context) ([]models.Download, error)
	ListRecent(ctx context.Context, limit int) ([]models.Download, error)
}

// DownloadService validates and stores download requests.
type DownloadService struct {
	saver  DownloadSaver
	lister DownloadLister
}

// NewDownloadService creates a new DownloadService instance.
func NewDownloadService(saver DownloadSaver, lister DownloadLister) *DownloadService {
	return &DownloadService{saver: saver, lister: lister}
}

// Create checks the required fields and stores the download request.
func (svc *DownloadService) Create(ctx context.Context, input models.DownloadCreate) (*models.Download, error) {
	if input.ResourceName == "" || input.UserEmail == "" || input.DownloadURL == "" {
		logger.Log.Errorw("invalid download payload", "email", input.UserEmail)
		return nil, ErrInvalidDownloadData
	}
	return svc.saver.Save(ctx, input)
}

// List returns all download requests, newest first.
func (svc *DownloadService) List(ctx context.Context) ([]models.Download, error) {
	return svc.lister.List(ctx)
}

// Recent returns the limit most recent download requests.
func (svc *DownloadService) Recent(ctx context.Context, limit int) ([]models.Download, error) {
	return svc.lister.ListRecent(ctx, limit)
}
