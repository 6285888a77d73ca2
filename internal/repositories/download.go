package repositories

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/arpitastudio/studio-api/internal/logger"
	"github.com/arpitastudio/studio-api/internal/models"
)

// DownloadRepository stores download requests in process memory.
type DownloadRepository struct {
	mu        sync.RWMutex
	downloads []models.Download
}

// NewDownloadRepository creates an empty in-memory download repository.
func NewDownloadRepository() *DownloadRepository {
	return &DownloadRepository{}
}

// Save assigns a fresh id and creation timestamp and stores the download.
func (r *DownloadRepository) Save(ctx context.Context, input models.DownloadCreate) (*models.Download, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := models.Download{
		ID:           uuid.New().String(),
		ResourceName: input.ResourceName,
		UserEmail:    input.UserEmail,
		DownloadURL:  input.DownloadURL,
		CreatedAt:    time.Now().UTC(),
	}
	r.downloads = append(r.downloads, d)

	logger.Log.Infow("download saved", "id", d.ID)
	return &d, nil
}

// List returns all downloads ordered by creation timestamp descending.
func (r *DownloadRepository) List(ctx context.Context) ([]models.Download, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Download, len(r.downloads))
	copy(out, r.downloads)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// ListRecent returns the limit most recent downloads, newest first.
func (r *DownloadRepository) ListRecent(ctx context.Context, limit int) ([]models.Download, error) {
	if limit <= 0 {
		return []models.Download{}, nil
	}
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if limit > len(all) {
		limit = len(all)
	}
	return all[:limit], nil
}

// DownloadDBRepository stores download requests in PostgreSQL behind the
// same contract as DownloadRepository.
type DownloadDBRepository struct {
	db *sqlx.DB
}

// NewDownloadDBRepository creates a download repository backed by the given database.
func NewDownloadDBRepository(db *sqlx.DB) *DownloadDBRepository {
	return &DownloadDBRepository{db: db}
}

// Save inserts the download and returns the stored row.
func (r *DownloadDBRepository) Save(ctx context.Context, input models.DownloadCreate) (*models.Download, error) {
	const query = `
		INSERT INTO downloads (id, resource_name, user_email, download_url, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, resource_name, user_email, download_url, created_at
	`
	args := []any{
		uuid.New().String(),
		input.ResourceName, input.UserEmail, input.DownloadURL,
		time.Now().UTC(),
	}

	var d models.Download
	err := r.db.GetContext(ctx, &d, query, args...)

	logger.Log.Infow("download insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &d, nil
}

// List returns all downloads ordered by creation timestamp descending.
func (r *DownloadDBRepository) List(ctx context.Context) ([]models.Download, error) {
	const query = `
		SELECT id, resource_name, user_email, download_url, created_at
		FROM downloads
		ORDER BY created_at DESC
	`
	downloads := []models.Download{}
	err := r.db.SelectContext(ctx, &downloads, query)

	logger.Log.Infow("download list",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(downloads),
		"error", err,
	)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return downloads, nil
}

// ListRecent returns the limit most recent downloads, newest first.
func (r *DownloadDBRepository) ListRecent(ctx context.Context, limit int) ([]models.Download, error) {
	if limit <= 0 {
		return []models.Download{}, nil
	}

	const query = `
		SELECT id, resource_name, user_email, download_url, created_at
		FROM downloads
		ORDER BY created_at DESC
		LIMIT $1
	`
	downloads := []models.Download{}
	err := r.db.SelectContext(ctx, &downloads, query, limit)

	logger.Log.Infow("download recent",
		"query", strings.Join(strings.Fields(query), " "),
		"limit", limit,
		"error", err,
	)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return downloads, nil
}
