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

// BookingRepository stores bookings in process memory. The backing slice
// keeps insertion order so equal timestamps read back deterministically.
type BookingRepository struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

// NewBookingRepository creates an empty in-memory booking repository.
func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

// Save assigns a fresh id and creation timestamp and stores the booking.
// It is a pure insert and never fails for well-formed input.
func (r *BookingRepository) Save(ctx context.Context, input models.BookingCreate) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := models.Booking{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		PackageType: input.PackageType,
		PackageName: input.PackageName,
		Price:       input.Price,
		CreatedAt:   time.Now().UTC(),
	}
	r.bookings = append(r.bookings, b)

	logger.Log.Infow("booking saved", "id", b.ID)
	return &b, nil
}

// List returns all bookings ordered by creation timestamp descending.
func (r *BookingRepository) List(ctx context.Context) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// ListRecent returns the limit most recent bookings, newest first.
func (r *BookingRepository) ListRecent(ctx context.Context, limit int) ([]models.Booking, error) {
	if limit <= 0 {
		return []models.Booking{}, nil
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

// BookingDBRepository stores bookings in PostgreSQL behind the same
// contract as BookingRepository.
type BookingDBRepository struct {
	db *sqlx.DB
}

// NewBookingDBRepository creates a booking repository backed by the given database.
func NewBookingDBRepository(db *sqlx.DB) *BookingDBRepository {
	return &BookingDBRepository{db: db}
}

// Save inserts the booking and returns the stored row.
func (r *BookingDBRepository) Save(ctx context.Context, input models.BookingCreate) (*models.Booking, error) {
	const query = `
		INSERT INTO bookings (id, name, email, phone, package_type, package_name, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, email, phone, package_type, package_name, price, created_at
	`
	args := []any{
		uuid.New().String(),
		input.Name, input.Email, input.Phone,
		input.PackageType, input.PackageName, input.Price,
		time.Now().UTC(),
	}

	var b models.Booking
	err := r.db.GetContext(ctx, &b, query, args...)

	logger.Log.Infow("booking insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &b, nil
}

// List returns all bookings ordered by creation timestamp descending.
func (r *BookingDBRepository) List(ctx context.Context) ([]models.Booking, error) {
	const query = `
		SELECT id, name, email, phone, package_type, package_name, price, created_at
		FROM bookings
		ORDER BY created_at DESC
	`
	bookings := []models.Booking{}
	err := r.db.SelectContext(ctx, &bookings, query)

	logger.Log.Infow("booking list",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(bookings),
		"error", err,
	)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return bookings, nil
}

// ListRecent returns the limit most recent bookings, newest first.
func (r *BookingDBRepository) ListRecent(ctx context.Context, limit int) ([]models.Booking, error) {
	if limit <= 0 {
		return []models.Booking{}, nil
	}

	const query = `
		SELECT id, name, email, phone, package_type, package_name, price, created_at
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1
	`
	bookings := []models.Booking{}
	err := r.db.SelectContext(ctx, &bookings, query, limit)

	logger.Log.Infow("booking recent",
		"query", strings.Join(strings.Fields(query), " "),
		"limit", limit,
		"error", err,
	)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return bookings, nil
}
