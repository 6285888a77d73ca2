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

// ContactRepository stores contact messages in process memory.
type ContactRepository struct {
	mu       sync.RWMutex
	contacts []models.Contact
}

// NewContactRepository creates an empty in-memory contact repository.
func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

// Save assigns a fresh id and creation timestamp and stores the contact.
func (r *ContactRepository) Save(ctx context.Context, input models.ContactCreate) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := models.Contact{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}
	r.contacts = append(r.contacts, c)

	logger.Log.Infow("contact saved", "id", c.ID)
	return &c, nil
}

// List returns all contacts ordered by creation timestamp descending.
func (r *ContactRepository) List(ctx context.Context) ([]models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Contact, len(r.contacts))
	copy(out, r.contacts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// ListRecent returns the limit most recent contacts, newest first.
func (r *ContactRepository) ListRecent(ctx context.Context, limit int) ([]models.Contact, error) {
	if limit <= 0 {
		return []models.Contact{}, nil
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

// ContactDBRepository stores contact messages in PostgreSQL behind the
// same contract as ContactRepository.
type ContactDBRepository struct {
	db *sqlx.DB
}

// NewContactDBRepository creates a contact repository backed by the given database.
func NewContactDBRepository(db *sqlx.DB) *ContactDBRepository {
	return &ContactDBRepository{db: db}
}

// Save inserts the contact and returns the stored row.
func (r *ContactDBRepository) Save(ctx context.Context, input models.ContactCreate) (*models.Contact, error) {
	const query = `
		INSERT INTO contacts (id, name, email, phone, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, email, phone, message, created_at
	`
	args := []any{
		uuid.New().String(),
		input.Name, input.Email, input.Phone, input.Message,
		time.Now().UTC(),
	}

	var c models.Contact
	err := r.db.GetContext(ctx, &c, query, args...)

	logger.Log.Infow("contact insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all contacts ordered by creation timestamp descending.
func (r *ContactDBRepository) List(ctx context.Context) ([]models.Contact, error) {
	const query = `
		SELECT id, name, email, phone, message, created_at
		FROM contacts
		ORDER BY created_at DESC
	`
	contacts := []models.Contact{}
	err := r.db.SelectContext(ctx, &contacts, query)

	logger.Log.Infow("contact list",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(contacts),
		"error", err,
	)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return contacts, nil
}

// ListRecent returns the limit most recent contacts, newest first.
func (r *ContactDBRepository) ListRecent(ctx context.Context, limit int) ([]models.Contact, error) {
	if limit <= 0 {
		return []models.Contact{}, nil
	}

	const query = `
		SELECT id, name, email, phone, message, created_at
		FROM contacts
		ORDER BY created_at DESC
		LIMIT $1
	`
	contacts := []models.Contact{}
	err := r.db.SelectContext(ctx, &contacts, query, limit)

	logger.Log.Infow("contact recent",
		"query", strings.Join(strings.Fields(query), " "),
		"limit", limit,
		"error", err,
	)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return contacts, nil
}
