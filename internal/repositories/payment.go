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

// PaymentRepository stores payment records in process memory.
type PaymentRepository struct {
	mu       sync.RWMutex
	payments []models.Payment
}

// NewPaymentRepository creates an empty in-memory payment repository.
func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

// Save assigns a fresh id and creation timestamp and stores the payment.
func (r *PaymentRepository) Save(ctx context.Context, input models.PaymentCreate) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := models.Payment{
		ID:            uuid.New().String(),
		OrderID:       input.OrderID,
		Amount:        input.Amount,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		Status:        input.Status,
		CreatedAt:     time.Now().UTC(),
	}
	r.payments = append(r.payments, p)

	logger.Log.Infow("payment saved", "id", p.ID, "order_id", p.OrderID)
	return &p, nil
}

// List returns all payments ordered by creation timestamp descending.
func (r *PaymentRepository) List(ctx context.Context) ([]models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Payment, len(r.payments))
	copy(out, r.payments)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// ListRecent returns the limit most recent payments, newest first.
func (r *PaymentRepository) ListRecent(ctx context.Context, limit int) ([]models.Payment, error) {
	if limit <= 0 {
		return []models.Payment{}, nil
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

// PaymentDBRepository stores payment records in PostgreSQL behind the
// same contract as PaymentRepository.
type PaymentDBRepository struct {
	db *sqlx.DB
}

// NewPaymentDBRepository creates a payment repository backed by the given database.
func NewPaymentDBRepository(db *sqlx.DB) *PaymentDBRepository {
	return &PaymentDBRepository{db: db}
}

// Save inserts the payment and returns the stored row.
func (r *PaymentDBRepository) Save(ctx context.Context, input models.PaymentCreate) (*models.Payment, error) {
	const query = `
		INSERT INTO payments (id, order_id, amount, customer_name, customer_email, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, order_id, amount, customer_name, customer_email, status, created_at
	`
	args := []any{
		uuid.New().String(),
		input.OrderID, input.Amount, input.CustomerName, input.CustomerEmail, input.Status,
		time.Now().UTC(),
	}

	var p models.Payment
	err := r.db.GetContext(ctx, &p, query, args...)

	logger.Log.Infow("payment insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all payments ordered by creation timestamp descending.
func (r *PaymentDBRepository) List(ctx context.Context) ([]models.Payment, error) {
	const query = `
		SELECT id, order_id, amount, customer_name, customer_email, status, created_at
		FROM payments
		ORDER BY created_at DESC
	`
	payments := []models.Payment{}
	err := r.db.SelectContext(ctx, &payments, query)

	logger.Log.Infow("payment list",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(payments),
		"error", err,
	)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return payments, nil
}

// ListRecent returns the limit most recent payments, newest first.
func (r *PaymentDBRepository) ListRecent(ctx context.Context, limit int) ([]models.Payment, error) {
	if limit <= 0 {
		return []models.Payment{}, nil
	}

	const query = `
		SELECT id, order_id, amount, customer_name, customer_email, status, created_at
		FROM payments
		ORDER BY created_at DESC
		LIMIT $1
	`
	payments := []models.Payment{}
	err := r.db.SelectContext(ctx, &payments, query, limit)

	logger.Log.Infow("payment recent",
		"query", strings.Join(strings.Fields(query), " "),
		"limit", limit,
		"error", err,
	)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return payments, nil
}
