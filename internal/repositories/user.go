package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/arpitastudio/studio-api/internal/logger"
	"github.com/arpitastudio/studio-api/internal/models"
)

// UserRepository stores users in process memory. Save is a pure insert:
// the repository itself does not reject duplicate usernames, callers are
// expected to check GetByUsername first.
type UserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Save assigns a fresh id and stores the user.
func (r *UserRepository) Save(ctx context.Context, input models.UserCreate) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := models.User{
		ID:       uuid.New().String(),
		Username: input.Username,
		Password: input.Password,
	}
	r.users = append(r.users, u)

	logger.Log.Infow("user saved", "id", u.ID, "username", u.Username)
	return &u, nil
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// GetByUsername scans all users and returns the first match, or nil
// when absent.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Username == username {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// UserDBRepository stores users in PostgreSQL behind the same contract
// as UserRepository.
type UserDBRepository struct {
	db *sqlx.DB
}

// NewUserDBRepository creates a user repository backed by the given database.
func NewUserDBRepository(db *sqlx.DB) *UserDBRepository {
	return &UserDBRepository{db: db}
}

// Save inserts the user and returns the stored row.
func (r *UserDBRepository) Save(ctx context.Context, input models.UserCreate) (*models.User, error) {
	const query = `
		INSERT INTO users (id, username, password)
		VALUES ($1, $2, $3)
		RETURNING id, username, password
	`
	args := []any{uuid.New().String(), input.Username, input.Password}

	var u models.User
	err := r.db.GetContext(ctx, &u, query, args...)

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"username", input.Username,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserDBRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	const query = `SELECT id, username, password FROM users WHERE id = $1`

	var u models.User
	err := r.db.GetContext(ctx, &u, query, id)

	logger.Log.Infow("user get", "query", query, "id", id, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByUsername returns the first user with the given username, or nil
// when absent.
func (r *UserDBRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `SELECT id, username, password FROM users WHERE username = $1 LIMIT 1`

	var u models.User
	err := r.db.GetContext(ctx, &u, query, username)

	logger.Log.Infow("user get by username", "query", query, "username", username, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
