package services

import (
	"context"
	"errors"

	"github.com/arpitastudio/studio-api/internal/logger"
	"github.com/arpitastudio/studio-api/internal/models"
)

// Error variables
var (
	ErrInvalidUserData = errors.New("invalid user data")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrUserNotFound    = errors.New("user not found")
)

// UserSaver defines write operations for users.
type UserSaver interface {
	Save(ctx context.Context, input models.UserCreate) (*models.User, error)
}

// UserReader defines read operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserService validates and stores users. Username uniqueness is
// enforced here, not by the repository, which stays a pure insert.
type UserService struct {
	saver  UserSaver
	reader UserReader
}

// NewUserService creates a new UserService instance.
func NewUserService(saver UserSaver, reader UserReader) *UserService {
	return &UserService{saver: saver, reader: reader}
}

// Create checks the required fields, rejects duplicate usernames, and
// stores the user.
func (svc *UserService) Create(ctx context.Context, input models.UserCreate) (*models.User, error) {
	if input.Username == "" || input.Password == "" {
		logger.Log.Errorw("invalid user payload", "username", input.Username)
		return nil, ErrInvalidUserData
	}

	existing, err := svc.reader.GetByUsername(ctx, input.Username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "username", input.Username, "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("username already taken", "username", input.Username)
		return nil, ErrUsernameTaken
	}

	return svc.saver.Save(ctx, input)
}

// Get returns the user with the given id.
func (svc *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetByUsername returns the first user with the given username.
func (svc *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user by username", "username", username, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
