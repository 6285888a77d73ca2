package services

import (
	"context"
	"errors"

	"github.com/arpitastudio/studio-api/internal/logger"
	"github.com/arpitastudio/studio-api/internal/models"
)

// ErrInvalidContactData is returned when a contact payload is missing required fields.
var ErrInvalidContactData = errors.New("invalid contact data")

// ContactSaver defines write operations for contact messages.
type ContactSaver interface {
	Save(ctx context.Context, input models.ContactCreate) (*models.Contact, error)
}

// ContactLister defines read operations for contact messages.
type ContactLister interface {
	List(ctx context.Context) ([]models.Contact, error)
	ListRecent(ctx context.Context, limit int) ([]models.Contact, error)
}

// ContactService validates and stores contact messages.
type ContactService struct {
	saver  ContactSaver
	lister ContactLister
}

// NewContactService creates a new ContactService instance.
func NewContactService(saver ContactSaver, lister ContactLister) *ContactService {
	return &ContactService{saver: saver, lister: lister}
}

// Create checks the required fields and stores the contact message.
func (svc *ContactService) Create(ctx context.Context, input models.ContactCreate) (*models.Contact, error) {
	if input.Name == "" || input.Email == "" || input.Phone == "" || input.Message == "" {
		logger.Log.Errorw("invalid contact payload", "email", input.Email)
		return nil, ErrInvalidContactData
	}
	return svc.saver.Save(ctx, input)
}

// List returns all contact messages, newest first.
func (svc *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	return svc.lister.List(ctx)
}

// Recent returns the limit most recent contact messages.
func (svc *ContactService) Recent(ctx context.Context, limit int) ([]models.Contact, error) {
	return svc.lister.ListRecent(ctx, limit)
}
