package services

import (
	"context"
	"errors"

	"github.com/arpitastudio/studio-api/internal/logger"
	"github.com/arpitastudio/studio-api/internal/models"
)

// ErrInvalidBookingData is returned when a booking payload is missing required fields.
var ErrInvalidBookingData = errors.New("invalid booking data")

// BookingSaver defines write operations for bookings.
type BookingSaver interface {
	Save(ctx context.Context, input models.BookingCreate) (*models.Booking, error)
}

// BookingLister defines read operations for bookings.
type BookingLister interface {
	List(ctx context.Context) ([]models.Booking, error)
	ListRecent(ctx context.Context, limit int) ([]models.Booking, error)
}

// BookingService validates and stores bookings.
type BookingService struct {
	saver  BookingSaver
	lister BookingLister
}

// NewBookingService creates a new BookingService instance.
func NewBookingService(saver BookingSaver, lister BookingLister) *BookingService {
	return &BookingService{saver: saver, lister: lister}
}

// Create checks the required fields and stores the booking. The store is
// untouched when validation fails.
func (svc *BookingService) Create(ctx context.Context, input models.BookingCreate) (*models.Booking, error) {
	if input.Name == "" || input.Email == "" || input.Phone == "" ||
		input.PackageType == "" || input.PackageName == "" || input.Price == "" {
		logger.Log.Errorw("invalid booking payload", "email", input.Email)
		return nil, ErrInvalidBookingData
	}
	return svc.saver.Save(ctx, input)
}

// List returns all bookings, newest first.
func (svc *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	return svc.lister.List(ctx)
}

// Recent returns the limit most recent bookings.
func (svc *BookingService) Recent(ctx context.Context, limit int) ([]models.Booking, error) {
	return svc.lister.ListRecent(ctx, limit)
}
