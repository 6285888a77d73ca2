package services

import (
	"context"
	"errors"

	"github.com/arpitastudio/studio-api/internal/logger"
	"github.com/arpitastudio/studio-api/internal/models"
)

// ErrInvalidPaymentData is returned when a payment payload is missing required fields.
var ErrInvalidPaymentData = errors.New("invalid payment data")

// PaymentSaver defines write operations for payment records.
type PaymentSaver interface {
	Save(ctx context.Context, input models.PaymentCreate) (*models.Payment, error)
}

// PaymentLister defines read operations for payment records.
type PaymentLister interface {
	List(ctx context.Context) ([]models.Payment, error)
	ListRecent(ctx context.Context, limit int) ([]models.Payment, error)
}

// PaymentService validates and stores payment records.
type PaymentService struct {
	saver  PaymentSaver
	lister PaymentLister
}

// NewPaymentService creates a new PaymentService instance.
func NewPaymentService(saver PaymentSaver, lister PaymentLister) *PaymentService {
	return &PaymentService{saver: saver, lister: lister}
}

// Create checks the required fields and stores the payment record.
// Amount must be a positive integer.
func (svc *PaymentService) Create(ctx context.Context, input models.PaymentCreate) (*models.Payment, error) {
	if input.OrderID == "" || input.Amount <= 0 ||
		input.CustomerName == "" || input.CustomerEmail == "" || input.Status == "" {
		logger.Log.Errorw("invalid payment payload", "order_id", input.OrderID)
		return nil, ErrInvalidPaymentData
	}
	return svc.saver.Save(ctx, input)
}

// List returns all payment records, newest first.
func (svc *PaymentService) List(ctx context.Context) ([]models.Payment, error) {
	return svc.lister.List(ctx)
}

// Recent returns the limit most recent payment records.
func (svc *PaymentService) Recent(ctx context.Context, limit int) ([]models.Payment, error) {
	return svc.lister.ListRecent(ctx, limit)
}
