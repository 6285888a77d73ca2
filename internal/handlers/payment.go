package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/arpitastudio/studio-api/internal/logger"
	"github.com/arpitastudio/studio-api/internal/models"
)

// PaymentCreator defines the interface that the payment service must implement.
type PaymentCreator interface {
	Create(ctx context.Context, input models.PaymentCreate) (*models.Payment, error)
}

// PaymentLister defines the read interface for payment records.
type PaymentLister interface {
	List(ctx context.Context) ([]models.Payment, error)
	Recent(ctx context.Context, limit int) ([]models.Payment, error)
}

// NewCreatePaymentHandler returns an HTTP handler that stores a payment record.
// @Summary Record a payment
// @Description Validates the payment payload and stores it with a generated id and creation timestamp.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body models.PaymentCreate true "Payment payload"
// @Success 200 {object} models.Payment "Created payment"
// @Failure 400 {object} handlers.ErrorResponse "Invalid payment data"
// @Router /api/payments [post]
func NewCreatePaymentHandler(svc PaymentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req models.PaymentCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid payment data"})
			return
		}

		payment, err := svc.Create(r.Context(), req)
		if err != nil {
			logger.Log.Errorw("failed to create payment", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid payment data"})
			return
		}

		json.NewEncoder(w).Encode(payment)
	}
}
