package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/arpitastudio/studio-api/internal/logger"
	"github.com/arpitastudio/studio-api/internal/models"
)

// ContactCreator defines the interface that the contact service must implement.
type ContactCreator interface {
	Create(ctx context.Context, input models.ContactCreate) (*models.Contact, error)
}

// ContactLister defines the read interface for contact messages.
type ContactLister interface {
	List(ctx context.Context) ([]models.Contact, error)
	Recent(ctx context.Context, limit int) ([]models.Contact, error)
}

// NewCreateContactHandler returns an HTTP handler that stores a contact message.
// @Summary Submit a contact message
// @Description Validates the contact payload and stores it with a generated id and creation timestamp.
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body models.ContactCreate true "Contact payload"
// @Success 200 {object} models.Contact "Created contact"
// @Failure 400 {object} handlers.ErrorResponse "Invalid contact data"
// @Router /api/contact [post]
func NewCreateContactHandler(svc ContactCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req models.ContactCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid contact data"})
			return
		}

		contact, err := svc.Create(r.Context(), req)
		if err != nil {
			logger.Log.Errorw("failed to create contact", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid contact data"})
			return
		}

		json.NewEncoder(w).Encode(contact)
	}
}
