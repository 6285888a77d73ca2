package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arpitastudio/studio-api/internal/logger"
	"github.com/arpitastudio/studio-api/internal/models"
	"github.com/arpitastudio/studio-api/internal/services"
)

// BookingCreator defines the interface that the booking service must implement.
type BookingCreator interface {
	Create(ctx context.Context, input models.BookingCreate) (*models.Booking, error)
}

// BookingLister defines the read interface for bookings.
type BookingLister interface {
	List(ctx context.Context) ([]models.Booking, error)
	Recent(ctx context.Context, limit int) ([]models.Booking, error)
}

// NewCreateBookingHandler returns an HTTP handler that stores a booking.
// @Summary Create a booking
// @Description Validates the booking payload and stores it with a generated id and creation timestamp.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body models.BookingCreate true "Booking payload"
// @Success 200 {object} models.Booking "Created booking"
// @Failure 400 {object} handlers.ErrorResponse "Invalid booking data"
// @Router /api/bookings [post]
func NewCreateBookingHandler(svc BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req models.BookingCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid booking data"})
			return
		}

		booking, err := svc.Create(r.Context(), req)
		if err != nil {
			if errors.Is(err, services.ErrInvalidBookingData) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid booking data"})
				return
			}
			logger.Log.Errorw("failed to create booking", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid booking data"})
			return
		}

		json.NewEncoder(w).Encode(booking)
	}
}

// NewListBookingsHandler returns an HTTP handler that lists all bookings.
// @Summary List bookings
// @Tags bookings
// @Produce json
// @Success 200 {array} models.Booking "All bookings, newest first"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch bookings"
// @Router /api/bookings [get]
func NewListBookingsHandler(svc BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		bookings, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list bookings", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to fetch bookings"})
			return
		}

		json.NewEncoder(w).Encode(bookings)
	}
}
