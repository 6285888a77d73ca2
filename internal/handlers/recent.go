package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arpitastudio/studio-api/internal/logger"
)

// NewRecentBookingsHandler returns an HTTP handler for the dashboard's
// recent bookings window.
// @Summary Recent bookings
// @Tags admin
// @Produce json
// @Success 200 {array} models.Booking "Up to 5 most recent bookings"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch recent bookings"
// @Router /api/admin/recent-bookings [get]
func NewRecentBookingsHandler(svc BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		bookings, err := svc.Recent(r.Context(), recentWindow)
		if err != nil {
			logger.Log.Errorw("failed to list recent bookings", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to fetch recent bookings"})
			return
		}

		json.NewEncoder(w).Encode(bookings)
	}
}

// NewRecentContactsHandler returns an HTTP handler for the dashboard's
// recent contacts window.
// @Summary Recent contacts
// @Tags admin
// @Produce json
// @Success 200 {array} models.Contact "Up to 5 most recent contacts"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch recent contacts"
// @Router /api/admin/recent-contacts [get]
func NewRecentContactsHandler(svc ContactLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		contacts, err := svc.Recent(r.Context(), recentWindow)
		if err != nil {
			logger.Log.Errorw("failed to list recent contacts", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to fetch recent contacts"})
			return
		}

		json.NewEncoder(w).Encode(contacts)
	}
}

// NewRecentPaymentsHandler returns an HTTP handler for the dashboard's
// recent payments window.
// @Summary Recent payments
// @Tags admin
// @Produce json
// @Success 200 {array} models.Payment "Up to 5 most recent payments"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch recent payments"
// @Router /api/admin/recent-payments [get]
func NewRecentPaymentsHandler(svc PaymentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		payments, err := svc.Recent(r.Context(), recentWindow)
		if err != nil {
			logger.Log.Errorw("failed to list recent payments", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to fetch recent payments"})
			return
		}

		json.NewEncoder(w).Encode(payments)
	}
}

// NewRecentDownloadsHandler returns an HTTP handler for the dashboard's
// recent downloads window.
// @Summary Recent downloads
// @Tags admin
// @Produce json
// @Success 200 {array} models.Download "Up to 5 most recent downloads"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch recent downloads"
// @Router /api/admin/recent-downloads [get]
func NewRecentDownloadsHandler(svc DownloadLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		downloads, err := svc.Recent(r.Context(), recentWindow)
		if err != nil {
			logger.Log.Errorw("failed to list recent downloads", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to fetch recent downloads"})
			return
		}

		json.NewEncoder(w).Encode(downloads)
	}
}
