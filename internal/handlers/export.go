package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/arpitastudio/studio-api/internal/logger"
	"github.com/arpitastudio/studio-api/internal/models"
)

// AllExporter defines the interface for the combined export.
type AllExporter interface {
	ExportAll(ctx context.Context) (*models.ExportAll, error)
}

// NewExportBookingsHandler returns an HTTP handler exporting all bookings.
// @Summary Export bookings
// @Tags admin
// @Produce json
// @Success 200 {array} models.Booking "Full bookings collection"
// @Failure 500 {object} handlers.ErrorResponse "Failed to export bookings"
// @Router /api/admin/export/bookings [get]
func NewExportBookingsHandler(svc BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		bookings, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to export bookings", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to export bookings"})
			return
		}

		json.NewEncoder(w).Encode(bookings)
	}
}

// NewExportContactsHandler returns an HTTP handler exporting all contacts.
// @Summary Export contacts
// @Tags admin
// @Produce json
// @Success 200 {array} models.Contact "Full contacts collection"
// @Failure 500 {object} handlers.ErrorResponse "Failed to export contacts"
// @Router /api/admin/export/contacts [get]
func NewExportContactsHandler(svc ContactLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		contacts, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to export contacts", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to export contacts"})
			return
		}

		json.NewEncoder(w).Encode(contacts)
	}
}

// NewExportPaymentsHandler returns an HTTP handler exporting all payments.
// @Summary Export payments
// @Tags admin
// @Produce json
// @Success 200 {array} models.Payment "Full payments collection"
// @Failure 500 {object} handlers.ErrorResponse "Failed to export payments"
// @Router /api/admin/export/payments [get]
func NewExportPaymentsHandler(svc PaymentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		payments, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to export payments", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to export payments"})
			return
		}

		json.NewEncoder(w).Encode(payments)
	}
}

// NewExportDownloadsHandler returns an HTTP handler exporting all downloads.
// @Summary Export downloads
// @Tags admin
// @Produce json
// @Success 200 {array} models.Download "Full downloads collection"
// @Failure 500 {object} handlers.ErrorResponse "Failed to export downloads"
// @Router /api/admin/export/downloads [get]
func NewExportDownloadsHandler(svc DownloadLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		downloads, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to export downloads", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to export downloads"})
			return
		}

		json.NewEncoder(w).Encode(downloads)
	}
}

// NewExportAllHandler returns an HTTP handler for the combined export of
// the four primary collections.
// @Summary Export all collections
// @Tags admin
// @Produce json
// @Success 200 {object} models.ExportAll "Bookings, contacts, payments and downloads"
// @Failure 500 {object} handlers.ErrorResponse "Failed to export all data"
// @Router /api/admin/export/all [get]
func NewExportAllHandler(svc AllExporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		export, err := svc.ExportAll(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to export all data", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to export all data"})
			return
		}

		json.NewEncoder(w).Encode(export)
	}
}
