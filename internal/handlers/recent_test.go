package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/arpitastudio/studio-api/internal/models"
)

func TestRecentBookingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockBookingLister(ctrl)
		mockSvc.EXPECT().
			Recent(gomock.Any(), 5).
			Return([]models.Booking{{ID: "b-3"}, {ID: "b-2"}}, nil)

		handler := NewRecentBookingsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/recent-bookings", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 200, rr.Code)

		var bookings []models.Booking
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &bookings))
		assert.Len(t, bookings, 2)
	})

	t.Run("store error", func(t *testing.T) {
		mockSvc := NewMockBookingLister(ctrl)
		mockSvc.EXPECT().
			Recent(gomock.Any(), 5).
			Return(nil, errors.New("store failure"))

		handler := NewRecentBookingsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/recent-bookings", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 500, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Failed to fetch recent bookings", resp.Error)
	})
}

func TestRecentContactsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockContactLister(ctrl)
		mockSvc.EXPECT().
			Recent(gomock.Any(), 5).
			Return([]models.Contact{{ID: "c-1"}}, nil)

		handler := NewRecentContactsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/recent-contacts", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 200, rr.Code)

		var contacts []models.Contact
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &contacts))
		assert.Len(t, contacts, 1)
	})

	t.Run("store error", func(t *testing.T) {
		mockSvc := NewMockContactLister(ctrl)
		mockSvc.EXPECT().
			Recent(gomock.Any(), 5).
			Return(nil, errors.New("store failure"))

		handler := NewRecentContactsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/recent-contacts", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 500, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Failed to fetch recent contacts", resp.Error)
	})
}

func TestRecentPaymentsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPaymentLister(ctrl)
	mockSvc.EXPECT().
		Recent(gomock.Any(), 5).
		Return([]models.Payment{{ID: "p-1"}}, nil)

	handler := NewRecentPaymentsHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/recent-payments", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 200, rr.Code)

	var payments []models.Payment
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payments))
	assert.Len(t, payments, 1)
}

func TestRecentDownloadsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDownloadLister(ctrl)
	mockSvc.EXPECT().
		Recent(gomock.Any(), 5).
		Return([]models.Download{}, nil)

	handler := NewRecentDownloadsHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/recent-downloads", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 200, rr.Code)

	var downloads []models.Download
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &downloads))
	assert.Empty(t, downloads)
}
