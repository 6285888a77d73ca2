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

func TestExportBookingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockBookingLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any()).
			Return([]models.Booking{{ID: "b-1"}}, nil)

		handler := NewExportBookingsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/export/bookings", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 200, rr.Code)

		var bookings []models.Booking
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &bookings))
		assert.Len(t, bookings, 1)
	})

	t.Run("store error", func(t *testing.T) {
		mockSvc := NewMockBookingLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any()).
			Return(nil, errors.New("store failure"))

		handler := NewExportBookingsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/export/bookings", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 500, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Failed to export bookings", resp.Error)
	})
}

func TestExportContactsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockContactLister(ctrl)
	mockSvc.EXPECT().
		List(gomock.Any()).
		Return([]models.Contact{{ID: "c-1"}, {ID: "c-2"}}, nil)

	handler := NewExportContactsHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/export/contacts", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 200, rr.Code)

	var contacts []models.Contact
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &contacts))
	assert.Len(t, contacts, 2)
}

func TestExportPaymentsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPaymentLister(ctrl)
	mockSvc.EXPECT().
		List(gomock.Any()).
		Return(nil, errors.New("store failure"))

	handler := NewExportPaymentsHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/export/payments", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 500, rr.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to export payments", resp.Error)
}

func TestExportDownloadsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDownloadLister(ctrl)
	mockSvc.EXPECT().
		List(gomock.Any()).
		Return([]models.Download{{ID: "d-1"}}, nil)

	handler := NewExportDownloadsHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/export/downloads", nil)
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, 200, rr.Code)

	var downloads []models.Download
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &downloads))
	assert.Len(t, downloads, 1)
}

func TestExportAllHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockAllExporter)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			mockSetup: func(m *MockAllExporter) {
				m.EXPECT().
					ExportAll(gomock.Any()).
					Return(&models.ExportAll{
						Bookings:  []models.Booking{{ID: "b-1"}},
						Contacts:  []models.Contact{},
						Payments:  []models.Payment{{ID: "p-1"}},
						Downloads: []models.Download{},
					}, nil)
			},
			expectedCode: 200,
		},
		{
			name: "store error",
			mockSetup: func(m *MockAllExporter) {
				m.EXPECT().
					ExportAll(gomock.Any()).
					Return(nil, errors.New("store failure"))
			},
			expectedCode: 500,
			expectedErr:  "Failed to export all data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAllExporter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewExportAllHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/export/all", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
			} else {
				var export models.ExportAll
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &export))
				assert.Len(t, export.Bookings, 1)
				assert.Len(t, export.Payments, 1)
			}
		})
	}
}
