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

func TestStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockStatser)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			mockSetup: func(m *MockStatser) {
				m.EXPECT().
					Stats(gomock.Any()).
					Return(&models.AdminStats{
						Bookings:     3,
						Contacts:     2,
						Payments:     4,
						Downloads:    1,
						BlogPosts:    2,
						Contacted:    2,
						Completed:    2,
						TotalRecords: 10,
					}, nil)
			},
			expectedCode: 200,
		},
		{
			name: "store error",
			mockSetup: func(m *MockStatser) {
				m.EXPECT().
					Stats(gomock.Any()).
					Return(nil, errors.New("store failure"))
			},
			expectedCode: 500,
			expectedErr:  "Failed to fetch stats",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockStatser(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewStatsHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
			} else {
				var stats models.AdminStats
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
				assert.Equal(t, 10, stats.TotalRecords)
				assert.Zero(t, stats.Pending)
			}
		})
	}
}
