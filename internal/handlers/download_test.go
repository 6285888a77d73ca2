package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/arpitastudio/studio-api/internal/models"
	"github.com/arpitastudio/studio-api/internal/services"
)

func TestCreateDownloadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	valid := models.DownloadCreate{
		ResourceName: "Wedding Checklist",
		UserEmail:    "asha@example.com",
		DownloadURL:  "https://cdn.example.com/wedding-checklist.pdf",
	}

	tests := []struct {
		name         string
		mockSetup    func(m *MockDownloadCreator)
		expectedCode int
		expectedErr  string
		rawBody      bool
	}{
		{
			name: "success",
			mockSetup: func(m *MockDownloadCreator) {
				m.EXPECT().
					Create(gomock.Any(), valid).
					Return(&models.Download{ID: "d-1", ResourceName: valid.ResourceName}, nil)
			},
			expectedCode: 200,
		},
		{
			name: "validation error",
			mockSetup: func(m *MockDownloadCreator) {
				m.EXPECT().
					Create(gomock.Any(), valid).
					Return(nil, services.ErrInvalidDownloadData)
			},
			expectedCode: 400,
			expectedErr:  "Invalid download data",
		},
		{
			name: "store error",
			mockSetup: func(m *MockDownloadCreator) {
				m.EXPECT().
					Create(gomock.Any(), valid).
					Return(nil, errors.New("store failure"))
			},
			expectedCode: 400,
			expectedErr:  "Invalid download data",
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedErr:  "Invalid download data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockDownloadCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateDownloadHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/api/downloads", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(valid)
				req = httptest.NewRequest(http.MethodPost, "/api/downloads", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
			} else {
				var download models.Download
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &download))
				assert.Equal(t, "d-1", download.ID)
			}
		})
	}
}
