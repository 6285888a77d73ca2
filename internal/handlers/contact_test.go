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

func TestCreateContactHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	valid := models.ContactCreate{
		Name:    "Ravi Kumar",
		Email:   "ravi@example.com",
		Phone:   "+91 90000 00000",
		Message: "Interested in a portrait session",
	}

	tests := []struct {
		name         string
		mockSetup    func(m *MockContactCreator)
		expectedCode int
		expectedErr  string
		rawBody      bool
	}{
		{
			name: "success",
			mockSetup: func(m *MockContactCreator) {
				m.EXPECT().
					Create(gomock.Any(), valid).
					Return(&models.Contact{ID: "c-1", Name: valid.Name}, nil)
			},
			expectedCode: 200,
		},
		{
			name: "validation error",
			mockSetup: func(m *MockContactCreator) {
				m.EXPECT().
					Create(gomock.Any(), valid).
					Return(nil, services.ErrInvalidContactData)
			},
			expectedCode: 400,
			expectedErr:  "Invalid contact data",
		},
		{
			name: "store error",
			mockSetup: func(m *MockContactCreator) {
				m.EXPECT().
					Create(gomock.Any(), valid).
					Return(nil, errors.New("store failure"))
			},
			expectedCode: 400,
			expectedErr:  "Invalid contact data",
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedErr:  "Invalid contact data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockContactCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateContactHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(valid)
				req = httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
			} else {
				var contact models.Contact
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &contact))
				assert.Equal(t, "c-1", contact.ID)
			}
		})
	}
}
