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

func TestCreatePaymentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	valid := models.PaymentCreate{
		OrderID:       "order_123",
		Amount:        45000,
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		Status:        "completed",
	}

	tests := []struct {
		name         string
		mockSetup    func(m *MockPaymentCreator)
		expectedCode int
		expectedErr  string
		rawBody      bool
	}{
		{
			name: "success",
			mockSetup: func(m *MockPaymentCreator) {
				m.EXPECT().
					Create(gomock.Any(), valid).
					Return(&models.Payment{ID: "p-1", OrderID: valid.OrderID}, nil)
			},
			expectedCode: 200,
		},
		{
			name: "validation error",
			mockSetup: func(m *MockPaymentCreator) {
				m.EXPECT().
					Create(gomock.Any(), valid).
					Return(nil, services.ErrInvalidPaymentData)
			},
			expectedCode: 400,
			expectedErr:  "Invalid payment data",
		},
		{
			name: "store error",
			mockSetup: func(m *MockPaymentCreator) {
				m.EXPECT().
					Create(gomock.Any(), valid).
					Return(nil, errors.New("store failure"))
			},
			expectedCode: 400,
			expectedErr:  "Invalid payment data",
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedErr:  "Invalid payment data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPaymentCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreatePaymentHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(valid)
				req = httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
			} else {
				var payment models.Payment
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payment))
				assert.Equal(t, "p-1", payment.ID)
			}
		})
	}
}
