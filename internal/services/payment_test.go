package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/arpitastudio/studio-api/internal/models"
	"github.com/arpitastudio/studio-api/internal/services"
)

func TestPaymentService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaver := services.NewMockPaymentSaver(ctrl)
	mockLister := services.NewMockPaymentLister(ctrl)

	svc := services.NewPaymentService(mockSaver, mockLister)

	valid := models.PaymentCreate{
		OrderID:       "order_123",
		Amount:        45000,
		CustomerName:  "Asha Rao",
		CustomerEmail: "asha@example.com",
		Status:        "completed",
	}

	tests := []struct {
		name     string
		mutate   func(*models.PaymentCreate)
		saverErr error
		wantErr  error
	}{
		{
			name:   "successful create",
			mutate: func(p *models.PaymentCreate) {},
		},
		{
			name:    "missing order id",
			mutate:  func(p *models.PaymentCreate) { p.OrderID = "" },
			wantErr: services.ErrInvalidPaymentData,
		},
		{
			name:    "zero amount",
			mutate:  func(p *models.PaymentCreate) { p.Amount = 0 },
			wantErr: services.ErrInvalidPaymentData,
		},
		{
			name:    "negative amount",
			mutate:  func(p *models.PaymentCreate) { p.Amount = -100 },
			wantErr: services.ErrInvalidPaymentData,
		},
		{
			name:    "missing customer name",
			mutate:  func(p *models.PaymentCreate) { p.CustomerName = "" },
			wantErr: services.ErrInvalidPaymentData,
		},
		{
			name:    "missing customer email",
			mutate:  func(p *models.PaymentCreate) { p.CustomerEmail = "" },
			wantErr: services.ErrInvalidPaymentData,
		},
		{
			name:    "missing status",
			mutate:  func(p *models.PaymentCreate) { p.Status = "" },
			wantErr: services.ErrInvalidPaymentData,
		},
		{
			name:     "saver error",
			mutate:   func(p *models.PaymentCreate) {},
			saverErr: errors.New("store error"),
			wantErr:  errors.New("store error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			if tt.wantErr == nil || tt.saverErr != nil {
				var saved *models.Payment
				if tt.saverErr == nil {
					saved = &models.Payment{ID: "p-1", OrderID: input.OrderID}
				}
				mockSaver.EXPECT().
					Save(gomock.Any(), input).
					Return(saved, tt.saverErr)
			}

			payment, err := svc.Create(context.Background(), input)
			if tt.wantErr != nil {
				assert.Nil(t, payment)
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "p-1", payment.ID)
			}
		})
	}
}

func TestPaymentService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaver := services.NewMockPaymentSaver(ctrl)
	mockLister := services.NewMockPaymentLister(ctrl)

	svc := services.NewPaymentService(mockSaver, mockLister)

	want := []models.Payment{{ID: "p-2"}, {ID: "p-1"}}
	mockLister.EXPECT().List(gomock.Any()).Return(want, nil)

	got, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
