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

func TestContactService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaver := services.NewMockContactSaver(ctrl)
	mockLister := services.NewMockContactLister(ctrl)

	svc := services.NewContactService(mockSaver, mockLister)

	valid := models.ContactCreate{
		Name:    "Ravi Kumar",
		Email:   "ravi@example.com",
		Phone:   "+91 90000 00000",
		Message: "Interested in a portrait session",
	}

	tests := []struct {
		name     string
		input    models.ContactCreate
		saverErr error
		wantErr  error
	}{
		{
			name:  "successful create",
			input: valid,
		},
		{
			name:    "missing name",
			input:   models.ContactCreate{Email: valid.Email, Phone: valid.Phone, Message: valid.Message},
			wantErr: services.ErrInvalidContactData,
		},
		{
			name:    "missing email",
			input:   models.ContactCreate{Name: valid.Name, Phone: valid.Phone, Message: valid.Message},
			wantErr: services.ErrInvalidContactData,
		},
		{
			name:    "missing phone",
			input:   models.ContactCreate{Name: valid.Name, Email: valid.Email, Message: valid.Message},
			wantErr: services.ErrInvalidContactData,
		},
		{
			name:    "missing message",
			input:   models.ContactCreate{Name: valid.Name, Email: valid.Email, Phone: valid.Phone},
			wantErr: services.ErrInvalidContactData,
		},
		{
			name:     "saver error",
			input:    valid,
			saverErr: errors.New("store error"),
			wantErr:  errors.New("store error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr == nil || tt.saverErr != nil {
				var saved *models.Contact
				if tt.saverErr == nil {
					saved = &models.Contact{ID: "c-1", Name: tt.input.Name}
				}
				mockSaver.EXPECT().
					Save(gomock.Any(), tt.input).
					Return(saved, tt.saverErr)
			}

			contact, err := svc.Create(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.Nil(t, contact)
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "c-1", contact.ID)
			}
		})
	}
}

func TestContactService_Recent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaver := services.NewMockContactSaver(ctrl)
	mockLister := services.NewMockContactLister(ctrl)

	svc := services.NewContactService(mockSaver, mockLister)

	want := []models.Contact{{ID: "c-9"}, {ID: "c-8"}}
	mockLister.EXPECT().ListRecent(gomock.Any(), 5).Return(want, nil)

	got, err := svc.Recent(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}
