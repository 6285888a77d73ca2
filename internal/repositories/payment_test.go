package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arpitastudio/studio-api/internal/models"
)

func TestPaymentRepository_SaveAndList(t *testing.T) {
	repo := NewPaymentRepository()
	ctx := context.Background()

	first, err := repo.Save(ctx, models.PaymentCreate{
		OrderID: "order_1", Amount: 45000,
		CustomerName: "Asha Rao", CustomerEmail: "asha@example.com", Status: "completed",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, 45000, first.Amount)

	time.Sleep(5 * time.Millisecond)

	second, err := repo.Save(ctx, models.PaymentCreate{
		OrderID: "order_2", Amount: 5000,
		CustomerName: "Ravi Kumar", CustomerEmail: "ravi@example.com", Status: "created",
	})
	assert.NoError(t, err)

	all, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
}

func TestPaymentRepository_ListRecent(t *testing.T) {
	repo := NewPaymentRepository()
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		_, err := repo.Save(ctx, models.PaymentCreate{
			OrderID: "o", Amount: 1, CustomerName: "n", CustomerEmail: "e", Status: "created",
		})
		assert.NoError(t, err)
	}

	recent, err := repo.ListRecent(ctx, 5)
	assert.NoError(t, err)
	assert.Len(t, recent, 5)

	none, err := repo.ListRecent(ctx, -1)
	assert.NoError(t, err)
	assert.Empty(t, none)
}
