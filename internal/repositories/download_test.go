package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arpitastudio/studio-api/internal/models"
)

func TestDownloadRepository_SaveAndList(t *testing.T) {
	repo := NewDownloadRepository()
	ctx := context.Background()

	first, err := repo.Save(ctx, models.DownloadCreate{
		ResourceName: "Wedding Checklist",
		UserEmail:    "asha@example.com",
		DownloadURL:  "https://cdn.example.com/wedding-checklist.pdf",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	time.Sleep(5 * time.Millisecond)

	second, err := repo.Save(ctx, models.DownloadCreate{
		ResourceName: "Pricing Guide",
		UserEmail:    "ravi@example.com",
		DownloadURL:  "https://cdn.example.com/pricing-guide.pdf",
	})
	assert.NoError(t, err)

	all, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, "Pricing Guide", all[0].ResourceName)
}

func TestDownloadRepository_ListRecent(t *testing.T) {
	repo := NewDownloadRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, models.DownloadCreate{
		ResourceName: "r", UserEmail: "e", DownloadURL: "u",
	})
	assert.NoError(t, err)

	recent, err := repo.ListRecent(ctx, 5)
	assert.NoError(t, err)
	assert.Len(t, recent, 1)

	none, err := repo.ListRecent(ctx, 0)
	assert.NoError(t, err)
	assert.Empty(t, none)
}
