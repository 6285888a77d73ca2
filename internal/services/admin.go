package services

import (
	"context"

	"github.com/arpitastudio/studio-api/internal/logger"
	"github.com/arpitastudio/studio-api/internal/models"
)

// StatusCompleted is the payment status counted by the dashboard stats.
const StatusCompleted = "completed"

// BlogPostLister defines the read surface the dashboard needs from blog posts.
type BlogPostLister interface {
	List(ctx context.Context) ([]models.BlogPost, error)
}

// AdminService derives dashboard stats and combined exports from the
// primary collections. Nothing is cached: every call fetches the full
// collections and recomputes.
type AdminService struct {
	bookings  BookingLister
	contacts  ContactLister
	payments  PaymentLister
	downloads DownloadLister
	posts     BlogPostLister
}

// NewAdminService creates a new AdminService instance.
func NewAdminService(
	bookings BookingLister,
	contacts ContactLister,
	payments PaymentLister,
	downloads DownloadLister,
	posts BlogPostLister,
) *AdminService {
	return &AdminService{
		bookings:  bookings,
		contacts:  contacts,
		payments:  payments,
		downloads: downloads,
		posts:     posts,
	}
}

// Stats computes the dashboard counters. Pending has no backing state
// and stays zero.
func (svc *AdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	bookings, err := svc.bookings.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list bookings for stats", "err", err)
		return nil, err
	}
	contacts, err := svc.contacts.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list contacts for stats", "err", err)
		return nil, err
	}
	payments, err := svc.payments.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list payments for stats", "err", err)
		return nil, err
	}
	downloads, err := svc.downloads.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list downloads for stats", "err", err)
		return nil, err
	}
	posts, err := svc.posts.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list blog posts for stats", "err", err)
		return nil, err
	}

	published := 0
	for _, p := range posts {
		if p.Published {
			published++
		}
	}
	completed := 0
	for _, p := range payments {
		if p.Status == StatusCompleted {
			completed++
		}
	}

	return &models.AdminStats{
		Bookings:     len(bookings),
		Contacts:     len(contacts),
		Payments:     len(payments),
		Downloads:    len(downloads),
		BlogPosts:    published,
		Pending:      0,
		Contacted:    len(contacts),
		Completed:    completed,
		TotalRecords: len(bookings) + len(contacts) + len(payments) + len(downloads),
	}, nil
}

// ExportAll returns the four primary collections together. Users and
// blog posts are excluded from the combined export.
func (svc *AdminService) ExportAll(ctx context.Context) (*models.ExportAll, error) {
	bookings, err := svc.bookings.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to export bookings", "err", err)
		return nil, err
	}
	contacts, err := svc.contacts.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to export contacts", "err", err)
		return nil, err
	}
	payments, err := svc.payments.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to export payments", "err", err)
		return nil, err
	}
	downloads, err := svc.downloads.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to export downloads", "err", err)
		return nil, err
	}

	return &models.ExportAll{
		Bookings:  bookings,
		Contacts:  contacts,
		Payments:  payments,
		Downloads: downloads,
	}, nil
}
