package services

import (
	"context"
	"errors"

	"github.com/arpitastudio/studio-api/internal/logger"
	"github.com/arpitastudio/studio-api/internal/models"
)

// Error variables
var (
	ErrInvalidBlogPostData = errors.New("invalid blog post data")
	ErrBlogPostNotFound    = errors.New("blog post not found")
)

// BlogPostSaver defines write operations for blog posts.
type BlogPostSaver interface {
	Save(ctx context.Context, input models.BlogPostCreate) (*models.BlogPost, error)
}

// BlogPostReader defines read operations for blog posts.
type BlogPostReader interface {
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	List(ctx context.Context) ([]models.BlogPost, error)
}

// BlogPostUpdater defines partial-update operations for blog posts.
type BlogPostUpdater interface {
	Update(ctx context.Context, id string, partial models.BlogPostUpdate) (*models.BlogPost, error)
}

// BlogPostDeleter defines delete operations for blog posts.
type BlogPostDeleter interface {
	Delete(ctx context.Context, id string) (bool, error)
}

// BlogService handles the full blog post CRUD surface.
type BlogService struct {
	saver   BlogPostSaver
	reader  BlogPostReader
	updater BlogPostUpdater
	deleter BlogPostDeleter
}

// NewBlogService creates a new BlogService instance.
func NewBlogService(saver BlogPostSaver, reader BlogPostReader, updater BlogPostUpdater, deleter BlogPostDeleter) *BlogService {
	return &BlogService{
		saver:   saver,
		reader:  reader,
		updater: updater,
		deleter: deleter,
	}
}

// Create checks the required fields and stores the post.
func (svc *BlogService) Create(ctx context.Context, input models.BlogPostCreate) (*models.BlogPost, error) {
	if input.Title == "" || input.Category == "" || input.Content == "" {
		logger.Log.Errorw("invalid blog post payload", "title", input.Title)
		return nil, ErrInvalidBlogPostData
	}
	return svc.saver.Save(ctx, input)
}

// List returns all posts, newest first.
func (svc *BlogService) List(ctx context.Context) ([]models.BlogPost, error) {
	return svc.reader.List(ctx)
}

// Get returns the post with the given id.
func (svc *BlogService) Get(ctx context.Context, id string) (*models.BlogPost, error) {
	post, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get blog post", "id", id, "err", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrBlogPostNotFound
	}
	return post, nil
}

// Update merges the partial fields into the post with the given id. An
// all-nil partial is accepted and still refreshes the update timestamp.
func (svc *BlogService) Update(ctx context.Context, id string, partial models.BlogPostUpdate) (*models.BlogPost, error) {
	post, err := svc.updater.Update(ctx, id, partial)
	if err != nil {
		logger.Log.Errorw("failed to update blog post", "id", id, "err", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrBlogPostNotFound
	}
	return post, nil
}

// Delete removes the post with the given id.
func (svc *BlogService) Delete(ctx context.Context, id string) error {
	ok, err := svc.deleter.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete blog post", "id", id, "err", err)
		return err
	}
	if !ok {
		return ErrBlogPostNotFound
	}
	return nil
}
