package repositories

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/arpitastudio/studio-api/internal/logger"
	"github.com/arpitastudio/studio-api/internal/models"
)

// BlogPostRepository stores blog posts in process memory. Unlike the
// append-only collections, posts support partial update and deletion.
type BlogPostRepository struct {
	mu    sync.RWMutex
	posts []models.BlogPost
}

// NewBlogPostRepository creates an empty in-memory blog post repository.
func NewBlogPostRepository() *BlogPostRepository {
	return &BlogPostRepository{}
}

// Save assigns a fresh id and timestamps and stores the post.
// ImageURL defaults to null and Published to false when omitted.
func (r *BlogPostRepository) Save(ctx context.Context, input models.BlogPostCreate) (*models.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	p := models.BlogPost{
		ID:        uuid.New().String(),
		Title:     input.Title,
		Category:  input.Category,
		Content:   input.Content,
		ImageURL:  input.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Published != nil {
		p.Published = *input.Published
	}
	r.posts = append(r.posts, p)

	logger.Log.Infow("blog post saved", "id", p.ID)
	return &p, nil
}

// GetByID returns the post with the given id, or nil when absent.
func (r *BlogPostRepository) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.posts {
		if r.posts[i].ID == id {
			p := r.posts[i]
			return &p, nil
		}
	}
	return nil, nil
}

// List returns all posts ordered by creation timestamp descending.
func (r *BlogPostRepository) List(ctx context.Context) ([]models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.BlogPost, len(r.posts))
	copy(out, r.posts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Update merges the non-nil fields of partial into the stored post and
// refreshes the update timestamp. Returns nil when the id is absent.
func (r *BlogPostRepository) Update(ctx context.Context, id string, partial models.BlogPostUpdate) (*models.BlogPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID != id {
			continue
		}
		p := &r.posts[i]
		if partial.Title != nil {
			p.Title = *partial.Title
		}
		if partial.Category != nil {
			p.Category = *partial.Category
		}
		if partial.Content != nil {
			p.Content = *partial.Content
		}
		if partial.ImageURL != nil {
			p.ImageURL = partial.ImageURL
		}
		if partial.Published != nil {
			p.Published = *partial.Published
		}
		p.UpdatedAt = time.Now().UTC()

		logger.Log.Infow("blog post updated", "id", id)
		out := *p
		return &out, nil
	}
	return nil, nil
}

// Delete removes the post with the given id and reports whether a post
// was removed. A repeated delete returns false, never an error.
func (r *BlogPostRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			logger.Log.Infow("blog post deleted", "id", id)
			return true, nil
		}
	}
	return false, nil
}

// BlogPostDBRepository stores blog posts in PostgreSQL behind the same
// contract as BlogPostRepository.
type BlogPostDBRepository struct {
	db *sqlx.DB
}

// NewBlogPostDBRepository creates a blog post repository backed by the given database.
func NewBlogPostDBRepository(db *sqlx.DB) *BlogPostDBRepository {
	return &BlogPostDBRepository{db: db}
}

// Save inserts the post and returns the stored row.
func (r *BlogPostDBRepository) Save(ctx context.Context, input models.BlogPostCreate) (*models.BlogPost, error) {
	const query = `
		INSERT INTO blog_posts (id, title, category, content, image_url, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id, title, category, content, image_url, published, created_at, updated_at
	`
	published := false
	if input.Published != nil {
		published = *input.Published
	}
	args := []any{
		uuid.New().String(),
		input.Title, input.Category, input.Content, input.ImageURL, published,
		time.Now().UTC(),
	}

	var p models.BlogPost
	err := r.db.GetContext(ctx, &p, query, args...)

	logger.Log.Infow("blog post insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID returns the post with the given id, or nil when absent.
func (r *BlogPostDBRepository) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	const query = `
		SELECT id, title, category, content, image_url, published, created_at, updated_at
		FROM blog_posts
		WHERE id = $1
	`
	var p models.BlogPost
	err := r.db.GetContext(ctx, &p, query, id)

	logger.Log.Infow("blog post get",
		"query", strings.Join(strings.Fields(query), " "),
		"id", id,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all posts ordered by creation timestamp descending.
func (r *BlogPostDBRepository) List(ctx context.Context) ([]models.BlogPost, error) {
	const query = `
		SELECT id, title, category, content, image_url, published, created_at, updated_at
		FROM blog_posts
		ORDER BY created_at DESC
	`
	posts := []models.BlogPost{}
	err := r.db.SelectContext(ctx, &posts, query)

	logger.Log.Infow("blog post list",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(posts),
		"error", err,
	)

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return posts, nil
}

// Update merges the non-nil fields of partial into the stored row and
// refreshes the update timestamp. Returns nil when the id is absent.
func (r *BlogPostDBRepository) Update(ctx context.Context, id string, partial models.BlogPostUpdate) (*models.BlogPost, error) {
	const query = `
		UPDATE blog_posts
		SET title = COALESCE($2, title),
		    category = COALESCE($3, category),
		    content = COALESCE($4, content),
		    image_url = COALESCE($5, image_url),
		    published = COALESCE($6, published),
		    updated_at = $7
		WHERE id = $1
		RETURNING id, title, category, content, image_url, published, created_at, updated_at
	`
	args := []any{
		id,
		partial.Title, partial.Category, partial.Content, partial.ImageURL, partial.Published,
		time.Now().UTC(),
	}

	var p models.BlogPost
	err := r.db.GetContext(ctx, &p, query, args...)

	logger.Log.Infow("blog post update",
		"query", strings.Join(strings.Fields(query), " "),
		"id", id,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes the post with the given id and reports whether a row
// was removed.
func (r *BlogPostDBRepository) Delete(ctx context.Context, id string) (bool, error) {
	const query = `DELETE FROM blog_posts WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("blog post delete",
		"query", query,
		"id", id,
		"rows", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
