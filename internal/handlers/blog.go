package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arpitastudio/studio-api/internal/logger"
	"github.com/arpitastudio/studio-api/internal/models"
	"github.com/arpitastudio/studio-api/internal/services"
)

// BlogPostCreator defines the create interface for blog posts.
type BlogPostCreator interface {
	Create(ctx context.Context, input models.BlogPostCreate) (*models.BlogPost, error)
}

// BlogPostReader defines the read interface for blog posts.
type BlogPostReader interface {
	List(ctx context.Context) ([]models.BlogPost, error)
	Get(ctx context.Context, id string) (*models.BlogPost, error)
}

// BlogPostUpdater defines the partial-update interface for blog posts.
type BlogPostUpdater interface {
	Update(ctx context.Context, id string, partial models.BlogPostUpdate) (*models.BlogPost, error)
}

// BlogPostDeleter defines the delete interface for blog posts.
type BlogPostDeleter interface {
	Delete(ctx context.Context, id string) error
}

// DeleteBlogPostResponse reports a successful deletion
// swagger:model DeleteBlogPostResponse
type DeleteBlogPostResponse struct {
	// Deletion flag
	// default: true
	Success bool `json:"success"`
}

// NewCreateBlogPostHandler returns an HTTP handler that stores a blog post.
// @Summary Create a blog post
// @Description Validates the payload and stores the post. ImageUrl defaults to null, published to false.
// @Tags blog
// @Accept json
// @Produce json
// @Param post body models.BlogPostCreate true "Blog post payload"
// @Success 200 {object} models.BlogPost "Created post"
// @Failure 400 {object} handlers.ErrorResponse "Invalid blog post data"
// @Router /api/blog-posts [post]
func NewCreateBlogPostHandler(svc BlogPostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req models.BlogPostCreate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid blog post data"})
			return
		}

		post, err := svc.Create(r.Context(), req)
		if err != nil {
			logger.Log.Errorw("failed to create blog post", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Invalid blog post data"})
			return
		}

		json.NewEncoder(w).Encode(post)
	}
}

// NewListBlogPostsHandler returns an HTTP handler that lists all blog posts.
// @Summary List blog posts
// @Tags blog
// @Produce json
// @Success 200 {array} models.BlogPost "All posts, newest first"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch blog posts"
// @Router /api/blog-posts [get]
func NewListBlogPostsHandler(svc BlogPostReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		posts, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list blog posts", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to fetch blog posts"})
			return
		}

		json.NewEncoder(w).Encode(posts)
	}
}

// NewGetBlogPostHandler returns an HTTP handler that fetches one blog post by id.
// @Summary Get a blog post
// @Tags blog
// @Produce json
// @Param id path string true "Blog post id"
// @Success 200 {object} models.BlogPost "The post"
// @Failure 404 {object} handlers.ErrorResponse "Blog post not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to fetch blog post"
// @Router /api/blog-posts/{id} [get]
func NewGetBlogPostHandler(svc BlogPostReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id := chi.URLParam(r, "id")
		post, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrBlogPostNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Blog post not found"})
				return
			}
			logger.Log.Errorw("failed to get blog post", "id", id, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to fetch blog post"})
			return
		}

		json.NewEncoder(w).Encode(post)
	}
}

// NewUpdateBlogPostHandler returns an HTTP handler that merges a partial
// update into a blog post.
// @Summary Update a blog post
// @Description Merges the provided fields into the post and refreshes its update timestamp.
// @Tags blog
// @Accept json
// @Produce json
// @Param id path string true "Blog post id"
// @Param partial body models.BlogPostUpdate true "Fields to change"
// @Success 200 {object} models.BlogPost "Updated post"
// @Failure 404 {object} handlers.ErrorResponse "Blog post not found"
// @Failure 400 {object} handlers.ErrorResponse "Failed to update blog post"
// @Router /api/blog-posts/{id} [patch]
func NewUpdateBlogPostHandler(svc BlogPostUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id := chi.URLParam(r, "id")

		var partial models.BlogPostUpdate
		if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to update blog post"})
			return
		}

		post, err := svc.Update(r.Context(), id, partial)
		if err != nil {
			if errors.Is(err, services.ErrBlogPostNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Blog post not found"})
				return
			}
			logger.Log.Errorw("failed to update blog post", "id", id, "err", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to update blog post"})
			return
		}

		json.NewEncoder(w).Encode(post)
	}
}

// NewDeleteBlogPostHandler returns an HTTP handler that deletes a blog post.
// @Summary Delete a blog post
// @Tags blog
// @Produce json
// @Param id path string true "Blog post id"
// @Success 200 {object} handlers.DeleteBlogPostResponse "Deletion confirmed"
// @Failure 404 {object} handlers.ErrorResponse "Blog post not found"
// @Failure 500 {object} handlers.ErrorResponse "Failed to delete blog post"
// @Router /api/blog-posts/{id} [delete]
func NewDeleteBlogPostHandler(svc BlogPostDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		id := chi.URLParam(r, "id")
		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, services.ErrBlogPostNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Blog post not found"})
				return
			}
			logger.Log.Errorw("failed to delete blog post", "id", id, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Failed to delete blog post"})
			return
		}

		json.NewEncoder(w).Encode(DeleteBlogPostResponse{Success: true})
	}
}
