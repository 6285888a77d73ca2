package models

import "time"

// BlogPost represents a stored blog post. ImageURL is nullable and
// serializes as JSON null when absent.
type BlogPost struct {
	ID        string    `json:"id" db:"id"`                // Primary key
	Title     string    `json:"title" db:"title"`          // Post title
	Category  string    `json:"category" db:"category"`    // Post category
	Content   string    `json:"content" db:"content"`      // Post body
	ImageURL  *string   `json:"imageUrl" db:"image_url"`   // Optional cover image URL
	Published bool      `json:"published" db:"published"`  // Visibility flag, defaults to false
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"` // Refreshed on every update
}

// BlogPostCreate holds the accepted fields for a new blog post.
// ImageURL and Published are optional.
type BlogPostCreate struct {
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Content   string  `json:"content"`
	ImageURL  *string `json:"imageUrl"`
	Published *bool   `json:"published"`
}

// BlogPostUpdate is a partial update: nil fields are left unchanged.
type BlogPostUpdate struct {
	Title     *string `json:"title"`
	Category  *string `json:"category"`
	Content   *string `json:"content"`
	ImageURL  *string `json:"imageUrl"`
	Published *bool   `json:"published"`
}
