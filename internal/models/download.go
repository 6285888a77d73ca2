package models

import "time"

// Download represents a stored resource download request.
type Download struct {
	ID           string    `json:"id" db:"id"`                      // Primary key
	ResourceName string    `json:"resourceName" db:"resource_name"` // Requested resource name
	UserEmail    string    `json:"userEmail" db:"user_email"`       // Requester email
	DownloadURL  string    `json:"downloadUrl" db:"download_url"`   // Delivered download URL
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`       // Creation timestamp
}

// DownloadCreate holds the accepted fields for a new download request.
type DownloadCreate struct {
	ResourceName string `json:"resourceName"`
	UserEmail    string `json:"userEmail"`
	DownloadURL  string `json:"downloadUrl"`
}
