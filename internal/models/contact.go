package models

import "time"

// Contact represents a stored contact-form message.
type Contact struct {
	ID        string    `json:"id" db:"id"`                // Primary key
	Name      string    `json:"name" db:"name"`            // Sender name
	Email     string    `json:"email" db:"email"`          // Sender email
	Phone     string    `json:"phone" db:"phone"`          // Sender phone
	Message   string    `json:"message" db:"message"`      // Free-text message
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
}

// ContactCreate holds the accepted fields for a new contact message.
type ContactCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
