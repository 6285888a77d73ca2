package models

// User represents a stored admin user account.
type User struct {
	ID       string `json:"id" db:"id"`             // Primary key
	Username string `json:"username" db:"username"` // Unique username
	Password string `json:"password" db:"password"` // Opaque password string
}

// UserCreate holds the accepted fields for a new user.
type UserCreate struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
