package models

import "time"

// Booking represents a stored photography package booking.
type Booking struct {
	ID          string    `json:"id" db:"id"`                     // Primary key
	Name        string    `json:"name" db:"name"`                 // Customer name
	Email       string    `json:"email" db:"email"`               // Customer email
	Phone       string    `json:"phone" db:"phone"`               // Customer phone
	PackageType string    `json:"packageType" db:"package_type"`  // Package category
	PackageName string    `json:"packageName" db:"package_name"`  // Package display name
	Price       string    `json:"price" db:"price"`               // String-encoded decimal price
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`      // Creation timestamp
}

// BookingCreate holds the accepted fields for a new booking.
type BookingCreate struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	PackageType string `json:"packageType"`
	PackageName string `json:"packageName"`
	Price       string `json:"price"`
}
