package models

import "time"

// Payment represents a stored payment record.
// Status is free text; "completed" is counted by the admin stats.
type Payment struct {
	ID            string    `json:"id" db:"id"`                        // Primary key
	OrderID       string    `json:"orderId" db:"order_id"`             // Gateway order identifier
	Amount        int       `json:"amount" db:"amount"`                // Amount in whole units
	CustomerName  string    `json:"customerName" db:"customer_name"`   // Customer name
	CustomerEmail string    `json:"customerEmail" db:"customer_email"` // Customer email
	Status        string    `json:"status" db:"status"`                // Payment status
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`         // Creation timestamp
}

// PaymentCreate holds the accepted fields for a new payment record.
type PaymentCreate struct {
	OrderID       string `json:"orderId"`
	Amount        int    `json:"amount"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	Status        string `json:"status"`
}
