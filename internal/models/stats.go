package models

// AdminStats aggregates dashboard counters across the collections.
// Pending has no backing state and is always reported as zero.
type AdminStats struct {
	Bookings     int `json:"bookings"`     // Total bookings
	Contacts     int `json:"contacts"`     // Total contact messages
	Payments     int `json:"payments"`     // Total payment records
	Downloads    int `json:"downloads"`    // Total download requests
	BlogPosts    int `json:"blogPosts"`    // Published blog posts
	Pending      int `json:"pending"`      // Always 0
	Contacted    int `json:"contacted"`    // Same as Contacts
	Completed    int `json:"completed"`    // Payments with status "completed"
	TotalRecords int `json:"totalRecords"` // Bookings + Contacts + Payments + Downloads
}
