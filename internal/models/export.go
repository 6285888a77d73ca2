package models

// ExportAll bundles the four primary collections for a combined export.
// Users and blog posts are excluded.
type ExportAll struct {
	Bookings  []Booking  `json:"bookings"`
	Contacts  []Contact  `json:"contacts"`
	Payments  []Payment  `json:"payments"`
	Downloads []Download `json:"downloads"`
}
