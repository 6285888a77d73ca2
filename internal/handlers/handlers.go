package handlers

// recentWindow is the fixed number of records shown in dashboard recents.
const recentWindow = 5

// ErrorResponse is the error body shared by all API endpoints
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Invalid booking data
	Error string `json:"error"`
}
