package dto

// StatusResponse is the legacy `{success, message}` envelope used by the
// portal client for every mutation and failure response.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK builds a success envelope
func OK(message string) StatusResponse {
	return StatusResponse{Success: true, Message: message}
}

// Fail builds a failure envelope
func Fail(message string) StatusResponse {
	return StatusResponse{Success: false, Message: message}
}
