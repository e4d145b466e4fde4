package dto

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Field names the offending request field on validation errors
	Field string `json:"field,omitempty"`
}
