package errors

// ErrorInfo is the error payload sent to API clients
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "WORKOUT_NOT_FOUND"
	Message string `json:"message"`           // User-facing error message
	Details any    `json:"details,omitempty"` // Optional structured details
}

// MetaInfo carries response metadata shared by every envelope
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// SuccessResponse is the envelope for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope for failed responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}
