package response

// Response represents a standard API response format
type Response struct {
	Status     string      `json:"status"`      // "success" or "error"
	StatusCode int         `json:"status_code"` // HTTP status code
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	// Reason is a stable machine-readable failure code (e.g. "stale_state",
	// "not_permitted") clients branch on without parsing Error.
	Reason string `json:"reason,omitempty"`
}

// Success returns a standard success response wrapping the data
func Success(statusCode int, data interface{}) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
	}
}

// Error returns a standard error response wrapping the error message
func Error(statusCode int, err string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
	}
}

// ErrorWithReason returns an error response carrying a machine-readable
// failure code alongside the human message.
func ErrorWithReason(statusCode int, err, reason string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
		Reason:     reason,
	}
}
