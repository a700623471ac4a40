package dto

import "time"

// ErrorResponse is the JSON body of every non-2xx response.
//
// Fields:
//   - Message: human readable summary, safe to show to clients.
//   - ErrorDetails: optional detail (validation reason); never internal errors.
//   - Timestamp: when the error was produced (UTC).
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message      string    `json:"message" example:"Unsupported interval: 5m"`
	ErrorDetails string    `json:"error_details,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so the response can travel through c.Error().
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
// err is optional; when present its message becomes ErrorDetails.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
