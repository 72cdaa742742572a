package codex

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx response decoded from the backend's error
// envelope: {"error":{"message","status","details?"}}.
type APIError struct {
	Status  int    `json:"status"`
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Message)
}

// errorEnvelope is the outer wrapper of a backend failure body.
type errorEnvelope struct {
	Error *APIError `json:"error"`
}

// decodeAPIError turns a failure body into an *APIError. Bodies that do
// not parse as the error envelope still produce an APIError carrying the
// HTTP status, so a failure never masquerades as a decode problem.
func decodeAPIError(status int, body []byte) *APIError {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		if env.Error.Status == 0 {
			env.Error.Status = status
		}
		return env.Error
	}
	return &APIError{Status: status}
}
