package httpclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorDetail is a field-scoped validation error returned by the API on
// semantic input rejection.
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
}

// APIError is a non-2xx response normalized into a single human-readable
// message. Message is chosen, in order, from: the joined validation detail
// messages (422), the body's top-level message field, or a synthesized
// "HTTP error! status: N".
type APIError struct {
	// StatusCode is the HTTP status code of the failed response.
	StatusCode int
	// Message is the normalized error message.
	Message string
	// Details holds the per-field validation errors, if any.
	Details []ErrorDetail
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}

// errorEnvelope mirrors the API's error response shape.
type errorEnvelope struct {
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details"`
}

// DecodeError converts a failed response into an *APIError. The body is
// parsed best-effort; an unparseable body falls through to the synthesized
// status message and never produces a second error.
func DecodeError(statusCode int, body []byte) *APIError {
	var env errorEnvelope
	_ = json.Unmarshal(body, &env)

	switch {
	case statusCode == http.StatusUnprocessableEntity && len(env.Details) > 0:
		msgs := make([]string, len(env.Details))
		for i, d := range env.Details {
			msgs[i] = d.Message
		}
		return &APIError{
			StatusCode: statusCode,
			Message:    strings.Join(msgs, ". "),
			Details:    env.Details,
		}
	case env.Message != "":
		return &APIError{StatusCode: statusCode, Message: env.Message}
	default:
		return &APIError{
			StatusCode: statusCode,
			Message:    fmt.Sprintf("HTTP error! status: %d", statusCode),
		}
	}
}

// StatusOf returns the HTTP status code of an API error, or 0 if err is
// not an *APIError.
func StatusOf(err error) int {
	var e *APIError
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// IsValidation checks if an error is a 422 validation error.
func IsValidation(err error) bool {
	return StatusOf(err) == http.StatusUnprocessableEntity
}

// IsAuth checks if an error is an authentication/authorization failure.
func IsAuth(err error) bool {
	s := StatusOf(err)
	return s == http.StatusUnauthorized || s == http.StatusForbidden
}

// IsNotFound checks if an error is a 404.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// IsServer checks if an error is a 5xx server error.
func IsServer(err error) bool {
	return StatusOf(err) >= 500
}
