package backend

import (
	"errors"
	"fmt"
)

// ErrNoAnswer marks a 200 query response that carries no answer field.
// It is a display condition, not a transport failure.
var ErrNoAnswer = errors.New("no answer available in the response")

// APIError is a non-200 response from the backend, carrying the
// backend-provided detail message.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error: HTTP %d: %s", e.StatusCode, e.Detail)
}

// IsRetryable reports whether the status is a server-side transient
// one. Client errors are permanent and must not be retried.
func (e *APIError) IsRetryable() bool {
	switch e.StatusCode {
	case 500, 502, 503, 504:
		return true
	}
	return false
}

// MalformedResponseError is a 200 response missing a field the client
// depends on. Recoverable: it surfaces as a visible message, never a
// crash.
type MalformedResponseError struct {
	Field string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("backend response missing %q field", e.Field)
}
