package zaaksysteem

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport covers failures before a complete response was received.
	ErrTransport = errors.New("case lookup request failed")
	// ErrUnexpectedResponse covers 200 responses without a usable case id.
	ErrUnexpectedResponse = errors.New("unexpected case lookup response")
)

// APIError is returned for any non-200 response.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("api status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api status %d: %s: %s", e.StatusCode, e.Type, e.Message)
}
