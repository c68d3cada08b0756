package upstream

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned when a client is built without an API key.
var ErrMissingAPIKey = errors.New("API key is required")

// APIError represents a non-2xx HTTP response from the provider.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("upstream error %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("upstream error %d", e.StatusCode)
}

// TransportError represents a network-level failure reaching the provider.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("upstream unreachable: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}
