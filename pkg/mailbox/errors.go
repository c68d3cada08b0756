package mailbox

import (
	"fmt"
	"time"
)

// ProvisionError indicates account creation failed after retries were
// exhausted, or that required account identifiers are missing.
type ProvisionError struct {
	Message string
	Err     error
}

func (e *ProvisionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProvisionError) Unwrap() error {
	return e.Err
}

// TimeoutError indicates no message arrived within the poll deadline.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("no message received within %v", e.Timeout)
}
