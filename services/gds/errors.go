package gds

import "fmt"

// ProviderError carries the distribution provider's status and message for a
// failed booking call. Search failures never produce one of these; only the
// booking endpoint propagates provider faults, because money and inventory
// are at stake there.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error (status %d): %s", e.StatusCode, e.Message)
}

// NewProviderError builds a ProviderError from a provider response.
func NewProviderError(status int, message string) error {
	if message == "" {
		message = fmt.Sprintf("booking failed with status %d", status)
	}
	return &ProviderError{StatusCode: status, Message: message}
}
