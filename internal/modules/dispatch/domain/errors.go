package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// DeliveryError describes one failed webhook call.
// StatusCode is zero for network-level failures.
type DeliveryError struct {
	StatusCode int
	Body       string
	Err        error
}

// NewStatusError builds a DeliveryError from a non-2xx response
func NewStatusError(status int, body string) *DeliveryError {
	return &DeliveryError{StatusCode: status, Body: body}
}

// NewNetworkError builds a DeliveryError for a request that got no response
func NewNetworkError(err error) *DeliveryError {
	return &DeliveryError{Err: err}
}

func (e *DeliveryError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("webhook request failed: %v", e.Err)
	}
	return fmt.Sprintf("webhook returned status %d: %s", e.StatusCode, e.Body)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Temporary reports whether the call may succeed if repeated:
// network errors, timeouts, 429 and 5xx.
func (e *DeliveryError) Temporary() bool {
	return e.StatusCode == 0 ||
		e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode >= http.StatusInternalServerError
}

// IsTemporary reports whether err carries a temporary DeliveryError
func IsTemporary(err error) bool {
	var de *DeliveryError
	return errors.As(err, &de) && de.Temporary()
}

// StatusOf extracts the HTTP status from a DeliveryError, or 0
func StatusOf(err error) int {
	var de *DeliveryError
	if errors.As(err, &de) {
		return de.StatusCode
	}
	return 0
}
