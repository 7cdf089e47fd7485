package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrNoSession = errors.New("no active session")
var ErrUnauthenticated = errors.New("authentication failed")
var ErrForbidden = errors.New("access forbidden")
var ErrNotFound = errors.New("not found")
var ErrEmptyCart = errors.New("cart is empty")
var ErrClientDataRequired = errors.New("client data required")
var ErrPaymentFailed = errors.New("payment failed")

// ErrSaleNotRecorded marks the critical checkout outcome: the card payment
// was captured but the sale could not be registered. Callers must surface a
// "contact support" message instead of a retry prompt.
var ErrSaleNotRecorded = errors.New("payment captured but sale not recorded")

// APIError carries an upstream error payload unmodified, plus the HTTP status
// it arrived with. Field-level validation errors stay available in Fields so
// forms can merge them into their own state.
type APIError struct {
	StatusCode int
	// Message is the server's own description, taken from the "error" or
	// "detail" key when present, or the first field error otherwise.
	Message string
	// Fields holds per-field messages for server validation errors.
	Fields map[string][]string
	// Raw is the undecoded response body.
	Raw json.RawMessage
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server error (%d)", e.StatusCode)
}

// Unwrap maps well-known statuses onto domain sentinels so callers can use
// errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case 401:
		return ErrUnauthenticated
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	}
	return nil
}
