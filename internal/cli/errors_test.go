package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smartsales365/terminal/internal/core/domain"
)

func TestResolveErrorExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"no session", domain.ErrNoSession, exitAuth},
		{"expired session", domain.ErrUnauthenticated, exitAuth},
		{"forbidden", domain.ErrForbidden, exitForbidden},
		{"empty cart", domain.ErrEmptyCart, exitFailure},
		{"payment failed", fmt.Errorf("%w: card declined", domain.ErrPaymentFailed), exitFailure},
		{"client data required", domain.ErrClientDataRequired, exitFailure},
		{"sale not recorded", fmt.Errorf("%w: ventas 500", domain.ErrSaleNotRecorded), exitCritical},
		{"plain error", errors.New("boom"), exitFailure},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg, code := resolveError(tc.err)
			assert.Equal(t, tc.code, code)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestResolveErrorCriticalMessageWarnsAgainstRetry(t *testing.T) {
	msg, code := resolveError(fmt.Errorf("%w: ventas 500", domain.ErrSaleNotRecorded))
	assert.Equal(t, exitCritical, code)
	assert.Contains(t, msg, "CRITICAL")
	assert.Contains(t, msg, "Do NOT retry")
	assert.Contains(t, msg, "contact support")
}

func TestResolveErrorPaymentFailureKeepsProviderReason(t *testing.T) {
	msg, _ := resolveError(fmt.Errorf("%w: Your card was declined.", domain.ErrPaymentFailed))
	assert.Equal(t, "payment failed: Your card was declined.", msg)
}

func TestResolveErrorAPIErrorIncludesFieldMessages(t *testing.T) {
	apiErr := &domain.APIError{
		StatusCode: 400,
		Message:    "validation failed",
		Fields:     map[string][]string{"email": {"Enter a valid email address."}},
	}
	msg, code := resolveError(apiErr)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "email: Enter a valid email address.")
}

func TestResolveErrorUnauthenticatedAPIErrorMapsToAuthExit(t *testing.T) {
	apiErr := &domain.APIError{StatusCode: 401, Message: "Invalid token."}
	_, code := resolveError(apiErr)
	assert.Equal(t, exitAuth, code)
}
