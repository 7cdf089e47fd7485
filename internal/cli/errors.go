package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/smartsales365/terminal/internal/core/domain"
)

// Exit codes per failure class. Checkout's critical case gets its own code
// so wrapping scripts can page a human.
const (
	exitFailure   = 1
	exitAuth      = 2
	exitForbidden = 3
	exitCritical  = 4
)

// resolveError maps domain errors onto the message and exit code shown to
// the operator, keeping the ugly upstream payloads out of the terminal.
func resolveError(err error) (string, int) {
	switch {
	case errors.Is(err, domain.ErrSaleNotRecorded):
		return "CRITICAL: your payment was captured but the order could not be registered. " +
			"Do NOT retry the purchase, contact support with your card statement.", exitCritical
	case errors.Is(err, domain.ErrNoSession):
		return "you are not logged in, run 'smartsales login' first", exitAuth
	case errors.Is(err, domain.ErrUnauthenticated):
		return "your session is no longer valid, please log in again", exitAuth
	case errors.Is(err, domain.ErrForbidden):
		return "you do not have permission to do that", exitForbidden
	case errors.Is(err, domain.ErrEmptyCart):
		return "your cart is empty, add products from the catalog first", exitFailure
	case errors.Is(err, domain.ErrPaymentFailed):
		return "payment failed: " + trimWrap(err, domain.ErrPaymentFailed), exitFailure
	case errors.Is(err, domain.ErrClientDataRequired):
		return "client details are required to check out (name, surname, email, address)", exitFailure
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		var b strings.Builder
		b.WriteString(apiErr.Message)
		for field, msgs := range apiErr.Fields {
			for _, m := range msgs {
				fmt.Fprintf(&b, "\n  %s: %s", field, m)
			}
		}
		return b.String(), exitFailure
	}

	return err.Error(), exitFailure
}

// trimWrap strips the sentinel prefix that Run wraps around provider errors.
func trimWrap(err error, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	return strings.TrimPrefix(msg, prefix)
}

func printError(w io.Writer, msg string) {
	fmt.Fprintf(w, "error: %s\n", msg)
}
