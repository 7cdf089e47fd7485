package ports

import (
	"context"

	"github.com/smartsales365/terminal/internal/core/domain"
)

// CartStore is the single source of truth for the in-progress order. Every
// mutation synchronously persists the snapshot; derived values are pure
// recomputations over current state.
type CartStore interface {
	// Add reports false when stock clamping left the cart unchanged.
	Add(product domain.ProductRef, qty int) (bool, error)
	SetQuantity(productID int64, qty int) error
	Remove(productID int64) error
	// Clear empties the cart and drops the persisted snapshot.
	Clear() error
	Lines() []domain.CartLine
	Total() domain.Money
	ItemCount() int
	IsEmpty() bool
}

// Session owns the auth token and the role cached for its lifetime.
type Session interface {
	TokenSource
	Authenticated() bool
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	RequestPasswordReset(ctx context.Context, email string) (*PasswordResetTicket, error)
	ConfirmPasswordReset(ctx context.Context, input ConfirmPasswordResetInput) error
	// Profile fetches the current profile; a 401 invalidates the session.
	Profile(ctx context.Context) (*domain.User, error)
	// Role resolves the role once per token and caches it in memory.
	Role(ctx context.Context) (domain.Role, error)
	// Invalidate drops the token and cached role locally.
	Invalidate()
}

// CheckoutInput drives one run of the checkout flow.
type CheckoutInput struct {
	Card CardDetails
	// ClientData is invoked when the profile carries no client sub-profile;
	// it plays the part of the required-fields form.
	ClientData func() (*ClientInput, error)
	// OnTransition, when set, observes every state change.
	OnTransition func(state domain.CheckoutState)
}

// CheckoutResult reports the terminal state of a run. Sale is set only on
// success.
type CheckoutResult struct {
	State domain.CheckoutState
	Sale  *domain.Sale
}

// CheckoutFlow executes the payment flow as an explicit state machine.
type CheckoutFlow interface {
	Run(ctx context.Context, input CheckoutInput) (*CheckoutResult, error)
}

// ReportOutcome is what a report run produced: inline text for screen
// reports, a saved file path for binary ones.
type ReportOutcome struct {
	Text      string
	SavedPath string
}

// ReportRunner generates a report and disposes of the result by format.
type ReportRunner interface {
	Generate(ctx context.Context, prompt string, format domain.ReportFormat, outPath string) (*ReportOutcome, error)
}
