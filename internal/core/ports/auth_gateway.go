package ports

import (
	"context"

	"github.com/smartsales365/terminal/internal/core/domain"
)

// RegisterInput carries the public registration form. The role is never
// sent; the backend assigns new accounts the customer role.
type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       *int   `json:"edad,omitempty"`
}

// PasswordResetTicket is returned by the reset-request endpoint. UID and
// Token are only populated while the backend runs in development mode.
type PasswordResetTicket struct {
	Detail string `json:"detail"`
	UID    string `json:"uid"`
	Token  string `json:"token"`
}

// ConfirmPasswordResetInput finishes a password reset. Both password fields
// carry the same value; the backend insists on receiving both.
type ConfirmPasswordResetInput struct {
	UID          string `json:"uid"`
	Token        string `json:"token"`
	NewPassword1 string `json:"new_password1"`
	NewPassword2 string `json:"new_password2"`
}

// AuthGateway wraps the authentication and profile endpoints.
type AuthGateway interface {
	// Login exchanges credentials for an opaque session token.
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Logout invalidates the server-side token of the current session.
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*domain.User, error)
	RequestPasswordReset(ctx context.Context, email string) (*PasswordResetTicket, error)
	ConfirmPasswordReset(ctx context.Context, input ConfirmPasswordResetInput) error
}

// TokenSource yields the session token attached to authenticated calls.
// An empty string means there is no session.
type TokenSource interface {
	Token() string
}
