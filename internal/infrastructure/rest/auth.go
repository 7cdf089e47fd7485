package rest

import (
	"context"
	"net/http"

	"github.com/smartsales365/terminal/internal/core/domain"
	"github.com/smartsales365/terminal/internal/core/ports"
)

// AuthGateway implements ports.AuthGateway over the auth and profile
// endpoints.
type AuthGateway struct {
	*Client
}

var _ ports.AuthGateway = (*AuthGateway)(nil)

func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{Client: client}
}

func (g *AuthGateway) Login(ctx context.Context, username, password string) (string, error) {
	in := map[string]string{"username": username, "password": password}
	var out struct {
		Token string `json:"token"`
	}
	if err := g.doJSON(ctx, http.MethodPost, "/auth/login/", in, &out, false); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (g *AuthGateway) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	var user domain.User
	if err := g.doJSON(ctx, http.MethodPost, "/api/auth/register/", input, &user, false); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *AuthGateway) Logout(ctx context.Context) error {
	return g.doJSON(ctx, http.MethodPost, "/api/auth/logout/", nil, nil, true)
}

func (g *AuthGateway) Profile(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := g.doJSON(ctx, http.MethodGet, "/api/profile/", nil, &user, true); err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *AuthGateway) RequestPasswordReset(ctx context.Context, email string) (*ports.PasswordResetTicket, error) {
	in := map[string]string{"email": email}
	var ticket ports.PasswordResetTicket
	if err := g.doJSON(ctx, http.MethodPost, "/api/auth/password/reset/", in, &ticket, false); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (g *AuthGateway) ConfirmPasswordReset(ctx context.Context, input ports.ConfirmPasswordResetInput) error {
	return g.doJSON(ctx, http.MethodPost, "/api/auth/password/reset/confirm/", input, nil, false)
}
