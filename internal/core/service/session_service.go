package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/smartsales365/terminal/internal/core/domain"
	"github.com/smartsales365/terminal/internal/core/ports"
)

// SessionService owns the auth token and the role resolved for it. The token
// is persisted under a fixed key and survives restarts; the role lives in
// memory only and is fetched at most once per token value.
type SessionService struct {
	auth    ports.AuthGateway
	storage ports.SessionStorage
	cart    ports.CartStore
	log     zerolog.Logger

	token string
	role  domain.Role
	user  *domain.User
}

var _ ports.Session = (*SessionService)(nil)

// NewSessionService restores a previously saved token, if any.
func NewSessionService(auth ports.AuthGateway, storage ports.SessionStorage, cart ports.CartStore, log zerolog.Logger) *SessionService {
	token, err := storage.LoadToken()
	if err != nil {
		log.Warn().Err(err).Msg("session state unreadable, starting anonymous")
		token = ""
	}
	return &SessionService{auth: auth, storage: storage, cart: cart, log: log, token: token}
}

func (s *SessionService) Token() string {
	return s.token
}

func (s *SessionService) Authenticated() bool {
	return s.token != ""
}

func (s *SessionService) Login(ctx context.Context, username, password string) error {
	token, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}
	s.token = token
	s.role = domain.RoleAnonymous
	s.user = nil
	if err := s.storage.SaveToken(token); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.log.Info().Str("username", username).Msg("logged in")
	return nil
}

// Logout invalidates the server-side token, then drops all local session
// state and the cart. Local state goes even when the server call fails; the
// token may already be dead.
func (s *SessionService) Logout(ctx context.Context) error {
	if s.token == "" {
		return domain.ErrNoSession
	}
	if err := s.auth.Logout(ctx); err != nil && !errors.Is(err, domain.ErrUnauthenticated) {
		s.log.Warn().Err(err).Msg("server-side logout failed, clearing local session anyway")
	}
	s.Invalidate()
	if err := s.cart.Clear(); err != nil {
		return err
	}
	s.log.Info().Msg("logged out")
	return nil
}

func (s *SessionService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.auth.Register(ctx, input)
}

func (s *SessionService) RequestPasswordReset(ctx context.Context, email string) (*ports.PasswordResetTicket, error) {
	return s.auth.RequestPasswordReset(ctx, email)
}

func (s *SessionService) ConfirmPasswordReset(ctx context.Context, input ports.ConfirmPasswordResetInput) error {
	return s.auth.ConfirmPasswordReset(ctx, input)
}

// Profile fetches the account behind the token. A 401 clears the token and
// the cached role so the caller lands back at login.
func (s *SessionService) Profile(ctx context.Context) (*domain.User, error) {
	if s.token == "" {
		return nil, domain.ErrNoSession
	}
	user, err := s.auth.Profile(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			s.Invalidate()
		}
		return nil, err
	}
	s.user = user
	s.role = user.Role
	return user, nil
}

// Role returns the cached role, resolving it through Profile on first use.
func (s *SessionService) Role(ctx context.Context) (domain.Role, error) {
	if s.role.Known() {
		return s.role, nil
	}
	user, err := s.Profile(ctx)
	if err != nil {
		return domain.RoleAnonymous, err
	}
	return user.Role, nil
}

// Invalidate drops the token and cached role. It is also the hook fired when
// any authenticated call comes back 401.
func (s *SessionService) Invalidate() {
	if s.token != "" {
		s.log.Warn().Msg("session invalidated")
	}
	s.token = ""
	s.role = domain.RoleAnonymous
	s.user = nil
	if err := s.storage.Clear(); err != nil {
		s.log.Error().Err(err).Msg("failed to clear persisted session")
	}
}
