package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsales365/terminal/internal/core/domain"
	"github.com/smartsales365/terminal/internal/core/ports"
)

type stubSessionStorage struct {
	token   string
	loadErr error
	clears  int
}

func (s *stubSessionStorage) LoadToken() (string, error) {
	if s.loadErr != nil {
		return "", s.loadErr
	}
	return s.token, nil
}

func (s *stubSessionStorage) SaveToken(token string) error {
	s.token = token
	return nil
}

func (s *stubSessionStorage) Clear() error {
	s.token = ""
	s.clears++
	return nil
}

type stubAuthGateway struct {
	loginToken   string
	loginErr     error
	logoutErr    error
	profileUser  *domain.User
	profileErr   error
	profileCalls int
}

func (g *stubAuthGateway) Login(context.Context, string, string) (string, error) {
	return g.loginToken, g.loginErr
}

func (g *stubAuthGateway) Register(_ context.Context, _ ports.RegisterInput) (*domain.User, error) {
	return nil, errors.New("not under test")
}

func (g *stubAuthGateway) Logout(context.Context) error {
	return g.logoutErr
}

func (g *stubAuthGateway) Profile(context.Context) (*domain.User, error) {
	g.profileCalls++
	return g.profileUser, g.profileErr
}

func (g *stubAuthGateway) RequestPasswordReset(context.Context, string) (*ports.PasswordResetTicket, error) {
	return nil, errors.New("not under test")
}

func (g *stubAuthGateway) ConfirmPasswordReset(context.Context, ports.ConfirmPasswordResetInput) error {
	return errors.New("not under test")
}

func newTestSession(auth *stubAuthGateway, storage *stubSessionStorage) (*SessionService, *stubCartStorage) {
	cartStorage := &stubCartStorage{}
	cart := NewCartService(cartStorage, zerolog.Nop())
	return NewSessionService(auth, storage, cart, zerolog.Nop()), cartStorage
}

func TestSessionRestoresPersistedToken(t *testing.T) {
	svc, _ := newTestSession(&stubAuthGateway{}, &stubSessionStorage{token: "tok-abc"})
	assert.True(t, svc.Authenticated())
	assert.Equal(t, "tok-abc", svc.Token())
}

func TestSessionStartsAnonymousOnLoadError(t *testing.T) {
	svc, _ := newTestSession(&stubAuthGateway{}, &stubSessionStorage{loadErr: errors.New("corrupt")})
	assert.False(t, svc.Authenticated())
}

func TestSessionLoginPersistsToken(t *testing.T) {
	storage := &stubSessionStorage{}
	svc, _ := newTestSession(&stubAuthGateway{loginToken: "tok-new"}, storage)

	require.NoError(t, svc.Login(context.Background(), "maria", "secret"))
	assert.Equal(t, "tok-new", svc.Token())
	assert.Equal(t, "tok-new", storage.token)
}

func TestSessionLoginFailureLeavesStateUntouched(t *testing.T) {
	storage := &stubSessionStorage{token: "tok-old"}
	svc, _ := newTestSession(&stubAuthGateway{loginErr: domain.ErrUnauthenticated}, storage)

	err := svc.Login(context.Background(), "maria", "wrong")
	require.Error(t, err)
	assert.Equal(t, "tok-old", svc.Token())
}

func TestSessionLogoutClearsEverythingEvenWhenServerFails(t *testing.T) {
	storage := &stubSessionStorage{token: "tok-abc"}
	svc, cartStorage := newTestSession(&stubAuthGateway{logoutErr: errors.New("backend down")}, storage)

	require.NoError(t, svc.Logout(context.Background()))
	assert.False(t, svc.Authenticated())
	assert.Empty(t, storage.token)
	assert.Equal(t, 1, cartStorage.clears)
}

func TestSessionLogoutWithoutSession(t *testing.T) {
	svc, _ := newTestSession(&stubAuthGateway{}, &stubSessionStorage{})
	assert.ErrorIs(t, svc.Logout(context.Background()), domain.ErrNoSession)
}

func TestSessionProfileExpiredTokenInvalidates(t *testing.T) {
	storage := &stubSessionStorage{token: "tok-stale"}
	svc, _ := newTestSession(&stubAuthGateway{profileErr: domain.ErrUnauthenticated}, storage)

	_, err := svc.Profile(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.False(t, svc.Authenticated())
	assert.Empty(t, storage.token)
}

func TestSessionProfileWithoutToken(t *testing.T) {
	svc, _ := newTestSession(&stubAuthGateway{}, &stubSessionStorage{})
	_, err := svc.Profile(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestSessionRoleCachedPerToken(t *testing.T) {
	auth := &stubAuthGateway{profileUser: &domain.User{Username: "maria", Role: domain.RoleSeller}}
	svc, _ := newTestSession(auth, &stubSessionStorage{token: "tok-abc"})

	role, err := svc.Role(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSeller, role)

	// Second lookup serves the cache.
	role, err = svc.Role(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSeller, role)
	assert.Equal(t, 1, auth.profileCalls)
}

func TestSessionLoginResetsCachedRole(t *testing.T) {
	auth := &stubAuthGateway{
		loginToken:  "tok-2",
		profileUser: &domain.User{Username: "maria", Role: domain.RoleAdmin},
	}
	svc, _ := newTestSession(auth, &stubSessionStorage{token: "tok-1"})

	_, err := svc.Role(context.Background())
	require.NoError(t, err)
	require.NoError(t, svc.Login(context.Background(), "pedro", "secret"))

	// The new token forces a fresh role resolution.
	_, err = svc.Role(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, auth.profileCalls)
}
