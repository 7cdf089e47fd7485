// Package localstore persists the terminal's client-side state (the auth
// token and the cart snapshot) as JSON files under a fixed state directory,
// the terminal's stand-in for browser local storage.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/smartsales365/terminal/internal/core/domain"
	"github.com/smartsales365/terminal/internal/core/ports"
)

const (
	cartFile    = "cart.json"
	sessionFile = "session.json"
)

// Store owns the state directory. Carts and Sessions expose the two fixed
// files behind the storage ports.
type Store struct {
	dir string
	log zerolog.Logger
}

func New(dir string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("localstore: create state dir: %w", err)
	}
	return &Store{dir: dir, log: log}, nil
}

func (s *Store) Carts() ports.CartStorage {
	return &cartStore{s}
}

func (s *Store) Sessions() ports.SessionStorage {
	return &sessionStore{s}
}

func (s *Store) write(name string, data []byte) error {
	path := filepath.Join(s.dir, name)
	// Write-then-rename keeps a crash from truncating the live snapshot.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("localstore: write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("localstore: replace %s: %w", name, err)
	}
	return nil
}

func (s *Store) remove(name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("localstore: remove %s: %w", name, err)
	}
	return nil
}

// cartStore keeps the serialized cart. Absent or corrupt data loads as an
// empty cart, never as a fatal error.
type cartStore struct {
	*Store
}

var _ ports.CartStorage = (*cartStore)(nil)

func (s *cartStore) Load() (*domain.Cart, error) {
	path := filepath.Join(s.dir, cartFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: read cart: %w", err)
	}
	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("corrupt cart snapshot, starting empty")
		return domain.NewCart(), nil
	}
	return &cart, nil
}

func (s *cartStore) Save(cart *domain.Cart) error {
	data, err := json.MarshalIndent(cart, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: encode cart: %w", err)
	}
	return s.write(cartFile, data)
}

func (s *cartStore) Clear() error {
	return s.remove(cartFile)
}

// sessionStore keeps the opaque auth token.
type sessionStore struct {
	*Store
}

var _ ports.SessionStorage = (*sessionStore)(nil)

type sessionState struct {
	Token string `json:"token"`
}

func (s *sessionStore) LoadToken() (string, error) {
	path := filepath.Join(s.dir, sessionFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("localstore: read session: %w", err)
	}
	var state sessionState
	if err := json.Unmarshal(data, &state); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("corrupt session state, starting anonymous")
		return "", nil
	}
	return state.Token, nil
}

func (s *sessionStore) SaveToken(token string) error {
	data, err := json.Marshal(sessionState{Token: token})
	if err != nil {
		return fmt.Errorf("localstore: encode session: %w", err)
	}
	return s.write(sessionFile, data)
}

func (s *sessionStore) Clear() error {
	return s.remove(sessionFile)
}
