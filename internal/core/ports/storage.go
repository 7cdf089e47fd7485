package ports

import "github.com/smartsales365/terminal/internal/core/domain"

// CartStorage persists the cart snapshot between runs, the terminal's
// equivalent of the browser's local storage key. Load must treat absent or
// corrupt data as an empty cart, never as a fatal error.
type CartStorage interface {
	Load() (*domain.Cart, error)
	Save(cart *domain.Cart) error
	Clear() error
}

// SessionStorage persists the opaque auth token. The role is deliberately
// not persisted; it is re-resolved from the profile endpoint per token.
type SessionStorage interface {
	LoadToken() (string, error)
	SaveToken(token string) error
	Clear() error
}
