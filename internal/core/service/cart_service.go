package service

import (
	"github.com/rs/zerolog"

	"github.com/smartsales365/terminal/internal/core/domain"
	"github.com/smartsales365/terminal/internal/core/ports"
)

// CartService owns the in-progress order. It applies the domain cart rules
// and synchronously persists the full snapshot after every mutation. A
// single goroutine owns it; there is no locking.
type CartService struct {
	storage ports.CartStorage
	cart    *domain.Cart
	log     zerolog.Logger
}

var _ ports.CartStore = (*CartService)(nil)

// NewCartService restores the cart from storage, starting empty when the
// snapshot is absent or unreadable.
func NewCartService(storage ports.CartStorage, log zerolog.Logger) *CartService {
	cart, err := storage.Load()
	if err != nil || cart == nil {
		if err != nil {
			log.Warn().Err(err).Msg("cart snapshot unreadable, starting empty")
		}
		cart = domain.NewCart()
	}
	return &CartService{storage: storage, cart: cart, log: log}
}

func (s *CartService) Add(product domain.ProductRef, qty int) (bool, error) {
	changed := s.cart.Add(product, qty)
	if !changed {
		s.log.Debug().Int64("product_id", product.ID).Msg("stock limit reached, cart unchanged")
		return false, nil
	}
	return true, s.persist()
}

func (s *CartService) SetQuantity(productID int64, qty int) error {
	s.cart.SetQuantity(productID, qty)
	return s.persist()
}

func (s *CartService) Remove(productID int64) error {
	s.cart.Remove(productID)
	return s.persist()
}

func (s *CartService) Clear() error {
	s.cart.Clear()
	return s.storage.Clear()
}

// Lines returns a copy; callers cannot mutate the cart behind the store.
func (s *CartService) Lines() []domain.CartLine {
	lines := make([]domain.CartLine, len(s.cart.Lines))
	copy(lines, s.cart.Lines)
	return lines
}

func (s *CartService) Total() domain.Money {
	return s.cart.Total()
}

func (s *CartService) ItemCount() int {
	return s.cart.ItemCount()
}

func (s *CartService) IsEmpty() bool {
	return s.cart.IsEmpty()
}

// Items converts the cart into the item list sent to sale and
// payment-intent endpoints.
func (s *CartService) Items() []ports.SaleItemInput {
	items := make([]ports.SaleItemInput, 0, len(s.cart.Lines))
	for _, l := range s.cart.Lines {
		items = append(items, ports.SaleItemInput{ProductID: l.Product.ID, Quantity: l.Quantity})
	}
	return items
}

func (s *CartService) persist() error {
	if err := s.storage.Save(s.cart); err != nil {
		s.log.Error().Err(err).Msg("failed to persist cart snapshot")
		return err
	}
	return nil
}
