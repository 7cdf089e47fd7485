package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/smartsales365/terminal/internal/core/domain"
	"github.com/smartsales365/terminal/internal/core/ports"
)

// CheckoutService runs the card-payment flow as an explicit state machine:
// verify profile, create a payment intent, confirm the card with the
// provider, register the sale. A failure after the card was captured is the
// critical terminal state and leaves the cart intact.
type CheckoutService struct {
	cart     ports.CartStore
	session  ports.Session
	payments ports.PaymentGateway
	cards    ports.CardConfirmer
	sales    ports.SaleGateway
	log      zerolog.Logger
}

var _ ports.CheckoutFlow = (*CheckoutService)(nil)

func NewCheckoutService(
	cart ports.CartStore,
	session ports.Session,
	payments ports.PaymentGateway,
	cards ports.CardConfirmer,
	sales ports.SaleGateway,
	log zerolog.Logger,
) *CheckoutService {
	return &CheckoutService{
		cart:     cart,
		session:  session,
		payments: payments,
		cards:    cards,
		sales:    sales,
		log:      log,
	}
}

// run tracks the machine state for a single execution.
type run struct {
	state  domain.CheckoutState
	notify func(domain.CheckoutState)
}

func (r *run) to(next domain.CheckoutState) error {
	if !r.state.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidCheckoutTransition, r.state, next)
	}
	r.state = next
	if r.notify != nil {
		r.notify(next)
	}
	return nil
}

// Run executes the flow once. The terminal state is always reported in the
// result, alongside the error that ended a failed run.
func (s *CheckoutService) Run(ctx context.Context, input ports.CheckoutInput) (*ports.CheckoutResult, error) {
	r := &run{state: domain.CheckoutIdle, notify: input.OnTransition}
	result := func(sale *domain.Sale) *ports.CheckoutResult {
		return &ports.CheckoutResult{State: r.state, Sale: sale}
	}

	// An empty cart redirects away before any network traffic.
	if s.cart.IsEmpty() {
		return result(nil), domain.ErrEmptyCart
	}

	if err := r.to(domain.CheckoutLoadingProfile); err != nil {
		return result(nil), err
	}

	var newClient *ports.ClientInput
	billing := ports.BillingDetails{}

	user, err := s.session.Profile(ctx)
	switch {
	case err == nil && user.ClientProfile != nil:
		if err := r.to(domain.CheckoutHasClientData); err != nil {
			return result(nil), err
		}
		billing.Name = user.ClientProfile.FirstName + " " + user.ClientProfile.LastName
		billing.Email = user.ClientProfile.Email
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrNoSession):
		return result(nil), err
	default:
		// No client sub-profile yet (or the profile fetch failed for a
		// non-auth reason): demand the client data form before submission.
		if err != nil {
			s.log.Warn().Err(err).Msg("profile check failed, requesting client data")
		}
		if err := r.to(domain.CheckoutNeedsClientData); err != nil {
			return result(nil), err
		}
		if input.ClientData == nil {
			return result(nil), domain.ErrClientDataRequired
		}
		newClient, err = input.ClientData()
		if err != nil {
			return result(nil), err
		}
		if newClient == nil {
			return result(nil), domain.ErrClientDataRequired
		}
		billing.Name = newClient.FirstName + " " + newClient.LastName
		billing.Email = newClient.Email
	}

	items := make([]ports.SaleItemInput, 0, len(s.cart.Lines()))
	for _, l := range s.cart.Lines() {
		items = append(items, ports.SaleItemInput{ProductID: l.Product.ID, Quantity: l.Quantity})
	}
	idempotencyKey := uuid.NewString()

	// Step 1: payment intent.
	if err := r.to(domain.CheckoutSubmittingIntent); err != nil {
		return result(nil), err
	}
	secret, err := s.payments.CreateIntent(ctx, ports.CreateIntentInput{
		Items:          items,
		NewClient:      newClient,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		_ = r.to(domain.CheckoutPaymentFailed)
		return result(nil), fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}

	// Step 2: confirm the card with the provider.
	if err := r.to(domain.CheckoutConfirmingPayment); err != nil {
		return result(nil), err
	}
	payment, err := s.cards.ConfirmCardPayment(ctx, secret, input.Card, billing)
	if err != nil {
		_ = r.to(domain.CheckoutPaymentFailed)
		return result(nil), fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
	}
	if payment.Status != "succeeded" {
		_ = r.to(domain.CheckoutPaymentFailed)
		return result(nil), fmt.Errorf("%w: unexpected payment status %q", domain.ErrPaymentFailed, payment.Status)
	}

	// Step 3: register the sale. The payment is captured by now, so a
	// failure here is critical and must not clear the cart.
	if err := r.to(domain.CheckoutRegisteringSale); err != nil {
		return result(nil), err
	}
	sale, err := s.sales.Create(ctx, ports.CreateSaleInput{
		Items:          items,
		NewClient:      newClient,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		_ = r.to(domain.CheckoutSaleNotRecorded)
		s.log.Error().Err(err).
			Str("payment_intent", payment.IntentID).
			Msg("payment captured but sale registration failed")
		return result(nil), fmt.Errorf("%w: %v", domain.ErrSaleNotRecorded, err)
	}

	if err := r.to(domain.CheckoutSucceeded); err != nil {
		return result(sale), err
	}
	if err := s.cart.Clear(); err != nil {
		s.log.Error().Err(err).Msg("sale registered but cart snapshot not cleared")
	}
	s.log.Info().Int64("sale_id", sale.ID).Msg("checkout completed")
	return result(sale), nil
}
