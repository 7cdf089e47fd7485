package ports

import "context"

// CreateIntentInput asks the backend for a payment intent covering the cart.
// The amount is computed server-side from the item list, never trusted from
// the client.
type CreateIntentInput struct {
	Items []SaleItemInput
	// NewClient mirrors the cliente_nuevo payload sent alongside checkout.
	NewClient *ClientInput
	// IdempotencyKey is reused for the follow-up sale registration.
	IdempotencyKey string
}

// PaymentGateway wraps POST /api/create-payment-intent/.
type PaymentGateway interface {
	// CreateIntent returns the intent's client secret.
	CreateIntent(ctx context.Context, input CreateIntentInput) (string, error)
}

// CardDetails is the card as typed at the terminal. It is sent to the
// payment provider only, never to the SmartSales365 backend.
type CardDetails struct {
	Number   string `validate:"required,credit_card"`
	ExpMonth int    `validate:"required,min=1,max=12"`
	ExpYear  int    `validate:"required,min=2000"`
	CVC      string `validate:"required,min=3,max=4"`
}

// BillingDetails accompany the confirmation for receipt purposes.
type BillingDetails struct {
	Name  string
	Email string
}

// PaymentResult is the provider's view of the intent after confirmation.
type PaymentResult struct {
	IntentID string
	// Status is the provider's state string; anything but "succeeded" is a
	// payment failure.
	Status string
}

// CardConfirmer confirms a card payment against an intent client secret,
// the step the hosted checkout delegates to the provider's browser SDK.
type CardConfirmer interface {
	ConfirmCardPayment(ctx context.Context, clientSecret string, card CardDetails, billing BillingDetails) (*PaymentResult, error)
}
