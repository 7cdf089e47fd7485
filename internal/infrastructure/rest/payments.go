package rest

import (
	"context"
	"net/http"

	"github.com/smartsales365/terminal/internal/core/ports"
)

// PaymentGateway implements ports.PaymentGateway over
// POST /api/create-payment-intent/.
type PaymentGateway struct {
	*Client
}

var _ ports.PaymentGateway = (*PaymentGateway)(nil)

func NewPaymentGateway(client *Client) *PaymentGateway {
	return &PaymentGateway{Client: client}
}

type intentItemPayload struct {
	ID       int64 `json:"id"`
	Quantity int   `json:"quantity"`
}

type createIntentPayload struct {
	Items     []intentItemPayload `json:"items"`
	NewClient *ports.ClientInput  `json:"cliente_nuevo,omitempty"`
}

func (g *PaymentGateway) CreateIntent(ctx context.Context, input ports.CreateIntentInput) (string, error) {
	payload := createIntentPayload{NewClient: input.NewClient}
	for _, item := range input.Items {
		payload.Items = append(payload.Items, intentItemPayload{ID: item.ProductID, Quantity: item.Quantity})
	}

	buf, err := marshalJSON(payload)
	if err != nil {
		return "", err
	}
	req, err := g.newRequest(ctx, http.MethodPost, "/api/create-payment-intent/", buf, "application/json", true)
	if err != nil {
		return "", err
	}
	if input.IdempotencyKey != "" {
		req.Header.Set("Idempotency-Key", input.IdempotencyKey)
	}
	var out struct {
		ClientSecret string `json:"clientSecret"`
	}
	if err := g.do(req, &out); err != nil {
		return "", err
	}
	return out.ClientSecret, nil
}
