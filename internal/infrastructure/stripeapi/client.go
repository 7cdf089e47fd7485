// Package stripeapi confirms card payments directly against the payment
// provider, the step the hosted checkout performs through the provider's
// browser SDK. Only the publishable key and the intent's client secret are
// used; no secret key ever reaches the terminal.
package stripeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/smartsales365/terminal/internal/core/domain"
	"github.com/smartsales365/terminal/internal/core/ports"
)

type Client struct {
	apiURL         string
	publishableKey string
	http           *http.Client
	log            zerolog.Logger
}

var _ ports.CardConfirmer = (*Client)(nil)

func NewClient(apiURL, publishableKey string, log zerolog.Logger) *Client {
	return &Client{
		apiURL:         strings.TrimRight(apiURL, "/"),
		publishableKey: publishableKey,
		http:           &http.Client{},
		log:            log,
	}
}

// SetHTTPClient swaps the underlying http.Client. Used by tests.
func (c *Client) SetHTTPClient(h *http.Client) {
	c.http = h
}

// intentIDFromSecret extracts the payment-intent id from a client secret of
// the form "pi_xxx_secret_yyy".
func intentIDFromSecret(clientSecret string) (string, error) {
	i := strings.Index(clientSecret, "_secret")
	if i <= 0 {
		return "", fmt.Errorf("malformed client secret")
	}
	return clientSecret[:i], nil
}

// ConfirmCardPayment confirms the intent with the typed card. Anything but a
// "succeeded" status, or a provider error payload, is a payment failure.
func (c *Client) ConfirmCardPayment(ctx context.Context, clientSecret string, card ports.CardDetails, billing ports.BillingDetails) (*ports.PaymentResult, error) {
	if c.publishableKey == "" {
		return nil, fmt.Errorf("payment provider publishable key not configured")
	}
	intentID, err := intentIDFromSecret(clientSecret)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("key", c.publishableKey)
	form.Set("client_secret", clientSecret)
	form.Set("payment_method_data[type]", "card")
	form.Set("payment_method_data[card][number]", card.Number)
	form.Set("payment_method_data[card][exp_month]", strconv.Itoa(card.ExpMonth))
	form.Set("payment_method_data[card][exp_year]", strconv.Itoa(card.ExpYear))
	form.Set("payment_method_data[card][cvc]", card.CVC)
	if billing.Name != "" {
		form.Set("payment_method_data[billing_details][name]", billing.Name)
	}
	if billing.Email != "" {
		form.Set("payment_method_data[billing_details][email]", billing.Email)
	}

	endpoint := fmt.Sprintf("%s/v1/payment_intents/%s/confirm", c.apiURL, intentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read provider response: %w", err)
	}

	var payload struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Error  *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode provider response: %w", err)
	}
	if payload.Error != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPaymentFailed, payload.Error.Message)
	}
	c.log.Debug().Str("intent", payload.ID).Str("status", payload.Status).Msg("payment confirmation")
	return &ports.PaymentResult{IntentID: payload.ID, Status: payload.Status}, nil
}
