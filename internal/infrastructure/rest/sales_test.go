package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsales365/terminal/internal/core/ports"
)

func TestSaleCreatePayloadAndIdempotencyKey(t *testing.T) {
	var (
		idemKey string
		payload map[string]json.RawMessage
	)
	client := newTestClient(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ventas/", r.URL.Path)
		idemKey = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		_, _ = w.Write([]byte(`{"id":42,"total":"2999.80","estado":"COM"}`))
	})

	clientID := int64(3)
	sale, err := NewSaleGateway(client).Create(context.Background(), ports.CreateSaleInput{
		ClientID:       &clientID,
		Items:          []ports.SaleItemInput{{ProductID: 7, Quantity: 2}},
		IdempotencyKey: "key-123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), sale.ID)
	assert.Equal(t, "key-123", idemKey)

	assert.JSONEq(t, `3`, string(payload["cliente"]))
	assert.JSONEq(t, `[{"producto":7,"cantidad":2}]`, string(payload["detalles"]))
	_, hasNewClient := payload["cliente_nuevo"]
	assert.False(t, hasNewClient)
}

func TestSaleCreateWithNewClient(t *testing.T) {
	var payload map[string]json.RawMessage
	client := newTestClient(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		_, _ = w.Write([]byte(`{"id":43}`))
	})

	_, err := NewSaleGateway(client).Create(context.Background(), ports.CreateSaleInput{
		Items: []ports.SaleItemInput{{ProductID: 7, Quantity: 1}},
		NewClient: &ports.ClientInput{
			FirstName: "Maria", LastName: "Lopez",
			Email: "maria@example.com", Address: "Av. Siempre Viva 742",
		},
	})
	require.NoError(t, err)

	// Customers send no cliente id; the backend binds their own profile.
	assert.JSONEq(t, `null`, string(payload["cliente"]))
	var newClient ports.ClientInput
	require.NoError(t, json.Unmarshal(payload["cliente_nuevo"], &newClient))
	assert.Equal(t, "Maria", newClient.FirstName)
}

func TestSaleListDecodes(t *testing.T) {
	client := newTestClient(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`[{"id":1,"total":"100.00","estado":"PEN","vendedor_username":"pedro"}]`))
	})

	sales, err := NewSaleGateway(client).List(context.Background())
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "pedro", sales[0].SellerUsername)
}

func TestCreateIntentPayloadAndSecret(t *testing.T) {
	var (
		idemKey string
		payload map[string]json.RawMessage
	)
	client := newTestClient(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/create-payment-intent/", r.URL.Path)
		idemKey = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		_, _ = w.Write([]byte(`{"clientSecret":"pi_123_secret_abc"}`))
	})

	secret, err := NewPaymentGateway(client).CreateIntent(context.Background(), ports.CreateIntentInput{
		Items:          []ports.SaleItemInput{{ProductID: 7, Quantity: 2}},
		IdempotencyKey: "key-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_abc", secret)
	assert.Equal(t, "key-123", idemKey)
	assert.JSONEq(t, `[{"id":7,"quantity":2}]`, string(payload["items"]))
}
