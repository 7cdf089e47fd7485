package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsales365/terminal/internal/core/domain"
	"github.com/smartsales365/terminal/internal/core/ports"
)

func TestParseItem(t *testing.T) {
	item, err := parseItem("12:3")
	require.NoError(t, err)
	assert.Equal(t, ports.SaleItemInput{ProductID: 12, Quantity: 3}, item)

	// Quantity defaults to 1.
	item, err = parseItem("12")
	require.NoError(t, err)
	assert.Equal(t, ports.SaleItemInput{ProductID: 12, Quantity: 1}, item)

	for _, bad := range []string{"", "abc", "0:1", "-3:1", "12:0", "12:-1", "12:x"} {
		_, err := parseItem(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "abc", "0", "-1"} {
		_, err := parseID(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestFilterProducts(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Name: "Laptop Pro", Brand: "Acme", Category: "laptops"},
		{ID: 2, Name: "Mouse", Brand: "Logi", Category: "accesorios"},
		{ID: 3, Name: "Teclado", Brand: "Acme", Category: "accesorios"},
	}

	ids := func(matched []domain.Product) []int64 {
		var out []int64
		for _, p := range matched {
			out = append(out, p.ID)
		}
		return out
	}

	assert.Equal(t, []int64{1, 3}, ids(filterProducts(products, "acme")))
	assert.Equal(t, []int64{2, 3}, ids(filterProducts(products, "ACCESORIOS")))
	assert.Equal(t, []int64{1}, ids(filterProducts(products, "laptop p")))
	assert.Empty(t, filterProducts(products, "impresora"))
	assert.Len(t, filterProducts(products, ""), 3)
}

func TestCheckFormMessages(t *testing.T) {
	err := checkForm(registerForm{Username: "maria", Email: "not-an-email", Password: "short"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email")
	assert.Contains(t, err.Error(), "password must be at least 8")

	err = checkForm(registerForm{Username: "maria", Email: "maria@example.com", Password: "longenough"})
	assert.NoError(t, err)
}

func TestCheckFormClientInput(t *testing.T) {
	err := checkForm(ports.ClientInput{FirstName: "Maria"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lastname is required")
	assert.Contains(t, err.Error(), "email is required")
	assert.Contains(t, err.Error(), "address is required")

	err = checkForm(ports.ClientInput{
		FirstName: "Maria", LastName: "Lopez",
		Email: "maria@example.com", Address: "Av. Siempre Viva 742",
	})
	assert.NoError(t, err)
}

func TestCheckFormResetConfirmPasswordsMustMatch(t *testing.T) {
	err := checkForm(resetConfirmForm{
		UID: "u1", Token: "tok", Password: "longenough", Password2: "different",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must match password")
}

func TestCheckFormCardDetails(t *testing.T) {
	err := checkForm(ports.CardDetails{Number: "1234", ExpMonth: 13, ExpYear: 1999, CVC: "12"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card number")

	err = checkForm(ports.CardDetails{Number: "4242424242424242", ExpMonth: 12, ExpYear: 2030, CVC: "123"})
	assert.NoError(t, err)
}
