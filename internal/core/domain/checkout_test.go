package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutHappyPath(t *testing.T) {
	path := []CheckoutState{
		CheckoutIdle,
		CheckoutLoadingProfile,
		CheckoutHasClientData,
		CheckoutSubmittingIntent,
		CheckoutConfirmingPayment,
		CheckoutRegisteringSale,
		CheckoutSucceeded,
	}
	for i := 0; i < len(path)-1; i++ {
		assert.True(t, path[i].CanTransitionTo(path[i+1]), "%s -> %s", path[i], path[i+1])
	}
}

func TestCheckoutFailureTransitions(t *testing.T) {
	assert.True(t, CheckoutSubmittingIntent.CanTransitionTo(CheckoutPaymentFailed))
	assert.True(t, CheckoutConfirmingPayment.CanTransitionTo(CheckoutPaymentFailed))
	assert.True(t, CheckoutRegisteringSale.CanTransitionTo(CheckoutSaleNotRecorded))

	// Once the card is captured, the flow can no longer end in an ordinary
	// payment failure.
	assert.False(t, CheckoutRegisteringSale.CanTransitionTo(CheckoutPaymentFailed))
}

func TestCheckoutInvalidTransitions(t *testing.T) {
	assert.False(t, CheckoutIdle.CanTransitionTo(CheckoutSubmittingIntent))
	assert.False(t, CheckoutSucceeded.CanTransitionTo(CheckoutIdle))
	assert.False(t, CheckoutPaymentFailed.CanTransitionTo(CheckoutSubmittingIntent))
	assert.False(t, CheckoutLoadingProfile.CanTransitionTo(CheckoutSucceeded))
}

func TestCheckoutTerminalStates(t *testing.T) {
	for _, s := range []CheckoutState{CheckoutSucceeded, CheckoutPaymentFailed, CheckoutSaleNotRecorded} {
		assert.True(t, s.Terminal(), string(s))
	}
	for _, s := range []CheckoutState{CheckoutIdle, CheckoutLoadingProfile, CheckoutRegisteringSale} {
		assert.False(t, s.Terminal(), string(s))
	}
}

func TestRoleStaff(t *testing.T) {
	assert.True(t, RoleAdmin.Staff())
	assert.True(t, RoleSeller.Staff())
	assert.False(t, RoleCustomer.Staff())
	assert.False(t, RoleAnonymous.Staff())
}
