package domain

import "errors"

// CheckoutState is the explicit progression of the card-payment flow. The
// critical case (payment captured but sale not recorded) is a distinct
// terminal state rather than an exception caught ad hoc.
type CheckoutState string

const (
	CheckoutIdle              CheckoutState = "idle"
	CheckoutLoadingProfile    CheckoutState = "loading_profile"
	CheckoutNeedsClientData   CheckoutState = "needs_client_data"
	CheckoutHasClientData     CheckoutState = "has_client_data"
	CheckoutSubmittingIntent  CheckoutState = "submitting_payment_intent"
	CheckoutConfirmingPayment CheckoutState = "confirming_card_payment"
	CheckoutRegisteringSale   CheckoutState = "registering_sale"
	CheckoutSucceeded         CheckoutState = "success"
	CheckoutPaymentFailed     CheckoutState = "payment_failed"
	CheckoutSaleNotRecorded   CheckoutState = "sale_registration_failed"
)

// validCheckoutTransitions defines the allowed state machine transitions.
var validCheckoutTransitions = map[CheckoutState][]CheckoutState{
	CheckoutIdle:              {CheckoutLoadingProfile},
	CheckoutLoadingProfile:    {CheckoutNeedsClientData, CheckoutHasClientData},
	CheckoutNeedsClientData:   {CheckoutSubmittingIntent},
	CheckoutHasClientData:     {CheckoutSubmittingIntent},
	CheckoutSubmittingIntent:  {CheckoutConfirmingPayment, CheckoutPaymentFailed},
	CheckoutConfirmingPayment: {CheckoutRegisteringSale, CheckoutPaymentFailed},
	CheckoutRegisteringSale:   {CheckoutSucceeded, CheckoutSaleNotRecorded},
}

var ErrInvalidCheckoutTransition = errors.New("invalid checkout transition")

// CanTransitionTo reports whether moving from the current state to next is valid.
func (s CheckoutState) CanTransitionTo(next CheckoutState) bool {
	for _, allowed := range validCheckoutTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the flow has finished, successfully or not.
func (s CheckoutState) Terminal() bool {
	switch s {
	case CheckoutSucceeded, CheckoutPaymentFailed, CheckoutSaleNotRecorded:
		return true
	}
	return false
}
