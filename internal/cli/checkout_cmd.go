package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartsales365/terminal/internal/core/domain"
	"github.com/smartsales365/terminal/internal/core/ports"
)

// checkoutProgress mirrors the staged toasts of the hosted checkout.
var checkoutProgress = map[domain.CheckoutState]string{
	domain.CheckoutLoadingProfile:    "verifying your information...",
	domain.CheckoutNeedsClientData:   "no client profile on file, using the provided details",
	domain.CheckoutHasClientData:     "client details loaded",
	domain.CheckoutSubmittingIntent:  "preparing payment...",
	domain.CheckoutConfirmingPayment: "confirming card payment with the bank...",
	domain.CheckoutRegisteringSale:   "payment accepted, registering your order...",
}

func newCheckoutCmd(app *App) *cobra.Command {
	var card ports.CardDetails
	var client ports.ClientInput

	cmd := &cobra.Command{
		Use:     "checkout",
		Short:   "Pay for the cart by card and register the sale",
		PreRunE: requireSession(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkForm(card); err != nil {
				return err
			}

			input := ports.CheckoutInput{
				Card: card,
				// Invoked only when the profile has no client sub-profile:
				// the required-fields form, fed from flags.
				ClientData: func() (*ports.ClientInput, error) {
					if err := checkForm(client); err != nil {
						return nil, fmt.Errorf("%w: %v", domain.ErrClientDataRequired, err)
					}
					return &client, nil
				},
				OnTransition: func(state domain.CheckoutState) {
					if msg, ok := checkoutProgress[state]; ok {
						fmt.Fprintln(app.out(), msg)
					}
				},
			}

			result, err := app.Checkout.Run(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out(), "purchase completed, order #%d registered, total %s\n",
				result.Sale.ID, result.Sale.Total)
			fmt.Fprintln(app.out(), "run 'smartsales sales' to see your orders")
			return nil
		},
	}

	cmd.Flags().StringVar(&card.Number, "card-number", "", "card number")
	cmd.Flags().IntVar(&card.ExpMonth, "exp-month", 0, "card expiry month (1-12)")
	cmd.Flags().IntVar(&card.ExpYear, "exp-year", 0, "card expiry year")
	cmd.Flags().StringVar(&card.CVC, "cvc", "", "card security code")

	cmd.Flags().StringVar(&client.FirstName, "name", "", "client first name (when no profile exists)")
	cmd.Flags().StringVar(&client.LastName, "surname", "", "client surname")
	cmd.Flags().StringVar(&client.Email, "email", "", "client email")
	cmd.Flags().StringVar(&client.Phone, "phone", "", "client phone")
	cmd.Flags().StringVar(&client.Address, "address", "", "client address")
	cmd.Flags().StringVar(&client.TaxID, "nit", "", "client NIT/CI")
	return cmd
}

func newSalesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "sales",
		Short:   "Show sales history (your purchases, or all sales for staff)",
		PreRunE: requireSession(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			sales, err := app.Sales.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(sales) == 0 {
				fmt.Fprintln(app.out(), "no sales recorded")
				return nil
			}
			renderSales(app.out(), sales)
			return nil
		},
	}
}
