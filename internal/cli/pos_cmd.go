package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/smartsales365/terminal/internal/core/domain"
	"github.com/smartsales365/terminal/internal/core/ports"
)

// newPOSCmd is the point-of-sale terminal: a seller or admin registers a
// sale for an existing client directly, with no card payment step. Stock is
// validated and decremented server-side inside the sale transaction.
func newPOSCmd(app *App) *cobra.Command {
	var clientID int64
	var items []string

	cmd := &cobra.Command{
		Use:     "pos",
		Short:   "Register an in-store sale (sellers and admins)",
		PreRunE: requireStaff(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			if clientID <= 0 {
				return fmt.Errorf("select a client for the sale with --client")
			}
			if len(items) == 0 {
				return domain.ErrEmptyCart
			}

			input := ports.CreateSaleInput{
				ClientID:       &clientID,
				IdempotencyKey: uuid.NewString(),
			}
			for _, item := range items {
				parsed, err := parseItem(item)
				if err != nil {
					return err
				}
				input.Items = append(input.Items, parsed)
			}

			sale, err := app.Sales.Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out(), "sale #%d registered, total %s\n", sale.ID, sale.Total)
			return nil
		},
	}
	cmd.Flags().Int64Var(&clientID, "client", 0, "existing client id the sale is for")
	cmd.Flags().StringArrayVarP(&items, "item", "i", nil, "sale line as <product-id>:<qty> (repeatable)")
	return cmd
}

// parseItem decodes an --item value of the form "12:3" (product 12, qty 3).
// The quantity defaults to 1 when omitted.
func parseItem(s string) (ports.SaleItemInput, error) {
	idPart, qtyPart, hasQty := strings.Cut(s, ":")
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return ports.SaleItemInput{}, fmt.Errorf("invalid item %q: want <product-id>:<qty>", s)
	}
	qty := 1
	if hasQty {
		qty, err = strconv.Atoi(qtyPart)
		if err != nil || qty <= 0 {
			return ports.SaleItemInput{}, fmt.Errorf("invalid quantity in item %q", s)
		}
	}
	return ports.SaleItemInput{ProductID: id, Quantity: qty}, nil
}
