// Package cli is the terminal's view layer: the command tree plays the part
// of route composition, with auth- and role-gates deciding which commands
// are reachable.
package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/smartsales365/terminal/internal/config"
	"github.com/smartsales365/terminal/internal/core/ports"
)

// App bundles the services and gateways the commands render. Everything is
// injected; commands hold no globals.
type App struct {
	Config   *config.Config
	Session  ports.Session
	Cart     ports.CartStore
	Checkout ports.CheckoutFlow
	Reports  ports.ReportRunner
	Clients  ports.ClientGateway
	Products ports.ProductGateway
	Sales    ports.SaleGateway
	Log      zerolog.Logger

	// Out receives command output; defaults to stdout.
	Out io.Writer
	// In feeds interactive prompts; defaults to stdin.
	In io.Reader
}

func (a *App) out() io.Writer {
	if a.Out != nil {
		return a.Out
	}
	return os.Stdout
}

func (a *App) in() io.Reader {
	if a.In != nil {
		return a.In
	}
	return os.Stdin
}

// NewRootCmd assembles the command tree.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "smartsales",
		Short:         "SmartSales365 terminal client",
		Long:          "Terminal client for the SmartSales365 retail backend: catalog, cart, checkout, administration, point of sale and AI-assisted reports.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newRegisterCmd(app),
		newPasswordResetCmd(app),
		newProfileCmd(app),
		newCatalogCmd(app),
		newCartCmd(app),
		newCheckoutCmd(app),
		newSalesCmd(app),
		newClientsCmd(app),
		newProductsCmd(app),
		newPOSCmd(app),
		newReportsCmd(app),
	)
	return root
}

// Execute runs the tree and maps errors to user-facing messages.
func Execute(app *App) int {
	if err := NewRootCmd(app).Execute(); err != nil {
		msg, code := resolveError(err)
		app.Log.Error().Err(err).Msg("command failed")
		printError(app.out(), msg)
		return code
	}
	return 0
}
