package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartsales365/terminal/internal/core/domain"
)

// requireSession gates a command on the presence of a stored token, the
// equivalent of redirecting an anonymous visitor to the login view.
func requireSession(app *App) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if !app.Session.Authenticated() {
			return domain.ErrNoSession
		}
		return nil
	}
}

// requireStaff additionally resolves the role (once per token, cached for
// the session) and admits only admins and sellers.
func requireStaff(app *App) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if !app.Session.Authenticated() {
			return domain.ErrNoSession
		}
		role, err := app.Session.Role(cmd.Context())
		if err != nil {
			return err
		}
		if !role.Staff() {
			return fmt.Errorf("%w: %s requires an administrator or seller account (you are %s)",
				domain.ErrForbidden, cmd.CommandPath(), role.Label())
		}
		return nil
	}
}
