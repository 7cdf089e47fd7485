package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartsales365/terminal/internal/core/ports"
)

func newLoginCmd(app *App) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if username == "" {
				if username, err = prompt(app, "Username: "); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = prompt(app, "Password: "); err != nil {
					return err
				}
			}
			if err := app.Session.Login(cmd.Context(), username, password); err != nil {
				return err
			}
			fmt.Fprintf(app.out(), "logged in as %s\n", username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		Short:   "Invalidate the session and clear local state",
		PreRunE: requireSession(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Session.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(app.out(), "logged out")
			return nil
		},
	}
}

func newRegisterCmd(app *App) *cobra.Command {
	var form registerForm
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new customer account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkForm(form); err != nil {
				return err
			}
			input := ports.RegisterInput{
				Username:  form.Username,
				Email:     form.Email,
				Password:  form.Password,
				FirstName: form.FirstName,
				LastName:  form.LastName,
			}
			if form.Age > 0 {
				input.Age = &form.Age
			}
			user, err := app.Session.Register(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out(), "account %s created, run 'smartsales login' to start\n", user.Username)
			return nil
		},
	}
	cmd.Flags().StringVarP(&form.Username, "username", "u", "", "desired username")
	cmd.Flags().StringVarP(&form.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&form.Password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&form.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&form.LastName, "last-name", "", "last name")
	cmd.Flags().IntVar(&form.Age, "age", 0, "age (optional)")
	return cmd
}

func newPasswordResetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password-reset",
		Short: "Request or confirm a password reset",
	}

	var email string
	request := &cobra.Command{
		Use:   "request",
		Short: "Request a reset; in dev mode the backend returns uid and token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return fmt.Errorf("email is required")
			}
			ticket, err := app.Session.RequestPasswordReset(cmd.Context(), email)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.out(), ticket.Detail)
			if ticket.UID != "" {
				fmt.Fprintf(app.out(), "uid: %s\ntoken: %s\n", ticket.UID, ticket.Token)
			}
			return nil
		},
	}
	request.Flags().StringVarP(&email, "email", "e", "", "account email")

	var form resetConfirmForm
	confirm := &cobra.Command{
		Use:   "confirm",
		Short: "Set a new password using the uid and token from the request step",
		RunE: func(cmd *cobra.Command, args []string) error {
			if form.Password2 == "" {
				form.Password2 = form.Password
			}
			if err := checkForm(form); err != nil {
				return err
			}
			err := app.Session.ConfirmPasswordReset(cmd.Context(), ports.ConfirmPasswordResetInput{
				UID:          form.UID,
				Token:        form.Token,
				NewPassword1: form.Password,
				NewPassword2: form.Password2,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(app.out(), "password updated, log in with the new password")
			return nil
		},
	}
	confirm.Flags().StringVar(&form.UID, "uid", "", "reset uid")
	confirm.Flags().StringVar(&form.Token, "token", "", "reset token")
	confirm.Flags().StringVarP(&form.Password, "password", "p", "", "new password")

	cmd.AddCommand(request, confirm)
	return cmd
}

func newProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "profile",
		Short:   "Show the authenticated account",
		PreRunE: requireSession(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Session.Profile(cmd.Context())
			if err != nil {
				return err
			}
			out := app.out()
			fmt.Fprintf(out, "username: %s\nemail:    %s\nname:     %s %s\nrole:     %s\n",
				user.Username, user.Email, user.FirstName, user.LastName, user.Role.Label())
			if user.ClientProfile != nil {
				c := user.ClientProfile
				fmt.Fprintf(out, "client:   %s %s, %s, %s\n", c.FirstName, c.LastName, c.Email, c.Address)
			}
			return nil
		},
	}
}

func prompt(app *App, label string) (string, error) {
	fmt.Fprint(app.out(), label)
	reader := bufio.NewReader(app.in())
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
