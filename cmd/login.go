package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
)

func newLoginCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start a Taaza session",
	}

	cmd.AddCommand(newLoginPasswordCmd(app), newLoginOTPCmd(app))

	return cmd
}

func newLoginPasswordCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Log in with email and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.auth.LoginWithPassword(cmd.Context(), strings.TrimSpace(email), password)
			if err != nil {
				return loginError(err)
			}
			return printLoggedIn(cmd, result)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginOTPCmd(app *app) *cobra.Command {
	var email string
	var otp string

	cmd := &cobra.Command{
		Use:   "otp",
		Short: "Log in with a one-time code sent by email",
		Long:  "Without --otp a code is requested and sent to the email address. Run the command again with --otp to verify it.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email = strings.TrimSpace(email)
			if otp == "" {
				if err := app.auth.RequestOTP(cmd.Context(), email); err != nil {
					return loginError(err)
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Code sent to %s. Run: tz login otp --email %s --otp <code>\n", email, email)
				return err
			}

			result, err := app.auth.VerifyOTP(cmd.Context(), email, strings.TrimSpace(otp))
			if err != nil {
				return loginError(err)
			}
			return printLoggedIn(cmd, result)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&otp, "otp", "", "One-time code received by email")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func printLoggedIn(cmd *cobra.Command, result domain.LoginResult) error {
	who := result.User.Email
	if result.User.Name != "" {
		who = fmt.Sprintf("%s <%s>", result.User.Name, result.User.Email)
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", who)
	return err
}

// loginError keeps the backend's message for rejected credentials; a 401 here
// means wrong credentials, not an expired session.
func loginError(err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		return fmt.Errorf("login rejected: %w", err)
	}
	return err
}
