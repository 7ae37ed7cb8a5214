package cmd

import (
	"github.com/spf13/cobra"
)

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and clear local session data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			watchdog, _, err := app.newWatchdog(cmd, watchdogOptions{out: cmd.OutOrStdout()})
			if err != nil {
				return err
			}
			defer watchdog.Dispose()

			app.auth.Logout(cmd.Context(), watchdog)
			return nil
		},
	}
}
