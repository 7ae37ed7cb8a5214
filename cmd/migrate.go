package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Move addresses, preferences and delivery settings saved locally by the old client to the server",
		RunE: app.protected(func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			addresses, err := app.addresses.MigrateLegacyAddresses(cmd.Context())
			if err != nil {
				return fmt.Errorf("migrate addresses: %w", err)
			}
			report := app.data.MigrateLegacyData(cmd.Context())

			_, _ = fmt.Fprintf(out, "addresses:    %d\n", addresses)
			_, _ = fmt.Fprintf(out, "preferences:  %d\n", report.Preferences)
			_, err = fmt.Fprintf(out, "subscription: %t\n", report.Subscription)
			return err
		}),
	}
}
