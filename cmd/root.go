package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tz",
		Short:         "Taaza CLI (tz): milk subscriptions, deliveries and inventory",
		Long:          "tz is the terminal client for Taaza dairy: log in, manage delivery addresses, subscriptions and preferences, inspect inventory, and keep idle sessions from lingering.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newSessionCmd(app),
		newAddressCmd(app),
		newSubscriptionCmd(app),
		newPreferenceCmd(app),
		newInventoryCmd(app),
		newPricesCmd(app),
		newMigrateCmd(app),
		newLocalCmd(app),
	)

	return rootCmd
}
