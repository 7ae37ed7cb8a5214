package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPricesCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Show current milk prices per liter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			prices := app.prices.MilkPrices(cmd.Context())
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), prices)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "buffalo: ₹%.2f/L\ncow:     ₹%.2f/L\n", prices.Buffalo, prices.Cow)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}
