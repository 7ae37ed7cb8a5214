package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
)

func newAddressCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Manage delivery addresses",
	}

	cmd.AddCommand(
		newAddressListCmd(app),
		newAddressAddCmd(app),
		newAddressUpdateCmd(app),
		newAddressDeleteCmd(app),
		newAddressDefaultCmd(app),
		newAddressMigrateCmd(app),
	)

	return cmd
}

func newAddressListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List delivery addresses",
		RunE: app.protected(func(cmd *cobra.Command, _ []string) error {
			addresses, err := app.addresses.List(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), addresses)
			}
			if len(addresses) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No addresses saved.")
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tLABEL\tADDRESS\tDEFAULT")
			for _, address := range addresses {
				def := ""
				if address.IsDefault {
					def = "yes"
				}
				_, _ = fmt.Fprintf(w, "%d\t%s\t%s, %s %s, %s\t%s\n",
					address.ID, address.Label, address.AddressLine, address.City, address.ZipCode, address.Country, def)
			}
			return w.Flush()
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func addressFlags(cmd *cobra.Command, input *domain.AddressInput, lat, lng *float64) {
	cmd.Flags().StringVar(&input.Label, "label", "", "Address label (Home, Office...)")
	cmd.Flags().StringVar(&input.AddressLine, "line", "", "Street address")
	cmd.Flags().StringVar(&input.City, "city", "", "City")
	cmd.Flags().StringVar(&input.State, "state", "", "State")
	cmd.Flags().StringVar(&input.ZipCode, "zip", "", "Postal code")
	cmd.Flags().StringVar(&input.Country, "country", "India", "Country")
	cmd.Flags().Float64Var(lat, "lat", 0, "Latitude")
	cmd.Flags().Float64Var(lng, "lng", 0, "Longitude")
	cmd.Flags().BoolVar(&input.IsDefault, "default", false, "Make this the default address")
}

func applyCoordinates(cmd *cobra.Command, input *domain.AddressInput, lat, lng float64) {
	if cmd.Flags().Changed("lat") {
		input.Latitude = &lat
	}
	if cmd.Flags().Changed("lng") {
		input.Longitude = &lng
	}
}

func newAddressAddCmd(app *app) *cobra.Command {
	var input domain.AddressInput
	var lat, lng float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a delivery address",
		RunE: app.protected(func(cmd *cobra.Command, _ []string) error {
			applyCoordinates(cmd, &input, lat, lng)
			address, err := app.addresses.Create(cmd.Context(), input)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added address %d (%s)\n", address.ID, address.Label)
			return err
		}),
	}
	addressFlags(cmd, &input, &lat, &lng)

	return cmd
}

func newAddressUpdateCmd(app *app) *cobra.Command {
	var input domain.AddressInput
	var lat, lng float64

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a delivery address",
		Args:  cobra.ExactArgs(1),
		RunE: app.protected(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			applyCoordinates(cmd, &input, lat, lng)
			address, err := app.addresses.Update(cmd.Context(), id, input)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated address %d (%s)\n", address.ID, address.Label)
			return err
		}),
	}
	addressFlags(cmd, &input, &lat, &lng)

	return cmd
}

func newAddressDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a delivery address",
		Args:  cobra.ExactArgs(1),
		RunE: app.protected(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.addresses.Delete(cmd.Context(), id); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted address %d\n", id)
			return err
		}),
	}
}

func newAddressDefaultCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "default <id>",
		Short: "Make an address the default",
		Args:  cobra.ExactArgs(1),
		RunE: app.protected(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.addresses.SetDefault(cmd.Context(), id); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Address %d is now the default\n", id)
			return err
		}),
	}
}

func newAddressMigrateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Upload addresses saved locally by the old client",
		RunE: app.protected(func(cmd *cobra.Command, _ []string) error {
			count, err := app.addresses.MigrateLegacyAddresses(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Migrated %d address(es)\n", count)
			return err
		}),
	}
}
