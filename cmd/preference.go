package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newPreferenceCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preference",
		Aliases: []string{"pref"},
		Short:   "Manage preferences stored on the server",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List preferences",
			RunE: app.protected(func(cmd *cobra.Command, _ []string) error {
				prefs, err := app.data.Preferences(cmd.Context())
				if err != nil {
					return err
				}
				keys := make([]string, 0, len(prefs))
				for key := range prefs {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				for _, key := range keys {
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, prefs[key]); err != nil {
						return err
					}
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print one preference",
			Args:  cobra.ExactArgs(1),
			RunE: app.protected(func(cmd *cobra.Command, args []string) error {
				value, ok, err := app.data.GetItem(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("preference %q is not set", args[0])
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
				return err
			}),
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Store one preference",
			Args:  cobra.ExactArgs(2),
			RunE: app.protected(func(cmd *cobra.Command, args []string) error {
				return app.data.SetItem(cmd.Context(), args[0], args[1])
			}),
		},
		&cobra.Command{
			Use:   "remove <key>",
			Short: "Clear one preference",
			Args:  cobra.ExactArgs(1),
			RunE: app.protected(func(cmd *cobra.Command, args []string) error {
				return app.data.RemoveItem(cmd.Context(), args[0])
			}),
		},
	)

	return cmd
}
