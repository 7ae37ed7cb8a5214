package cmd

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
)

func newLocalCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "local",
		Short: "Inspect values stored on this machine",
		Long:  "Values kept in the local store file. Session values are removed on logout.",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List stored values",
			RunE: func(cmd *cobra.Command, _ []string) error {
				values, err := app.local.List(cmd.Context())
				if err != nil {
					return err
				}
				keys := make([]string, 0, len(values))
				for key := range values {
					keys = append(keys, key)
				}
				sort.Strings(keys)
				for _, key := range keys {
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, values[key]); err != nil {
						return err
					}
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print one stored value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				value, err := app.local.Get(cmd.Context(), args[0])
				if errors.Is(err, domain.ErrLocalKeyNotFound) {
					return fmt.Errorf("%q is not set", args[0])
				}
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
				return err
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Store one value",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.local.Set(cmd.Context(), args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "delete <key>...",
			Short: "Remove stored values",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.local.Delete(cmd.Context(), args...)
			},
		},
	)

	return cmd
}
