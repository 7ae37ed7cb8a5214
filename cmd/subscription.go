package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
)

func newSubscriptionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscription",
		Aliases: []string{"sub"},
		Short:   "Manage milk subscriptions",
	}

	cmd.AddCommand(
		newSubscriptionListCmd(app),
		newSubscriptionCreateCmd(app),
		newSubscriptionUpdateCmd(app),
		newSubscriptionCancelCmd(app),
		newSubscriptionMigrateCmd(app),
	)

	return cmd
}

func newSubscriptionListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscriptions",
		RunE: app.protected(func(cmd *cobra.Command, _ []string) error {
			subs, err := app.subscriptions.List(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), subs)
			}
			if len(subs) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No subscriptions.")
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tSTATUS\tMORNING\tEVENING")
			for _, sub := range subs {
				_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", sub.ID, sub.Status,
					slotSummary(sub.MorningEnabled, sub.MorningMilkType, sub.MorningQuantity),
					slotSummary(sub.EveningEnabled, sub.EveningMilkType, sub.EveningQuantity))
			}
			return w.Flush()
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func slotSummary(enabled bool, milkType *string, quantity float64) string {
	if !enabled {
		return "-"
	}
	kind := "milk"
	if milkType != nil {
		kind = *milkType
	}
	return fmt.Sprintf("%gL %s", quantity, kind)
}

func slotFlags(cmd *cobra.Command, prefix string, slot *domain.DeliverySlot) {
	cmd.Flags().StringVar(&slot.MilkType, prefix+"-milk", "", "Milk type for "+prefix+" delivery (buffalo, cow)")
	cmd.Flags().Float64Var(&slot.Quantity, prefix+"-qty", 0, "Liters per "+prefix+" delivery")
	cmd.Flags().StringVar(&slot.Frequency, prefix+"-frequency", "", "Delivery frequency (daily, alternate, custom)")
	cmd.Flags().StringVar(&slot.TimeSlot, prefix+"-slot", "", "Delivery time slot")
	cmd.Flags().StringSliceVar(&slot.Days, prefix+"-days", nil, "Delivery days for a custom frequency")
}

func newSubscriptionCreateCmd(app *app) *cobra.Command {
	var draft domain.SubscriptionDraft
	var addressJSON string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a subscription",
		RunE: app.protected(func(cmd *cobra.Command, _ []string) error {
			draft.Morning.Enabled = draft.Morning.MilkType != "" && draft.Morning.Quantity > 0
			draft.Evening.Enabled = draft.Evening.MilkType != "" && draft.Evening.Quantity > 0
			if !draft.Morning.Enabled && !draft.Evening.Enabled {
				return fmt.Errorf("set --morning-milk/--morning-qty or --evening-milk/--evening-qty")
			}
			if addressJSON != "" {
				if !json.Valid([]byte(addressJSON)) {
					return fmt.Errorf("--address is not valid JSON")
				}
				draft.AddressData = json.RawMessage(addressJSON)
			}

			sub, err := app.subscriptions.Create(cmd.Context(), draft)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created subscription %d\n", sub.ID)
			return err
		}),
	}

	slotFlags(cmd, "morning", &draft.Morning)
	slotFlags(cmd, "evening", &draft.Evening)
	cmd.Flags().StringVar(&addressJSON, "address", "", "Delivery address as JSON")

	return cmd
}

func newSubscriptionUpdateCmd(app *app) *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change subscription fields",
		Long:  "Each --set field=value changes one field. Values that parse as JSON (numbers, booleans, arrays) are sent as such, anything else as a string.",
		Args:  cobra.ExactArgs(1),
		RunE: app.protected(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			fields, err := parseFieldAssignments(sets)
			if err != nil {
				return err
			}
			if err := app.subscriptions.Update(cmd.Context(), id, fields); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated subscription %d\n", id)
			return err
		}),
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "field=value to change (repeatable)")

	return cmd
}

func parseFieldAssignments(sets []string) (map[string]any, error) {
	fields := make(map[string]any, len(sets))
	for _, assignment := range sets {
		key, raw, ok := strings.Cut(assignment, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --set %q, want field=value", assignment)
		}
		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		fields[key] = value
	}
	return fields, nil
}

func newSubscriptionCancelCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a subscription",
		Args:  cobra.ExactArgs(1),
		RunE: app.protected(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.subscriptions.Cancel(cmd.Context(), id); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Cancelled subscription %d\n", id)
			return err
		}),
	}
}

func newSubscriptionMigrateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create a subscription from delivery settings saved by the old client",
		RunE: app.protected(func(cmd *cobra.Command, _ []string) error {
			sub, migrated, err := app.subscriptions.MigrateLegacySubscription(cmd.Context())
			if err != nil {
				return err
			}
			if !migrated {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "No local delivery settings to migrate.")
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created subscription %d from local settings\n", sub.ID)
			return err
		}),
	}
}
