package cmd

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/spf13/cobra"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
)

func newInventoryCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inventory",
		Aliases: []string{"inv"},
		Short:   "Inspect and manage products, stock and stock notifications",
	}

	cmd.AddCommand(
		newInventoryProductsCmd(app),
		newInventoryPriceCmd(app),
		newInventoryStockCmd(app),
		newInventoryStockSetCmd(app),
		newInventoryStockAdjustCmd(app),
		newInventoryBookingCmd(app, "book", "Book stock for a delivery", domain.ReasonSubscriptionBooking),
		newInventoryBookingCmd(app, "unbook", "Release booked stock", domain.ReasonSubscriptionCancelation),
		newInventoryAnalyticsCmd(app),
		newInventoryNotificationsCmd(app),
	)

	return cmd
}

func newInventoryProductsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products",
		RunE: app.protected(func(cmd *cobra.Command, _ []string) error {
			products, err := app.client.Products(cmd.Context(), strconv.FormatInt(app.clock.Now().UnixMilli(), 10))
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), products)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tTYPE\tPRICE/L\tACTIVE")
			for _, p := range products {
				_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%t\n", p.ID, p.Name, p.Type, p.PricePerLiter, p.IsActive)
			}
			return w.Flush()
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newInventoryPriceCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "price <product-id> <price>",
		Short: "Set the per-liter price of a product",
		Args:  cobra.ExactArgs(2),
		RunE: app.protected(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			price, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			return app.client.UpdateProductPrice(cmd.Context(), id, price)
		}),
	}
}

func newInventoryStockCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Show stock per product and delivery slot",
		RunE: app.protected(func(cmd *cobra.Command, _ []string) error {
			stock, err := app.client.Stock(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), stock)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tPRODUCT\tSLOT\tTOTAL\tBOOKED\tAVAILABLE")
			for _, s := range stock {
				for _, slot := range []domain.TimeSlot{domain.TimeSlotMorning, domain.TimeSlotEvening} {
					level := s.Slot(slot)
					_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%g\t%g\t%g\n",
						s.ProductID, s.ProductName, slot, level.TotalStock, level.BookedStock, level.AvailableStock)
				}
			}
			return w.Flush()
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newInventoryStockSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stock-set <product-id> <slot> <total>",
		Short: "Set the total stock of a product for a slot",
		Args:  cobra.ExactArgs(3),
		RunE: app.protected(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			slot, err := domain.ParseTimeSlot(args[1])
			if err != nil {
				return err
			}
			total, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			return app.client.UpdateStock(cmd.Context(), id, slot, total)
		}),
	}
}

func newInventoryStockAdjustCmd(app *app) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "stock-adjust <product-id> <slot> <quantity>",
		Short: "Add to or remove from the stock of a product",
		Long:  "A negative quantity removes stock.",
		Args:  cobra.ExactArgs(3),
		RunE: app.protected(func(cmd *cobra.Command, args []string) error {
			adj, err := parseAdjustment(args, reason)
			if err != nil {
				return err
			}
			stock, err := app.client.AdjustStock(cmd.Context(), adj)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Stock is now %g\n", stock)
			return err
		}),
	}

	cmd.Flags().StringVar(&reason, "reason", domain.ReasonManualAdjustment, "Reason recorded with the adjustment")

	return cmd
}

func newInventoryBookingCmd(app *app, use, short, reason string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <product-id> <slot> <quantity>",
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: app.protected(func(cmd *cobra.Command, args []string) error {
			booking, err := parseAdjustment(args, reason)
			if err != nil {
				return err
			}
			if booking.Quantity <= 0 {
				return fmt.Errorf("quantity must be positive")
			}
			if use == "unbook" {
				return app.client.RemoveBooking(cmd.Context(), booking)
			}
			return app.client.AddBooking(cmd.Context(), booking)
		}),
	}
}

func newInventoryAnalyticsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show today's stock and revenue summary",
		RunE: app.protected(func(cmd *cobra.Command, _ []string) error {
			var summary domain.AnalyticsSummary
			fetch := func(ctx context.Context) error {
				var err error
				summary, err = app.client.AnalyticsSummary(ctx)
				return err
			}

			if asJSON {
				if err := fetch(cmd.Context()); err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), summary)
			}
			if err := withProgress(cmd.Context(), cmd.ErrOrStderr(), progress{Label: "Loading analytics...", Spinner: spinner.MiniDot}, fetch); err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintf(w, "total stock\t%g\n", summary.TotalStock)
			_, _ = fmt.Fprintf(w, "booked\t%g\n", summary.TotalBooked)
			_, _ = fmt.Fprintf(w, "available\t%g\n", summary.TotalAvailable)
			_, _ = fmt.Fprintf(w, "daily revenue\t%.2f\n", summary.DailyRevenue)
			return w.Flush()
		}),
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	return cmd
}

func newInventoryNotificationsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notify"},
		Short:   "Manage out-of-stock notification requests",
	}

	var status string
	var asJSON bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List notification requests",
		RunE: app.protected(func(cmd *cobra.Command, _ []string) error {
			notifications, err := app.client.Notifications(cmd.Context(), status)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), notifications)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tCUSTOMER\tPHONE\tPRODUCT\tSLOT\tQTY\tSTATUS")
			for _, n := range notifications {
				_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%g\t%s\n",
					n.ID, n.CustomerName, n.PhoneNumber, n.ProductID, n.TimeSlot, n.Quantity, n.Status)
			}
			return w.Flush()
		}),
	}
	list.Flags().StringVar(&status, "status", "", "Only show requests with this status")
	list.Flags().BoolVar(&asJSON, "json", false, "Output JSON")

	var request domain.StockNotification
	var slot string
	create := &cobra.Command{
		Use:   "create",
		Short: "Record a customer waiting for stock",
		RunE: app.protected(func(cmd *cobra.Command, _ []string) error {
			parsed, err := domain.ParseTimeSlot(slot)
			if err != nil {
				return err
			}
			request.TimeSlot = parsed
			created, err := app.client.CreateNotification(cmd.Context(), request)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created notification %d\n", created.ID)
			return err
		}),
	}
	create.Flags().StringVar(&request.CustomerName, "name", "", "Customer name")
	create.Flags().StringVar(&request.PhoneNumber, "phone", "", "Customer phone number")
	create.Flags().IntVar(&request.ProductID, "product", 0, "Product id")
	create.Flags().StringVar(&slot, "slot", string(domain.TimeSlotMorning), "Delivery slot")
	create.Flags().Float64Var(&request.Quantity, "qty", 1, "Liters requested")
	_ = create.MarkFlagRequired("name")
	_ = create.MarkFlagRequired("phone")
	_ = create.MarkFlagRequired("product")

	setStatus := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Change the status of a notification request",
		Args:  cobra.ExactArgs(2),
		RunE: app.protected(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.client.UpdateNotificationStatus(cmd.Context(), id, args[1])
		}),
	}

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a notification request",
		Args:  cobra.ExactArgs(1),
		RunE: app.protected(func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.client.DeleteNotification(cmd.Context(), id)
		}),
	}

	cmd.AddCommand(list, create, setStatus, remove)

	return cmd
}

func parseAdjustment(args []string, reason string) (domain.StockAdjustment, error) {
	id, err := parseID(args[0])
	if err != nil {
		return domain.StockAdjustment{}, err
	}
	slot, err := domain.ParseTimeSlot(args[1])
	if err != nil {
		return domain.StockAdjustment{}, err
	}
	quantity, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return domain.StockAdjustment{}, fmt.Errorf("invalid quantity %q", args[2])
	}
	return domain.StockAdjustment{ProductID: id, TimeSlot: slot, Quantity: quantity, Reason: reason}, nil
}

func parseAmount(raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	return value, nil
}
