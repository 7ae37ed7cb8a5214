package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/taaza-dairy/taaza-cli/internal/adapters/activity"
	statusadapter "github.com/taaza-dairy/taaza-cli/internal/adapters/render/status"
	"github.com/taaza-dairy/taaza-cli/internal/adapters/tui"
	"github.com/taaza-dairy/taaza-cli/internal/application"
	"github.com/taaza-dairy/taaza-cli/internal/domain"
	xlog "github.com/taaza-dairy/taaza-cli/internal/log"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

var errNotLoggedIn = errors.New(`not logged in, run "tz login" first`)

func newSessionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect and guard the current session",
	}

	cmd.AddCommand(
		newSessionWatchCmd(app),
		newSessionValidateCmd(app),
		newSessionStatusCmd(app),
	)

	return cmd
}

func newSessionWatchCmd(app *app) *cobra.Command {
	var headless bool
	var activityPaths []string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the session open while you are active and log out when idle",
		Long:  "Runs the inactivity watchdog. Keyboard and mouse input on the session screen, or writes under --activity-path, count as activity. A warning is shown before the idle logout.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			return runSessionWatch(ctx, cancel, cmd, app, headless, activityPaths)
		},
	}

	cmd.Flags().BoolVar(&headless, "headless", false, "Run without the interactive screen; warnings go to stderr")
	cmd.Flags().StringSliceVar(&activityPaths, "activity-path", nil, "Treat writes under this path as activity (repeatable)")

	return cmd
}

// watchActions breaks the cycle between the screen, which needs the
// watchdog's actions, and the watchdog, which needs the screen as prompt.
type watchActions struct {
	ctx      context.Context
	watchdog *application.SessionWatchdog
}

func (a *watchActions) Extend() {
	a.watchdog.Extend()
}

func (a *watchActions) Logout() {
	a.watchdog.ForceLogout(a.ctx, domain.LogoutUser)
}

func runSessionWatch(ctx context.Context, cancel context.CancelFunc, cmd *cobra.Command, app *app, headless bool, activityPaths []string) error {
	activityLog := xlog.WithComponent("activity")
	hub := activity.NewHub(activityLog)
	base := app.status.Status(ctx, nil, false)
	if !base.HasCredential {
		return errNotLoggedIn
	}

	actions := &watchActions{ctx: ctx}
	var screen *tui.Screen
	var prompt ports.SessionPrompt
	if !headless {
		screen = tui.NewScreen(ctx, hub, actions, func() application.SessionStatus {
			snapshot := actions.watchdog.Snapshot()
			status := base
			status.Snapshot = snapshot
			status.State = snapshot.State
			status.CheckedAt = app.clock.Now()
			return status
		}, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
		prompt = screen
	}

	watchdog, nav, err := app.newWatchdog(cmd, watchdogOptions{prompt: prompt, activity: hub, cancel: cancel})
	if err != nil {
		return err
	}
	actions.watchdog = watchdog

	if err := watchdog.Initialize(ctx); err != nil {
		return err
	}
	defer watchdog.Dispose()

	if len(activityPaths) > 0 {
		watcher := activity.NewFileWatcher(hub, activityPaths, activityLog)
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer func() { _ = watcher.Close() }()
	}

	if screen != nil {
		if err := screen.Run(); err != nil {
			return err
		}
	} else {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Watching session, idle logout after %s. Press Ctrl+C to stop.\n", app.cfg.Session.IdleTimeout)
		<-ctx.Done()
	}
	cancel()

	if reason, ok := nav.Redirected(); ok && reason != domain.LogoutUser {
		return fmt.Errorf("session ended: %s", reason)
	}
	return nil
}

func newSessionValidateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the stored credential with the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			watchdog, nav, err := app.newWatchdog(cmd, watchdogOptions{})
			if err != nil {
				return err
			}
			defer watchdog.Dispose()

			validateErr := watchdog.ValidateSession(cmd.Context())
			if reason, ok := nav.Redirected(); ok {
				if reason == domain.LogoutMissingCredential {
					return errNotLoggedIn
				}
				return errSessionExpired
			}
			if validateErr != nil {
				return fmt.Errorf("session could not be checked: %w", validateErr)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Session is valid.")
			return err
		},
	}
}

func newSessionStatusCmd(app *app) *cobra.Command {
	var asJSON bool
	var offline bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var status application.SessionStatus
			fetch := func(ctx context.Context) error {
				status = app.status.Status(ctx, nil, !offline)
				return nil
			}

			if asJSON || offline {
				_ = fetch(cmd.Context())
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), status)
				}
			} else if err := withProgress(cmd.Context(), cmd.ErrOrStderr(), progress{Label: "Checking session..."}, fetch); err != nil {
				return err
			}

			rendered, err := app.statusRenderer(status, statusadapter.RenderOptions{})
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output JSON")
	cmd.Flags().BoolVar(&offline, "offline", false, "Skip the server check")

	return cmd
}
