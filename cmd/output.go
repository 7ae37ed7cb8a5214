package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
)

var errSessionExpired = errors.New(`session expired, please log in again with "tz login"`)

// protected runs a command that needs a session. Without a stored credential
// the session is ended before any request is made; a credential the backend
// rejects ends it afterwards.
func (a *app) protected(run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		token, err := a.credentials.Token(cmd.Context())
		switch {
		case errors.Is(err, domain.ErrCredentialNotFound) || (err == nil && token == ""):
			a.endSession(cmd, domain.LogoutMissingCredential)
			return errNotLoggedIn
		case err != nil:
			return fmt.Errorf("read credential: %w", err)
		}

		err = run(cmd, args)
		if errors.Is(err, domain.ErrUnauthorized) {
			a.endSession(cmd, domain.LogoutRejected)
			return fmt.Errorf("%w (%v)", errSessionExpired, err)
		}
		return err
	}
}

func (a *app) endSession(cmd *cobra.Command, reason domain.LogoutReason) {
	watchdog, _, err := a.newWatchdog(cmd, watchdogOptions{})
	if err != nil {
		a.logger.Warn().Err(err).Msg("end session")
		return
	}
	defer watchdog.Dispose()
	watchdog.ForceLogout(cmd.Context(), reason)
}

func writeJSON(out io.Writer, value any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
