package terminal

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taaza-dairy/taaza-cli/internal/adapters/activity"
	"github.com/taaza-dairy/taaza-cli/internal/application"
	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports/mocks"
)

func TestNavigatorRedirectPrintsHintAndCancels(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	nav := NewNavigator("session watch", `Run "tz login" to sign in again.`, &out, cancel)

	assert.Equal(t, "session watch", nav.CurrentPage())
	_, redirected := nav.Redirected()
	assert.False(t, redirected)

	nav.RedirectToLogin(domain.LogoutIdleTimeout)
	nav.RedirectToLogin(domain.LogoutUser)

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.Equal(t, "Your session has expired. Please login again.\nRun \"tz login\" to sign in again.\n", out.String())

	reason, redirected := nav.Redirected()
	assert.True(t, redirected)
	assert.Equal(t, domain.LogoutIdleTimeout, reason)
}

func TestHeadlessPromptWritesWarning(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	var logs bytes.Buffer
	prompt := NewHeadlessPrompt(&out, zerolog.New(&logs))

	prompt.ShowWarning(59*time.Minute + 500*time.Millisecond)
	prompt.HideWarning()
	prompt.NotifyExpired(domain.LogoutRejected)

	assert.Equal(t, "Session expires in 59m1s due to inactivity.\n", out.String())
	assert.Contains(t, logs.String(), `"reason":"rejected"`)
	assert.Contains(t, logs.String(), "session about to expire")
}

func TestHeadlessSessionExtendsOnActivityDuringWarning(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clock := mocks.NewFakeClock(start)
	hub := activity.NewHub(zerolog.Nop())

	watchdog, err := application.NewSessionWatchdog(application.WatchdogConfig{
		IdleTimeout: time.Hour,
		WarningLead: 10 * time.Minute,
		PublicPages: []string{domain.PageLogin},
	}, application.WatchdogDeps{
		Credentials: mocks.NewMockCredentialStore(t),
		API:         mocks.NewMockSessionAPI(t),
		Navigator:   NewNavigator(domain.PageLogin, "", &out, nil),
		Activity:    hub,
		Prompt:      NewHeadlessPrompt(&out, zerolog.Nop()),
		Clock:       clock,
		Logger:      zerolog.Nop(),
	})
	require.NoError(t, err)
	t.Cleanup(watchdog.Dispose)
	require.NoError(t, watchdog.Initialize(context.Background()))

	clock.Advance(51 * time.Minute)
	require.Equal(t, domain.SessionWarningShown, watchdog.Snapshot().State)
	assert.Contains(t, out.String(), "Session expires in 9m0s due to inactivity.")

	assert.True(t, hub.Publish(domain.ActivityKeyPress))
	clock.Advance(9 * time.Minute)

	assert.Equal(t, domain.SessionActive, watchdog.Snapshot().State)
	assert.NotContains(t, out.String(), "Your session has expired")
}
