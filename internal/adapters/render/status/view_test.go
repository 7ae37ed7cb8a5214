package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taaza-dairy/taaza-cli/internal/application"
	"github.com/taaza-dairy/taaza-cli/internal/domain"
)

func TestRenderLoggedOutStatus(t *testing.T) {
	output, err := Render(application.SessionStatus{
		Strategy:   domain.CredentialCookieFallback,
		State:      domain.SessionLoggedOut,
		Validation: application.ValidationSkipped,
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Taaza Session")
	assert.Contains(t, output, "strategy: cookie_fallback")
	assert.Contains(t, output, "Not logged in")
	assert.NotContains(t, output, "logout in:")
}

func TestRenderActiveStatusWithTimer(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	output, err := Render(application.SessionStatus{
		Snapshot: domain.SessionSnapshot{
			State:    domain.SessionActive,
			LogoutAt: now.Add(84 * time.Hour),
		},
		State:         domain.SessionActive,
		HasCredential: true,
		User:          domain.User{Name: "Asha", Email: "asha@example.com"},
		Validation:    application.ValidationValid,
		IdleTimeout:   domain.DefaultIdleTimeout,
		WarningLead:   domain.DefaultWarningLead,
		CheckedAt:     now,
	}, RenderOptions{BarWidth: 10})

	require.NoError(t, err)
	assert.Contains(t, output, "Asha <asha@example.com>")
	assert.Contains(t, output, "state: active")
	assert.Contains(t, output, "[=====-----]")
	assert.Contains(t, output, "3d 12h left")
	assert.Contains(t, output, "credential accepted")
	assert.Contains(t, output, "idle timeout: 7d, warning 1h before logout")
}

func TestRenderWarningAndRejectedStatus(t *testing.T) {
	output := View(application.SessionStatus{
		State:         domain.SessionWarningShown,
		HasCredential: true,
		User:          domain.User{Email: "ravi@example.com"},
		Validation:    application.ValidationRejected,
	}, RenderOptions{})

	assert.Contains(t, output, "ravi@example.com")
	assert.Contains(t, output, "expiring soon")
	assert.Contains(t, output, "credential rejected")
	assert.NotContains(t, output, "logout in:")
}

func TestRenderUnavailableIncludesDetail(t *testing.T) {
	output := View(application.SessionStatus{
		State:         domain.SessionActive,
		HasCredential: true,
		Validation:    application.ValidationUnavailable,
		Detail:        "get profile: backend unavailable",
	}, RenderOptions{})

	assert.Contains(t, output, "Unknown user")
	assert.Contains(t, output, "unreachable")
	assert.Contains(t, output, "get profile: backend unavailable")
}

func TestFormatDurationKeepsTwoUnits(t *testing.T) {
	testCases := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "0s"},
		{in: -time.Minute, want: "0s"},
		{in: 59*time.Minute + 10*time.Second, want: "59m 10s"},
		{in: time.Hour, want: "1h"},
		{in: domain.DefaultIdleTimeout - time.Hour, want: "6d 23h"},
		{in: domain.DefaultIdleTimeout, want: "7d"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, FormatDuration(tc.in), tc.in.String())
	}
}

func TestRenderProgressBarClamps(t *testing.T) {
	s := newStyles()
	assert.Equal(t, "[====]", renderProgressBar(150, 4, s))
	assert.Equal(t, "[----]", renderProgressBar(-5, 4, s))
	assert.Empty(t, renderProgressBar(50, 0, s))
}
