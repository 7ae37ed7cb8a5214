package domain

import "time"

const (
	DefaultIdleTimeout = 7 * 24 * time.Hour
	DefaultWarningLead = time.Hour
)

type SessionState string

const (
	SessionActive       SessionState = "active"
	SessionWarningShown SessionState = "warning_shown"
	SessionLoggedOut    SessionState = "logged_out"
)

type LogoutReason string

const (
	LogoutIdleTimeout       LogoutReason = "idle_timeout"
	LogoutUser              LogoutReason = "user"
	LogoutMissingCredential LogoutReason = "missing_credential"
	LogoutRejected          LogoutReason = "rejected"
)

func (r LogoutReason) Message() string {
	switch r {
	case LogoutUser:
		return "You have been logged out."
	case LogoutMissingCredential:
		return "Please log in to continue."
	default:
		return "Your session has expired. Please login again."
	}
}

type SessionSnapshot struct {
	State          SessionState
	Page           string
	LastActivityAt time.Time
	WarningAt      time.Time
	LogoutAt       time.Time
}

// Remaining reports the time left before the forced logout, clamped at zero.
func (s SessionSnapshot) Remaining(now time.Time) time.Duration {
	if s.State == SessionLoggedOut || s.LogoutAt.IsZero() {
		return 0
	}
	remaining := s.LogoutAt.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
