package application

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

type Validation string

const (
	ValidationValid       Validation = "valid"
	ValidationRejected    Validation = "rejected"
	ValidationUnavailable Validation = "unavailable"
	ValidationSkipped     Validation = "skipped"
)

type SessionStatus struct {
	Snapshot      domain.SessionSnapshot    `json:"-"`
	State         domain.SessionState       `json:"state"`
	Strategy      domain.CredentialStrategy `json:"strategy"`
	HasCredential bool                      `json:"has_credential"`
	User          domain.User               `json:"user"`
	Validation    Validation                `json:"validation"`
	Detail        string                    `json:"detail,omitempty"`
	IdleTimeout   time.Duration             `json:"idle_timeout"`
	WarningLead   time.Duration             `json:"warning_lead"`
	CheckedAt     time.Time                 `json:"checked_at"`
}

// Remaining reports the time left on the session timer, zero when no timer
// is running in this process.
func (s SessionStatus) Remaining() time.Duration {
	return s.Snapshot.Remaining(s.CheckedAt)
}

type StatusService struct {
	creds    ports.CredentialStore
	api      ports.SessionAPI
	local    ports.LocalStore
	clock    ports.Clock
	cfg      WatchdogConfig
	strategy domain.CredentialStrategy
	log      zerolog.Logger
}

func NewStatusService(creds ports.CredentialStore, api ports.SessionAPI, local ports.LocalStore, clock ports.Clock, cfg WatchdogConfig, strategy domain.CredentialStrategy, logger zerolog.Logger) *StatusService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &StatusService{
		creds:    creds,
		api:      api,
		local:    local,
		clock:    clock,
		cfg:      cfg,
		strategy: strategy,
		log:      logger.With().Str("service", "status").Logger(),
	}
}

// Status reports the stored session. When snapshot is nil the state is
// derived from the credential alone. remote enables the profile check.
func (s *StatusService) Status(ctx context.Context, snapshot *domain.SessionSnapshot, remote bool) SessionStatus {
	status := SessionStatus{
		Strategy:    s.strategy,
		Validation:  ValidationSkipped,
		IdleTimeout: s.cfg.IdleTimeout,
		WarningLead: s.cfg.WarningLead,
		CheckedAt:   s.clock.Now(),
	}
	if snapshot != nil {
		status.Snapshot = *snapshot
	}

	token, err := s.creds.Token(ctx)
	switch {
	case err == nil && token != "":
		status.HasCredential = true
	case err != nil && !errors.Is(err, domain.ErrCredentialNotFound):
		status.Detail = err.Error()
	}

	status.User = s.cachedUser(ctx)

	if status.HasCredential && remote {
		s.validate(ctx, &status)
	}

	status.State = status.Snapshot.State
	if snapshot == nil {
		status.State = domain.SessionActive
		if !status.HasCredential || status.Validation == ValidationRejected {
			status.State = domain.SessionLoggedOut
		}
	}

	return status
}

func (s *StatusService) validate(ctx context.Context, status *SessionStatus) {
	timeout := s.cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	user, err := s.api.Profile(callCtx)
	switch {
	case err == nil:
		status.Validation = ValidationValid
		status.User = user
	case errors.Is(err, domain.ErrUnauthorized):
		status.Validation = ValidationRejected
		status.Detail = err.Error()
	default:
		s.log.Debug().Err(err).Msg("profile check failed")
		status.Validation = ValidationUnavailable
		status.Detail = err.Error()
	}
}

func (s *StatusService) cachedUser(ctx context.Context) domain.User {
	var user domain.User
	if s.local == nil {
		return user
	}
	user.Name = s.localValue(ctx, domain.KeyUserName)
	user.Email = s.localValue(ctx, domain.KeyUserEmail)
	if mobile := s.localValue(ctx, domain.KeyUserMobile); mobile != "" {
		user.Mobile = &mobile
	}
	return user
}

func (s *StatusService) localValue(ctx context.Context, key string) string {
	value, err := s.local.Get(ctx, key)
	if err != nil {
		return ""
	}
	return value
}
