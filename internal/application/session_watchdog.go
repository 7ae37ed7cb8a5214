package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

var ErrWatchdogInitialized = errors.New("session watchdog already initialized")

const defaultRequestTimeout = 10 * time.Second

type WatchdogConfig struct {
	IdleTimeout    time.Duration
	WarningLead    time.Duration
	RequestTimeout time.Duration
	PublicPages    []string
	NotifyOnLogout bool
}

type WatchdogDeps struct {
	Credentials ports.CredentialStore
	API         ports.SessionAPI
	Navigator   ports.Navigator
	Activity    ports.ActivitySource
	Prompt      ports.SessionPrompt
	// Local is optional; when set, SessionDataKeys are removed on logout.
	Local  ports.LocalStore
	Clock  ports.Clock
	Logger zerolog.Logger
}

// SessionWatchdog ends idle sessions. Activity rearms a warning timer at
// idle-lead and a logout timer at idle; the warning is dismissed by Extend,
// by further activity or by logging out.
type SessionWatchdog struct {
	cfg   WatchdogConfig
	pages domain.PageClassifier

	creds    ports.CredentialStore
	api      ports.SessionAPI
	nav      ports.Navigator
	activity ports.ActivitySource
	prompt   ports.SessionPrompt
	local    ports.LocalStore
	clock    ports.Clock
	log      zerolog.Logger

	mu           sync.Mutex
	state        domain.SessionState
	initialized  bool
	disposed     bool
	lastActivity time.Time
	warningAt    time.Time
	logoutAt     time.Time
	generation   uint64
	timers       timerPair
	unsubscribe  func()
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

// timerPair holds the single pending warning and logout callbacks.
type timerPair struct {
	warning ports.Timer
	logout  ports.Timer
}

func (p *timerPair) stop() {
	if p.warning != nil {
		p.warning.Stop()
		p.warning = nil
	}
	if p.logout != nil {
		p.logout.Stop()
		p.logout = nil
	}
}

func NewSessionWatchdog(cfg WatchdogConfig, deps WatchdogDeps) (*SessionWatchdog, error) {
	if cfg.IdleTimeout <= 0 {
		return nil, fmt.Errorf("idle timeout must be positive, got %s", cfg.IdleTimeout)
	}
	if cfg.WarningLead <= 0 || cfg.WarningLead >= cfg.IdleTimeout {
		return nil, fmt.Errorf("warning lead %s must be positive and shorter than idle timeout %s", cfg.WarningLead, cfg.IdleTimeout)
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if deps.Credentials == nil {
		return nil, errors.New("credential store is required")
	}
	if deps.API == nil {
		return nil, errors.New("session api is required")
	}
	if deps.Navigator == nil {
		return nil, errors.New("navigator is required")
	}
	if deps.Prompt == nil {
		deps.Prompt = silentPrompt{}
	}
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}

	return &SessionWatchdog{
		cfg:      cfg,
		pages:    domain.NewPageClassifier(cfg.PublicPages),
		creds:    deps.Credentials,
		api:      deps.API,
		nav:      deps.Navigator,
		activity: deps.Activity,
		prompt:   deps.Prompt,
		local:    deps.Local,
		clock:    deps.Clock,
		log:      deps.Logger.With().Str("component", "watchdog").Logger(),
		state:    domain.SessionActive,
	}, nil
}

// Initialize subscribes to activity, arms both timers and validates the
// session in the background. It may be called once per watchdog.
func (w *SessionWatchdog) Initialize(ctx context.Context) error {
	w.mu.Lock()
	if w.initialized {
		w.mu.Unlock()
		return ErrWatchdogInitialized
	}
	w.initialized = true
	w.ctx, w.cancel = context.WithCancel(ctx)
	if w.state == domain.SessionActive && !w.disposed {
		w.armLocked(w.clock.Now())
	}
	w.wg.Add(1)
	runCtx := w.ctx
	w.mu.Unlock()

	if w.activity != nil {
		unsubscribe := w.activity.Subscribe(w.RecordActivity)
		w.mu.Lock()
		if w.disposed {
			w.mu.Unlock()
			unsubscribe()
		} else {
			w.unsubscribe = unsubscribe
			w.mu.Unlock()
		}
	}

	go func() {
		defer w.wg.Done()
		_ = w.ValidateSession(runCtx)
	}()

	w.log.Debug().
		Dur("idle_timeout", w.cfg.IdleTimeout).
		Dur("warning_lead", w.cfg.WarningLead).
		Msg("session watchdog initialized")

	return nil
}

// RecordActivity restarts the inactivity countdown. Activity while the
// warning is showing dismisses it like Extend; after logout it is ignored.
func (w *SessionWatchdog) RecordActivity() {
	w.rearm("activity")
}

// Extend dismisses the warning and restarts both timers from now.
func (w *SessionWatchdog) Extend() {
	w.rearm("extend")
}

func (w *SessionWatchdog) rearm(cause string) {
	w.mu.Lock()
	if !w.initialized || w.disposed || w.state == domain.SessionLoggedOut {
		w.mu.Unlock()
		return
	}
	wasWarning := w.state == domain.SessionWarningShown
	w.state = domain.SessionActive
	w.armLocked(w.clock.Now())
	w.mu.Unlock()

	if wasWarning {
		w.prompt.HideWarning()
		w.log.Info().Str("cause", cause).Msg("session extended")
	}
}

// ForceLogout ends the session for good. Remote invalidation is best effort;
// the credential and local session data are cleared regardless.
func (w *SessionWatchdog) ForceLogout(ctx context.Context, reason domain.LogoutReason) {
	w.mu.Lock()
	wasWarning, ok := w.beginLogoutLocked()
	w.mu.Unlock()
	if !ok {
		return
	}

	w.finishLogout(ctx, reason, wasWarning)
}

func (w *SessionWatchdog) beginLogoutLocked() (wasWarning bool, ok bool) {
	if w.state == domain.SessionLoggedOut {
		return false, false
	}
	wasWarning = w.state == domain.SessionWarningShown
	w.state = domain.SessionLoggedOut
	w.generation++
	w.timers.stop()
	return wasWarning, true
}

func (w *SessionWatchdog) finishLogout(ctx context.Context, reason domain.LogoutReason, wasWarning bool) {
	if wasWarning {
		w.prompt.HideWarning()
	}

	local := context.WithoutCancel(ctx)

	token, err := w.creds.Token(local)
	switch {
	case err == nil && token != "":
		callCtx, cancel := context.WithTimeout(ctx, w.cfg.RequestTimeout)
		if err := w.api.Logout(callCtx); err != nil {
			w.log.Warn().Err(err).Msg("remote logout failed")
		}
		cancel()
	case err != nil && !errors.Is(err, domain.ErrCredentialNotFound):
		w.log.Warn().Err(err).Msg("read credential before logout")
	}

	if err := w.creds.Clear(local); err != nil {
		w.log.Error().Err(err).Msg("clear credential")
	}
	if w.local != nil {
		if err := w.local.Delete(local, domain.SessionDataKeys()...); err != nil {
			w.log.Warn().Err(err).Msg("clear local session data")
		}
	}

	w.log.Info().Str("reason", string(reason)).Msg("session ended")

	if w.cfg.NotifyOnLogout {
		w.prompt.NotifyExpired(reason)
	}
	w.nav.RedirectToLogin(reason)
}

// ValidateSession checks the stored credential against the backend when the
// current page requires authentication. A rejected or missing credential
// forces a logout; transient failures are logged and returned.
func (w *SessionWatchdog) ValidateSession(ctx context.Context) error {
	page := domain.PageName(w.nav.CurrentPage())
	if !w.pages.RequiresAuth(page) {
		return nil
	}

	w.mu.Lock()
	loggedOut := w.state == domain.SessionLoggedOut
	w.mu.Unlock()
	if loggedOut {
		return nil
	}

	token, err := w.creds.Token(ctx)
	if errors.Is(err, domain.ErrCredentialNotFound) || (err == nil && token == "") {
		w.log.Info().Str("page", page).Msg("no credential on protected page")
		w.ForceLogout(ctx, domain.LogoutMissingCredential)
		return fmt.Errorf("validate session: %w", domain.ErrCredentialNotFound)
	}
	if err != nil {
		w.log.Warn().Err(err).Msg("read credential")
		return fmt.Errorf("read credential: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, w.cfg.RequestTimeout)
	defer cancel()

	if _, err := w.api.Profile(callCtx); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			w.ForceLogout(ctx, domain.LogoutRejected)
			return fmt.Errorf("validate session: %w", err)
		}
		w.log.Warn().Err(err).Msg("session validation failed")
		return fmt.Errorf("validate session: %w", err)
	}

	return nil
}

func (w *SessionWatchdog) Snapshot() domain.SessionSnapshot {
	page := domain.PageName(w.nav.CurrentPage())

	w.mu.Lock()
	defer w.mu.Unlock()

	return domain.SessionSnapshot{
		State:          w.state,
		Page:           page,
		LastActivityAt: w.lastActivity,
		WarningAt:      w.warningAt,
		LogoutAt:       w.logoutAt,
	}
}

// Dispose cancels pending timers, stops observing activity and waits for the
// background validation. The session state is left unchanged.
func (w *SessionWatchdog) Dispose() {
	w.mu.Lock()
	if w.disposed {
		w.mu.Unlock()
		return
	}
	w.disposed = true
	w.generation++
	w.timers.stop()
	unsubscribe := w.unsubscribe
	w.unsubscribe = nil
	cancel := w.cancel
	w.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *SessionWatchdog) armLocked(now time.Time) {
	w.generation++
	gen := w.generation
	w.timers.stop()

	warnAfter := w.cfg.IdleTimeout - w.cfg.WarningLead
	w.lastActivity = now
	w.warningAt = now.Add(warnAfter)
	w.logoutAt = now.Add(w.cfg.IdleTimeout)
	w.timers.warning = w.clock.AfterFunc(warnAfter, func() { w.onWarning(gen) })
	w.timers.logout = w.clock.AfterFunc(w.cfg.IdleTimeout, func() { w.onLogout(gen) })
}

func (w *SessionWatchdog) onWarning(gen uint64) {
	w.mu.Lock()
	if gen != w.generation || w.state != domain.SessionActive {
		w.mu.Unlock()
		return
	}
	w.state = domain.SessionWarningShown
	w.timers.warning = nil
	remaining := w.logoutAt.Sub(w.clock.Now())
	w.mu.Unlock()

	if remaining < 0 {
		remaining = 0
	}
	w.log.Info().Dur("remaining", remaining).Msg("session expiry warning")
	w.prompt.ShowWarning(remaining)
}

func (w *SessionWatchdog) onLogout(gen uint64) {
	w.mu.Lock()
	if gen != w.generation {
		w.mu.Unlock()
		return
	}
	wasWarning, ok := w.beginLogoutLocked()
	ctx := w.ctx
	w.mu.Unlock()
	if !ok {
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}
	w.finishLogout(ctx, domain.LogoutIdleTimeout, wasWarning)
}

type silentPrompt struct{}

func (silentPrompt) ShowWarning(time.Duration) {}

func (silentPrompt) HideWarning() {}

func (silentPrompt) NotifyExpired(domain.LogoutReason) {}
