package tui

import (
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taaza-dairy/taaza-cli/internal/application"
	"github.com/taaza-dairy/taaza-cli/internal/domain"
)

type recordingPublisher struct {
	mu    sync.Mutex
	kinds []domain.ActivityKind
}

func (p *recordingPublisher) Publish(kind domain.ActivityKind) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.kinds = append(p.kinds, kind)
	return kind.Qualifying()
}

func (p *recordingPublisher) published() []domain.ActivityKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.ActivityKind(nil), p.kinds...)
}

type recordingActions struct {
	mu      sync.Mutex
	extends int
	logouts int
}

func (a *recordingActions) Extend() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.extends++
}

func (a *recordingActions) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logouts++
}

var screenEpoch = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestModel() (model, *recordingPublisher, *recordingActions) {
	publisher := &recordingPublisher{}
	actions := &recordingActions{}
	m := newModel(publisher, actions, func() application.SessionStatus {
		return application.SessionStatus{
			State:         domain.SessionActive,
			HasCredential: true,
			User:          domain.User{Name: "Asha", Email: "asha@example.com"},
			Validation:    application.ValidationValid,
		}
	})
	m.now = func() time.Time { return screenEpoch }
	return m, publisher, actions
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	updated, ok := next.(model)
	require.True(t, ok)
	return updated, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelPublishesKeyAndMouseActivity(t *testing.T) {
	t.Parallel()

	m, publisher, _ := newTestModel()

	m, _ = update(t, m, runeKey('x'))
	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	_, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})

	assert.Equal(t, []domain.ActivityKind{
		domain.ActivityKeyPress,
		domain.ActivityPointerDown,
		domain.ActivityPointerMove,
		domain.ActivityClick,
		domain.ActivityScroll,
	}, publisher.published())
}

func TestModelWarningOffersTwoChoices(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel()
	m, _ = update(t, m, warningMsg{remaining: time.Hour})

	view := m.View()
	assert.Contains(t, view, "Session expiring")
	assert.Contains(t, view, "You will be logged out in 1h due to inactivity.")
	assert.Contains(t, view, "[e] stay logged in")
	assert.Contains(t, view, "[l] log out")

	m, _ = update(t, m, hideMsg{})
	assert.NotContains(t, m.View(), "Session expiring")
}

func TestModelWarningKeysRunActionsOffTheLoop(t *testing.T) {
	t.Parallel()

	m, publisher, actions := newTestModel()
	m, _ = update(t, m, warningMsg{remaining: time.Hour})

	m, cmd := update(t, m, runeKey('e'))
	require.NotNil(t, cmd)
	assert.Zero(t, actions.extends, "extend must run in a command")
	assert.Nil(t, cmd())
	assert.Equal(t, 1, actions.extends)

	_, cmd = update(t, m, runeKey('l'))
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, 1, actions.logouts)

	assert.Empty(t, publisher.published(), "input while warning is showing is not activity")
}

func TestModelWarningIgnoresOtherKeys(t *testing.T) {
	t.Parallel()

	m, _, actions := newTestModel()
	m, _ = update(t, m, warningMsg{remaining: time.Minute})

	_, cmd := update(t, m, runeKey('x'))
	assert.Nil(t, cmd)
	assert.Zero(t, actions.extends)
	assert.Zero(t, actions.logouts)
}

func TestModelExpiredNoticeWaitsForAcknowledgement(t *testing.T) {
	t.Parallel()

	m, publisher, _ := newTestModel()
	ack := make(chan struct{})
	m, _ = update(t, m, expiredMsg{reason: domain.LogoutIdleTimeout, ack: ack})

	assert.Contains(t, m.View(), "Your session has expired. Please login again.")
	select {
	case <-ack:
		t.Fatal("notice acknowledged before any key")
	default:
	}

	_, cmd := update(t, m, runeKey(' '))
	require.NotNil(t, cmd)
	_, quit := cmd().(tea.QuitMsg)
	assert.True(t, quit)

	select {
	case <-ack:
	default:
		t.Fatal("key press must acknowledge the notice")
	}
	assert.Empty(t, publisher.published())
}

func TestModelQuitKey(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel()
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	_, quit := cmd().(tea.QuitMsg)
	assert.True(t, quit)
}

func TestModelIdleViewShowsStatusAndHelp(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestModel()
	view := m.View()
	assert.Contains(t, view, "Asha <asha@example.com>")
	assert.Contains(t, view, "q quit")
}
