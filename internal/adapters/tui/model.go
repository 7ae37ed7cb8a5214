package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taaza-dairy/taaza-cli/internal/adapters/render/status"
	"github.com/taaza-dairy/taaza-cli/internal/application"
	"github.com/taaza-dairy/taaza-cli/internal/domain"
)

// Actions are the two choices the warning overlay offers.
type Actions interface {
	Extend()
	Logout()
}

// Publisher receives the activity observed on the screen.
type Publisher interface {
	Publish(kind domain.ActivityKind) bool
}

type StatusFunc func() application.SessionStatus

type (
	tickMsg    time.Time
	warningMsg struct{ remaining time.Duration }
	hideMsg    struct{}
	expiredMsg struct {
		reason domain.LogoutReason
		ack    chan struct{}
	}
)

const tickInterval = time.Second

type model struct {
	activity Publisher
	actions  Actions
	status   StatusFunc
	keys     keyMap
	now      func() time.Time

	warning  bool
	deadline time.Time
	expired  *expiredMsg
	width    int
}

func newModel(activity Publisher, actions Actions, statusFn StatusFunc) model {
	return model{
		activity: activity,
		actions:  actions,
		status:   statusFn,
		keys:     defaultKeyMap(),
		now:      time.Now,
	}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if kind, ok := mouseActivity(msg); ok && m.expired == nil {
			m.activity.Publish(kind)
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case warningMsg:
		m.warning = true
		m.deadline = m.now().Add(msg.remaining)
		return m, nil
	case hideMsg:
		m.warning = false
		return m, nil
	case expiredMsg:
		m.warning = false
		m.expired = &msg
		return m, nil
	case tickMsg:
		return m, tick()
	default:
		return m, nil
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.expired != nil {
		m.acknowledge()
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.warning {
		// Both choices call back into the prompt, which sends to this
		// program: they must not run on the update loop.
		switch {
		case key.Matches(msg, m.keys.Extend):
			return m, m.run(m.actions.Extend)
		case key.Matches(msg, m.keys.Logout):
			return m, m.run(m.actions.Logout)
		}
		return m, nil
	}

	m.activity.Publish(domain.ActivityKeyPress)
	return m, nil
}

func (m model) run(fn func()) tea.Cmd {
	return func() tea.Msg {
		fn()
		return nil
	}
}

func (m model) acknowledge() {
	if m.expired == nil || m.expired.ack == nil {
		return
	}
	select {
	case <-m.expired.ack:
	default:
		close(m.expired.ack)
	}
}

func mouseActivity(msg tea.MouseMsg) (domain.ActivityKind, bool) {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return domain.ActivityScroll, true
	}

	switch msg.Action {
	case tea.MouseActionPress:
		return domain.ActivityPointerDown, true
	case tea.MouseActionRelease:
		return domain.ActivityClick, true
	case tea.MouseActionMotion:
		return domain.ActivityPointerMove, true
	default:
		return "", false
	}
}

var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("203")).
			Padding(0, 2).
			MarginTop(1)
	overlayTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	choiceStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

func (m model) View() string {
	if m.expired != nil {
		return overlayStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			overlayTitle.Render(m.expired.reason.Message()),
			"",
			"Press any key to continue.",
		))
	}

	view := status.View(m.status(), status.RenderOptions{})
	if m.warning {
		remaining := m.deadline.Sub(m.now())
		view = lipgloss.JoinVertical(lipgloss.Left, view, overlayStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			overlayTitle.Render("Session expiring"),
			fmt.Sprintf("You will be logged out in %s due to inactivity.", status.FormatDuration(remaining)),
			"",
			choiceStyle.Render("[e] stay logged in")+"   "+choiceStyle.Render("[l] log out"),
		)))
		return view
	}

	return lipgloss.JoinVertical(lipgloss.Left, view, helpStyle.Render("q quit · any key or mouse input counts as activity"))
}
