package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// progress describes the indicator shown on stderr while a backend call runs.
type progress struct {
	Label string
	// Spinner defaults to spinner.Dot.
	Spinner spinner.Spinner
	// Done is printed once the call succeeds. Empty leaves no trace.
	Done string
}

var (
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	elapsedStyle  = lipgloss.NewStyle().Faint(true)
)

// Elapsed time is only shown for calls slower than this.
const showElapsedAfter = 2 * time.Second

type progressDoneMsg struct{ err error }

type progressModel struct {
	spinner spinner.Model
	opts    progress
	call    tea.Cmd
	started time.Time
	now     func() time.Time
	err     error
	done    bool
}

func newProgressModel(opts progress, call tea.Cmd, now func() time.Time) progressModel {
	kind := opts.Spinner
	if len(kind.Frames) == 0 {
		kind = spinner.Dot
	}
	return progressModel{
		spinner: spinner.New(spinner.WithSpinner(kind), spinner.WithStyle(progressStyle)),
		opts:    opts,
		call:    call,
		started: now(),
		now:     now,
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.call)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progressDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		if m.err == nil && m.opts.Done != "" {
			return m.opts.Done + "\n"
		}
		return ""
	}

	line := m.spinner.View() + " " + m.opts.Label
	if elapsed := m.now().Sub(m.started); elapsed >= showElapsedAfter {
		line += " " + elapsedStyle.Render(fmt.Sprintf("(%s)", elapsed.Truncate(time.Second)))
	}
	return line
}

// withProgress runs call while the indicator animates on output and returns
// the call's error.
func withProgress(ctx context.Context, output io.Writer, opts progress, call func(context.Context) error) error {
	model := newProgressModel(opts, func() tea.Msg {
		return progressDoneMsg{err: call(ctx)}
	}, time.Now)

	program := tea.NewProgram(model, tea.WithInput(nil), tea.WithOutput(output), tea.WithContext(ctx))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("progress indicator: %w", err)
	}

	result, ok := final.(progressModel)
	if !ok {
		return fmt.Errorf("unexpected progress model %T", final)
	}
	return result.err
}
