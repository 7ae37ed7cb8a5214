package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

// Screen is the interactive session view. It forwards terminal input as
// activity and is the watchdog's warning prompt.
type Screen struct {
	program *tea.Program
	done    chan struct{}
}

var _ ports.SessionPrompt = (*Screen)(nil)

func NewScreen(ctx context.Context, activity Publisher, actions Actions, statusFn StatusFunc, opts ...tea.ProgramOption) *Screen {
	options := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithMouseAllMotion(),
	}, opts...)

	return &Screen{
		program: tea.NewProgram(newModel(activity, actions, statusFn), options...),
		done:    make(chan struct{}),
	}
}

// Run blocks until the user quits or the context is cancelled.
func (s *Screen) Run() error {
	defer close(s.done)

	_, err := s.program.Run()
	if err != nil && !isShutdown(err) {
		return fmt.Errorf("run session screen: %w", err)
	}
	return nil
}

func (s *Screen) ShowWarning(remaining time.Duration) {
	s.send(warningMsg{remaining: remaining})
}

func (s *Screen) HideWarning() {
	s.send(hideMsg{})
}

// NotifyExpired shows the expiry notice and blocks until it is acknowledged
// or the screen stops.
func (s *Screen) NotifyExpired(reason domain.LogoutReason) {
	ack := make(chan struct{})
	s.send(expiredMsg{reason: reason, ack: ack})

	select {
	case <-ack:
	case <-s.done:
	}
}

func (s *Screen) send(msg tea.Msg) {
	select {
	case <-s.done:
	default:
		s.program.Send(msg)
	}
}

func isShutdown(err error) bool {
	return errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted)
}
