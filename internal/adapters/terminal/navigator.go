package terminal

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

// Navigator treats the running command as the current page. Redirecting to
// login prints the hint and cancels the command.
type Navigator struct {
	page   string
	hint   string
	out    io.Writer
	cancel context.CancelFunc

	mu       sync.Mutex
	reason   domain.LogoutReason
	redirect bool
}

var _ ports.Navigator = (*Navigator)(nil)

func NewNavigator(page, hint string, out io.Writer, cancel context.CancelFunc) *Navigator {
	if out == nil {
		out = io.Discard
	}
	return &Navigator{page: page, hint: hint, out: out, cancel: cancel}
}

func (n *Navigator) CurrentPage() string {
	return n.page
}

func (n *Navigator) RedirectToLogin(reason domain.LogoutReason) {
	n.mu.Lock()
	if n.redirect {
		n.mu.Unlock()
		return
	}
	n.redirect = true
	n.reason = reason
	n.mu.Unlock()

	_, _ = fmt.Fprintln(n.out, reason.Message())
	if n.hint != "" {
		_, _ = fmt.Fprintln(n.out, n.hint)
	}
	if n.cancel != nil {
		n.cancel()
	}
}

// Redirected reports whether the session ended and why.
func (n *Navigator) Redirected() (domain.LogoutReason, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.reason, n.redirect
}
