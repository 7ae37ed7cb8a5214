package terminal

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

// HeadlessPrompt reports session warnings on a writer and the log instead of
// an interactive overlay. Any activity dismisses the warning and extends the
// session.
type HeadlessPrompt struct {
	out io.Writer
	log zerolog.Logger
}

var _ ports.SessionPrompt = (*HeadlessPrompt)(nil)

func NewHeadlessPrompt(out io.Writer, logger zerolog.Logger) *HeadlessPrompt {
	if out == nil {
		out = io.Discard
	}
	return &HeadlessPrompt{out: out, log: logger.With().Str("component", "prompt").Logger()}
}

func (p *HeadlessPrompt) ShowWarning(remaining time.Duration) {
	p.log.Warn().Dur("remaining", remaining).Msg("session about to expire")
	_, _ = fmt.Fprintf(p.out, "Session expires in %s due to inactivity.\n", remaining.Round(time.Second))
}

func (p *HeadlessPrompt) HideWarning() {
	p.log.Info().Msg("session expiry warning dismissed")
}

func (p *HeadlessPrompt) NotifyExpired(reason domain.LogoutReason) {
	p.log.Info().Str("reason", string(reason)).Msg("session expired notice")
}
