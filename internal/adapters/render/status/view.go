package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/taaza-dairy/taaza-cli/internal/application"
	"github.com/taaza-dairy/taaza-cli/internal/domain"
)

type RenderOptions struct {
	BarWidth int
}

const defaultBarWidth = 24

func renderView(status application.SessionStatus, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Taaza Session"),
		s.header.Render(fmt.Sprintf("strategy: %s", strategyLabel(status.Strategy))),
	}

	if !status.HasCredential {
		lines = append(lines, s.section.Render(s.empty.Render("Not logged in. Run \"tz login\" to start a session.")))
		if status.Detail != "" {
			lines = append(lines, s.warning.Render(status.Detail))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	body := []string{s.user.Render(userTitle(status.User))}
	body = append(body, stateLine(status, s))
	if line := timerLine(status, opts, s); line != "" {
		body = append(body, line)
	}
	body = append(body, validationLine(status, s))
	body = append(body, s.detail.Render(fmt.Sprintf(
		"idle timeout: %s, warning %s before logout",
		FormatDuration(status.IdleTimeout),
		FormatDuration(status.WarningLead),
	)))

	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, body...)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func userTitle(user domain.User) string {
	name := strings.TrimSpace(user.Name)
	email := strings.TrimSpace(user.Email)
	switch {
	case name != "" && email != "":
		return fmt.Sprintf("%s <%s>", name, email)
	case email != "":
		return email
	case name != "":
		return name
	default:
		return "Unknown user"
	}
}

func stateLine(status application.SessionStatus, s styles) string {
	label := s.key.Render("state:")
	switch status.State {
	case domain.SessionWarningShown:
		return label + " " + s.warning.Render("expiring soon")
	case domain.SessionLoggedOut:
		return label + " " + s.warning.Render("logged out")
	default:
		return label + " " + s.ok.Render("active")
	}
}

func timerLine(status application.SessionStatus, opts RenderOptions, s styles) string {
	if status.Snapshot.LogoutAt.IsZero() || status.IdleTimeout <= 0 {
		return ""
	}

	remaining := status.Remaining()
	leftPercent := clampPercent(100 * remaining.Seconds() / status.IdleTimeout.Seconds())
	width := opts.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}

	meta := lipgloss.NewStyle().
		Foreground(interpolateColor(leftPercent, 0, 100)).
		Render(fmt.Sprintf("%s left", FormatDuration(remaining)))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.key.Render("logout in:"),
		" ",
		renderProgressBar(leftPercent, width, s),
		" ",
		meta,
		" ",
		s.header.Render(fmt.Sprintf("(at %s)", status.Snapshot.LogoutAt.Local().Format("15:04 on 02 Jan"))),
	)
}

func validationLine(status application.SessionStatus, s styles) string {
	label := s.key.Render("server:")
	switch status.Validation {
	case application.ValidationValid:
		return label + " " + s.ok.Render("credential accepted")
	case application.ValidationRejected:
		return label + " " + s.warning.Render("credential rejected, log in again")
	case application.ValidationUnavailable:
		return label + " " + s.warning.Render("unreachable") + " " + s.header.Render(status.Detail)
	default:
		return label + " " + s.empty.Render("not checked")
	}
}

func strategyLabel(strategy domain.CredentialStrategy) string {
	if strategy == "" {
		return string(domain.CredentialHeader)
	}
	return string(strategy)
}

func renderProgressBar(leftPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(leftPercent) / 100.0))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// FormatDuration prints the two most significant units ("6d 23h", "59m 10s").
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	d = d.Round(time.Second)
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)
	d -= time.Duration(minutes) * time.Minute
	seconds := int(d / time.Second)

	units := []struct {
		value  int
		suffix string
	}{
		{days, "d"}, {hours, "h"}, {minutes, "m"}, {seconds, "s"},
	}

	parts := make([]string, 0, 2)
	for _, unit := range units {
		if unit.value == 0 && len(parts) == 0 {
			continue
		}
		if unit.value != 0 {
			parts = append(parts, fmt.Sprintf("%d%s", unit.value, unit.suffix))
		}
		if len(parts) == 2 || (len(parts) > 0 && unit.value == 0) {
			break
		}
	}
	return strings.Join(parts, " ")
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// 256-colour greyscale ramp: faded at min, bright at max.
	interpolated := 240.0 + (255.0-240.0)*normalized
	return lipgloss.Color(fmt.Sprintf("%d", int(interpolated)))
}
