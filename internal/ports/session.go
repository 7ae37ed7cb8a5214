package ports

import (
	"context"
	"time"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
)

type ActivitySource interface {
	Subscribe(fn func()) (unsubscribe func())
}

type Navigator interface {
	CurrentPage() string
	RedirectToLogin(reason domain.LogoutReason)
}

type SessionPrompt interface {
	ShowWarning(remaining time.Duration)
	HideWarning()
	NotifyExpired(reason domain.LogoutReason)
}

type SessionAPI interface {
	Profile(ctx context.Context) (domain.User, error)
	Logout(ctx context.Context) error
}
