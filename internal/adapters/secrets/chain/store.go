package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/taaza-dairy/taaza-cli/internal/adapters/secrets/file"
	passstore "github.com/taaza-dairy/taaza-cli/internal/adapters/secrets/pass"
	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

// Store reads and writes credentials through a preferred backend and falls
// back to a second one when the first cannot serve. A credential lives in at
// most one backend: a successful primary write removes the fallback copy.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errors.New("primary credential backend is nil")
	}
	if fallback == nil {
		return nil, errors.New("fallback credential backend is nil")
	}
	return &Store{primary: primary, fallback: fallback}, nil
}

// NewPassFirstWithFileFallback prefers the pass password store and keeps
// credentials as files under fileRoot when pass is unavailable.
func NewPassFirstWithFileFallback(fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStore(), filestore.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		if delErr := s.fallback.Delete(ctx, key); delErr != nil && !isCancellation(delErr) {
			return fmt.Errorf("remove stale fallback copy of %q: %w", key, delErr)
		}
		return nil
	}
	if isCancellation(err) {
		return err
	}

	if fallbackErr := s.fallback.Put(ctx, key, value); fallbackErr != nil {
		return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if isCancellation(err) {
		return "", err
	}

	value, fallbackErr := s.fallback.Get(ctx, key)
	switch {
	case fallbackErr == nil:
		return value, nil
	case errors.Is(fallbackErr, domain.ErrSecretNotFound) &&
		(errors.Is(err, domain.ErrSecretNotFound) || errors.Is(err, passstore.ErrUnavailable)):
		return "", fmt.Errorf("credential %q: %w", key, domain.ErrSecretNotFound)
	default:
		return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
	}
}

// Delete removes the key from both backends: a credential written to the
// fallback while the primary was unavailable must not survive a logout.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if err != nil && isCancellation(err) {
		return err
	}
	if errors.Is(err, passstore.ErrUnavailable) {
		err = nil
	}

	fallbackErr := s.fallback.Delete(ctx, key)
	switch {
	case err == nil && fallbackErr == nil:
		return nil
	case err == nil:
		return fmt.Errorf("fallback backend delete failed: %w", fallbackErr)
	case fallbackErr == nil:
		return fmt.Errorf("primary backend delete failed: %w", err)
	default:
		return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", err, fallbackErr)
	}
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
