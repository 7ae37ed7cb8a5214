package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

// ErrUnavailable means pass cannot serve credentials on this machine: the
// binary is missing, the store was never initialized, or gpg has no key.
var ErrUnavailable = errors.New("pass store unavailable")

// pinentry can block indefinitely waiting for a passphrase.
const defaultCommandTimeout = 30 * time.Second

const notInStoreMessage = "is not in the password store"

var unavailableMessages = []string{
	"password store is empty",
	"try \"pass init\"",
	"no secret key",
	"gpg: decryption failed",
}

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

type Store struct {
	run     runFunc
	timeout time.Duration
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{run: runPassCommand, timeout: defaultCommandTimeout}
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("pass put %q: credential must be a single line", key)
	}

	_, stderr, err := s.exec(ctx, value+"\n", "insert", "-m", "-f", key)
	if err != nil {
		return classify("put", key, err, stderr)
	}
	return nil
}

// Get returns the first line of the entry; pass keeps metadata on the
// following lines.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	stdout, stderr, err := s.exec(ctx, "", "show", key)
	if err != nil {
		if strings.Contains(stderr, notInStoreMessage) {
			return "", fmt.Errorf("pass get %q: %w", key, domain.ErrSecretNotFound)
		}
		return "", classify("get", key, err, stderr)
	}

	first, _, _ := strings.Cut(stdout, "\n")
	first = strings.TrimSpace(first)
	if first == "" {
		return "", fmt.Errorf("pass get %q: entry is blank: %w", key, domain.ErrSecretNotFound)
	}
	return first, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, stderr, err := s.exec(ctx, "", "rm", "-f", key)
	if err != nil {
		if strings.Contains(stderr, notInStoreMessage) {
			return nil
		}
		return classify("delete", key, err, stderr)
	}
	return nil
}

func (s *Store) exec(ctx context.Context, input string, args ...string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.run(ctx, input, args...)
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		err = ctxErr
	}
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func classify(op string, key string, err error, stderr string) error {
	if errors.Is(err, ErrUnavailable) {
		return fmt.Errorf("pass %s %q: %w", op, key, err)
	}
	lower := strings.ToLower(stderr)
	for _, msg := range unavailableMessages {
		if strings.Contains(lower, msg) {
			return fmt.Errorf("pass %s %q: %w: %s", op, key, ErrUnavailable, stderr)
		}
	}
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, key, err)
	}
	return fmt.Errorf("pass %s %q: %w: %s", op, key, err, stderr)
}
