package credentials

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"

	"github.com/taaza-dairy/taaza-cli/internal/adapters/api"
	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

const DeviceIDHeader = "X-Device-ID"

// Source is the credential store and request authorizer for one lookup
// strategy. Tokens live in the secret store; the cookie jar is only consulted
// by the cookie_fallback strategy.
type Source struct {
	strategy domain.CredentialStrategy
	secrets  ports.SecretStore
	jar      http.CookieJar
	jarURL   *url.URL
	newID    func() string

	mu       sync.Mutex
	deviceID string
}

var (
	_ ports.CredentialStore = (*Source)(nil)
	_ api.RequestAuthorizer = (*Source)(nil)
)

type Option func(*Source)

// WithCookieJar lets the cookie_fallback strategy read the auth cookie the
// backend set for baseURL.
func WithCookieJar(jar http.CookieJar, baseURL string) Option {
	return func(s *Source) {
		parsed, err := url.Parse(baseURL)
		if err != nil || jar == nil {
			return
		}
		s.jar = jar
		s.jarURL = parsed
	}
}

func WithDeviceIDGenerator(fn func() string) Option {
	return func(s *Source) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func NewSource(strategy domain.CredentialStrategy, secrets ports.SecretStore, opts ...Option) (*Source, error) {
	if secrets == nil {
		return nil, errors.New("secret store is required")
	}
	if _, err := domain.ParseCredentialStrategy(string(strategy)); err != nil {
		return nil, err
	}
	if strategy == "" {
		strategy = domain.CredentialHeader
	}

	s := &Source{strategy: strategy, secrets: secrets, newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewCookieJar returns a jar scoped with the public suffix list so the auth
// cookie is never shared across registrable domains.
func NewCookieJar() (http.CookieJar, error) {
	return cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
}

func (s *Source) Strategy() domain.CredentialStrategy {
	return s.strategy
}

func (s *Source) Token(ctx context.Context) (string, error) {
	for _, key := range []string{domain.CredentialKey, domain.LegacyCredentialKey} {
		token, err := s.secrets.Get(ctx, key)
		if err == nil && token != "" {
			return token, nil
		}
		if err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
			return "", fmt.Errorf("read credential %s: %w", key, err)
		}
	}

	if s.strategy == domain.CredentialCookieFallback {
		if token := s.cookieToken(); token != "" {
			return token, nil
		}
	}

	return "", domain.ErrCredentialNotFound
}

func (s *Source) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("token is empty")
	}
	if err := s.secrets.Put(ctx, domain.CredentialKey, token); err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	return nil
}

// Clear removes the token and its legacy alias and expires the auth cookie.
// The device id is kept.
func (s *Source) Clear(ctx context.Context) error {
	var errs []error
	for _, key := range []string{domain.CredentialKey, domain.LegacyCredentialKey} {
		if err := s.secrets.Delete(ctx, key); err != nil && !errors.Is(err, domain.ErrSecretNotFound) {
			errs = append(errs, fmt.Errorf("delete credential %s: %w", key, err))
		}
	}

	if s.jar != nil {
		s.jar.SetCookies(s.jarURL, []*http.Cookie{{
			Name:   domain.AuthCookieName,
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		}})
	}

	return errors.Join(errs...)
}

// Decorate sets the bearer header when a token exists and, for the
// device_tagged strategy, the device id header.
func (s *Source) Decorate(ctx context.Context, req *http.Request) error {
	token, err := s.Token(ctx)
	switch {
	case err == nil:
		req.Header.Set("Authorization", "Bearer "+token)
	case !errors.Is(err, domain.ErrCredentialNotFound):
		return err
	}

	if s.strategy == domain.CredentialDeviceTagged {
		deviceID, err := s.DeviceID(ctx)
		if err != nil {
			return err
		}
		req.Header.Set(DeviceIDHeader, deviceID)
	}

	return nil
}

// DeviceID returns the persisted device id, generating one on first use.
func (s *Source) DeviceID(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deviceID != "" {
		return s.deviceID, nil
	}

	stored, err := s.secrets.Get(ctx, domain.DeviceIDKey)
	switch {
	case err == nil && stored != "":
		s.deviceID = stored
		return stored, nil
	case err != nil && !errors.Is(err, domain.ErrSecretNotFound):
		return "", fmt.Errorf("read device id: %w", err)
	}

	generated := s.newID()
	if err := s.secrets.Put(ctx, domain.DeviceIDKey, generated); err != nil {
		return "", fmt.Errorf("store device id: %w", err)
	}
	s.deviceID = generated
	return generated, nil
}

func (s *Source) cookieToken() string {
	if s.jar == nil {
		return ""
	}
	for _, cookie := range s.jar.Cookies(s.jarURL) {
		if cookie.Name == domain.AuthCookieName && cookie.Value != "" {
			return cookie.Value
		}
	}
	return ""
}
