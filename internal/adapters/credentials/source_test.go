package credentials

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
)

type memSecrets struct {
	mu     sync.Mutex
	values map[string]string
	getErr error
}

func newMemSecrets() *memSecrets {
	return &memSecrets{values: map[string]string{}}
}

func (m *memSecrets) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return "", m.getErr
	}
	value, ok := m.values[key]
	if !ok {
		return "", domain.ErrSecretNotFound
	}
	return value, nil
}

func (m *memSecrets) Put(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memSecrets) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func TestSourceTokenPrefersPrimaryKey(t *testing.T) {
	t.Parallel()

	secrets := newMemSecrets()
	secrets.values[domain.CredentialKey] = "current"
	secrets.values[domain.LegacyCredentialKey] = "legacy"

	source, err := NewSource(domain.CredentialHeader, secrets)
	require.NoError(t, err)

	token, err := source.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "current", token)
}

func TestSourceTokenFallsBackToLegacyAlias(t *testing.T) {
	t.Parallel()

	secrets := newMemSecrets()
	secrets.values[domain.LegacyCredentialKey] = "legacy"

	source, err := NewSource("", secrets)
	require.NoError(t, err)
	assert.Equal(t, domain.CredentialHeader, source.Strategy())

	token, err := source.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "legacy", token)
}

func TestSourceTokenMissing(t *testing.T) {
	t.Parallel()

	source, err := NewSource(domain.CredentialHeader, newMemSecrets())
	require.NoError(t, err)

	_, err = source.Token(context.Background())
	assert.ErrorIs(t, err, domain.ErrCredentialNotFound)
}

func TestSourceTokenPropagatesStoreFailure(t *testing.T) {
	t.Parallel()

	secrets := newMemSecrets()
	secrets.getErr = errors.New("pass exploded")

	source, err := NewSource(domain.CredentialHeader, secrets)
	require.NoError(t, err)

	_, err = source.Token(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCredentialNotFound)
	assert.Contains(t, err.Error(), "pass exploded")
}

func TestNewSourceRejectsUnknownStrategy(t *testing.T) {
	t.Parallel()

	_, err := NewSource("localstorage", newMemSecrets())
	require.Error(t, err)

	_, err = NewSource(domain.CredentialHeader, nil)
	require.Error(t, err)
}

func TestSourceCookieFallbackReadsJar(t *testing.T) {
	t.Parallel()

	jar, err := NewCookieJar()
	require.NoError(t, err)
	base := "http://api.taaza.test:3000"
	baseURL, err := url.Parse(base)
	require.NoError(t, err)
	jar.SetCookies(baseURL, []*http.Cookie{{Name: domain.AuthCookieName, Value: "from-cookie", Path: "/"}})

	source, err := NewSource(domain.CredentialCookieFallback, newMemSecrets(), WithCookieJar(jar, base))
	require.NoError(t, err)

	token, err := source.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "from-cookie", token)

	require.NoError(t, source.Clear(context.Background()))
	_, err = source.Token(context.Background())
	assert.ErrorIs(t, err, domain.ErrCredentialNotFound)
	assert.Empty(t, jar.Cookies(baseURL))
}

func TestSourceHeaderStrategyIgnoresJar(t *testing.T) {
	t.Parallel()

	jar, err := NewCookieJar()
	require.NoError(t, err)
	base := "http://api.taaza.test"
	baseURL, err := url.Parse(base)
	require.NoError(t, err)
	jar.SetCookies(baseURL, []*http.Cookie{{Name: domain.AuthCookieName, Value: "from-cookie", Path: "/"}})

	source, err := NewSource(domain.CredentialHeader, newMemSecrets(), WithCookieJar(jar, base))
	require.NoError(t, err)

	_, err = source.Token(context.Background())
	assert.ErrorIs(t, err, domain.ErrCredentialNotFound)
}

func TestSourceClearKeepsDeviceID(t *testing.T) {
	t.Parallel()

	secrets := newMemSecrets()
	secrets.values[domain.CredentialKey] = "current"
	secrets.values[domain.LegacyCredentialKey] = "legacy"
	secrets.values[domain.DeviceIDKey] = "device-1"

	source, err := NewSource(domain.CredentialDeviceTagged, secrets)
	require.NoError(t, err)

	require.NoError(t, source.Clear(context.Background()))
	assert.Equal(t, map[string]string{domain.DeviceIDKey: "device-1"}, secrets.values)
}

func TestSourceSetTokenRejectsEmpty(t *testing.T) {
	t.Parallel()

	secrets := newMemSecrets()
	source, err := NewSource(domain.CredentialHeader, secrets)
	require.NoError(t, err)

	require.Error(t, source.SetToken(context.Background(), ""))
	require.NoError(t, source.SetToken(context.Background(), "jwt"))
	assert.Equal(t, "jwt", secrets.values[domain.CredentialKey])
}

func TestSourceDecorateSetsBearer(t *testing.T) {
	t.Parallel()

	secrets := newMemSecrets()
	secrets.values[domain.CredentialKey] = "jwt"
	source, err := NewSource(domain.CredentialHeader, secrets)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "http://api.taaza.test/api/v1/users/profile", nil)
	require.NoError(t, source.Decorate(context.Background(), req))
	assert.Equal(t, "Bearer jwt", req.Header.Get("Authorization"))
	assert.Empty(t, req.Header.Get(DeviceIDHeader))
}

func TestSourceDecorateWithoutTokenLeavesHeaderUnset(t *testing.T) {
	t.Parallel()

	source, err := NewSource(domain.CredentialHeader, newMemSecrets())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "http://api.taaza.test/api/v1/users/login", nil)
	require.NoError(t, source.Decorate(context.Background(), req))
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestSourceDeviceTaggedPersistsGeneratedID(t *testing.T) {
	t.Parallel()

	secrets := newMemSecrets()
	calls := 0
	source, err := NewSource(domain.CredentialDeviceTagged, secrets, WithDeviceIDGenerator(func() string {
		calls++
		return "6f1c1f5e-0000-4000-8000-000000000001"
	}))
	require.NoError(t, err)

	for range 2 {
		req := httptest.NewRequest(http.MethodGet, "http://api.taaza.test/api/v1/users/profile", nil)
		require.NoError(t, source.Decorate(context.Background(), req))
		assert.Equal(t, "6f1c1f5e-0000-4000-8000-000000000001", req.Header.Get(DeviceIDHeader))
	}
	assert.Equal(t, 1, calls)
	assert.Equal(t, "6f1c1f5e-0000-4000-8000-000000000001", secrets.values[domain.DeviceIDKey])
}

func TestSourceDeviceIDReusesStoredValue(t *testing.T) {
	t.Parallel()

	secrets := newMemSecrets()
	secrets.values[domain.DeviceIDKey] = "stored-device"
	source, err := NewSource(domain.CredentialDeviceTagged, secrets, WithDeviceIDGenerator(func() string {
		t.Fatal("generator must not run when an id is stored")
		return ""
	}))
	require.NoError(t, err)

	id, err := source.DeviceID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "stored-device", id)
}
