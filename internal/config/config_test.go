package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.API.BaseURL)
	assert.Equal(t, domain.CredentialHeader, cfg.Credential.Strategy)
	assert.Equal(t, CredentialBackendPassFirst, cfg.Credential.Backend)
	assert.Equal(t, filepath.Join(home, ".taaza", "secrets"), cfg.Credential.SecretsDir)
	assert.Equal(t, filepath.Join(home, ".taaza", "local.toml"), cfg.Local.Path)
	assert.Equal(t, 7*24*time.Hour, cfg.Session.IdleTimeout)
	assert.Equal(t, time.Hour, cfg.Session.WarningLead)
	assert.Equal(t, 10*time.Second, cfg.Session.RequestTimeout)
	assert.Equal(t, domain.DefaultPublicPages(), cfg.Session.PublicPages)
	assert.True(t, cfg.Session.NotifyOnLogout)
}

func TestLoadReadsConfigFileAndEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".taaza"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".taaza", "config.toml"), []byte(`
[api]
base_url = "https://shop.example.com/"

[credential]
strategy = "device_tagged"

[session]
idle_timeout = "30m"
warning_lead = "5m"
notify_on_logout = false
`), 0o600))
	t.Setenv("TAAZA_SESSION_WARNING_LEAD", "10m")
	t.Setenv("TAAZA_CREDENTIAL_BACKEND", "file")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example.com", cfg.API.BaseURL)
	assert.Equal(t, domain.CredentialDeviceTagged, cfg.Credential.Strategy)
	assert.Equal(t, CredentialBackendFile, cfg.Credential.Backend)
	assert.Equal(t, 30*time.Minute, cfg.Session.IdleTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Session.WarningLead)
	assert.False(t, cfg.Session.NotifyOnLogout)
}

func TestLoadRejectsLeadNotShorterThanIdle(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TAAZA_SESSION_IDLE_TIMEOUT", "1h")
	t.Setenv("TAAZA_SESSION_WARNING_LEAD", "1h")

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be shorter than session.idle_timeout")
}

func TestLoadRejectsUnknownStrategy(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TAAZA_CREDENTIAL_STRATEGY", "query_param")

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported credential strategy "query_param"`)
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	t.Parallel()

	cfg := Config{
		API:        APIConfig{BaseURL: "http://x", Timeout: time.Second},
		Credential: CredentialConfig{Backend: "keyring", SecretsDir: "/tmp/s"},
		Local:      LocalConfig{Path: "/tmp/l.toml"},
		Session:    SessionConfig{IdleTimeout: time.Hour, WarningLead: time.Minute, RequestTimeout: time.Second},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported credential.backend "keyring"`)
}
