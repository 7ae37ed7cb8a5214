package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".taaza"
	envPrefix  = "TAAZA"

	CredentialBackendPassFirst = "pass-first"
	CredentialBackendFile      = "file"
)

type Config struct {
	API        APIConfig
	Credential CredentialConfig
	Local      LocalConfig
	Session    SessionConfig
	Log        LogConfig
}

type APIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64
}

type CredentialConfig struct {
	Strategy   domain.CredentialStrategy
	Backend    string
	SecretsDir string
}

type LocalConfig struct {
	Path string
}

type SessionConfig struct {
	IdleTimeout    time.Duration
	WarningLead    time.Duration
	RequestTimeout time.Duration
	PublicPages    []string
	NotifyOnLogout bool
	LoginHint      string
}

type LogConfig struct {
	Level string
}

// Load resolves configuration from defaults, ~/.taaza/config.toml and TAAZA_*
// environment variables, in increasing precedence.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	base := filepath.Join(homeDir, configDir)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(base)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.base_url", "http://localhost:3000")
	v.SetDefault("api.timeout", 30*time.Second)
	v.SetDefault("api.rate_limit", 0.0)
	v.SetDefault("credential.strategy", string(domain.CredentialHeader))
	v.SetDefault("credential.backend", CredentialBackendPassFirst)
	v.SetDefault("credential.secrets_dir", filepath.Join(base, "secrets"))
	v.SetDefault("local.path", filepath.Join(base, "local.toml"))
	v.SetDefault("session.idle_timeout", domain.DefaultIdleTimeout)
	v.SetDefault("session.warning_lead", domain.DefaultWarningLead)
	v.SetDefault("session.request_timeout", 10*time.Second)
	v.SetDefault("session.public_pages", domain.DefaultPublicPages())
	v.SetDefault("session.notify_on_logout", true)
	v.SetDefault("session.login_hint", `run "tz login" to sign in again`)
	v.SetDefault("log.level", "")

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	strategy, err := domain.ParseCredentialStrategy(v.GetString("credential.strategy"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		API: APIConfig{
			BaseURL:   strings.TrimRight(v.GetString("api.base_url"), "/"),
			Timeout:   v.GetDuration("api.timeout"),
			RateLimit: v.GetFloat64("api.rate_limit"),
		},
		Credential: CredentialConfig{
			Strategy:   strategy,
			Backend:    v.GetString("credential.backend"),
			SecretsDir: v.GetString("credential.secrets_dir"),
		},
		Local: LocalConfig{Path: v.GetString("local.path")},
		Session: SessionConfig{
			IdleTimeout:    v.GetDuration("session.idle_timeout"),
			WarningLead:    v.GetDuration("session.warning_lead"),
			RequestTimeout: v.GetDuration("session.request_timeout"),
			PublicPages:    v.GetStringSlice("session.public_pages"),
			NotifyOnLogout: v.GetBool("session.notify_on_logout"),
			LoginHint:      v.GetString("session.login_hint"),
		},
		Log: LogConfig{Level: v.GetString("log.level")},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.API.RateLimit < 0 {
		return fmt.Errorf("api.rate_limit must not be negative, got %v", c.API.RateLimit)
	}
	switch c.Credential.Backend {
	case CredentialBackendPassFirst, CredentialBackendFile:
	default:
		return fmt.Errorf("unsupported credential.backend %q", c.Credential.Backend)
	}
	if c.Credential.SecretsDir == "" {
		return errors.New("credential.secrets_dir is required")
	}
	if c.Local.Path == "" {
		return errors.New("local.path is required")
	}
	if c.Session.IdleTimeout <= 0 {
		return fmt.Errorf("session.idle_timeout must be positive, got %s", c.Session.IdleTimeout)
	}
	if c.Session.WarningLead <= 0 {
		return fmt.Errorf("session.warning_lead must be positive, got %s", c.Session.WarningLead)
	}
	if c.Session.WarningLead >= c.Session.IdleTimeout {
		return fmt.Errorf("session.warning_lead (%s) must be shorter than session.idle_timeout (%s)", c.Session.WarningLead, c.Session.IdleTimeout)
	}
	if c.Session.RequestTimeout <= 0 {
		return fmt.Errorf("session.request_timeout must be positive, got %s", c.Session.RequestTimeout)
	}

	return nil
}
