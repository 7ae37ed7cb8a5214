package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/taaza-dairy/taaza-cli/internal/adapters/api"
	"github.com/taaza-dairy/taaza-cli/internal/adapters/credentials"
	statusadapter "github.com/taaza-dairy/taaza-cli/internal/adapters/render/status"
	tomlrepo "github.com/taaza-dairy/taaza-cli/internal/adapters/repo/toml"
	chainstore "github.com/taaza-dairy/taaza-cli/internal/adapters/secrets/chain"
	filestore "github.com/taaza-dairy/taaza-cli/internal/adapters/secrets/file"
	"github.com/taaza-dairy/taaza-cli/internal/adapters/terminal"
	"github.com/taaza-dairy/taaza-cli/internal/application"
	"github.com/taaza-dairy/taaza-cli/internal/config"
	xlog "github.com/taaza-dairy/taaza-cli/internal/log"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

type app struct {
	cfg    config.Config
	logger zerolog.Logger
	clock  ports.Clock

	client      *api.Client
	credentials *credentials.Source
	local       *tomlrepo.LocalStore

	auth          *application.AuthService
	addresses     *application.AddressService
	subscriptions *application.SubscriptionService
	data          *application.DataService
	prices        *application.PriceService
	status        *application.StatusService

	statusRenderer func(application.SessionStatus, statusadapter.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	xlog.Configure(xlog.Config{Level: cfg.Log.Level, Console: true})
	logger := xlog.Base()

	secretStore, err := newSecretStore(cfg.Credential)
	if err != nil {
		return nil, err
	}

	jar, err := credentials.NewCookieJar()
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	creds, err := credentials.NewSource(cfg.Credential.Strategy, secretStore, credentials.WithCookieJar(jar, cfg.API.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("wire credential source: %w", err)
	}

	client := api.NewClient(
		cfg.API.BaseURL,
		api.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout, Jar: jar}),
		api.WithAuthorizer(creds),
		api.WithRateLimit(cfg.API.RateLimit),
	)

	local, err := tomlrepo.NewLocalStore(cfg.Local.Path)
	if err != nil {
		return nil, fmt.Errorf("wire local store: %w", err)
	}

	clock := ports.SystemClock{}
	subscriptions := application.NewSubscriptionService(client, local, logger)
	data := application.NewDataService(client, creds, local, subscriptions, logger)

	return &app{
		cfg:           cfg,
		logger:        logger,
		clock:         clock,
		client:        client,
		credentials:   creds,
		local:         local,
		auth:          application.NewAuthService(client, creds, local, data, logger),
		addresses:     application.NewAddressService(client, local, logger),
		subscriptions: subscriptions,
		data:          data,
		prices:        application.NewPriceService(client, clock, logger),
		status: application.NewStatusService(
			creds, client, local, clock, watchdogConfig(cfg.Session), cfg.Credential.Strategy, logger,
		),
		statusRenderer: statusadapter.Render,
	}, nil
}

func newSecretStore(cfg config.CredentialConfig) (ports.SecretStore, error) {
	if cfg.Backend == config.CredentialBackendFile {
		return filestore.NewStore(cfg.SecretsDir), nil
	}

	store, err := chainstore.NewPassFirstWithFileFallback(cfg.SecretsDir)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}
	return store, nil
}

func watchdogConfig(cfg config.SessionConfig) application.WatchdogConfig {
	return application.WatchdogConfig{
		IdleTimeout:    cfg.IdleTimeout,
		WarningLead:    cfg.WarningLead,
		RequestTimeout: cfg.RequestTimeout,
		PublicPages:    cfg.PublicPages,
		NotifyOnLogout: cfg.NotifyOnLogout,
	}
}

type watchdogOptions struct {
	prompt   ports.SessionPrompt
	activity ports.ActivitySource
	cancel   context.CancelFunc
	out      io.Writer
}

// newWatchdog builds a watchdog for the running command, which acts as the
// current page.
func (a *app) newWatchdog(cmd *cobra.Command, opts watchdogOptions) (*application.SessionWatchdog, *terminal.Navigator, error) {
	out := opts.out
	if out == nil {
		out = cmd.ErrOrStderr()
	}
	prompt := opts.prompt
	if prompt == nil {
		prompt = terminal.NewHeadlessPrompt(out, a.logger)
	}

	nav := terminal.NewNavigator(commandPage(cmd), a.cfg.Session.LoginHint, out, opts.cancel)
	watchdog, err := application.NewSessionWatchdog(watchdogConfig(a.cfg.Session), application.WatchdogDeps{
		Credentials: a.credentials,
		API:         a.client,
		Navigator:   nav,
		Activity:    opts.activity,
		Prompt:      prompt,
		Local:       a.local,
		Clock:       a.clock,
		Logger:      xlog.Derive(func(c *zerolog.Context) {
			*c = c.Str("command", cmd.CommandPath())
		}),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create session watchdog: %w", err)
	}
	return watchdog, nav, nil
}

// commandPage maps "tz session watch" to "/session/watch".
func commandPage(cmd *cobra.Command) string {
	parts := strings.Fields(cmd.CommandPath())
	if len(parts) > 0 {
		parts = parts[1:]
	}
	return "/" + strings.Join(parts, "/")
}
