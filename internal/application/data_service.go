package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

type DataService struct {
	api   ports.DataAPI
	creds ports.CredentialStore
	local ports.LocalStore
	subs  *SubscriptionService
	log   zerolog.Logger
}

type MigrationReport struct {
	Preferences  int
	Subscription bool
}

func NewDataService(api ports.DataAPI, creds ports.CredentialStore, local ports.LocalStore, subs *SubscriptionService, logger zerolog.Logger) *DataService {
	return &DataService{
		api:   api,
		creds: creds,
		local: local,
		subs:  subs,
		log:   logger.With().Str("service", "data").Logger(),
	}
}

func (s *DataService) Preferences(ctx context.Context) (domain.Preferences, error) {
	prefs, err := s.api.Preferences(ctx)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		prefs = domain.Preferences{}
	}
	return prefs, nil
}

func (s *DataService) SetPreference(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("preference key is required")
	}
	return s.api.SetPreference(ctx, key, value)
}

func (s *DataService) SetPreferences(ctx context.Context, prefs domain.Preferences) error {
	if len(prefs) == 0 {
		return nil
	}
	return s.api.SetPreferences(ctx, prefs)
}

// GetItem reads one stored preference. Empty values count as absent.
func (s *DataService) GetItem(ctx context.Context, key string) (string, bool, error) {
	prefs, err := s.Preferences(ctx)
	if err != nil {
		return "", false, err
	}
	value := prefs[key]
	return value, value != "", nil
}

// SetItem stores strings verbatim and everything else JSON-encoded.
func (s *DataService) SetItem(ctx context.Context, key string, value any) error {
	encoded, ok := value.(string)
	if !ok {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode preference %q: %w", key, err)
		}
		encoded = string(raw)
	}
	return s.SetPreference(ctx, key, encoded)
}

// RemoveItem blanks the preference; the backend has no delete.
func (s *DataService) RemoveItem(ctx context.Context, key string) error {
	return s.SetPreference(ctx, key, "")
}

// MigrateLegacyData moves locally kept preferences and delivery settings to the
// backend. It does nothing without a stored credential. Failures are logged and
// stop the remaining steps.
func (s *DataService) MigrateLegacyData(ctx context.Context) MigrationReport {
	var report MigrationReport

	token, err := s.creds.Token(ctx)
	if err != nil || token == "" {
		if err != nil && !errors.Is(err, domain.ErrCredentialNotFound) {
			s.log.Warn().Err(err).Msg("read credential before migration")
		}
		return report
	}

	prefs := domain.Preferences{}
	for _, key := range domain.MigratablePreferenceKeys() {
		value, err := s.local.Get(ctx, key)
		if err != nil {
			if !errors.Is(err, domain.ErrLocalKeyNotFound) {
				s.log.Warn().Err(err).Str("key", key).Msg("read local preference")
			}
			continue
		}
		// A blank local value carries nothing worth uploading.
		if value == "" {
			continue
		}
		prefs[key] = value
	}

	if len(prefs) > 0 {
		if err := s.SetPreferences(ctx, prefs); err != nil {
			s.log.Warn().Err(err).Msg("migration failed")
			return report
		}
		report.Preferences = len(prefs)
	}

	if s.subs != nil {
		_, migrated, err := s.subs.MigrateLegacySubscription(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("migration failed")
			return report
		}
		report.Subscription = migrated
	}

	s.log.Info().Int("preferences", report.Preferences).Bool("subscription", report.Subscription).Msg("local data migrated")
	return report
}
