package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

type SubscriptionService struct {
	api   ports.DataAPI
	local ports.LocalStore
	log   zerolog.Logger
}

func NewSubscriptionService(api ports.DataAPI, local ports.LocalStore, logger zerolog.Logger) *SubscriptionService {
	return &SubscriptionService{
		api:   api,
		local: local,
		log:   logger.With().Str("service", "subscriptions").Logger(),
	}
}

// List returns the user's subscriptions. Failures other than an unauthorized
// session are logged and reported as an empty list.
func (s *SubscriptionService) List(ctx context.Context) ([]domain.Subscription, error) {
	subs, err := s.api.ListSubscriptions(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, err
		}
		s.log.Warn().Err(err).Msg("list subscriptions")
		return []domain.Subscription{}, nil
	}
	return subs, nil
}

func (s *SubscriptionService) Create(ctx context.Context, draft domain.SubscriptionDraft) (domain.Subscription, error) {
	return s.api.CreateSubscription(ctx, draft.ToSubscription())
}

func (s *SubscriptionService) Update(ctx context.Context, id int, fields map[string]any) error {
	if len(fields) == 0 {
		return errors.New("no subscription fields to update")
	}

	return s.api.UpdateSubscription(ctx, id, fields)
}

func (s *SubscriptionService) Cancel(ctx context.Context, id int) error {
	return s.api.DeleteSubscription(ctx, id)
}

func (s *SubscriptionService) HasActive(ctx context.Context) (bool, error) {
	subs, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	return len(subs) > 0, nil
}

// Morning returns the first subscription with morning delivery enabled.
func (s *SubscriptionService) Morning(ctx context.Context) (domain.Subscription, bool, error) {
	return s.find(ctx, func(sub domain.Subscription) bool { return sub.MorningEnabled })
}

// Evening returns the first subscription with evening delivery enabled.
func (s *SubscriptionService) Evening(ctx context.Context) (domain.Subscription, bool, error) {
	return s.find(ctx, func(sub domain.Subscription) bool { return sub.EveningEnabled })
}

func (s *SubscriptionService) find(ctx context.Context, match func(domain.Subscription) bool) (domain.Subscription, bool, error) {
	subs, err := s.List(ctx)
	if err != nil {
		return domain.Subscription{}, false, err
	}
	for _, sub := range subs {
		if match(sub) {
			return sub, true, nil
		}
	}
	return domain.Subscription{}, false, nil
}

// MigrateLegacySubscription creates a subscription from the locally stored
// delivery settings when morning or evening delivery is enabled, then drops the
// delivery flags so the same settings are not submitted twice.
func (s *SubscriptionService) MigrateLegacySubscription(ctx context.Context) (domain.Subscription, bool, error) {
	morningEnabled := s.localString(ctx, domain.KeyMorningDelivery) == "true"
	eveningEnabled := s.localString(ctx, domain.KeyEveningDelivery) == "true"
	if !morningEnabled && !eveningEnabled {
		return domain.Subscription{}, false, nil
	}

	draft := domain.SubscriptionDraft{
		Morning: s.legacySlot(ctx, morningEnabled, domain.KeyMorningMilkType, domain.KeyMorningQuantity,
			domain.KeyMorningFrequency, domain.KeyMorningTimeSlot, domain.KeyMorningDays),
		Evening: s.legacySlot(ctx, eveningEnabled, domain.KeyEveningMilkType, domain.KeyEveningQuantity,
			domain.KeyEveningFrequency, domain.KeyEveningTimeSlot, domain.KeyEveningDays),
		AddressData: s.legacyAddressData(ctx),
	}

	created, err := s.Create(ctx, draft)
	if err != nil {
		return domain.Subscription{}, false, fmt.Errorf("migrate local subscription: %w", err)
	}

	if err := s.local.Delete(ctx, domain.KeyMorningDelivery, domain.KeyEveningDelivery); err != nil {
		s.log.Warn().Err(err).Msg("clear local delivery flags")
	}

	s.log.Info().Int("subscription_id", created.ID).Msg("local subscription migrated")
	return created, true, nil
}

func (s *SubscriptionService) legacySlot(ctx context.Context, enabled bool, milkTypeKey, quantityKey, frequencyKey, timeSlotKey, daysKey string) domain.DeliverySlot {
	slot := domain.DeliverySlot{
		Enabled:   enabled,
		MilkType:  s.localString(ctx, milkTypeKey),
		Frequency: s.localString(ctx, frequencyKey),
		TimeSlot:  s.localString(ctx, timeSlotKey),
	}

	if raw := strings.TrimSpace(s.localString(ctx, quantityKey)); raw != "" {
		quantity, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.log.Warn().Str("key", quantityKey).Str("value", raw).Msg("ignore malformed local quantity")
		} else {
			slot.Quantity = quantity
		}
	}

	if raw := strings.TrimSpace(s.localString(ctx, daysKey)); raw != "" {
		if err := json.Unmarshal([]byte(raw), &slot.Days); err != nil {
			s.log.Warn().Str("key", daysKey).Msg("ignore malformed local days")
			slot.Days = nil
		}
	}

	return slot
}

func (s *SubscriptionService) legacyAddressData(ctx context.Context) json.RawMessage {
	raw := strings.TrimSpace(s.localString(ctx, domain.KeySubscriptionAddress))
	if raw == "" || !json.Valid([]byte(raw)) {
		return nil
	}
	return json.RawMessage(raw)
}

// localString reads a local key, treating absence and read failures as empty.
func (s *SubscriptionService) localString(ctx context.Context, key string) string {
	value, err := s.local.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrLocalKeyNotFound) {
			s.log.Warn().Err(err).Str("key", key).Msg("read local key")
		}
		return ""
	}
	return value
}
