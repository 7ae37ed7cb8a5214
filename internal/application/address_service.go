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

type AddressService struct {
	api   ports.AddressAPI
	local ports.LocalStore
	log   zerolog.Logger
}

func NewAddressService(api ports.AddressAPI, local ports.LocalStore, logger zerolog.Logger) *AddressService {
	return &AddressService{
		api:   api,
		local: local,
		log:   logger.With().Str("service", "addresses").Logger(),
	}
}

func (s *AddressService) List(ctx context.Context) ([]domain.Address, error) {
	addresses, err := s.api.ListAddresses(ctx)
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

func (s *AddressService) Create(ctx context.Context, input domain.AddressInput) (domain.Address, error) {
	if err := input.Validate(); err != nil {
		return domain.Address{}, err
	}

	return s.api.CreateAddress(ctx, input)
}

func (s *AddressService) Update(ctx context.Context, id int, input domain.AddressInput) (domain.Address, error) {
	if err := input.Validate(); err != nil {
		return domain.Address{}, err
	}

	return s.api.UpdateAddress(ctx, id, input)
}

func (s *AddressService) Delete(ctx context.Context, id int) error {
	return s.api.DeleteAddress(ctx, id)
}

func (s *AddressService) SetDefault(ctx context.Context, id int) error {
	return s.api.SetDefaultAddress(ctx, id)
}

// MigrateLegacyAddresses uploads the locally stored address book and removes
// it once at least one address was accepted. Addresses the backend rejects are
// skipped.
func (s *AddressService) MigrateLegacyAddresses(ctx context.Context) (int, error) {
	raw, err := s.localValue(ctx, domain.KeyAddresses)
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}

	var legacy []domain.LegacyAddress
	if err := json.Unmarshal([]byte(raw), &legacy); err != nil {
		return 0, fmt.Errorf("decode local addresses: %w", err)
	}
	if len(legacy) == 0 {
		return 0, nil
	}

	defaultIndex, err := s.defaultIndex(ctx)
	if err != nil {
		return 0, err
	}

	migrated := 0
	for i, address := range legacy {
		if _, err := s.Create(ctx, address.ToInput(i == defaultIndex)); err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return migrated, err
			}
			s.log.Warn().Err(err).Int("index", i).Msg("skip local address")
			continue
		}
		migrated++
	}

	if migrated > 0 {
		if err := s.local.Delete(ctx, domain.KeyAddresses, domain.KeyDefaultAddress); err != nil {
			return migrated, fmt.Errorf("clear local addresses: %w", err)
		}
	}

	s.log.Info().Int("migrated", migrated).Int("total", len(legacy)).Msg("local addresses migrated")
	return migrated, nil
}

func (s *AddressService) defaultIndex(ctx context.Context) (int, error) {
	raw, err := s.localValue(ctx, domain.KeyDefaultAddress)
	if err != nil {
		return 0, err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	index, err := strconv.Atoi(raw)
	if err != nil {
		s.log.Warn().Str("value", raw).Msg("ignore malformed default address index")
		return -1, nil
	}
	return index, nil
}

func (s *AddressService) localValue(ctx context.Context, key string) (string, error) {
	value, err := s.local.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrLocalKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("read local %s: %w", key, err)
	}
	return value, nil
}
