package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports/mocks"
)

func TestAddressServiceCreateValidatesBeforeCalling(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockAddressAPI(t)
	svc := NewAddressService(api, newMemLocalStore(), zerolog.Nop())

	_, err := svc.Create(context.Background(), domain.AddressInput{Label: "Home", City: "Pune", ZipCode: "411001", Country: "IN"})
	require.EqualError(t, err, "address_line is required")
	api.AssertNotCalled(t, "CreateAddress", mock.Anything, mock.Anything)
}

func TestAddressServiceReturnsBackendErrorsUnwrapped(t *testing.T) {
	t.Parallel()

	backendErr := fmt.Errorf("delete address 4: %w", domain.ErrNotFound)
	api := mocks.NewMockAddressAPI(t)
	api.EXPECT().DeleteAddress(mock.Anything, 4).Return(backendErr).Once()
	svc := NewAddressService(api, newMemLocalStore(), zerolog.Nop())

	err := svc.Delete(context.Background(), 4)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "delete address 4: resource not found", err.Error())
}

func TestMigrateLegacyAddressesCreatesEachAndClearsKeys(t *testing.T) {
	t.Parallel()

	local := newMemLocalStore()
	local.values[domain.KeyAddresses] = `[
		{"label":"Home","line":"12 MG Road","city":"Pune","zip":"411001","country":"IN","lat":18.52,"lng":73.85},
		{"label":"Office","line":"4 FC Road","city":"Pune","state":"MH","zip":"411004","country":"IN","lat":0,"lng":0}
	]`
	local.values[domain.KeyDefaultAddress] = "1"

	api := mocks.NewMockAddressAPI(t)
	var created []domain.AddressInput
	api.EXPECT().CreateAddress(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, in domain.AddressInput) (domain.Address, error) {
		created = append(created, in)
		return domain.Address{ID: len(created), Label: in.Label}, nil
	}).Times(2)

	svc := NewAddressService(api, local, zerolog.Nop())
	migrated, err := svc.MigrateLegacyAddresses(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, migrated)
	require.Len(t, created, 2)
	assert.False(t, created[0].IsDefault)
	assert.True(t, created[1].IsDefault)
	assert.Equal(t, "12 MG Road", created[0].AddressLine)
	require.NotNil(t, created[0].Latitude)
	assert.InDelta(t, 18.52, *created[0].Latitude, 1e-9)
	assert.Nil(t, created[1].Latitude)
	assert.Equal(t, "MH", created[1].State)
	assert.False(t, local.has(domain.KeyAddresses))
	assert.False(t, local.has(domain.KeyDefaultAddress))
}

func TestMigrateLegacyAddressesSkipsFailuresAndKeepsKeysWhenNoneSucceeded(t *testing.T) {
	t.Parallel()

	local := newMemLocalStore()
	local.values[domain.KeyAddresses] = `[{"label":"Home","line":"12 MG Road","city":"Pune","zip":"411001","country":"IN"}]`

	api := mocks.NewMockAddressAPI(t)
	api.EXPECT().CreateAddress(mock.Anything, mock.Anything).Return(domain.Address{}, errors.New("boom")).Once()

	svc := NewAddressService(api, local, zerolog.Nop())
	migrated, err := svc.MigrateLegacyAddresses(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, migrated)
	assert.True(t, local.has(domain.KeyAddresses))
}

func TestMigrateLegacyAddressesDefaultsToFirstAndSkipsInvalid(t *testing.T) {
	t.Parallel()

	local := newMemLocalStore()
	local.values[domain.KeyAddresses] = `[
		{"label":"Home","line":"12 MG Road","city":"Pune","zip":"411001","country":"IN"},
		{"label":"","line":"missing label","city":"Pune","zip":"411001","country":"IN"}
	]`

	api := mocks.NewMockAddressAPI(t)
	api.EXPECT().CreateAddress(mock.Anything, mock.MatchedBy(func(in domain.AddressInput) bool {
		return in.Label == "Home" && in.IsDefault
	})).Return(domain.Address{ID: 1}, nil).Once()

	svc := NewAddressService(api, local, zerolog.Nop())
	migrated, err := svc.MigrateLegacyAddresses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, migrated)
}

func TestMigrateLegacyAddressesWithNothingStored(t *testing.T) {
	t.Parallel()

	svc := NewAddressService(mocks.NewMockAddressAPI(t), newMemLocalStore(), zerolog.Nop())
	migrated, err := svc.MigrateLegacyAddresses(context.Background())
	require.NoError(t, err)
	assert.Zero(t, migrated)
}

func TestMigrateLegacyAddressesRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	local := newMemLocalStore()
	local.values[domain.KeyAddresses] = `{not json`
	svc := NewAddressService(mocks.NewMockAddressAPI(t), local, zerolog.Nop())

	_, err := svc.MigrateLegacyAddresses(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode local addresses")
}
