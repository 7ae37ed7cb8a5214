package application

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports/mocks"
)

func TestSubscriptionListSwallowsTransientFailures(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockDataAPI(t)
	api.EXPECT().ListSubscriptions(mock.Anything).Return(nil, domain.ErrUnavailable).Once()
	svc := NewSubscriptionService(api, newMemLocalStore(), zerolog.Nop())

	subs, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestSubscriptionListReportsUnauthorized(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockDataAPI(t)
	api.EXPECT().ListSubscriptions(mock.Anything).Return(nil, domain.ErrUnauthorized).Once()
	svc := NewSubscriptionService(api, newMemLocalStore(), zerolog.Nop())

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSubscriptionMorningAndEvening(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockDataAPI(t)
	api.EXPECT().ListSubscriptions(mock.Anything).Return([]domain.Subscription{
		{ID: 1, EveningEnabled: true},
		{ID: 2, MorningEnabled: true},
		{ID: 3, MorningEnabled: true, EveningEnabled: true},
	}, nil)
	svc := NewSubscriptionService(api, newMemLocalStore(), zerolog.Nop())

	morning, ok, err := svc.Morning(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, morning.ID)

	evening, ok, err := svc.Evening(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, evening.ID)

	active, err := svc.HasActive(context.Background())
	require.NoError(t, err)
	assert.True(t, active)
}

func TestSubscriptionHasActiveFalseWhenListFails(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockDataAPI(t)
	api.EXPECT().ListSubscriptions(mock.Anything).Return(nil, errors.New("boom")).Once()
	svc := NewSubscriptionService(api, newMemLocalStore(), zerolog.Nop())

	active, err := svc.HasActive(context.Background())
	require.NoError(t, err)
	assert.False(t, active)
}

func TestSubscriptionCreateAppliesDraftDefaults(t *testing.T) {
	t.Parallel()

	api := mocks.NewMockDataAPI(t)
	api.EXPECT().CreateSubscription(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, sub domain.Subscription) (domain.Subscription, error) {
		assert.Equal(t, domain.SubscriptionTypeMilk, sub.SubscriptionType)
		assert.Equal(t, domain.SubscriptionActive, sub.Status)
		assert.JSONEq(t, `[]`, string(sub.EveningDays))
		assert.JSONEq(t, `{}`, string(sub.AddressData))
		assert.Nil(t, sub.EveningMilkType)
		sub.ID = 11
		return sub, nil
	}).Once()
	svc := NewSubscriptionService(api, newMemLocalStore(), zerolog.Nop())

	created, err := svc.Create(context.Background(), domain.SubscriptionDraft{
		Morning: domain.DeliverySlot{Enabled: true, MilkType: "cow", Quantity: 1.5, Days: []string{"mon"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 11, created.ID)
}

func TestSubscriptionUpdateRequiresFields(t *testing.T) {
	t.Parallel()

	svc := NewSubscriptionService(mocks.NewMockDataAPI(t), newMemLocalStore(), zerolog.Nop())
	require.Error(t, svc.Update(context.Background(), 3, nil))
}

func TestMigrateLegacySubscriptionBuildsDraftFromLocalKeys(t *testing.T) {
	t.Parallel()

	local := newMemLocalStore()
	local.values[domain.KeyMorningDelivery] = "true"
	local.values[domain.KeyMorningMilkType] = "buffalo"
	local.values[domain.KeyMorningQuantity] = "2.5"
	local.values[domain.KeyMorningFrequency] = "daily"
	local.values[domain.KeyMorningTimeSlot] = "6-7"
	local.values[domain.KeyMorningDays] = `["mon","tue"]`
	local.values[domain.KeyEveningDelivery] = "false"
	local.values[domain.KeyEveningQuantity] = "not-a-number"
	local.values[domain.KeySubscriptionAddress] = `{"line":"12 MG Road"}`

	api := mocks.NewMockDataAPI(t)
	api.EXPECT().CreateSubscription(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, sub domain.Subscription) (domain.Subscription, error) {
		assert.True(t, sub.MorningEnabled)
		assert.False(t, sub.EveningEnabled)
		require.NotNil(t, sub.MorningMilkType)
		assert.Equal(t, "buffalo", *sub.MorningMilkType)
		assert.InDelta(t, 2.5, sub.MorningQuantity, 1e-9)
		assert.JSONEq(t, `["mon","tue"]`, string(sub.MorningDays))
		assert.Zero(t, sub.EveningQuantity)
		assert.JSONEq(t, `{"line":"12 MG Road"}`, string(sub.AddressData))
		sub.ID = 5
		return sub, nil
	}).Once()

	svc := NewSubscriptionService(api, local, zerolog.Nop())
	created, migrated, err := svc.MigrateLegacySubscription(context.Background())
	require.NoError(t, err)
	assert.True(t, migrated)
	assert.Equal(t, 5, created.ID)
	assert.False(t, local.has(domain.KeyMorningDelivery))
	assert.True(t, local.has(domain.KeyMorningMilkType))
}

func TestMigrateLegacySubscriptionNothingEnabled(t *testing.T) {
	t.Parallel()

	local := newMemLocalStore()
	local.values[domain.KeyMorningDelivery] = "false"
	svc := NewSubscriptionService(mocks.NewMockDataAPI(t), local, zerolog.Nop())

	_, migrated, err := svc.MigrateLegacySubscription(context.Background())
	require.NoError(t, err)
	assert.False(t, migrated)
}
