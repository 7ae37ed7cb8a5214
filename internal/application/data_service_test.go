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

func newTestDataService(t *testing.T, token string, local *memLocalStore) (*DataService, *mocks.MockDataAPI) {
	t.Helper()

	api := mocks.NewMockDataAPI(t)
	subs := NewSubscriptionService(api, local, zerolog.Nop())
	return NewDataService(api, &memCredentials{token: token}, local, subs, zerolog.Nop()), api
}

func TestDataServiceItemHelpers(t *testing.T) {
	t.Parallel()

	svc, api := newTestDataService(t, "tok", newMemLocalStore())
	api.EXPECT().Preferences(mock.Anything).Return(domain.Preferences{"theme": "dark", "blank": ""}, nil)
	api.EXPECT().SetPreference(mock.Anything, "filters", `{"type":"cow"}`).Return(nil).Once()
	api.EXPECT().SetPreference(mock.Anything, "theme", "light").Return(nil).Once()
	api.EXPECT().SetPreference(mock.Anything, "theme", "").Return(nil).Once()

	value, ok, err := svc.GetItem(context.Background(), "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)

	_, ok, err = svc.GetItem(context.Background(), "blank")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, svc.SetItem(context.Background(), "filters", map[string]string{"type": "cow"}))
	require.NoError(t, svc.SetItem(context.Background(), "theme", "light"))
	require.NoError(t, svc.RemoveItem(context.Background(), "theme"))
}

func TestMigrateLegacyDataWithoutCredentialIsNoop(t *testing.T) {
	t.Parallel()

	local := newMemLocalStore()
	local.values["adminActiveSection"] = "stock"
	local.values[domain.KeyMorningDelivery] = "true"
	svc, _ := newTestDataService(t, "", local)

	report := svc.MigrateLegacyData(context.Background())
	assert.Equal(t, MigrationReport{}, report)
}

func TestMigrateLegacyDataMovesPreferencesAndSubscription(t *testing.T) {
	t.Parallel()

	local := newMemLocalStore()
	local.values["adminActiveSection"] = "stock"
	local.values["milkSubscription"] = `{"plan":"daily"}`
	local.values["adminFullscreenMode"] = ""
	local.values[domain.KeyEveningDelivery] = "true"

	svc, api := newTestDataService(t, "tok", local)
	api.EXPECT().SetPreferences(mock.Anything, domain.Preferences{
		"adminActiveSection": "stock",
		"milkSubscription":   `{"plan":"daily"}`,
	}).Return(nil).Once()
	api.EXPECT().CreateSubscription(mock.Anything, mock.Anything).Return(domain.Subscription{ID: 9}, nil).Once()

	report := svc.MigrateLegacyData(context.Background())
	assert.Equal(t, MigrationReport{Preferences: 2, Subscription: true}, report)
}

func TestMigrateLegacyDataSkipsBlankPreferences(t *testing.T) {
	t.Parallel()

	local := newMemLocalStore()
	local.values["adminActiveSection"] = ""
	local.values["adminFullscreenMode"] = ""

	svc, api := newTestDataService(t, "tok", local)

	report := svc.MigrateLegacyData(context.Background())
	assert.Equal(t, MigrationReport{}, report)
	api.AssertNotCalled(t, "SetPreferences", mock.Anything, mock.Anything)
}

func TestMigrateLegacyDataStopsWhenPreferencesFail(t *testing.T) {
	t.Parallel()

	local := newMemLocalStore()
	local.values["adminActiveMilkTab"] = "cow"
	local.values[domain.KeyMorningDelivery] = "true"

	svc, api := newTestDataService(t, "tok", local)
	api.EXPECT().SetPreferences(mock.Anything, mock.Anything).Return(errors.New("HTTP 500: boom")).Once()

	report := svc.MigrateLegacyData(context.Background())
	assert.Equal(t, MigrationReport{}, report)
	api.AssertNotCalled(t, "CreateSubscription", mock.Anything, mock.Anything)
}
