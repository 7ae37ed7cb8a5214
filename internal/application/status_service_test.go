package application

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports/mocks"
)

func newStatusFixture(t *testing.T, token string) (*StatusService, *mocks.MockSessionAPI, *memLocalStore) {
	t.Helper()

	api := mocks.NewMockSessionAPI(t)
	local := newMemLocalStore()
	service := NewStatusService(
		&memCredentials{token: token},
		api,
		local,
		mocks.NewFakeClock(watchdogEpoch),
		WatchdogConfig{IdleTimeout: domain.DefaultIdleTimeout, WarningLead: domain.DefaultWarningLead, RequestTimeout: time.Second},
		domain.CredentialHeader,
		zerolog.Nop(),
	)
	return service, api, local
}

func TestStatusWithoutCredentialIsLoggedOut(t *testing.T) {
	t.Parallel()

	service, _, _ := newStatusFixture(t, "")

	status := service.Status(context.Background(), nil, true)
	assert.False(t, status.HasCredential)
	assert.Equal(t, domain.SessionLoggedOut, status.State)
	assert.Equal(t, ValidationSkipped, status.Validation)
	assert.Equal(t, domain.CredentialHeader, status.Strategy)
	assert.Equal(t, domain.DefaultIdleTimeout, status.IdleTimeout)
}

func TestStatusReportsCachedUserWithoutRemoteCheck(t *testing.T) {
	t.Parallel()

	service, _, local := newStatusFixture(t, "tok-1")
	local.values[domain.KeyUserName] = "Asha"
	local.values[domain.KeyUserEmail] = "asha@example.com"
	local.values[domain.KeyUserMobile] = "9800000000"

	status := service.Status(context.Background(), nil, false)
	assert.True(t, status.HasCredential)
	assert.Equal(t, domain.SessionActive, status.State)
	assert.Equal(t, ValidationSkipped, status.Validation)
	assert.Equal(t, "Asha", status.User.Name)
	require.NotNil(t, status.User.Mobile)
	assert.Equal(t, "9800000000", *status.User.Mobile)
}

func TestStatusValidatesAgainstProfile(t *testing.T) {
	t.Parallel()

	service, api, _ := newStatusFixture(t, "tok-1")
	api.EXPECT().Profile(mock.Anything).Return(domain.User{ID: 4, Name: "Ravi", Email: "ravi@example.com"}, nil).Once()

	status := service.Status(context.Background(), nil, true)
	assert.Equal(t, ValidationValid, status.Validation)
	assert.Equal(t, "Ravi", status.User.Name)
	assert.Equal(t, domain.SessionActive, status.State)
}

func TestStatusRejectedCredentialIsLoggedOut(t *testing.T) {
	t.Parallel()

	service, api, _ := newStatusFixture(t, "tok-1")
	api.EXPECT().Profile(mock.Anything).Return(domain.User{}, domain.ErrUnauthorized).Once()

	status := service.Status(context.Background(), nil, true)
	assert.Equal(t, ValidationRejected, status.Validation)
	assert.Equal(t, domain.SessionLoggedOut, status.State)
}

func TestStatusUnavailableBackendKeepsSession(t *testing.T) {
	t.Parallel()

	service, api, _ := newStatusFixture(t, "tok-1")
	api.EXPECT().Profile(mock.Anything).Return(domain.User{}, domain.ErrUnavailable).Once()

	status := service.Status(context.Background(), nil, true)
	assert.Equal(t, ValidationUnavailable, status.Validation)
	assert.Equal(t, domain.SessionActive, status.State)
	assert.Contains(t, status.Detail, "backend unavailable")
}

func TestStatusUsesWatchdogSnapshot(t *testing.T) {
	t.Parallel()

	service, _, _ := newStatusFixture(t, "tok-1")
	snapshot := domain.SessionSnapshot{
		State:    domain.SessionWarningShown,
		LogoutAt: watchdogEpoch.Add(30 * time.Minute),
	}

	status := service.Status(context.Background(), &snapshot, false)
	assert.Equal(t, domain.SessionWarningShown, status.State)
	assert.Equal(t, 30*time.Minute, status.Remaining())
}
