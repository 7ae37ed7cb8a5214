package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageClassifierDefaultAllowList(t *testing.T) {
	t.Parallel()

	classifier := NewPageClassifier(nil)

	testCases := []struct {
		page string
		want bool
	}{
		{page: "login", want: false},
		{page: "/auth/login", want: false},
		{page: "/auth/verify-otp?email=a@b.c", want: false},
		{page: "register.html", want: false},
		{page: "index", want: false},
		{page: "/onboarding/", want: false},
		{page: "addresses", want: true},
		{page: "/user/subscriptions.html#top", want: true},
		{page: "", want: true},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, classifier.RequiresAuth(tc.page), "page %q", tc.page)
	}
}

func TestPageClassifierCustomAllowList(t *testing.T) {
	t.Parallel()

	classifier := NewPageClassifier([]string{"3-Taaza-Login.html", "prices"})

	assert.False(t, classifier.RequiresAuth("/auth/3-Taaza-Login.html"))
	assert.False(t, classifier.RequiresAuth("prices"))
	assert.True(t, classifier.RequiresAuth("login"))
}

func TestActivityKindQualifying(t *testing.T) {
	t.Parallel()

	for _, kind := range []ActivityKind{ActivityPointerDown, ActivityPointerMove, ActivityKeyPress, ActivityScroll, ActivityTouchStart, ActivityClick} {
		assert.True(t, kind.Qualifying(), string(kind))
	}
	assert.False(t, ActivityKind("focus").Qualifying())
}

func TestSessionSnapshotRemainingClampsAtZero(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	snapshot := SessionSnapshot{State: SessionActive, LogoutAt: now.Add(90 * time.Minute)}

	assert.Equal(t, 90*time.Minute, snapshot.Remaining(now))
	assert.Zero(t, snapshot.Remaining(now.Add(2*time.Hour)))

	snapshot.State = SessionLoggedOut
	assert.Zero(t, snapshot.Remaining(now))
}

func TestAddressInputValidateRequiresFields(t *testing.T) {
	t.Parallel()

	valid := AddressInput{Label: "Home", AddressLine: "12 MG Road", City: "Pune", ZipCode: "411001", Country: "India"}
	require.NoError(t, valid.Validate())

	missingCity := valid
	missingCity.City = "   "
	err := missingCity.Validate()
	require.Error(t, err)
	assert.EqualError(t, err, "city is required")

	missingCountry := valid
	missingCountry.Country = ""
	assert.EqualError(t, missingCountry.Validate(), "country is required")
}

func TestLegacyAddressToInputDropsZeroCoordinates(t *testing.T) {
	t.Parallel()

	lat := 18.52
	zero := 0.0
	input := LegacyAddress{Label: "Office", Line: "Baner", City: "Pune", Zip: "411045", Country: "India", Lat: &lat, Lng: &zero}.ToInput(true)

	assert.Equal(t, "Baner", input.AddressLine)
	assert.Equal(t, "411045", input.ZipCode)
	require.NotNil(t, input.Latitude)
	assert.Equal(t, lat, *input.Latitude)
	assert.Nil(t, input.Longitude)
	assert.True(t, input.IsDefault)
}

func TestSubscriptionDraftAppliesDefaults(t *testing.T) {
	t.Parallel()

	sub := SubscriptionDraft{
		Morning: DeliverySlot{Enabled: true, MilkType: "cow", Quantity: 1.5, Days: []string{"mon", "wed"}},
	}.ToSubscription()

	assert.Equal(t, SubscriptionTypeMilk, sub.SubscriptionType)
	assert.Equal(t, SubscriptionActive, sub.Status)
	require.NotNil(t, sub.MorningMilkType)
	assert.Equal(t, "cow", *sub.MorningMilkType)
	assert.Nil(t, sub.MorningFrequency)
	assert.JSONEq(t, `["mon","wed"]`, string(sub.MorningDays))
	assert.JSONEq(t, `[]`, string(sub.EveningDays))
	assert.JSONEq(t, `{}`, string(sub.AddressData))

	encoded, err := json.Marshal(sub)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"evening_milk_type":null`)
}

func TestPricesFromProductsFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, MilkPrices{Buffalo: 80, Cow: 70}, PricesFromProducts(nil))

	prices := PricesFromProducts([]Product{
		{Type: "buffalo", PricePerLiter: 84},
		{Type: "cow", PricePerLiter: 0},
		{Type: "cow", PricePerLiter: 66},
	})
	assert.Equal(t, 84.0, prices.Buffalo)
	assert.Equal(t, 70.0, prices.Cow)
}

func TestParseCredentialStrategy(t *testing.T) {
	t.Parallel()

	strategy, err := ParseCredentialStrategy("")
	require.NoError(t, err)
	assert.Equal(t, CredentialHeader, strategy)

	strategy, err = ParseCredentialStrategy("device_tagged")
	require.NoError(t, err)
	assert.Equal(t, CredentialDeviceTagged, strategy)

	_, err = ParseCredentialStrategy("localstorage")
	require.Error(t, err)
}
