package domain

import (
	"encoding/json"
	"strings"
)

const (
	SubscriptionTypeMilk = "milk"
	SubscriptionActive   = "active"
)

type Subscription struct {
	ID               int             `json:"id,omitempty"`
	UserID           int             `json:"user_id,omitempty"`
	SubscriptionType string          `json:"subscription_type"`
	MorningEnabled   bool            `json:"morning_enabled"`
	MorningMilkType  *string         `json:"morning_milk_type"`
	MorningQuantity  float64         `json:"morning_quantity"`
	MorningFrequency *string         `json:"morning_frequency"`
	MorningTimeSlot  *string         `json:"morning_time_slot"`
	MorningDays      json.RawMessage `json:"morning_days"`
	EveningEnabled   bool            `json:"evening_enabled"`
	EveningMilkType  *string         `json:"evening_milk_type"`
	EveningQuantity  float64         `json:"evening_quantity"`
	EveningFrequency *string         `json:"evening_frequency"`
	EveningTimeSlot  *string         `json:"evening_time_slot"`
	EveningDays      json.RawMessage `json:"evening_days"`
	AddressData      json.RawMessage `json:"address_data"`
	Status           string          `json:"status"`
}

type DeliverySlot struct {
	Enabled   bool
	MilkType  string
	Quantity  float64
	Frequency string
	TimeSlot  string
	Days      []string
}

type SubscriptionDraft struct {
	Morning     DeliverySlot
	Evening     DeliverySlot
	AddressData json.RawMessage
}

func (d SubscriptionDraft) ToSubscription() Subscription {
	addressData := d.AddressData
	if len(addressData) == 0 || !json.Valid(addressData) {
		addressData = json.RawMessage(`{}`)
	}

	return Subscription{
		SubscriptionType: SubscriptionTypeMilk,
		MorningEnabled:   d.Morning.Enabled,
		MorningMilkType:  optionalString(d.Morning.MilkType),
		MorningQuantity:  d.Morning.Quantity,
		MorningFrequency: optionalString(d.Morning.Frequency),
		MorningTimeSlot:  optionalString(d.Morning.TimeSlot),
		MorningDays:      encodeDays(d.Morning.Days),
		EveningEnabled:   d.Evening.Enabled,
		EveningMilkType:  optionalString(d.Evening.MilkType),
		EveningQuantity:  d.Evening.Quantity,
		EveningFrequency: optionalString(d.Evening.Frequency),
		EveningTimeSlot:  optionalString(d.Evening.TimeSlot),
		EveningDays:      encodeDays(d.Evening.Days),
		AddressData:      addressData,
		Status:           SubscriptionActive,
	}
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func encodeDays(days []string) json.RawMessage {
	if len(days) == 0 {
		return json.RawMessage(`[]`)
	}
	encoded, err := json.Marshal(days)
	if err != nil {
		return json.RawMessage(`[]`)
	}
	return encoded
}
