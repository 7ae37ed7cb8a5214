package domain

import (
	"fmt"
	"strings"
)

type Address struct {
	ID          int      `json:"id"`
	UserID      int      `json:"user_id,omitempty"`
	Label       string   `json:"label"`
	AddressLine string   `json:"address_line"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	ZipCode     string   `json:"zip_code"`
	Country     string   `json:"country"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	IsDefault   bool     `json:"is_default"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

type AddressInput struct {
	Label       string   `json:"label"`
	AddressLine string   `json:"address_line"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	ZipCode     string   `json:"zip_code"`
	Country     string   `json:"country"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	IsDefault   bool     `json:"is_default"`
}

func (a AddressInput) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{field: "label", value: a.Label},
		{field: "address_line", value: a.AddressLine},
		{field: "city", value: a.City},
		{field: "zip_code", value: a.ZipCode},
		{field: "country", value: a.Country},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s is required", r.field)
		}
	}

	return nil
}

// LegacyAddress is the shape kept under the "addresses" local key.
type LegacyAddress struct {
	Label   string   `json:"label"`
	Line    string   `json:"line"`
	City    string   `json:"city"`
	State   string   `json:"state"`
	Zip     string   `json:"zip"`
	Country string   `json:"country"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

func (l LegacyAddress) ToInput(isDefault bool) AddressInput {
	return AddressInput{
		Label:       l.Label,
		AddressLine: l.Line,
		City:        l.City,
		State:       l.State,
		ZipCode:     l.Zip,
		Country:     l.Country,
		Latitude:    nonZero(l.Lat),
		Longitude:   nonZero(l.Lng),
		IsDefault:   isDefault,
	}
}

func nonZero(v *float64) *float64 {
	if v == nil || *v == 0 {
		return nil
	}
	return v
}
