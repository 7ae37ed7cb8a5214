package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

var _ ports.AddressAPI = (*Client)(nil)

func (c *Client) ListAddresses(ctx context.Context) ([]domain.Address, error) {
	var envelope struct {
		Addresses []domain.Address `json:"addresses"`
	}
	if err := c.do(ctx, call{
		op:     "list addresses",
		method: http.MethodGet,
		path:   "/users/addresses",
		out:    &envelope,
	}); err != nil {
		return nil, err
	}
	if envelope.Addresses == nil {
		envelope.Addresses = []domain.Address{}
	}
	return envelope.Addresses, nil
}

// CreateAddress returns the submitted address with the id assigned by the
// backend, which only echoes the id.
func (c *Client) CreateAddress(ctx context.Context, input domain.AddressInput) (domain.Address, error) {
	var created struct {
		AddressID int `json:"address_id"`
	}
	if err := c.do(ctx, call{
		op:     "create address",
		method: http.MethodPost,
		path:   "/users/addresses",
		body:   input,
		out:    &created,
	}); err != nil {
		return domain.Address{}, err
	}
	return addressFromInput(created.AddressID, input), nil
}

func (c *Client) UpdateAddress(ctx context.Context, id int, input domain.AddressInput) (domain.Address, error) {
	if err := c.do(ctx, call{
		op:     fmt.Sprintf("update address %d", id),
		method: http.MethodPut,
		path:   idPath("/users/addresses/%s", id),
		body:   input,
	}); err != nil {
		return domain.Address{}, err
	}
	return addressFromInput(id, input), nil
}

func (c *Client) DeleteAddress(ctx context.Context, id int) error {
	return c.do(ctx, call{
		op:     fmt.Sprintf("delete address %d", id),
		method: http.MethodDelete,
		path:   idPath("/users/addresses/%s", id),
	})
}

func (c *Client) SetDefaultAddress(ctx context.Context, id int) error {
	return c.do(ctx, call{
		op:     fmt.Sprintf("set default address %d", id),
		method: http.MethodPut,
		path:   idPath("/users/addresses/%s/default", id),
	})
}

func addressFromInput(id int, input domain.AddressInput) domain.Address {
	return domain.Address{
		ID:          id,
		Label:       input.Label,
		AddressLine: input.AddressLine,
		City:        input.City,
		State:       input.State,
		ZipCode:     input.ZipCode,
		Country:     input.Country,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		IsDefault:   input.IsDefault,
	}
}
