package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

var _ ports.DataAPI = (*Client)(nil)

func (c *Client) ListSubscriptions(ctx context.Context) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	if err := c.do(ctx, call{
		op:     "list subscriptions",
		method: http.MethodGet,
		path:   "/users/subscriptions",
		out:    &subs,
	}); err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []domain.Subscription{}
	}
	return subs, nil
}

func (c *Client) CreateSubscription(ctx context.Context, sub domain.Subscription) (domain.Subscription, error) {
	var created domain.Subscription
	err := c.do(ctx, call{
		op:     "create subscription",
		method: http.MethodPost,
		path:   "/users/subscriptions",
		body:   sub,
		out:    &created,
	})
	return created, err
}

func (c *Client) UpdateSubscription(ctx context.Context, id int, fields map[string]any) error {
	return c.do(ctx, call{
		op:     fmt.Sprintf("update subscription %d", id),
		method: http.MethodPut,
		path:   idPath("/users/subscriptions/%s", id),
		body:   fields,
	})
}

func (c *Client) DeleteSubscription(ctx context.Context, id int) error {
	return c.do(ctx, call{
		op:     fmt.Sprintf("delete subscription %d", id),
		method: http.MethodDelete,
		path:   idPath("/users/subscriptions/%s", id),
	})
}

func (c *Client) Preferences(ctx context.Context) (domain.Preferences, error) {
	prefs := domain.Preferences{}
	if err := c.do(ctx, call{
		op:     "get preferences",
		method: http.MethodGet,
		path:   "/users/preferences",
		out:    &prefs,
	}); err != nil {
		return nil, err
	}
	return prefs, nil
}

func (c *Client) SetPreference(ctx context.Context, key, value string) error {
	return c.do(ctx, call{
		op:     fmt.Sprintf("set preference %q", key),
		method: http.MethodPost,
		path:   "/users/preferences",
		body:   domain.Preference{Key: key, Value: value},
	})
}

func (c *Client) SetPreferences(ctx context.Context, prefs domain.Preferences) error {
	return c.do(ctx, call{
		op:     "set preferences",
		method: http.MethodPut,
		path:   "/users/preferences",
		body:   prefs,
	})
}
