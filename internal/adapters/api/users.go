package api

import (
	"context"
	"net/http"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

var (
	_ ports.AuthAPI    = (*Client)(nil)
	_ ports.SessionAPI = (*Client)(nil)
)

func (c *Client) Login(ctx context.Context, email, password string) (domain.LoginResult, error) {
	var result domain.LoginResult
	err := c.do(ctx, call{
		op:     "login",
		method: http.MethodPost,
		path:   "/users/login",
		body:   map[string]string{"email": email, "password": password},
		out:    &result,
	})
	return result, err
}

func (c *Client) RequestLoginOTP(ctx context.Context, email string) error {
	return c.do(ctx, call{
		op:     "request login otp",
		method: http.MethodPost,
		path:   "/users/login-otp",
		body:   map[string]string{"email": email},
	})
}

func (c *Client) VerifyLoginOTP(ctx context.Context, email, otp string) (domain.LoginResult, error) {
	var result domain.LoginResult
	err := c.do(ctx, call{
		op:     "verify login otp",
		method: http.MethodPost,
		path:   "/users/login-verify-otp",
		body:   map[string]string{"email": email, "otp": otp},
		out:    &result,
	})
	return result, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, call{
		op:     "logout",
		method: http.MethodPost,
		path:   "/users/logout",
	})
}

func (c *Client) Profile(ctx context.Context) (domain.User, error) {
	var envelope struct {
		User domain.User `json:"user"`
	}
	err := c.do(ctx, call{
		op:     "get profile",
		method: http.MethodGet,
		path:   "/users/profile",
		out:    &envelope,
	})
	return envelope.User, err
}
