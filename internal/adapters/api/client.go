package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/version"
)

const (
	apiPrefix       = "/api/v1"
	maxResponseBody = 1 << 20
)

// RequestAuthorizer attaches credentials to outgoing requests.
type RequestAuthorizer interface {
	Decorate(ctx context.Context, req *http.Request) error
}

type Client struct {
	baseURL   string
	http      *http.Client
	auth      RequestAuthorizer
	limiter   *rate.Limiter
	userAgent string
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

func WithAuthorizer(auth RequestAuthorizer) Option {
	return func(c *Client) {
		c.auth = auth
	}
}

// WithRateLimit caps outgoing requests per second. Zero disables limiting.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		burst := int(perSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      http.DefaultClient,
		userAgent: version.UserAgent(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type call struct {
	op     string
	method string
	path   string
	query  string
	body   any
	out    any
}

func (c *Client) do(ctx context.Context, cl call) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return transportError(cl.op, err)
		}
	}

	var body io.Reader
	if cl.body != nil {
		encoded, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", cl.op, err)
		}
		body = bytes.NewReader(encoded)
	}

	endpoint := c.baseURL + apiPrefix + cl.path
	if cl.query != "" {
		endpoint += "?" + cl.query
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, endpoint, body)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", cl.op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.auth != nil {
		if err := c.auth.Decorate(ctx, req); err != nil {
			return fmt.Errorf("%s: authorize request: %w", cl.op, err)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(cl.op, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return transportError(cl.op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(cl.op, resp.StatusCode, payload)
	}

	if cl.out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, cl.out); err != nil {
		return &Error{Sentinel: domain.ErrBadResponse, Operation: cl.op, Status: resp.StatusCode, Err: err}
	}
	return nil
}

func statusError(op string, status int, payload []byte) error {
	sentinel := domain.ErrRequestRejected
	switch status {
	case http.StatusUnauthorized:
		sentinel = domain.ErrUnauthorized
	case http.StatusNotFound:
		sentinel = domain.ErrNotFound
	}

	var envelope struct {
		Error string `json:"error"`
	}
	message := ""
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Error != "" {
		message = envelope.Error
	} else {
		message = fmt.Sprintf("HTTP %d: %s", status, strings.TrimSpace(string(payload)))
	}

	return &Error{Sentinel: sentinel, Operation: op, Status: status, Message: message}
}

func transportError(op string, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.Canceled):
		return &Error{Operation: op, Err: err}
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return &Error{Sentinel: domain.ErrTimeout, Operation: op, Err: err}
	default:
		return &Error{Sentinel: domain.ErrUnavailable, Operation: op, Err: err}
	}
}

func idPath(format string, args ...any) string {
	escaped := make([]any, len(args))
	for i, arg := range args {
		escaped[i] = url.PathEscape(fmt.Sprint(arg))
	}
	return fmt.Sprintf(format, escaped...)
}
