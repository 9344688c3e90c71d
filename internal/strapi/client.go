// Package strapi is the site's only gateway to the Strapi REST API. Reads
// return Envelope values and never fail with a Go error; form writes do.
package strapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goliatone/go-consulting-site/internal/content"
	"github.com/goliatone/go-consulting-site/internal/logging"
	"github.com/goliatone/go-consulting-site/internal/media"
	"github.com/goliatone/go-consulting-site/internal/routes"
	"github.com/goliatone/go-consulting-site/internal/runtimeconfig"
)

const maxResponseBytes = 8 << 20

// Client talks to one Strapi instance. It is safe for concurrent use.
type Client struct {
	http    *http.Client
	routes  *routes.Manager
	media   *media.Resolver
	token   string
	timeout time.Duration
	logger  logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the transport, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the client logger.
func WithLogger(logger logging.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRoutes shares a route manager instead of building one from cfg.
func WithRoutes(manager *routes.Manager) Option {
	return func(c *Client) {
		if manager != nil {
			c.routes = manager
		}
	}
}

// New builds a client for cfg. Media references in responses are rewritten
// by resolver; a nil resolver resolves against cfg.BaseURL.
func New(cfg runtimeconfig.CMSConfig, resolver *media.Resolver, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = runtimeconfig.DefaultCMSTimeout
	}
	if resolver == nil {
		resolver = media.NewResolver(cfg.BaseURL, cfg.UploadsPath)
	}

	c := &Client{
		http:    &http.Client{Timeout: timeout},
		media:   resolver,
		token:   strings.TrimSpace(cfg.Token),
		timeout: timeout,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.routes == nil {
		c.routes = routes.New("", cfg.BaseURL)
	}
	return c
}

// do performs one request. query may be nil; body is JSON encoded when
// present and out receives the decoded response when non-nil.
func (c *Client) do(ctx context.Context, method, resource string, query url.Values, body, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.routes.CMSResource(resource)
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("strapi: encode %s: %w", resource, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("strapi: build %s %s: %w", method, resource, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("strapi: %s %s: %w", method, resource, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("strapi: read %s: %w", resource, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: method, Resource: resource, Status: resp.StatusCode, Message: apiMessage(data)}
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("strapi: decode %s: %w", resource, err)
	}
	return nil
}

type response[T any] struct {
	Data T    `json:"data"`
	Meta Meta `json:"meta"`
}

func list[T any](ctx context.Context, c *Client, resource string, q Query) Envelope[[]T] {
	var payload response[[]T]
	if err := c.do(ctx, http.MethodGet, resource, q.Values(), nil, &payload); err != nil {
		c.readFailed(ctx, resource, err)
		return failed[[]T](err)
	}
	for i := range payload.Data {
		c.resolveMedia(&payload.Data[i])
	}
	if payload.Data == nil {
		payload.Data = []T{}
	}
	return Envelope[[]T]{Data: payload.Data, Meta: payload.Meta}
}

func single[T any](ctx context.Context, c *Client, resource string, q Query) Envelope[*T] {
	var payload response[*T]
	if err := c.do(ctx, http.MethodGet, resource, q.Values(), nil, &payload); err != nil {
		c.readFailed(ctx, resource, err)
		return failed[*T](err)
	}
	if payload.Data != nil {
		c.resolveMedia(payload.Data)
	}
	return Envelope[*T]{Data: payload.Data, Meta: payload.Meta}
}

func (c *Client) resolveMedia(record any) {
	if carrier, ok := record.(content.MediaCarrier); ok {
		c.media.Apply(carrier)
	}
}

func (c *Client) readFailed(ctx context.Context, resource string, err error) {
	logger := logging.WithResource(logging.FromContext(ctx, c.logger), resource)
	if ctx != nil && ctx.Err() != nil {
		logger.Debug("strapi.read.cancelled", "error", err)
		return
	}
	logger.Warn("strapi.read.failed", "error", err)
}
