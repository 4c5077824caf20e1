// Copyright (c) 2026 BVK Chaitanya

// Package client implements a client for the trading daemon's HTTP api.
//
// Every method issues exactly one request. Non-2xx responses are returned as
// *HTTPError and undecodable bodies as *ParseError. No request is retried and
// no response is cached; resilience is left to the caller.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

type Client struct {
	opts Options

	rest *resty.Client

	limiter *rate.Limiter
}

// New returns a new client instance.
func New(opts *Options) (*Client, error) {
	if opts == nil {
		opts = new(Options)
	}
	opts.setDefaults()
	if err := opts.Check(); err != nil {
		return nil, err
	}

	rest := resty.New().
		SetBaseURL(strings.TrimSuffix(opts.BaseURL, "/")).
		SetTimeout(opts.HttpClientTimeout).
		SetRetryCount(0)
	for k, vs := range opts.Header {
		for _, v := range vs {
			rest.Header.Add(k, v)
		}
	}

	c := &Client{
		opts: *opts,
		rest: rest,
	}
	if opts.MaxRequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.MaxRequestsPerSecond), 1)
	}
	return c, nil
}

// BaseURL returns the server address used by the client.
func (c *Client) BaseURL() string {
	return c.opts.BaseURL
}

// Do sends a request for path, which is relative to the base url and may
// include a query string. A non-nil body is sent as JSON. Response body is
// returned as is after checking that it is well-formed JSON.
func (c *Client) Do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	req := c.rest.R().SetContext(ctx)
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("could not encode request body for %s %s: %w", method, path, err)
		}
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(data)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	s := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error("could not perform http request", "method", method, "path", path, "err", err)
		}
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	slog.Debug("http request complete", "method", method, "path", path, "status", resp.StatusCode(), "took", time.Since(s))

	data := resp.Body()
	if !resp.IsSuccess() {
		slog.Warn("http request returned unsuccessful status code", "method", method, "path", path, "status-code", resp.StatusCode())
		return nil, &HTTPError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Body:       data,
		}
	}
	if !json.Valid(data) {
		return nil, &ParseError{
			Body: data,
			Err:  fmt.Errorf("%s %s: response is not valid json", method, path),
		}
	}
	return json.RawMessage(data), nil
}

func getJSON[PT *T, T any](ctx context.Context, c *Client, path string, response PT) error {
	return doJSON(ctx, c, http.MethodGet, path, nil, response)
}

func postJSON[PT *T, T any](ctx context.Context, c *Client, path string, request any, response PT) error {
	return doJSON(ctx, c, http.MethodPost, path, request, response)
}

func doJSON[PT *T, T any](ctx context.Context, c *Client, method, path string, request any, response PT) error {
	data, err := c.Do(ctx, method, path, request)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, response); err != nil {
		slog.Error("could not decode response", "method", method, "path", path, "err", err)
		return &ParseError{Body: data, Err: err}
	}
	return nil
}
