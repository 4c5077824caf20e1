// Copyright (c) 2026 BVK Chaitanya

package client

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

var BaseURL = url.URL{
	Scheme: "http",
	Host:   "127.0.0.1:8000",
	Path:   "/api",
}

type Options struct {
	// BaseURL holds the server address including the "/api" prefix.
	BaseURL string

	// HttpClientTimeout is the timeout for each request. Zero value means no
	// timeout, so callers are expected to bound requests through the context.
	HttpClientTimeout time.Duration

	// MaxRequestsPerSecond paces outgoing requests when non-zero. Requests
	// wait for their turn; they are never dropped or retried.
	MaxRequestsPerSecond float64

	// Header holds extra headers added to every request.
	Header http.Header
}

func (v *Options) setDefaults() {
	if v.BaseURL == "" {
		v.BaseURL = BaseURL.String()
	}
}

// Check validates the options.
func (v *Options) Check() error {
	u, err := url.Parse(v.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base url %q: %w", v.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base url %q must use http or https scheme: %w", v.BaseURL, os.ErrInvalid)
	}
	if len(u.Host) == 0 {
		return fmt.Errorf("base url %q has no host: %w", v.BaseURL, os.ErrInvalid)
	}
	if v.HttpClientTimeout < 0 {
		return fmt.Errorf("http client timeout cannot be negative: %w", os.ErrInvalid)
	}
	if v.MaxRequestsPerSecond < 0 {
		return fmt.Errorf("max requests per second cannot be negative: %w", os.ErrInvalid)
	}
	return nil
}
