// Copyright (c) 2026 BVK Chaitanya

package client

import (
	"context"
	"fmt"

	"github.com/bvk/tradedash/api"
)

// Health checks that the server is up.
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	resp := new(api.HealthResponse)
	if err := getJSON(ctx, c, api.HealthPath, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Status returns the trading runner state along with the open positions.
func (c *Client) Status(ctx context.Context) (*api.StatusResponse, error) {
	resp := new(api.StatusResponse)
	if err := getJSON(ctx, c, api.StatusPath, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Account returns the wallet balances, positions and orders.
func (c *Client) Account(ctx context.Context) (*api.AccountResponse, error) {
	resp := new(api.AccountResponse)
	if err := getJSON(ctx, c, api.AccountPath, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Logs returns up to limit most recent server log lines. Default limit is
// used when limit is not positive.
func (c *Client) Logs(ctx context.Context, limit int) (*api.LogsResponse, error) {
	if limit <= 0 {
		limit = api.DefaultLogsLimit
	}
	resp := new(api.LogsResponse)
	if err := getJSON(ctx, c, fmt.Sprintf("%s?limit=%d", api.LogsPath, limit), resp); err != nil {
		return nil, err
	}
	return resp, nil
}
