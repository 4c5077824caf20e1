// Copyright (c) 2026 BVK Chaitanya

package client

import (
	"context"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/bvk/tradedash/api"
)

// Start starts automated trading immediately.
func (c *Client) Start(ctx context.Context) (*api.Result, error) {
	resp := new(api.Result)
	if err := postJSON(ctx, c, api.StartPath, nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Stop stops automated trading. Open positions are left as they are.
func (c *Client) Stop(ctx context.Context) (*api.Result, error) {
	resp := new(api.Result)
	if err := postJSON(ctx, c, api.StopPath, nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ForceClose closes all open positions immediately.
func (c *Client) ForceClose(ctx context.Context) (*api.ForceCloseResponse, error) {
	resp := new(api.ForceCloseResponse)
	if err := postJSON(ctx, c, api.ForceClosePath, nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateConfig changes the trading symbol and the order quantity. Empty
// symbol is sent as null. Quantity is sent as a number; empty or non-numeric
// quantity is sent as null.
func (c *Client) UpdateConfig(ctx context.Context, symbol, quantity string) (*api.Result, error) {
	req := &api.ConfigRequest{
		Symbol:   nullString(symbol),
		Quantity: parseQuantity(quantity),
	}
	resp := new(api.Result)
	if err := postJSON(ctx, c, api.ConfigPath, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateSecrets replaces the broker passwords on the server. Empty passwords
// are sent as null and are left unchanged by the server.
func (c *Client) UpdateSecrets(ctx context.Context, apiPassword, orderPassword string, save bool) (*api.SecretsResponse, error) {
	req := &api.SecretsRequest{
		APIPassword:   nullString(apiPassword),
		OrderPassword: nullString(orderPassword),
		Save:          save,
	}
	resp := new(api.SecretsResponse)
	if err := postJSON(ctx, c, api.SecretsPath, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func nullString(s string) *string {
	if len(s) == 0 {
		return nil
	}
	return &s
}

// parseQuantity converts user input into the quantity number, same as the
// dashboard's number coercion. Blank input (only whitespace) counts as zero
// and integers with 0x, 0o or 0b prefixes are accepted. Input that is not a
// finite number is sent as null.
func parseQuantity(s string) *float64 {
	if len(s) == 0 {
		return nil
	}
	v := 0.0
	if t := strings.TrimSpace(s); len(t) != 0 {
		f, ok := parseNumber(t)
		if !ok {
			return nil
		}
		v = f
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func parseNumber(s string) (float64, bool) {
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			digits := s[2:]
			if digits[0] == '+' || digits[0] == '-' {
				return 0, false
			}
			n, ok := new(big.Int).SetString(digits, base)
			if !ok {
				return 0, false
			}
			f, _ := new(big.Float).SetInt(n).Float64()
			return f, true
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
