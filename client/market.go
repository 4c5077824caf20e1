// Copyright (c) 2026 BVK Chaitanya

package client

import (
	"context"

	"github.com/bvk/tradedash/api"
)

// SymbolInfo returns the name and exchange of a symbol.
//
// NOTE: The code is appended to the path without escaping, so a code with
// '/' or '?' characters changes the request path.
func (c *Client) SymbolInfo(ctx context.Context, code string) (*api.SymbolResponse, error) {
	resp := new(api.SymbolResponse)
	if err := getJSON(ctx, c, api.SymbolPath+code, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Board returns the quote and best bid/ask of a symbol. The code is not
// escaped, same as SymbolInfo.
func (c *Client) Board(ctx context.Context, code string) (*api.BoardResponse, error) {
	resp := new(api.BoardResponse)
	if err := getJSON(ctx, c, api.BoardPath+code, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Indices returns the market index and currency quotes.
func (c *Client) Indices(ctx context.Context) ([]*api.Quote, error) {
	var resp []*api.Quote
	if err := getJSON(ctx, c, api.IndicesPath, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Watchlist returns quotes for the server's watched symbols.
func (c *Client) Watchlist(ctx context.Context) ([]*api.Quote, error) {
	var resp []*api.Quote
	if err := getJSON(ctx, c, api.WatchlistPath, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
