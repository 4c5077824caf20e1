// Copyright (c) 2026 BVK Chaitanya

package client

import (
	"context"

	"github.com/bvk/tradedash/api"
)

// ScheduleStart schedules trading to start at the given time. The time value
// is sent to the server without any interpretation.
func (c *Client) ScheduleStart(ctx context.Context, at string) (*api.ScheduleResponse, error) {
	req := &api.ScheduleStartRequest{
		Time: at,
	}
	resp := new(api.ScheduleResponse)
	if err := postJSON(ctx, c, api.ScheduleStartPath, req, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CancelSchedule cancels a pending scheduled start.
func (c *Client) CancelSchedule(ctx context.Context) (*api.ScheduleResponse, error) {
	resp := new(api.ScheduleResponse)
	if err := postJSON(ctx, c, api.CancelSchedulePath, nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Schedule returns the pending scheduled start, if any.
func (c *Client) Schedule(ctx context.Context) (*api.ScheduleResponse, error) {
	resp := new(api.ScheduleResponse)
	if err := getJSON(ctx, c, api.SchedulePath, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
