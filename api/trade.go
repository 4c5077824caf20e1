// Copyright (c) 2026 BVK Chaitanya

package api

const (
	StartPath      = "/start"
	StopPath       = "/stop"
	ForceClosePath = "/force_close"
)

type ForceCloseResponse struct {
	Result

	// Closed is the number of positions closed by the request.
	Closed int `json:"closed"`
}
