// Copyright (c) 2026 BVK Chaitanya

package api

const ConfigPath = "/config"

// ConfigRequest updates the trading symbol and order quantity. Nil fields are
// sent as JSON null, which leaves the server's current value unchanged.
type ConfigRequest struct {
	Symbol   *string  `json:"symbol"`
	Quantity *float64 `json:"quantity"`
}
