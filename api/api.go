// Copyright (c) 2026 BVK Chaitanya

// Package api defines the paths and JSON request/response types of the
// trading daemon's HTTP interface. All paths are relative to the "/api"
// prefix, which is part of the client's base url.
//
// Nullable numbers are decoded into decimal.NullDecimal so that a JSON null
// from the server stays distinguishable from a zero value.
package api

// Result is the common response for the control operations that only report
// success or failure.
type Result struct {
	OK bool `json:"ok"`

	Message string `json:"message,omitempty"`

	Error string `json:"error,omitempty"`
}
