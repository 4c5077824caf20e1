// Copyright (c) 2026 BVK Chaitanya

package api

const HealthPath = "/health"

type HealthResponse struct {
	OK bool `json:"ok"`
}
