// Copyright (c) 2026 BVK Chaitanya

package api

const LogsPath = "/logs"

// DefaultLogsLimit is the number of log lines requested when the caller
// doesn't pick a limit.
const DefaultLogsLimit = 200

type LogsResponse struct {
	Logs []string `json:"logs"`
}
