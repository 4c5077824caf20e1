// Copyright (c) 2026 BVK Chaitanya

package api

const (
	SchedulePath       = "/schedule"
	ScheduleStartPath  = "/schedule_start"
	CancelSchedulePath = "/cancel_schedule"
)

// ScheduleStartRequest asks the server to start trading at a later time. Time
// is passed to the server as given.
type ScheduleStartRequest struct {
	Time string `json:"time"`
}

type ScheduleResponse struct {
	OK bool `json:"ok"`

	Scheduled bool   `json:"scheduled"`
	Time      string `json:"time,omitempty"`

	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
