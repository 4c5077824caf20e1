// Copyright (c) 2026 BVK Chaitanya

// Package dashboard implements a live terminal view of the trading server.
package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bvk/tradedash/api"
	"github.com/hashicorp/go-multierror"
)

// LogLines is the number of recent server log lines shown in the dashboard.
const LogLines = 20

// API is the subset of server operations used by the dashboard.
type API interface {
	Status(ctx context.Context) (*api.StatusResponse, error)
	Account(ctx context.Context) (*api.AccountResponse, error)
	Indices(ctx context.Context) ([]*api.Quote, error)
	Watchlist(ctx context.Context) ([]*api.Quote, error)
	Schedule(ctx context.Context) (*api.ScheduleResponse, error)
	Logs(ctx context.Context, limit int) (*api.LogsResponse, error)
}

// Snapshot holds the server state fetched in one refresh. Fields of failed
// requests are left nil.
type Snapshot struct {
	Time time.Time

	Status    *api.StatusResponse
	Account   *api.AccountResponse
	Indices   []*api.Quote
	Watchlist []*api.Quote
	Schedule  *api.ScheduleResponse
	Logs      []string
}

// Fetch issues all dashboard requests concurrently. Returned snapshot is
// never nil; when some of the requests fail it holds the successful ones and
// the error aggregates all failures.
func Fetch(ctx context.Context, c API) (*Snapshot, error) {
	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		merr *multierror.Error
	)
	s := &Snapshot{Time: time.Now()}

	run := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				merr = multierror.Append(merr, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
			}
		}()
	}

	run("status", func() (err error) {
		s.Status, err = c.Status(ctx)
		return err
	})
	run("account", func() (err error) {
		s.Account, err = c.Account(ctx)
		return err
	})
	run("indices", func() (err error) {
		s.Indices, err = c.Indices(ctx)
		return err
	})
	run("watchlist", func() (err error) {
		s.Watchlist, err = c.Watchlist(ctx)
		return err
	})
	run("schedule", func() (err error) {
		s.Schedule, err = c.Schedule(ctx)
		return err
	})
	run("logs", func() error {
		resp, err := c.Logs(ctx, LogLines)
		if err != nil {
			return err
		}
		s.Logs = resp.Logs
		return nil
	})
	wg.Wait()

	return s, merr.ErrorOrNil()
}

// Merge fills the parts missing from s with the data from an older
// snapshot.
func (s *Snapshot) Merge(old *Snapshot) {
	if old == nil {
		return
	}
	if s.Status == nil {
		s.Status = old.Status
	}
	if s.Account == nil {
		s.Account = old.Account
	}
	if s.Indices == nil {
		s.Indices = old.Indices
	}
	if s.Watchlist == nil {
		s.Watchlist = old.Watchlist
	}
	if s.Schedule == nil {
		s.Schedule = old.Schedule
	}
	if s.Logs == nil {
		s.Logs = old.Logs
	}
}
