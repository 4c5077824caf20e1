// Copyright (c) 2026 BVK Chaitanya

package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

type snapshotMsg struct {
	snap *Snapshot
	err  error
}

// Model is the bubbletea model for the dashboard. Server state is refreshed
// every interval and on the "r" key; "q" or "ctrl+c" quits.
type Model struct {
	ctx   context.Context
	api   API
	title string

	interval time.Duration

	fetching bool

	snap *Snapshot
	err  error
}

func New(ctx context.Context, c API, title string, interval time.Duration) Model {
	return Model{
		ctx:      ctx,
		api:      c,
		title:    title,
		interval: interval,
		fetching: true,
	}
}

// Snapshot returns the most recent data and fetch error.
func (m Model) Snapshot() (*Snapshot, error) {
	return m.snap, m.err
}

func (m Model) fetchCmd() tea.Cmd {
	ctx, c := m.ctx, m.api
	return func() tea.Msg {
		s, err := Fetch(ctx, c)
		return snapshotMsg{snap: s, err: err}
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), m.tickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			if !m.fetching {
				m.fetching = true
				return m, m.fetchCmd()
			}
		}

	case tickMsg:
		if m.fetching {
			return m, m.tickCmd()
		}
		m.fetching = true
		return m, tea.Batch(m.fetchCmd(), m.tickCmd())

	case snapshotMsg:
		m.fetching = false
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			slog.Warn("could not refresh dashboard", "err", msg.err)
		}
		msg.snap.Merge(m.snap)
		m.snap, m.err = msg.snap, msg.err
	}
	return m, nil
}

func (m Model) View() string {
	return Render(m.title, m.snap, m.err)
}
