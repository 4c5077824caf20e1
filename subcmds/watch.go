// Copyright (c) 2026 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/bvk/tradedash/dashboard"
	"github.com/bvk/tradedash/subcmds/cmdutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/visvasity/cli"
	"github.com/visvasity/sglog"
)

type Watch struct {
	cmdutil.ClientFlags

	interval time.Duration
	logDir   string
}

func (c *Watch) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("watch", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	fset.DurationVar(&c.interval, "interval", 0, "refresh interval (default 3s or the config file value)")
	fset.StringVar(&c.logDir, "log-dir", "", "directory for the log files (default ~/.tradedash/logs or "+cmdutil.EnvLogDir+" value)")
	return "watch", fset, cli.CmdFunc(c.run)
}

func (c *Watch) Purpose() string {
	return "Shows a live dashboard of the trading server"
}

func (c *Watch) Description() string {
	return `
Command "watch" shows the runner state, account, positions, orders, market
quotes and recent server logs in the terminal and refreshes them
periodically. Press "r" to refresh immediately and "q" to quit.

Log messages are written to files in the log directory while the dashboard
owns the terminal.
`
}

func (c *Watch) run(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	cfg, err := c.ClientFlags.Config()
	if err != nil {
		return err
	}
	if c.interval < 0 {
		return fmt.Errorf("refresh interval cannot be negative: %w", os.ErrInvalid)
	}
	if c.interval > 0 {
		cfg.WatchInterval = c.interval
	}
	if len(c.logDir) != 0 {
		cfg.LogDir = c.logDir
	}
	client, err := cmdutil.NewClient(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.LogDir, 0700); err != nil {
		return fmt.Errorf("could not create log directory %q: %w", cfg.LogDir, err)
	}
	backend := sglog.NewBackend(&sglog.Options{
		LogDirs: []string{cfg.LogDir},
	})
	defer backend.Close()

	defaultLogger := slog.Default()
	slog.SetDefault(slog.New(backend.Handler()))
	defer slog.SetDefault(defaultLogger)

	slog.InfoContext(ctx, "starting dashboard", "server", client.BaseURL(), "interval", cfg.WatchInterval)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := dashboard.New(ctx, client, client.BaseURL(), cfg.WatchInterval)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
