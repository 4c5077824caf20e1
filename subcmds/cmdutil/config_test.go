// Copyright (c) 2026 BVK Chaitanya

package cmdutil

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvServerURL, "")
	t.Setenv(EnvHTTPTimeout, "")
	t.Setenv(EnvLogDir, "")
}

func writeConfig(t *testing.T, data string) string {
	fpath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(fpath, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}
	return fpath
}

func TestDefaultConfig(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServerURL != "http://127.0.0.1:8000/api" {
		t.Fatalf("want default server url, got %s", cfg.ServerURL)
	}
	if cfg.HTTPTimeout != 0 {
		t.Fatalf("want no timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.WatchInterval != DefaultWatchInterval {
		t.Fatalf("want %s, got %s", DefaultWatchInterval, cfg.WatchInterval)
	}
}

func TestConfigPrecedence(t *testing.T) {
	clearEnv(t)

	fpath := writeConfig(t, `
server_url: http://10.0.0.5:8000/api
http_timeout: 5s
max_requests_per_second: 4
watch_interval: 10s
log_dir: /var/tmp/tradedash
`)

	cfg, err := LoadConfig(fpath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServerURL != "http://10.0.0.5:8000/api" {
		t.Fatalf("want file server url, got %s", cfg.ServerURL)
	}
	if cfg.HTTPTimeout != 5*time.Second || cfg.WatchInterval != 10*time.Second {
		t.Fatalf("want 5s timeout and 10s interval, got %s and %s", cfg.HTTPTimeout, cfg.WatchInterval)
	}
	if cfg.MaxRequestsPerSecond != 4 || cfg.LogDir != "/var/tmp/tradedash" {
		t.Fatalf("want 4 rps and file log dir, got %v and %s", cfg.MaxRequestsPerSecond, cfg.LogDir)
	}

	t.Setenv(EnvServerURL, "http://10.0.0.6:8000/api")
	t.Setenv(EnvHTTPTimeout, "2s")
	cfg, err = LoadConfig(fpath)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServerURL != "http://10.0.0.6:8000/api" || cfg.HTTPTimeout != 2*time.Second {
		t.Fatalf("want env overrides, got %s and %s", cfg.ServerURL, cfg.HTTPTimeout)
	}
	if cfg.LogDir != "/var/tmp/tradedash" {
		t.Fatalf("want file log dir, got %s", cfg.LogDir)
	}

	var cf ClientFlags
	fset := flag.NewFlagSet("test", flag.ContinueOnError)
	cf.SetFlags(fset)
	args := []string{"-config", fpath, "-server-url", "http://10.0.0.7:8000/api", "-max-rps", "1"}
	if err := fset.Parse(args); err != nil {
		t.Fatal(err)
	}
	cfg, err = cf.Config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServerURL != "http://10.0.0.7:8000/api" || cfg.MaxRequestsPerSecond != 1 {
		t.Fatalf("want flag overrides, got %s and %v", cfg.ServerURL, cfg.MaxRequestsPerSecond)
	}
	if cfg.HTTPTimeout != 2*time.Second {
		t.Fatalf("want env timeout to stay, got %s", cfg.HTTPTimeout)
	}

	c, err := cf.Client()
	if err != nil {
		t.Fatal(err)
	}
	if c.BaseURL() != "http://10.0.0.7:8000/api" {
		t.Fatalf("want client to use flag server url, got %s", c.BaseURL())
	}
}

func TestConfigErrors(t *testing.T) {
	clearEnv(t)

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want os.ErrNotExist for missing config file, got %v", err)
	}

	if _, err := LoadConfig(writeConfig(t, "watch_interval: -1s\n")); !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("want os.ErrInvalid for negative interval, got %v", err)
	}

	if _, err := LoadConfig(writeConfig(t, "server_url: [1, 2]\n")); err == nil {
		t.Fatalf("want parse error, got nil")
	}

	t.Setenv(EnvHTTPTimeout, "soon")
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("want error for bad timeout value, got nil")
	}

	t.Setenv(EnvHTTPTimeout, "")
	var cf ClientFlags
	fset := flag.NewFlagSet("test", flag.ContinueOnError)
	cf.SetFlags(fset)
	if err := fset.Parse([]string{"-server-url", "ftp://example.com"}); err != nil {
		t.Fatal(err)
	}
	if _, err := cf.Client(); !errors.Is(err, os.ErrInvalid) {
		t.Fatalf("want os.ErrInvalid for unsupported scheme, got %v", err)
	}
}
