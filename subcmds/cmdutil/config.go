// Copyright (c) 2026 BVK Chaitanya

package cmdutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bvk/tradedash/client"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file values.
const (
	EnvServerURL   = "TRADEDASH_SERVER_URL"
	EnvHTTPTimeout = "TRADEDASH_HTTP_TIMEOUT"
	EnvLogDir      = "TRADEDASH_LOG_DIR"
)

// DotEnvFile is loaded from the current directory, if present, before the
// environment variables are read. Variables already set in the process
// environment take precedence over the file.
const DotEnvFile = ".env"

const DefaultWatchInterval = 3 * time.Second

type Config struct {
	ServerURL string `yaml:"server_url"`

	HTTPTimeout time.Duration `yaml:"http_timeout"`

	MaxRequestsPerSecond float64 `yaml:"max_requests_per_second"`

	WatchInterval time.Duration `yaml:"watch_interval"`

	LogDir string `yaml:"log_dir"`
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || len(home) == 0 {
		return ""
	}
	return filepath.Join(home, ".tradedash")
}

// DefaultConfigPath returns the config file path used when none is given on
// the command-line. Returns empty string if user's home directory is unknown.
func DefaultConfigPath() string {
	if dir := dataDir(); len(dir) != 0 {
		return filepath.Join(dir, "config.yaml")
	}
	return ""
}

func DefaultConfig() *Config {
	cfg := &Config{
		ServerURL:     client.BaseURL.String(),
		WatchInterval: DefaultWatchInterval,
		LogDir:        os.TempDir(),
	}
	if dir := dataDir(); len(dir) != 0 {
		cfg.LogDir = filepath.Join(dir, "logs")
	}
	return cfg
}

// LoadConfig reads the configuration from the config file at fpath and
// applies the environment overrides on top of it. When fpath is empty, the
// default config file is used only if it exists.
func LoadConfig(fpath string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := len(fpath) != 0
	if !explicit {
		fpath = DefaultConfigPath()
	}
	if len(fpath) != 0 {
		data, err := os.ReadFile(fpath)
		if err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("could not read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("could not parse config file %q: %w", fpath, err)
		}
	}

	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("could not load %s file: %w", DotEnvFile, err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvServerURL); len(v) != 0 {
		c.ServerURL = v
	}
	if v := os.Getenv(EnvHTTPTimeout); len(v) != 0 {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("could not parse %s value %q: %w", EnvHTTPTimeout, v, err)
		}
		c.HTTPTimeout = d
	}
	if v := os.Getenv(EnvLogDir); len(v) != 0 {
		c.LogDir = v
	}
	return nil
}

func (c *Config) Check() error {
	if len(c.ServerURL) == 0 {
		return fmt.Errorf("server url cannot be empty: %w", os.ErrInvalid)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http timeout cannot be negative: %w", os.ErrInvalid)
	}
	if c.MaxRequestsPerSecond < 0 {
		return fmt.Errorf("max requests per second cannot be negative: %w", os.ErrInvalid)
	}
	if c.WatchInterval <= 0 {
		return fmt.Errorf("watch interval must be positive: %w", os.ErrInvalid)
	}
	return nil
}

// NewClient creates a server client for the configuration.
func NewClient(cfg *Config) (*client.Client, error) {
	opts := &client.Options{
		BaseURL:              cfg.ServerURL,
		HttpClientTimeout:    cfg.HTTPTimeout,
		MaxRequestsPerSecond: cfg.MaxRequestsPerSecond,
	}
	c, err := client.New(opts)
	if err != nil {
		return nil, fmt.Errorf("could not create server client: %w", err)
	}
	return c, nil
}
