// Copyright (c) 2026 BVK Chaitanya

package cmdutil

import (
	"flag"
	"time"

	"github.com/bvk/tradedash/client"
)

// ClientFlags holds the command-line flags to reach the server. Non-zero
// flag values override the config file and environment settings.
type ClientFlags struct {
	configPath string

	serverURL string

	httpTimeout time.Duration

	maxRPS float64
}

func (cf *ClientFlags) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&cf.configPath, "config", "", "path to the config file (default ~/.tradedash/config.yaml)")
	fset.StringVar(&cf.serverURL, "server-url", "", "server api address (default http://127.0.0.1:8000/api or "+EnvServerURL+" value)")
	fset.DurationVar(&cf.httpTimeout, "http-timeout", 0, "http client timeout (default no timeout)")
	fset.Float64Var(&cf.maxRPS, "max-rps", 0, "max number of requests per second (default no limit)")
}

// Config loads the configuration and applies the command-line overrides.
func (cf *ClientFlags) Config() (*Config, error) {
	cfg, err := LoadConfig(cf.configPath)
	if err != nil {
		return nil, err
	}
	if len(cf.serverURL) != 0 {
		cfg.ServerURL = cf.serverURL
	}
	if cf.httpTimeout != 0 {
		cfg.HTTPTimeout = cf.httpTimeout
	}
	if cf.maxRPS != 0 {
		cfg.MaxRequestsPerSecond = cf.maxRPS
	}
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cf *ClientFlags) Client() (*client.Client, error) {
	cfg, err := cf.Config()
	if err != nil {
		return nil, err
	}
	return NewClient(cfg)
}
