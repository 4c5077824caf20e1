// Copyright (c) 2026 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/tradedash/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Config struct {
	cmdutil.ClientFlags
	cmdutil.OutputFlags

	symbol   string
	quantity string
}

func (c *Config) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("config", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	fset.StringVar(&c.symbol, "symbol", "", "trading symbol code (unchanged when empty)")
	fset.StringVar(&c.quantity, "quantity", "", "order quantity (unchanged when empty)")
	return "config", fset, cli.CmdFunc(c.run)
}

func (c *Config) Purpose() string {
	return "Updates the trading symbol and order quantity"
}

func (c *Config) Description() string {
	return `
Command "config" changes the trading symbol and/or the order quantity used by
the server. Settings not given on the command-line are sent as null and are
left unchanged by the server.

  $ tradedash config -symbol 9434 -quantity 100
`
}

func (c *Config) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	if len(c.symbol) == 0 && len(c.quantity) == 0 {
		return fmt.Errorf("at least one of -symbol or -quantity flags is required")
	}
	client, err := c.ClientFlags.Client()
	if err != nil {
		return err
	}
	resp, err := client.UpdateConfig(ctx, c.symbol, c.quantity)
	if err != nil {
		return fmt.Errorf("could not update config: %w", err)
	}
	if c.JSON {
		return cmdutil.PrintJSON(stdout, resp)
	}
	return cmdutil.Result(stdout, resp.OK, resp.Message, resp.Error)
}
