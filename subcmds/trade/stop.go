// Copyright (c) 2026 BVK Chaitanya

package trade

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/tradedash/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Stop struct {
	cmdutil.ClientFlags
	cmdutil.OutputFlags
}

func (c *Stop) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("stop", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	return "stop", fset, cli.CmdFunc(c.run)
}

func (c *Stop) Purpose() string {
	return "Stops automated trading, leaving positions open"
}

func (c *Stop) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	client, err := c.ClientFlags.Client()
	if err != nil {
		return err
	}
	resp, err := client.Stop(ctx)
	if err != nil {
		return fmt.Errorf("could not stop trading: %w", err)
	}
	if c.JSON {
		return cmdutil.PrintJSON(stdout, resp)
	}
	return cmdutil.Result(stdout, resp.OK, resp.Message, resp.Error)
}
