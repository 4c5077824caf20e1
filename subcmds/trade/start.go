// Copyright (c) 2026 BVK Chaitanya

package trade

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/tradedash/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Start struct {
	cmdutil.ClientFlags
	cmdutil.OutputFlags
}

func (c *Start) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("start", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	return "start", fset, cli.CmdFunc(c.run)
}

func (c *Start) Purpose() string {
	return "Starts automated trading now"
}

func (c *Start) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	client, err := c.ClientFlags.Client()
	if err != nil {
		return err
	}
	resp, err := client.Start(ctx)
	if err != nil {
		return fmt.Errorf("could not start trading: %w", err)
	}
	if c.JSON {
		return cmdutil.PrintJSON(stdout, resp)
	}
	return cmdutil.Result(stdout, resp.OK, resp.Message, resp.Error)
}
