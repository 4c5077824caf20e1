// Copyright (c) 2026 BVK Chaitanya

package schedule

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/tradedash/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Get struct {
	cmdutil.ClientFlags
	cmdutil.OutputFlags
}

func (c *Get) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("get", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	return "get", fset, cli.CmdFunc(c.run)
}

func (c *Get) Purpose() string {
	return "Prints the pending scheduled start"
}

func (c *Get) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	client, err := c.ClientFlags.Client()
	if err != nil {
		return err
	}
	resp, err := client.Schedule(ctx)
	if err != nil {
		return fmt.Errorf("could not fetch schedule: %w", err)
	}
	if c.JSON {
		return cmdutil.PrintJSON(stdout, resp)
	}
	if !resp.Scheduled {
		fmt.Fprintln(stdout, "no start is scheduled")
		return nil
	}
	fmt.Fprintf(stdout, "trading is scheduled to start at %s\n", resp.Time)
	return nil
}
