// Copyright (c) 2026 BVK Chaitanya

package schedule

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/tradedash/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Cancel struct {
	cmdutil.ClientFlags
	cmdutil.OutputFlags
}

func (c *Cancel) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("cancel", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	return "cancel", fset, cli.CmdFunc(c.run)
}

func (c *Cancel) Purpose() string {
	return "Cancels the pending scheduled start"
}

func (c *Cancel) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	client, err := c.ClientFlags.Client()
	if err != nil {
		return err
	}
	resp, err := client.CancelSchedule(ctx)
	if err != nil {
		return fmt.Errorf("could not cancel schedule: %w", err)
	}
	if c.JSON {
		return cmdutil.PrintJSON(stdout, resp)
	}
	return cmdutil.Result(stdout, resp.OK, resp.Message, resp.Error)
}
