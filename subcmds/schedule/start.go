// Copyright (c) 2026 BVK Chaitanya

package schedule

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
	return "Schedules trading to start at a later time"
}

func (c *Start) Description() string {
	return `
Command "start" takes one time argument, which is passed to the server as
given. Server decides the accepted time formats, eg:

  $ tradedash schedule start 09:00
`
}

func (c *Start) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	if len(args) != 1 {
		return fmt.Errorf("this command takes one (start time) argument")
	}
	client, err := c.ClientFlags.Client()
	if err != nil {
		return err
	}
	resp, err := client.ScheduleStart(ctx, args[0])
	if err != nil {
		return fmt.Errorf("could not schedule start: %w", err)
	}
	if c.JSON {
		return cmdutil.PrintJSON(stdout, resp)
	}
	msg := resp.Message
	if len(msg) == 0 && resp.Scheduled {
		msg = fmt.Sprintf("trading is scheduled to start at %s", resp.Time)
	}
	return cmdutil.Result(stdout, resp.OK, msg, resp.Error)
}
