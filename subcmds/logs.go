// Copyright (c) 2026 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/tradedash/api"
	"github.com/bvk/tradedash/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Logs struct {
	cmdutil.ClientFlags
	cmdutil.OutputFlags

	limit int
}

func (c *Logs) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("logs", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	fset.IntVar(&c.limit, "limit", api.DefaultLogsLimit, "max number of recent log lines")
	return "logs", fset, cli.CmdFunc(c.run)
}

func (c *Logs) Purpose() string {
	return "Prints recent log lines from the server"
}

func (c *Logs) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	client, err := c.ClientFlags.Client()
	if err != nil {
		return err
	}
	resp, err := client.Logs(ctx, c.limit)
	if err != nil {
		return fmt.Errorf("could not fetch logs: %w", err)
	}
	if c.JSON {
		return cmdutil.PrintJSON(stdout, resp)
	}
	for _, line := range resp.Logs {
		fmt.Fprintln(stdout, line)
	}
	return nil
}
