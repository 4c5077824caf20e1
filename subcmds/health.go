// Copyright (c) 2026 BVK Chaitanya

package subcmds

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/tradedash/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Health struct {
	cmdutil.ClientFlags
	cmdutil.OutputFlags
}

func (c *Health) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("health", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	return "health", fset, cli.CmdFunc(c.run)
}

func (c *Health) Purpose() string {
	return "Checks that the server is reachable"
}

func (c *Health) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	client, err := c.ClientFlags.Client()
	if err != nil {
		return err
	}
	resp, err := client.Health(ctx)
	if err != nil {
		return fmt.Errorf("could not reach server at %s: %w", client.BaseURL(), err)
	}
	if c.JSON {
		return cmdutil.PrintJSON(stdout, resp)
	}
	if !resp.OK {
		return fmt.Errorf("server at %s is not healthy", client.BaseURL())
	}
	fmt.Fprintf(stdout, "server at %s is healthy\n", client.BaseURL())
	return nil
}
