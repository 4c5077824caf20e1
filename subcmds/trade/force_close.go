// Copyright (c) 2026 BVK Chaitanya

package trade

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/tradedash/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type ForceClose struct {
	cmdutil.ClientFlags
	cmdutil.OutputFlags

	yes bool
}

func (c *ForceClose) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("force-close", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	fset.BoolVar(&c.yes, "yes", false, "confirms closing all positions")
	return "force-close", fset, cli.CmdFunc(c.run)
}

func (c *ForceClose) Purpose() string {
	return "Closes all open positions at market price"
}

func (c *ForceClose) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	if !c.yes {
		return fmt.Errorf("closing all positions needs the -yes flag")
	}
	client, err := c.ClientFlags.Client()
	if err != nil {
		return err
	}
	resp, err := client.ForceClose(ctx)
	if err != nil {
		return fmt.Errorf("could not close positions: %w", err)
	}
	if c.JSON {
		return cmdutil.PrintJSON(stdout, resp)
	}
	if err := cmdutil.Result(stdout, resp.OK, resp.Message, resp.Error); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "closed %d positions\n", resp.Closed)
	return nil
}
