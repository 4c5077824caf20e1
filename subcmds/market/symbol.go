// Copyright (c) 2026 BVK Chaitanya

package market

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/tradedash/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Symbol struct {
	cmdutil.ClientFlags
	cmdutil.OutputFlags
}

func (c *Symbol) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("symbol", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	return "symbol", fset, cli.CmdFunc(c.run)
}

func (c *Symbol) Purpose() string {
	return "Prints the name and exchange of a symbol"
}

func (c *Symbol) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	if len(args) != 1 {
		return fmt.Errorf("this command takes one (symbol code) argument")
	}
	client, err := c.ClientFlags.Client()
	if err != nil {
		return err
	}
	resp, err := client.SymbolInfo(ctx, args[0])
	if err != nil {
		return fmt.Errorf("could not fetch symbol %q: %w", args[0], err)
	}
	if c.JSON {
		return cmdutil.PrintJSON(stdout, resp)
	}
	if len(resp.Error) != 0 {
		return fmt.Errorf("server could not fetch symbol %q: %s", args[0], resp.Error)
	}
	name := resp.DisplayName
	if len(name) == 0 {
		name = resp.SymbolName
	}
	fmt.Fprintf(stdout, "%s\t%s\t%s\n", resp.Symbol, name, resp.Exchange)
	return nil
}
