// Copyright (c) 2026 BVK Chaitanya

package market

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/bvk/tradedash/api"
	"github.com/bvk/tradedash/format"
	"github.com/bvk/tradedash/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Indices struct {
	cmdutil.ClientFlags
	cmdutil.OutputFlags
}

func (c *Indices) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("indices", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	return "indices", fset, cli.CmdFunc(c.run)
}

func (c *Indices) Purpose() string {
	return "Prints the market index and currency quotes"
}

func (c *Indices) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	client, err := c.ClientFlags.Client()
	if err != nil {
		return err
	}
	quotes, err := client.Indices(ctx)
	if err != nil {
		return fmt.Errorf("could not fetch indices: %w", err)
	}
	if c.JSON {
		return cmdutil.PrintJSON(stdout, quotes)
	}
	printQuotes(stdout, quotes, false)
	return nil
}

type Watchlist struct {
	cmdutil.ClientFlags
	cmdutil.OutputFlags
}

func (c *Watchlist) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("watchlist", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	return "watchlist", fset, cli.CmdFunc(c.run)
}

func (c *Watchlist) Purpose() string {
	return "Prints quotes for the watched symbols"
}

func (c *Watchlist) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	client, err := c.ClientFlags.Client()
	if err != nil {
		return err
	}
	quotes, err := client.Watchlist(ctx)
	if err != nil {
		return fmt.Errorf("could not fetch watchlist: %w", err)
	}
	if c.JSON {
		return cmdutil.PrintJSON(stdout, quotes)
	}
	printQuotes(stdout, quotes, true)
	return nil
}

func printQuotes(w io.Writer, quotes []*api.Quote, volume bool) {
	tw := cmdutil.NewTable(w)
	if volume {
		fmt.Fprintf(tw, "Code\tName\tPrice\tChange\tChange%%\tVolume\t\n")
	} else {
		fmt.Fprintf(tw, "Code\tName\tPrice\tChange\tChange%%\t\n")
	}
	for _, q := range quotes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t", q.Code, q.Name, format.Number(q.Price), format.PL(q.Change), format.Percent(q.ChangePct))
		if volume {
			fmt.Fprintf(tw, "%s\t", format.Number(q.Volume))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}
