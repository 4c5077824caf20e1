// Copyright (c) 2026 BVK Chaitanya

package market

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/tradedash/format"
	"github.com/bvk/tradedash/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Board struct {
	cmdutil.ClientFlags
	cmdutil.OutputFlags
}

func (c *Board) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("board", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	return "board", fset, cli.CmdFunc(c.run)
}

func (c *Board) Purpose() string {
	return "Prints the quote and best bid/ask of a symbol"
}

func (c *Board) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	if len(args) != 1 {
		return fmt.Errorf("this command takes one (symbol code) argument")
	}
	client, err := c.ClientFlags.Client()
	if err != nil {
		return err
	}
	b, err := client.Board(ctx, args[0])
	if err != nil {
		return fmt.Errorf("could not fetch board for %q: %w", args[0], err)
	}
	if c.JSON {
		return cmdutil.PrintJSON(stdout, b)
	}
	if len(b.Error) != 0 {
		return fmt.Errorf("server could not fetch board for %q: %s", args[0], b.Error)
	}

	fmt.Fprintf(stdout, "Price:   %s (%s %s) at %s\n", format.Currency(b.CurrentPrice), format.PL(b.Change), format.Percent(b.ChangePct), format.Time(b.CurrentPriceTime))
	fmt.Fprintf(stdout, "Open:    %s\n", format.Currency(b.OpeningPrice))
	fmt.Fprintf(stdout, "High:    %s\n", format.Currency(b.HighPrice))
	fmt.Fprintf(stdout, "Low:     %s\n", format.Currency(b.LowPrice))
	fmt.Fprintf(stdout, "Close:   %s\n", format.Currency(b.PreviousClose))
	fmt.Fprintf(stdout, "VWAP:    %s\n", format.Currency(b.VWAP))
	fmt.Fprintf(stdout, "Volume:  %s\n", format.Number(b.TradingVolume))
	fmt.Fprintln(stdout)

	tw := cmdutil.NewTable(stdout)
	fmt.Fprintf(tw, "\tQty\tPrice\t\n")
	fmt.Fprintf(tw, "Ask\t%s\t%s\t\n", format.Number(b.AskQty), format.Currency(b.AskPrice))
	fmt.Fprintf(tw, "Bid\t%s\t%s\t\n", format.Number(b.BidQty), format.Currency(b.BidPrice))
	tw.Flush()
	return nil
}
