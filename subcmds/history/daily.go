// Copyright (c) 2026 BVK Chaitanya

package history

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/tradedash/api"
	"github.com/bvk/tradedash/format"
	"github.com/bvk/tradedash/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Daily struct {
	cmdutil.ClientFlags
	cmdutil.OutputFlags

	days int
}

func (c *Daily) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("daily", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	fset.IntVar(&c.days, "days", api.DefaultHistoryDays, "number of recent days")
	return "daily", fset, cli.CmdFunc(c.run)
}

func (c *Daily) Purpose() string {
	return "Prints per-day profit/loss summaries"
}

func (c *Daily) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	client, err := c.ClientFlags.Client()
	if err != nil {
		return err
	}
	days, err := client.TradeDaily(ctx, c.days)
	if err != nil {
		return fmt.Errorf("could not fetch daily trade history: %w", err)
	}
	if c.JSON {
		return cmdutil.PrintJSON(stdout, days)
	}
	tw := cmdutil.NewTable(stdout)
	fmt.Fprintf(tw, "Date\tSymbol\tP/L\tCash\tMargin\tPositions\t\n")
	for _, d := range days {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t\n", d.Date, d.Symbol, format.PL(d.PLTotal),
			format.Currency(d.WalletCash), format.Currency(d.WalletMargin), d.PositionsCount)
	}
	tw.Flush()
	return nil
}
