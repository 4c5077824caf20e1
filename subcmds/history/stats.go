// Copyright (c) 2026 BVK Chaitanya

package history

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/tradedash/api"
	"github.com/bvk/tradedash/format"
	"github.com/bvk/tradedash/subcmds/cmdutil"
	"github.com/shopspring/decimal"
	"github.com/visvasity/cli"
)

type Stats struct {
	cmdutil.ClientFlags
	cmdutil.OutputFlags

	days int
}

func (c *Stats) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("stats", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	fset.IntVar(&c.days, "days", api.DefaultHistoryDays, "number of recent days")
	return "stats", fset, cli.CmdFunc(c.run)
}

func (c *Stats) Purpose() string {
	return "Prints the win/loss statistics for recent days"
}

func (c *Stats) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	client, err := c.ClientFlags.Client()
	if err != nil {
		return err
	}
	s, err := client.TradeStats(ctx, c.days)
	if err != nil {
		return fmt.Errorf("could not fetch trade stats: %w", err)
	}
	if c.JSON {
		return cmdutil.PrintJSON(stdout, s)
	}

	null := func(d decimal.Decimal) decimal.NullDecimal {
		return decimal.NewNullDecimal(d)
	}
	fmt.Fprintf(stdout, "Period:        %d days\n", s.PeriodDays)
	fmt.Fprintf(stdout, "Trading Days:  %d (%d wins, %d losses)\n", s.TradingDays, s.WinDays, s.LossDays)
	fmt.Fprintf(stdout, "Orders:        %d\n", s.TotalOrders)
	fmt.Fprintf(stdout, "Win Rate:      %s%%\n", s.WinRate.StringFixed(1))
	fmt.Fprintf(stdout, "Total P/L:     %s\n", format.PL(null(s.TotalPL)))
	fmt.Fprintf(stdout, "Average P/L:   %s\n", format.PL(null(s.AvgDailyPL)))
	fmt.Fprintf(stdout, "Best Day:      %s\n", format.PL(null(s.MaxDailyPL)))
	fmt.Fprintf(stdout, "Worst Day:     %s\n", format.PL(null(s.MinDailyPL)))
	return nil
}
