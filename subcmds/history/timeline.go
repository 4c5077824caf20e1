// Copyright (c) 2026 BVK Chaitanya

package history

import (
	"context"
	"flag"
	"fmt"

	"github.com/bvk/tradedash/format"
	"github.com/bvk/tradedash/subcmds/cmdutil"
	"github.com/visvasity/cli"
)

type Timeline struct {
	cmdutil.ClientFlags
	cmdutil.OutputFlags

	date string
}

func (c *Timeline) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("timeline", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	fset.StringVar(&c.date, "date", "", "trading day in YYYY-MM-DD format (default today)")
	return "timeline", fset, cli.CmdFunc(c.run)
}

func (c *Timeline) Purpose() string {
	return "Prints the profit/loss snapshots of a trading day"
}

func (c *Timeline) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	client, err := c.ClientFlags.Client()
	if err != nil {
		return err
	}
	points, err := client.TradeTimeline(ctx, c.date)
	if err != nil {
		return fmt.Errorf("could not fetch trade timeline: %w", err)
	}
	if c.JSON {
		return cmdutil.PrintJSON(stdout, points)
	}
	tw := cmdutil.NewTable(stdout)
	fmt.Fprintf(tw, "Time\tP/L\tPositions\t\n")
	for _, p := range points {
		fmt.Fprintf(tw, "%s\t%s\t%d\t\n", format.Time(p.Timestamp), format.PL(p.PLTotal), p.PositionsCount)
	}
	tw.Flush()
	return nil
}
