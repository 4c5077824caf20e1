// Copyright (c) 2026 BVK Chaitanya

package subcmds

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

type Status struct {
	cmdutil.ClientFlags
	cmdutil.OutputFlags
}

func (c *Status) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("status", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	return "status", fset, cli.CmdFunc(c.run)
}

func (c *Status) Purpose() string {
	return "Prints the trading runner state and open positions"
}

func (c *Status) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	client, err := c.ClientFlags.Client()
	if err != nil {
		return err
	}
	resp, err := client.Status(ctx)
	if err != nil {
		return fmt.Errorf("could not fetch status: %w", err)
	}
	if c.JSON {
		return cmdutil.PrintJSON(stdout, resp)
	}
	printStatus(stdout, resp)
	return nil
}

func printStatus(w io.Writer, s *api.StatusResponse) {
	state := "STOPPED"
	if s.Running {
		state = "RUNNING"
	}
	lastUpdate, lastError := "", "-"
	if s.LastUpdate != nil {
		lastUpdate = *s.LastUpdate
	}
	if s.LastError != nil && len(*s.LastError) != 0 {
		lastError = *s.LastError
	}

	fmt.Fprintf(w, "State:       %s\n", state)
	fmt.Fprintf(w, "Mode:        %s\n", s.Mode)
	fmt.Fprintf(w, "Symbol:      %s\n", s.Symbol)
	fmt.Fprintf(w, "Quantity:    %d\n", s.Quantity)
	fmt.Fprintf(w, "Last Price:  %s\n", format.Currency(s.LastPrice))
	fmt.Fprintf(w, "Last Update: %s\n", format.Time(lastUpdate))
	fmt.Fprintf(w, "Last Error:  %s\n", lastError)
	if sig := s.LastSignal; sig != nil {
		fmt.Fprintf(w, "Signal:      buy=%d sell=%d buy-exit=%d sell-exit=%d emergency-buy-exit=%d emergency-sell-exit=%d\n",
			sig.Buy, sig.Sell, sig.BuyExit, sig.SellExit, sig.EmergencyBuyExit, sig.EmergencySellExit)
	}

	if len(s.Positions) > 0 {
		fmt.Fprintln(w)
		printPositions(w, s.Positions)
	}
}

func printPositions(w io.Writer, positions []*api.Position) {
	tw := cmdutil.NewTable(w)
	fmt.Fprintf(tw, "Symbol\tName\tSide\tQty\tPrice\tCurrent\tValuation\tP/L\tRate\t\n")
	for _, p := range positions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			p.Symbol, p.SymbolName, format.SideLabel(p.Side),
			format.Number(p.LeavesQty), format.Currency(p.Price), format.Currency(p.CurrentPrice),
			format.Currency(p.Valuation), format.PL(p.ProfitLoss), format.Percent(p.ProfitLossRate))
	}
	tw.Flush()
}
