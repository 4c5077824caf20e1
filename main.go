// Copyright (c) 2026 BVK Chaitanya

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bvk/tradedash/subcmds"
	"github.com/bvk/tradedash/subcmds/history"
	"github.com/bvk/tradedash/subcmds/market"
	"github.com/bvk/tradedash/subcmds/schedule"
	"github.com/bvk/tradedash/subcmds/trade"
	"github.com/visvasity/cli"
)

func main() {
	tradeCmds := []cli.Command{
		new(trade.Start),
		new(trade.Stop),
		new(trade.ForceClose),
	}

	scheduleCmds := []cli.Command{
		new(schedule.Get),
		new(schedule.Start),
		new(schedule.Cancel),
	}

	marketCmds := []cli.Command{
		new(market.Symbol),
		new(market.Board),
		new(market.Indices),
		new(market.Watchlist),
	}

	historyCmds := []cli.Command{
		new(history.Timeline),
		new(history.Daily),
		new(history.Stats),
	}

	cmds := []cli.Command{
		new(subcmds.Health),
		new(subcmds.Status),
		new(subcmds.Account),
		new(subcmds.Logs),
		new(subcmds.Config),
		new(subcmds.Secrets),
		new(subcmds.Watch),
		cli.NewGroup("trade", "Start or stop automated trading", tradeCmds...),
		cli.NewGroup("schedule", "Manage the scheduled trading start", scheduleCmds...),
		cli.NewGroup("market", "View market quotes and symbols", marketCmds...),
		cli.NewGroup("history", "View the trade history", historyCmds...),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Run(ctx, cmds, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
