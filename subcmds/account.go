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

type Account struct {
	cmdutil.ClientFlags
	cmdutil.OutputFlags
}

func (c *Account) Command() (string, *flag.FlagSet, cli.CmdFunc) {
	fset := flag.NewFlagSet("account", flag.ContinueOnError)
	c.ClientFlags.SetFlags(fset)
	c.OutputFlags.SetFlags(fset)
	return "account", fset, cli.CmdFunc(c.run)
}

func (c *Account) Purpose() string {
	return "Prints the wallet balances, positions and orders"
}

func (c *Account) run(ctx context.Context, args []string) error {
	stdout := cli.Stdout(ctx)
	if len(args) != 0 {
		return fmt.Errorf("this command takes no arguments")
	}
	client, err := c.ClientFlags.Client()
	if err != nil {
		return err
	}
	resp, err := client.Account(ctx)
	if err != nil {
		return fmt.Errorf("could not fetch account: %w", err)
	}
	if c.JSON {
		return cmdutil.PrintJSON(stdout, resp)
	}
	if len(resp.Error) != 0 {
		return fmt.Errorf("server could not fetch account: %s", resp.Error)
	}
	printAccount(stdout, resp)
	return nil
}

func printAccount(w io.Writer, a *api.AccountResponse) {
	if v := a.WalletCash; v != nil {
		fmt.Fprintf(w, "Cash Wallet:    %s\n", format.Currency(v.StockAccountWallet))
	}
	if v := a.WalletMargin; v != nil {
		fmt.Fprintf(w, "Margin Wallet:  %s\n", format.Currency(v.MarginAccountWallet))
		fmt.Fprintf(w, "Deposit Rate:   %s\n", format.Percent(v.DepositkeepRate))
	}
	fmt.Fprintf(w, "Positions P/L:  %s\n", format.PL(a.PositionsPLTotal))

	if len(a.Positions) > 0 {
		fmt.Fprintln(w)
		printPositions(w, a.Positions)
	}
	if len(a.Orders) > 0 {
		fmt.Fprintln(w)
		printOrders(w, a.Orders)
	}
}

func printOrders(w io.Writer, orders []*api.Order) {
	tw := cmdutil.NewTable(w)
	fmt.Fprintf(tw, "ID\tTime\tSymbol\tSide\tState\tQty\tFilled\tPrice\t\n")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			o.ID, format.DateTime(o.RecvTime), o.Symbol, format.SideLabel(o.Side),
			format.OrderStateLabel(o.State), format.Number(o.OrderQty), format.Number(o.CumQty),
			format.Currency(o.Price))
	}
	tw.Flush()
}
