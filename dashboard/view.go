// Copyright (c) 2026 BVK Chaitanya

package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bvk/tradedash/api"
	"github.com/bvk/tradedash/format"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-multierror"
)

// Render returns the dashboard text for a snapshot. Fetch error, if any, is
// shown in the status line below the last good data.
func Render(title string, s *Snapshot, err error) string {
	var sb strings.Builder

	updated := "--:--:--"
	if s != nil && !s.Time.IsZero() {
		updated = s.Time.Format("15:04:05")
	}
	sb.WriteString(titleStyle.Render("tradedash " + title))
	sb.WriteString(dimStyle.Render("  updated " + updated))
	sb.WriteString("\n\n")

	if s == nil {
		sb.WriteString(dimStyle.Render("loading..."))
		sb.WriteString("\n")
	} else {
		top := lipgloss.JoinHorizontal(lipgloss.Top,
			boxStyle.Render(renderRunner(s.Status, s.Schedule)),
			boxStyle.Render(renderAccount(s.Account)),
			boxStyle.Render(renderQuotes("Indices", s.Indices)),
		)
		sb.WriteString(top)
		sb.WriteString("\n")

		var positions []*api.Position
		if s.Account != nil {
			positions = s.Account.Positions
		} else if s.Status != nil {
			positions = s.Status.Positions
		}
		if len(positions) > 0 {
			sb.WriteString(renderPositions(positions))
			sb.WriteString("\n")
		}
		if s.Account != nil && len(s.Account.Orders) > 0 {
			sb.WriteString(renderOrders(s.Account.Orders))
			sb.WriteString("\n")
		}
		if len(s.Watchlist) > 0 {
			sb.WriteString(renderQuotes("Watchlist", s.Watchlist))
			sb.WriteString("\n")
		}
		if len(s.Logs) > 0 {
			sb.WriteString(headerStyle.Render("Logs"))
			sb.WriteString("\n")
			for _, line := range s.Logs {
				sb.WriteString(dimStyle.Render(line))
				sb.WriteString("\n")
			}
		}
	}

	sb.WriteString("\n")
	if err != nil {
		sb.WriteString(errorStyle.Render(errorLine(err)))
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render("r: refresh  q: quit"))
	return sb.String()
}

func errorLine(err error) string {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		msgs := make([]string, 0, len(merr.Errors))
		for _, e := range merr.Errors {
			msgs = append(msgs, e.Error())
		}
		return "error: " + strings.Join(msgs, "; ")
	}
	return "error: " + err.Error()
}

func renderRunner(st *api.StatusResponse, sc *api.ScheduleResponse) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Runner"))
	sb.WriteString("\n")
	if st == nil {
		sb.WriteString(dimStyle.Render("unavailable"))
		return sb.String()
	}

	state := styled(format.ClassNeutral, "STOPPED")
	if st.Running {
		state = styled(format.ClassProfit, "RUNNING")
	}
	fmt.Fprintf(&sb, "State    %s\n", state)
	fmt.Fprintf(&sb, "Mode     %s\n", st.Mode)
	fmt.Fprintf(&sb, "Symbol   %s x %d\n", st.Symbol, st.Quantity)
	fmt.Fprintf(&sb, "Price    %s\n", format.Currency(st.LastPrice))
	lastUpdate := ""
	if st.LastUpdate != nil {
		lastUpdate = *st.LastUpdate
	}
	fmt.Fprintf(&sb, "Updated  %s", format.Time(lastUpdate))
	if sig := st.LastSignal; sig != nil {
		fmt.Fprintf(&sb, "\nSignal   %s %s",
			styled(format.ClassBuy, fmt.Sprintf("B%d/%d", sig.Buy, sig.BuyExit)),
			styled(format.ClassSell, fmt.Sprintf("S%d/%d", sig.Sell, sig.SellExit)))
	}
	if sc != nil && sc.Scheduled {
		fmt.Fprintf(&sb, "\nSchedule %s", styled(format.ClassAccent, sc.Time))
	}
	if st.LastError != nil && len(*st.LastError) != 0 {
		fmt.Fprintf(&sb, "\n%s", styled(format.ClassWarning, *st.LastError))
	}
	return sb.String()
}

func renderAccount(a *api.AccountResponse) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Account"))
	sb.WriteString("\n")
	if a == nil {
		sb.WriteString(dimStyle.Render("unavailable"))
		return sb.String()
	}
	if len(a.Error) != 0 {
		sb.WriteString(styled(format.ClassWarning, a.Error))
		return sb.String()
	}
	if v := a.WalletCash; v != nil {
		fmt.Fprintf(&sb, "Cash     %s\n", format.Currency(v.StockAccountWallet))
	}
	if v := a.WalletMargin; v != nil {
		fmt.Fprintf(&sb, "Margin   %s\n", format.Currency(v.MarginAccountWallet))
	}
	fmt.Fprintf(&sb, "P/L      %s", styled(format.PLClass(a.PositionsPLTotal), format.PL(a.PositionsPLTotal)))
	return sb.String()
}

func renderQuotes(title string, quotes []*api.Quote) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title))
	if len(quotes) == 0 {
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render("unavailable"))
		return sb.String()
	}
	for _, q := range quotes {
		class := format.PLClass(q.Change)
		fmt.Fprintf(&sb, "\n%-12s %14s %s %s", q.Name, format.Number(q.Price),
			styled(class, fmt.Sprintf("%10s", format.PL(q.Change))),
			styled(class, fmt.Sprintf("%8s", format.Percent(q.ChangePct))))
	}
	return sb.String()
}

func renderPositions(positions []*api.Position) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-8s %-4s %8s %12s %12s %12s %8s", "Symbol", "Side", "Qty", "Price", "Current", "P/L", "Rate")))
	for _, p := range positions {
		class := format.PLClass(p.ProfitLoss)
		fmt.Fprintf(&sb, "\n%-8s %s %8s %12s %12s %s %s", p.Symbol,
			styled(format.SideClass(p.Side), fmt.Sprintf("%-4s", format.SideLabel(p.Side))),
			format.Number(p.LeavesQty), format.Number(p.Price), format.Number(p.CurrentPrice),
			styled(class, fmt.Sprintf("%12s", format.PL(p.ProfitLoss))),
			styled(class, fmt.Sprintf("%8s", format.Percent(p.ProfitLossRate))))
	}
	return sb.String()
}

func renderOrders(orders []*api.Order) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-11s %-8s %-4s %-10s %8s %8s %12s", "Time", "Symbol", "Side", "State", "Qty", "Filled", "Price")))
	for _, o := range orders {
		fmt.Fprintf(&sb, "\n%-11s %-8s %s %s %8s %8s %12s", format.DateTime(o.RecvTime), o.Symbol,
			styled(format.SideClass(o.Side), fmt.Sprintf("%-4s", format.SideLabel(o.Side))),
			styled(format.OrderStateClass(o.State), format.OrderStateLabel(o.State)),
			format.Number(o.OrderQty), format.Number(o.CumQty), format.Number(o.Price))
	}
	return sb.String()
}
