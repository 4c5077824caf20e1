// Copyright (c) 2026 BVK Chaitanya

package api

import "github.com/shopspring/decimal"

const (
	TradeTimelinePath = "/trade-history/timeline"
	TradeDailyPath    = "/trade-history/daily"
	TradeStatsPath    = "/trade-history/stats"
)

// DefaultHistoryDays is the reporting period used by the daily and stats
// requests when the caller doesn't pick one.
const DefaultHistoryDays = 30

// TimelinePoint is a profit/loss snapshot taken during a trading day.
type TimelinePoint struct {
	Timestamp      string              `json:"timestamp"`
	PLTotal        decimal.NullDecimal `json:"pl_total"`
	PositionsCount int                 `json:"positions_count"`
}

// DailyPL summarizes the snapshots of one trading day.
type DailyPL struct {
	Date      string `json:"date"`
	Timestamp string `json:"timestamp"`
	Symbol    string `json:"symbol"`

	PLTotal      decimal.NullDecimal `json:"pl_total"`
	WalletCash   decimal.NullDecimal `json:"wallet_cash"`
	WalletMargin decimal.NullDecimal `json:"wallet_margin"`

	PositionsCount int `json:"positions_count"`
}

type TradeStats struct {
	PeriodDays  int `json:"period_days"`
	TotalOrders int `json:"total_orders"`

	TradingDays int `json:"trading_days"`
	WinDays     int `json:"win_days"`
	LossDays    int `json:"loss_days"`

	WinRate decimal.Decimal `json:"win_rate"`

	TotalPL    decimal.Decimal `json:"total_pl"`
	AvgDailyPL decimal.Decimal `json:"avg_daily_pl"`
	MaxDailyPL decimal.Decimal `json:"max_daily_pl"`
	MinDailyPL decimal.Decimal `json:"min_daily_pl"`
}
