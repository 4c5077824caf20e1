// Copyright (c) 2026 BVK Chaitanya

package api

import "github.com/shopspring/decimal"

const StatusPath = "/status"

// Signal holds the signal counters from the most recent strategy evaluation.
type Signal struct {
	Timestamp string `json:"timestamp,omitempty"`

	Buy  int `json:"buy"`
	Sell int `json:"sell"`

	BuyExit  int `json:"buy_exit"`
	SellExit int `json:"sell_exit"`

	EmergencyBuyExit  int `json:"emergency_buy_exit"`
	EmergencySellExit int `json:"emergency_sell_exit"`
}

// Position is an open position as reported by the broker. Field names follow
// the broker's wire format.
type Position struct {
	ExecutionID string `json:"ExecutionID"`
	HoldID      string `json:"HoldID,omitempty"`

	Symbol       string `json:"Symbol"`
	SymbolName   string `json:"SymbolName"`
	ExchangeName string `json:"ExchangeName,omitempty"`

	// Side is "2" for buy positions and "1" for sell positions.
	Side string `json:"Side"`

	LeavesQty decimal.NullDecimal `json:"LeavesQty"`
	HoldQty   decimal.NullDecimal `json:"HoldQty"`

	Price        decimal.NullDecimal `json:"Price"`
	CurrentPrice decimal.NullDecimal `json:"CurrentPrice"`
	Valuation    decimal.NullDecimal `json:"Valuation"`

	ProfitLoss     decimal.NullDecimal `json:"ProfitLoss"`
	ProfitLossRate decimal.NullDecimal `json:"ProfitLossRate"`
}

type StatusResponse struct {
	Running bool `json:"running"`

	Symbol   string `json:"symbol"`
	Quantity int    `json:"quantity"`
	Mode     string `json:"mode"`

	LastPrice  decimal.NullDecimal `json:"last_price"`
	LastSignal *Signal             `json:"last_signal"`
	LastError  *string             `json:"last_error"`
	LastUpdate *string             `json:"last_update"`

	Positions []*Position `json:"positions"`
}
