// Copyright (c) 2026 BVK Chaitanya

package api

import "github.com/shopspring/decimal"

const AccountPath = "/account"

type WalletCash struct {
	StockAccountWallet      decimal.NullDecimal `json:"StockAccountWallet"`
	AuJbnStockAccountWallet decimal.NullDecimal `json:"AuJbnStockAccountWallet"`
}

type WalletMargin struct {
	MarginAccountWallet          decimal.NullDecimal `json:"MarginAccountWallet"`
	DepositkeepRate              decimal.NullDecimal `json:"DepositkeepRate"`
	ConsignmentDepositRate       decimal.NullDecimal `json:"ConsignmentDepositRate"`
	CashOfConsignmentDepositRate decimal.NullDecimal `json:"CashOfConsignmentDepositRate"`
}

// Order is a working or completed order as reported by the broker.
type Order struct {
	ID string `json:"ID"`

	// State and OrderState hold the broker's order state codes (1-5).
	State      int `json:"State"`
	OrderState int `json:"OrderState"`

	Symbol     string `json:"Symbol"`
	SymbolName string `json:"SymbolName"`

	// Side is "2" for buy orders and "1" for sell orders.
	Side string `json:"Side"`

	OrderQty decimal.NullDecimal `json:"OrderQty"`
	CumQty   decimal.NullDecimal `json:"CumQty"`
	Price    decimal.NullDecimal `json:"Price"`

	RecvTime string `json:"RecvTime"`
}

type AccountResponse struct {
	WalletCash   *WalletCash   `json:"wallet_cash"`
	WalletMargin *WalletMargin `json:"wallet_margin"`

	Positions []*Position `json:"positions"`
	Orders    []*Order    `json:"orders"`

	PositionsPLTotal decimal.NullDecimal `json:"positions_pl_total"`

	// Error is non-empty when the server could not reach the broker.
	Error string `json:"error,omitempty"`
}
