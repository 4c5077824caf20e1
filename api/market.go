// Copyright (c) 2026 BVK Chaitanya

package api

import "github.com/shopspring/decimal"

const (
	// SymbolPath and BoardPath are prefixes; the symbol code is appended as
	// the final path element.
	SymbolPath = "/symbol/"
	BoardPath  = "/board/"

	IndicesPath   = "/indices"
	WatchlistPath = "/watchlist"
)

type SymbolResponse struct {
	Symbol      string `json:"symbol"`
	SymbolName  string `json:"symbol_name"`
	DisplayName string `json:"display_name"`
	Exchange    string `json:"exchange"`

	Error string `json:"error,omitempty"`
}

// BoardResponse holds the quote and best bid/ask of a symbol.
type BoardResponse struct {
	CurrentPrice     decimal.NullDecimal `json:"current_price"`
	CurrentPriceTime string              `json:"current_price_time"`
	PreviousClose    decimal.NullDecimal `json:"previous_close"`

	Change    decimal.NullDecimal `json:"change"`
	ChangePct decimal.NullDecimal `json:"change_pct"`

	OpeningPrice  decimal.NullDecimal `json:"opening_price"`
	HighPrice     decimal.NullDecimal `json:"high_price"`
	LowPrice      decimal.NullDecimal `json:"low_price"`
	TradingVolume decimal.NullDecimal `json:"trading_volume"`
	VWAP          decimal.NullDecimal `json:"vwap"`

	BidPrice decimal.NullDecimal `json:"bid_price"`
	BidQty   decimal.NullDecimal `json:"bid_qty"`
	AskPrice decimal.NullDecimal `json:"ask_price"`
	AskQty   decimal.NullDecimal `json:"ask_qty"`

	Error string `json:"error,omitempty"`
}

// Quote is one row of the indices and watchlist responses. Volume and
// PreviousClose are only filled for watchlist rows.
type Quote struct {
	Code string `json:"code"`
	Name string `json:"name"`

	Price     decimal.NullDecimal `json:"price"`
	Change    decimal.NullDecimal `json:"change"`
	ChangePct decimal.NullDecimal `json:"change_pct"`

	Volume        decimal.NullDecimal `json:"volume"`
	PreviousClose decimal.NullDecimal `json:"previous_close"`
}
