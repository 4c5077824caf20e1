// Copyright (c) 2026 BVK Chaitanya

package format

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Style class names used by the renderers.
const (
	ClassProfit  = "profit"
	ClassLoss    = "loss"
	ClassNeutral = "neutral"
	ClassBuy     = "buy"
	ClassSell    = "sell"
	ClassWarning = "warning"
	ClassAccent  = "accent"
)

// PLClass returns the style class for a profit or loss amount.
func PLClass(v decimal.NullDecimal) string {
	if !v.Valid {
		return ClassNeutral
	}
	switch v.Decimal.Sign() {
	case 1:
		return ClassProfit
	case -1:
		return ClassLoss
	}
	return ClassNeutral
}

// Side is the broker's side code for orders and positions.
type Side string

const (
	SideSell Side = "1"
	SideBuy  Side = "2"
)

// String returns "BUY" for buy side and "SELL" for everything else.
func (s Side) String() string {
	if s == SideBuy {
		return "BUY"
	}
	return "SELL"
}

func (s Side) Class() string {
	if s == SideBuy {
		return ClassBuy
	}
	return ClassSell
}

func SideLabel(code string) string {
	return Side(code).String()
}

func SideClass(code string) string {
	return Side(code).Class()
}

// OrderState is the broker's order state code.
type OrderState int

const (
	OrderStateWaiting    OrderState = 1
	OrderStateProcessing OrderState = 2
	OrderStateProcessed  OrderState = 3
	OrderStateAmending   OrderState = 4
	OrderStateFinished   OrderState = 5
)

var orderStateLabels = map[OrderState]string{
	OrderStateWaiting:    "待機",
	OrderStateProcessing: "処理中",
	OrderStateProcessed:  "処理済",
	OrderStateAmending:   "訂正取消中",
	OrderStateFinished:   "終了",
}

var orderStateClasses = map[OrderState]string{
	OrderStateWaiting:    ClassWarning,
	OrderStateProcessing: ClassAccent,
	OrderStateProcessed:  ClassProfit,
	OrderStateAmending:   ClassWarning,
	OrderStateFinished:   ClassNeutral,
}

// String returns the Japanese label of a known state or the decimal code
// otherwise.
func (s OrderState) String() string {
	if v, ok := orderStateLabels[s]; ok {
		return v
	}
	return strconv.Itoa(int(s))
}

func (s OrderState) Class() string {
	if v, ok := orderStateClasses[s]; ok {
		return v
	}
	return ClassNeutral
}

func OrderStateLabel(code int) string {
	return OrderState(code).String()
}

func OrderStateClass(code int) string {
	return OrderState(code).Class()
}
