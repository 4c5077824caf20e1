// Copyright (c) 2026 BVK Chaitanya

// Package format converts raw api values into display strings and style
// class names. All functions are pure and never panic; invalid inputs
// degrade to a placeholder string.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MaxFractionDigits is the number of fraction digits kept by Number.
const MaxFractionDigits = 3

const none = "-"

var printer = message.NewPrinter(language.Japanese)

// Number formats v with Japanese digit grouping, eg: "1,234,567.891".
// Fraction part is rounded to MaxFractionDigits and trailing zeros are
// dropped. Returns "-" when v is null.
func Number(v decimal.NullDecimal) string {
	if !v.Valid {
		return none
	}
	return groupDigits(v.Decimal)
}

func groupDigits(d decimal.Decimal) string {
	r := d.Round(MaxFractionDigits)
	s := printer.Sprintf("%v", number.Decimal(r.InexactFloat64(), number.MaxFractionDigits(MaxFractionDigits)))
	// Small negative values round to zero, but keep their sign.
	if d.IsNegative() && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}

// Currency formats v as a yen amount, eg: "¥1,000".
func Currency(v decimal.NullDecimal) string {
	if !v.Valid {
		return none
	}
	return "¥" + groupDigits(v.Decimal)
}

// PL formats a profit or loss amount with an explicit "+" sign for zero and
// positive values.
func PL(v decimal.NullDecimal) string {
	if !v.Valid {
		return none
	}
	return sign(v.Decimal) + groupDigits(v.Decimal)
}

// Percent formats v with exactly two fraction digits and an explicit "+"
// sign for zero and positive values, eg: "+3.14%".
func Percent(v decimal.NullDecimal) string {
	if !v.Valid {
		return none
	}
	s := v.Decimal.StringFixed(2)
	if v.Decimal.IsNegative() && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return sign(v.Decimal) + s + "%"
}

func sign(d decimal.Decimal) string {
	if d.Sign() >= 0 {
		return "+"
	}
	return ""
}
