// Copyright (c) 2026 BVK Chaitanya

package format

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Value formats a loosely typed JSON value like Number. Nil is shown as "-".
// Values that are not numbers, or strings that don't parse as numbers, are
// shown in their plain string form.
func Value(v any) string {
	switch x := v.(type) {
	case nil:
		return none
	case decimal.Decimal:
		return groupDigits(x)
	case *decimal.Decimal:
		if x == nil {
			return none
		}
		return groupDigits(*x)
	case decimal.NullDecimal:
		return Number(x)
	case float64:
		return formatFloat(x)
	case float32:
		return formatFloat(float64(x))
	case int:
		return groupDigits(decimal.NewFromInt(int64(x)))
	case int32:
		return groupDigits(decimal.NewFromInt32(x))
	case int64:
		return groupDigits(decimal.NewFromInt(x))
	case json.Number:
		return formatString(string(x))
	case string:
		return formatString(x)
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "∞"
	case math.IsInf(f, -1):
		return "-∞"
	}
	return groupDigits(decimal.NewFromFloat(f))
}

func formatString(s string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return s
	}
	return groupDigits(d)
}
