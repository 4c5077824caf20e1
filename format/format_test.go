// Copyright (c) 2026 BVK Chaitanya

package format

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func num(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

var null = decimal.NullDecimal{}

func TestNumber(t *testing.T) {
	testCases := []struct {
		in   decimal.NullDecimal
		want string
	}{
		{null, "-"},
		{num("0"), "0"},
		{num("999"), "999"},
		{num("1000"), "1,000"},
		{num("1234567"), "1,234,567"},
		{num("-1234567"), "-1,234,567"},
		{num("1.5"), "1.5"},
		{num("1234.5678"), "1,234.568"},
		{num("0.1000"), "0.1"},
		{num("-0.0001"), "-0"},
	}
	for _, tc := range testCases {
		if got := Number(tc.in); got != tc.want {
			t.Fatalf("Number(%v): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestCurrency(t *testing.T) {
	if got := Currency(num("1000")); got != "¥1,000" {
		t.Fatalf("want ¥1,000, got %q", got)
	}
	if got := Currency(num("-2500")); got != "¥-2,500" {
		t.Fatalf("want ¥-2,500, got %q", got)
	}
	if got := Currency(null); got != "-" {
		t.Fatalf("want -, got %q", got)
	}
}

func TestPL(t *testing.T) {
	testCases := []struct {
		in   decimal.NullDecimal
		want string
	}{
		{null, "-"},
		{num("500"), "+500"},
		{num("-500"), "-500"},
		{num("0"), "+0"},
		{num("12345.6"), "+12,345.6"},
	}
	for _, tc := range testCases {
		if got := PL(tc.in); got != tc.want {
			t.Fatalf("PL(%v): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestPercent(t *testing.T) {
	testCases := []struct {
		in   decimal.NullDecimal
		want string
	}{
		{null, "-"},
		{num("3.14159"), "+3.14%"},
		{num("-2"), "-2.00%"},
		{num("0"), "+0.00%"},
		{num("-0.001"), "-0.00%"},
		{num("12.345"), "+12.35%"},
	}
	for _, tc := range testCases {
		if got := Percent(tc.in); got != tc.want {
			t.Fatalf("Percent(%v): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestTime(t *testing.T) {
	testCases := []struct {
		fn   func(string) string
		in   string
		want string
	}{
		{Time, "2024-01-15T09:30:45Z", "09:30:45"},
		{Time, "2024-01-15T09:30:45.123+09:00", "09:30:45"},
		{Time, "", "--:--:--"},
		{Time, "2024-01-15T09:3", "09:3"},
		{Time, "2024", ""},
		{DateTime, "2024-01-15T09:30:45Z", "01-15 09:30"},
		{DateTime, "2024-01-15 09:30:45", "01-15 09:30"},
		{DateTime, "", "-"},
		{DateTime, "2024-01", "01"},
	}
	for i, tc := range testCases {
		if got := tc.fn(tc.in); got != tc.want {
			t.Fatalf("%d: want %q, got %q", i, tc.want, got)
		}
	}
}

func TestClasses(t *testing.T) {
	if v := PLClass(num("0")); v != "neutral" {
		t.Fatalf("want neutral, got %s", v)
	}
	if v := PLClass(num("5")); v != "profit" {
		t.Fatalf("want profit, got %s", v)
	}
	if v := PLClass(num("-5")); v != "loss" {
		t.Fatalf("want loss, got %s", v)
	}
	if v := PLClass(null); v != "neutral" {
		t.Fatalf("want neutral, got %s", v)
	}

	if v := SideLabel("2"); v != "BUY" {
		t.Fatalf("want BUY, got %s", v)
	}
	if v := SideLabel("1"); v != "SELL" {
		t.Fatalf("want SELL, got %s", v)
	}
	if v := SideLabel(""); v != "SELL" {
		t.Fatalf("want SELL, got %s", v)
	}
	if v := SideClass("2"); v != "buy" {
		t.Fatalf("want buy, got %s", v)
	}
	if v := SideClass("x"); v != "sell" {
		t.Fatalf("want sell, got %s", v)
	}

	labels := []string{"待機", "処理中", "処理済", "訂正取消中", "終了"}
	classes := []string{"warning", "accent", "profit", "warning", "neutral"}
	for i := range labels {
		if v := OrderStateLabel(i + 1); v != labels[i] {
			t.Fatalf("want %s, got %s", labels[i], v)
		}
		if v := OrderStateClass(i + 1); v != classes[i] {
			t.Fatalf("want %s, got %s", classes[i], v)
		}
	}
	if v := OrderStateLabel(99); v != "99" {
		t.Fatalf("want 99, got %s", v)
	}
	if v := OrderStateLabel(0); v != "0" {
		t.Fatalf("want 0, got %s", v)
	}
	if v := OrderStateClass(99); v != "neutral" {
		t.Fatalf("want neutral, got %s", v)
	}
}

func TestValue(t *testing.T) {
	testCases := []struct {
		in   any
		want string
	}{
		{nil, "-"},
		{float64(1234567), "1,234,567"},
		{float64(-0.5), "-0.5"},
		{math.NaN(), "NaN"},
		{math.Inf(-1), "-∞"},
		{json.Number("1000"), "1,000"},
		{int64(42), "42"},
		{"2500.25", "2,500.25"},
		{"N/A", "N/A"},
		{true, "true"},
		{decimal.RequireFromString("1000000"), "1,000,000"},
		{null, "-"},
	}
	for _, tc := range testCases {
		if got := Value(tc.in); got != tc.want {
			t.Fatalf("Value(%#v): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestPure(t *testing.T) {
	v := num("-98765.4321")
	a := []string{Number(v), Currency(v), PL(v), Percent(v), PLClass(v)}
	b := []string{Number(v), Currency(v), PL(v), Percent(v), PLClass(v)}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("want same output for same input, got %q and %q", a[i], b[i])
		}
	}
	if a[0] != "-98,765.432" {
		t.Fatalf("want -98,765.432, got %q", a[0])
	}
}
