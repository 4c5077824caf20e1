// Copyright (c) 2026 BVK Chaitanya

package format

import "strings"

// Time returns the "HH:MM:SS" part of an ISO 8601 timestamp. Timestamp is
// assumed to be in the desired timezone already; any offset is ignored.
// Returns "--:--:--" when the timestamp is empty.
func Time(iso string) string {
	if len(iso) == 0 {
		return "--:--:--"
	}
	return slice(iso, 11, 19)
}

// DateTime returns the "MM-DD HH:MM" part of an ISO 8601 timestamp. Returns
// "-" when the timestamp is empty.
func DateTime(iso string) string {
	if len(iso) == 0 {
		return none
	}
	return strings.Replace(slice(iso, 5, 16), "T", " ", 1)
}

// slice returns characters in [begin, end) range, clamped to the length of s.
func slice(s string, begin, end int) string {
	rs := []rune(s)
	if begin > len(rs) {
		begin = len(rs)
	}
	if end > len(rs) {
		end = len(rs)
	}
	return string(rs[begin:end])
}
