// Copyright (c) 2026 BVK Chaitanya

package cmdutil

import (
	"strings"
	"testing"
)

func TestResult(t *testing.T) {
	testCases := []struct {
		ok      bool
		message string
		errmsg  string

		wantOut string
		wantErr string
	}{
		{true, "started", "", "started\n", ""},
		{true, "", "", "OK\n", ""},
		{false, "already running", "", "", "already running"},
		{false, "ignored", "no session", "", "no session"},
		{false, "", "", "", "server rejected the request"},
	}
	for _, tc := range testCases {
		var sb strings.Builder
		err := Result(&sb, tc.ok, tc.message, tc.errmsg)
		if got := sb.String(); got != tc.wantOut {
			t.Fatalf("Result(%v, %q, %q): want output %q, got %q", tc.ok, tc.message, tc.errmsg, tc.wantOut, got)
		}
		if len(tc.wantErr) == 0 {
			if err != nil {
				t.Fatalf("Result(%v, %q, %q): want nil error, got %v", tc.ok, tc.message, tc.errmsg, err)
			}
			continue
		}
		if err == nil || err.Error() != tc.wantErr {
			t.Fatalf("Result(%v, %q, %q): want error %q, got %v", tc.ok, tc.message, tc.errmsg, tc.wantErr, err)
		}
	}
}

func TestPrintJSON(t *testing.T) {
	var sb strings.Builder
	if err := PrintJSON(&sb, map[string]int{"closed": 2}); err != nil {
		t.Fatal(err)
	}
	if want := "{\n  \"closed\": 2\n}\n"; sb.String() != want {
		t.Fatalf("want %q, got %q", want, sb.String())
	}
}
