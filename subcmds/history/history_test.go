// Copyright (c) 2026 BVK Chaitanya

package history

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/bvk/tradedash/subcmds/cmdutil"
	"github.com/gorilla/mux"
	"github.com/visvasity/cli"
)

type fakeServer struct {
	url string

	mu       sync.Mutex
	requests []string
	bodies   []string
}

func newFakeServer(t *testing.T, routes map[string]string) *fakeServer {
	s := new(fakeServer)
	router := mux.NewRouter()
	sub := router.PathPrefix("/api").Subrouter()
	for route, body := range routes {
		method, path, _ := strings.Cut(route, " ")
		sub.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			data, _ := io.ReadAll(r.Body)
			s.mu.Lock()
			s.requests = append(s.requests, r.Method+" "+r.URL.RequestURI())
			s.bodies = append(s.bodies, string(data))
			s.mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, body)
		}).Methods(method)
	}
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	s.url = srv.URL + "/api"
	return s
}

func (s *fakeServer) take() ([]string, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reqs, bodies := s.requests, s.bodies
	s.requests, s.bodies = nil, nil
	return reqs, bodies
}

func runCommand(t *testing.T, cmd cli.Command, args ...string) (string, error) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(cmdutil.EnvServerURL, "")
	t.Setenv(cmdutil.EnvHTTPTimeout, "")
	t.Setenv(cmdutil.EnvLogDir, "")

	var sb strings.Builder
	ctx := cli.WithStdout(context.Background(), &sb)
	err := cli.Run(ctx, []cli.Command{cmd}, args)
	return sb.String(), err
}

func TestDaily(t *testing.T) {
	s := newFakeServer(t, map[string]string{
		"GET /trade-history/daily": `[{"date":"2024-01-15","symbol":"9434","pl_total":-300,"wallet_cash":1000000,"wallet_margin":null,"positions_count":0}]`,
	})

	out, err := runCommand(t, new(Daily), "daily", "-server-url", s.url, "-days", "7")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("want header and one row, got %q", out)
	}
	if want := []string{"2024-01-15", "9434", "-300", "¥1,000,000", "-", "0"}; strings.Join(strings.Fields(lines[1]), " ") != strings.Join(want, " ") {
		t.Fatalf("want row %v, got %q", want, lines[1])
	}

	if _, err := runCommand(t, new(Daily), "daily", "-server-url", s.url); err != nil {
		t.Fatal(err)
	}
	reqs, _ := s.take()
	if len(reqs) != 2 || reqs[0] != "GET /api/trade-history/daily?days=7" || reqs[1] != "GET /api/trade-history/daily?days=30" {
		t.Fatalf("want requests with days=7 and default days=30, got %v", reqs)
	}
}

func TestTimeline(t *testing.T) {
	s := newFakeServer(t, map[string]string{
		"GET /trade-history/timeline": `[{"timestamp":"2024-01-15T09:30:00","pl_total":1500,"positions_count":1}]`,
	})

	out, err := runCommand(t, new(Timeline), "timeline", "-server-url", s.url, "-date", "2024-01-15")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || strings.Join(strings.Fields(lines[1]), " ") != "09:30:00 +1,500 1" {
		t.Fatalf("want one timeline row, got %q", out)
	}
	if reqs, _ := s.take(); len(reqs) != 1 || reqs[0] != "GET /api/trade-history/timeline?date=2024-01-15" {
		t.Fatalf("want timeline request for the date, got %v", reqs)
	}
}

func TestStats(t *testing.T) {
	s := newFakeServer(t, map[string]string{
		"GET /trade-history/stats": `{"period_days":7,"trading_days":5,"win_days":3,"loss_days":2,"total_orders":12,"win_rate":60.0,"total_pl":4200,"avg_daily_pl":840,"max_daily_pl":3000,"min_daily_pl":-1200}`,
	})

	out, err := runCommand(t, new(Stats), "stats", "-server-url", s.url, "-days", "7")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Period:        7 days\n",
		"Trading Days:  5 (3 wins, 2 losses)\n",
		"Win Rate:      60.0%\n",
		"Total P/L:     +4,200\n",
		"Worst Day:     -1,200\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("want %q in output, got %q", want, out)
		}
	}
}
