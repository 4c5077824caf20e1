// Copyright (c) 2026 BVK Chaitanya

package market

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

func findLine(output, substr string) string {
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

func TestQuotes(t *testing.T) {
	s := newFakeServer(t, map[string]string{
		"GET /indices":   `[{"code":"101","name":"日経平均","price":38500.25,"change":-120.5,"change_pct":-0.31}]`,
		"GET /watchlist": `[{"code":"9434","name":"ソフトバンク","price":215.3,"change":null,"change_pct":null,"volume":1200000}]`,
	})

	out, err := runCommand(t, new(Indices), "indices", "-server-url", s.url)
	if err != nil {
		t.Fatal(err)
	}
	if header := findLine(out, "Code"); strings.Contains(header, "Volume") {
		t.Fatalf("want no volume column for indices, got %q", header)
	}
	row := findLine(out, "日経平均")
	for _, want := range []string{"101", "38,500.25", "-120.5", "-0.31%"} {
		if !strings.Contains(row, want) {
			t.Fatalf("want %q in indices row, got %q", want, row)
		}
	}

	out, err = runCommand(t, new(Watchlist), "watchlist", "-server-url", s.url)
	if err != nil {
		t.Fatal(err)
	}
	if header := findLine(out, "Code"); !strings.Contains(header, "Volume") {
		t.Fatalf("want volume column for watchlist, got %q", header)
	}
	row = findLine(out, "ソフトバンク")
	for _, want := range []string{"9434", "215.3", "1,200,000"} {
		if !strings.Contains(row, want) {
			t.Fatalf("want %q in watchlist row, got %q", want, row)
		}
	}
	if fields := strings.Fields(row); len(fields) != 6 || fields[3] != "-" || fields[4] != "-" {
		t.Fatalf("want placeholders for null change columns, got %q", row)
	}
}

func TestSymbol(t *testing.T) {
	s := newFakeServer(t, map[string]string{
		"GET /symbol/{code}": `{"symbol":"9434","symbol_name":"ソフトバンク","exchange":"1"}`,
	})

	if _, err := runCommand(t, new(Symbol), "symbol", "-server-url", s.url); err == nil {
		t.Fatalf("want error for missing symbol argument, got nil")
	}

	out, err := runCommand(t, new(Symbol), "symbol", "-server-url", s.url, "9434")
	if err != nil {
		t.Fatal(err)
	}
	if want := "9434\tソフトバンク\t1\n"; out != want {
		t.Fatalf("want %q, got %q", want, out)
	}
	if reqs, _ := s.take(); len(reqs) != 1 || reqs[0] != "GET /api/symbol/9434" {
		t.Fatalf("want one symbol request, got %v", reqs)
	}
}
