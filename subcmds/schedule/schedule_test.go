// Copyright (c) 2026 BVK Chaitanya

package schedule

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

func TestScheduleStart(t *testing.T) {
	s := newFakeServer(t, map[string]string{
		"POST /schedule_start": `{"ok":true,"scheduled":true,"time":"09:00"}`,
	})

	if _, err := runCommand(t, new(Start), "start", "-server-url", s.url); err == nil {
		t.Fatalf("want error for missing time argument, got nil")
	}
	if reqs, _ := s.take(); len(reqs) != 0 {
		t.Fatalf("want no requests without time argument, got %v", reqs)
	}

	out, err := runCommand(t, new(Start), "start", "-server-url", s.url, "09:00")
	if err != nil {
		t.Fatal(err)
	}
	if want := "trading is scheduled to start at 09:00\n"; out != want {
		t.Fatalf("want %q, got %q", want, out)
	}
	reqs, bodies := s.take()
	if len(reqs) != 1 || reqs[0] != "POST /api/schedule_start" {
		t.Fatalf("want one schedule_start request, got %v", reqs)
	}
	if bodies[0] != `{"time":"09:00"}` {
		t.Fatalf("want time in request body, got %q", bodies[0])
	}
}

func TestScheduleGetCancel(t *testing.T) {
	s := newFakeServer(t, map[string]string{
		"GET /schedule":         `{"scheduled":false}`,
		"POST /cancel_schedule": `{"ok":false,"error":"nothing to cancel"}`,
	})

	out, err := runCommand(t, new(Get), "get", "-server-url", s.url)
	if err != nil {
		t.Fatal(err)
	}
	if out != "no start is scheduled\n" {
		t.Fatalf("want no schedule message, got %q", out)
	}

	if _, err := runCommand(t, new(Cancel), "cancel", "-server-url", s.url); err == nil || err.Error() != "nothing to cancel" {
		t.Fatalf("want server error message, got %v", err)
	}
}
