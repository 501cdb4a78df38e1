package main

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/fpang/va-creator/internal/config"
)

// countingServer counts requests and records the Authorization headers.
type countingServer struct {
	mu    sync.Mutex
	auth  []string
	paths []string
}

func (c *countingServer) handler(w http.ResponseWriter, r *http.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.auth = append(c.auth, r.Header.Get("Authorization"))
	c.paths = append(c.paths, r.URL.Path)
	w.WriteHeader(http.StatusCreated)
}

func TestRootCommandDispatchesEveryStream(t *testing.T) {
	cs := &countingServer{}
	server := httptest.NewServer(http.HandlerFunc(cs.handler))
	defer server.Close()

	rootCmd.SetArgs([]string{"--base-url", server.URL, "secret", "FOR", "[4,", "2]", "Sva"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cs.paths) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(cs.paths))
	}
	for i := range cs.paths {
		if cs.paths[i] != "/api/v2/smart_va/analytics" {
			t.Errorf("unexpected path: %s", cs.paths[i])
		}
		if cs.auth[i] != "Bearer secret" {
			t.Errorf("unexpected Authorization: %s", cs.auth[i])
		}
	}
}

func TestRootCommandAcceptsNegativeBounds(t *testing.T) {
	cs := &countingServer{}
	server := httptest.NewServer(http.HandlerFunc(cs.handler))
	defer server.Close()

	rootCmd.SetArgs([]string{"--base-url", server.URL, "secret", "FROM", "-1", "TO", "1", "od"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cs.paths) != 3 {
		t.Fatalf("expected 3 requests, got %d", len(cs.paths))
	}
}

func TestRootCommandDashTokenAfterSeparator(t *testing.T) {
	cs := &countingServer{}
	server := httptest.NewServer(http.HandlerFunc(cs.handler))
	defer server.Close()

	rootCmd.SetArgs([]string{"--base-url", server.URL, "--", "-secret", "FOR", "7", "od"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cs.auth) != 1 || cs.auth[0] != "Bearer -secret" {
		t.Fatalf("expected one request with Bearer -secret, got %q", cs.auth)
	}
}

func TestRootCommandParseErrorMakesNoRequests(t *testing.T) {
	cs := &countingServer{}
	server := httptest.NewServer(http.HandlerFunc(cs.handler))
	defer server.Close()

	rootCmd.SetArgs([]string{"--base-url", server.URL, "secret", "UPTO", "1", "od"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("parse errors should not fail the command: %v", err)
	}
	if len(cs.paths) != 0 {
		t.Fatalf("expected no requests, got %d", len(cs.paths))
	}
}

func TestApplyFlagsOverridesEnvironment(t *testing.T) {
	t.Setenv("VA_CREATOR_BASE_URL", "http://from-env:2001")
	t.Setenv("VA_CREATOR_TIMEOUT", "10s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := rootCmd.Flags().Set("timeout", "3s"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	applyFlags(rootCmd, cfg)

	if cfg.Timeout != 3*time.Second {
		t.Errorf("expected flag timeout 3s, got %s", cfg.Timeout)
	}
}
