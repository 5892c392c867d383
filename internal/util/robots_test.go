package util

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func robotsServer(t *testing.T, body string, status int, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			http.NotFound(w, r)
			return
		}
		if hits != nil {
			hits.Add(1)
		}
		w.WriteHeader(status)
		_, _ = fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCanFetchAllowed(t *testing.T) {
	server := robotsServer(t, "User-agent: *\nDisallow: /private/\n", http.StatusOK, nil)

	checker := NewRobotsChecker("test-agent", 5*time.Second)

	allowed, err := checker.CanFetch(context.Background(), server.URL+"/public/page")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !allowed {
		t.Error("Expected /public/page to be allowed")
	}

	allowed, err = checker.CanFetch(context.Background(), server.URL+"/private/page")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if allowed {
		t.Error("Expected /private/page to be disallowed")
	}
}

func TestCanFetchAgentSpecific(t *testing.T) {
	server := robotsServer(t, "User-agent: test-agent\nDisallow: /\n\nUser-agent: *\nAllow: /\n", http.StatusOK, nil)

	checker := NewRobotsChecker("test-agent", 5*time.Second)
	allowed, err := checker.CanFetch(context.Background(), server.URL+"/page")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if allowed {
		t.Error("Expected test-agent to be disallowed by its own group")
	}
}

func TestCanFetchMissingRobots(t *testing.T) {
	server := robotsServer(t, "", http.StatusNotFound, nil)

	checker := NewRobotsChecker("test-agent", 5*time.Second)
	allowed, err := checker.CanFetch(context.Background(), server.URL+"/anything")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !allowed {
		t.Error("Expected missing robots.txt to allow fetching")
	}
}

func TestCanFetchUnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	checker := NewRobotsChecker("test-agent", 1*time.Second)
	allowed, err := checker.CanFetch(context.Background(), url+"/page")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !allowed {
		t.Error("Expected unreachable robots.txt to allow fetching")
	}
}

func TestCanFetchInvalidURL(t *testing.T) {
	checker := NewRobotsChecker("test-agent", 1*time.Second)
	if _, err := checker.CanFetch(context.Background(), "://not-a-url"); err == nil {
		t.Fatal("Expected error for invalid URL")
	}
}

func TestRobotsCachePerHost(t *testing.T) {
	var hits atomic.Int32
	server := robotsServer(t, "User-agent: *\nAllow: /\n", http.StatusOK, &hits)

	checker := NewRobotsChecker("test-agent", 5*time.Second)
	for i := 0; i < 3; i++ {
		if _, err := checker.CanFetch(context.Background(), server.URL+"/page"); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}
	if hits.Load() != 1 {
		t.Errorf("Expected 1 robots.txt fetch, got %d", hits.Load())
	}

	checker.Clear()
	if _, err := checker.CanFetch(context.Background(), server.URL+"/page"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("Expected refetch after Clear, got %d fetches", hits.Load())
	}
}
