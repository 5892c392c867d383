package util

import (
	"net/http"
	"net/url"
	"testing"
)

func proxyFor(t *testing.T, proxy func(*http.Request) (*url.URL, error), target string) string {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	u, err := proxy(req)
	if err != nil {
		t.Fatalf("proxy func: %v", err)
	}
	if u == nil {
		return ""
	}
	return u.String()
}

func TestNewProxyFuncPerScheme(t *testing.T) {
	proxy := NewProxyFunc("http://proxy.local:3128", "http://secure-proxy.local:3128", "")

	if got := proxyFor(t, proxy, "https://api.openai.com/v1"); got != "http://secure-proxy.local:3128" {
		t.Errorf("unexpected https proxy: %q", got)
	}
	if got := proxyFor(t, proxy, "http://example.com/robots.txt"); got != "http://proxy.local:3128" {
		t.Errorf("unexpected http proxy: %q", got)
	}
}

func TestNewProxyFuncHTTPFallbackForHTTPS(t *testing.T) {
	proxy := NewProxyFunc("http://proxy.local:3128", "", "")

	if got := proxyFor(t, proxy, "https://api.anthropic.com/v1/messages"); got != "http://proxy.local:3128" {
		t.Errorf("expected http proxy to cover https, got %q", got)
	}
}

func TestNewProxyFuncNoProxyBypass(t *testing.T) {
	proxy := NewProxyFunc("http://proxy.local:3128", "", "localhost, .corp.example")

	if got := proxyFor(t, proxy, "http://localhost:11434/api/generate"); got != "" {
		t.Errorf("expected direct connection for localhost, got %q", got)
	}
	if got := proxyFor(t, proxy, "https://api.corp.example/v1"); got != "" {
		t.Errorf("expected direct connection for bypassed domain, got %q", got)
	}
	if got := proxyFor(t, proxy, "https://corp.example/v1"); got != "" {
		t.Errorf("expected direct connection for the bare domain, got %q", got)
	}
	if got := proxyFor(t, proxy, "http://example.com/"); got != "http://proxy.local:3128" {
		t.Errorf("expected proxy for unlisted host, got %q", got)
	}
}

func TestNewProxyFuncWildcard(t *testing.T) {
	proxy := NewProxyFunc("http://proxy.local:3128", "", "*")

	if got := proxyFor(t, proxy, "https://api.openai.com/v1"); got != "" {
		t.Errorf("expected wildcard to bypass everything, got %q", got)
	}
}
