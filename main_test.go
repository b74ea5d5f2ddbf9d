package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/statsig-community/statsig-mcp-server/metrics"
)

func TestMetricsEndpoint(t *testing.T) {
	// Touch a metric so the registry has something to expose.
	metrics.RecordRequest("list_gates", 0.01, true)

	server := httptest.NewServer(promhttp.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	if err != nil {
		t.Fatalf("GET /metrics error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(string(body), metrics.Namespace+"_requests_total") {
		t.Error("metrics output missing request counter")
	}
}

func TestServerIdentity(t *testing.T) {
	if ServerName != "statsig-mcp-server" {
		t.Errorf("ServerName = %q", ServerName)
	}
	if ServerVersion == "" {
		t.Error("ServerVersion is empty")
	}
}
