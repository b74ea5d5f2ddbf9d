package console

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apierrors "github.com/statsig-community/statsig-mcp-server/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
}

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	client := NewClient(&Config{
		APIKey:     "console-test-key",
		BaseURL:    serverURL,
		APIVersion: DefaultAPIVersion,
	}, testLogger())
	if err := client.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	return client
}

func TestRequestHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("STATSIG-API-KEY"); got != "console-test-key" {
			t.Errorf("STATSIG-API-KEY = %q", got)
		}
		if got := r.Header.Get("STATSIG-API-VERSION"); got != DefaultAPIVersion {
			t.Errorf("STATSIG-API-VERSION = %q, want %q", got, DefaultAPIVersion)
		}
		if !strings.HasPrefix(r.URL.Path, "/console/v1/") {
			t.Errorf("path = %q, want /console/v1 prefix", r.URL.Path)
		}
		w.Write([]byte(`{"message": "ok", "data": []}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	if _, err := client.ListGates(context.Background(), 0); err != nil {
		t.Fatalf("ListGates() error = %v", err)
	}
}

func TestNotInitialized(t *testing.T) {
	client := NewClient(&Config{APIKey: "k", BaseURL: "http://unused.invalid"}, testLogger())

	_, err := client.ListGates(context.Background(), 0)
	if !apierrors.IsNotInitialized(err) {
		t.Fatalf("ListGates() error = %v, want NotInitializedError", err)
	}
	if err == nil || !strings.Contains(err.Error(), "console client not initialized") {
		t.Errorf("error message = %v", err)
	}
}

func TestInitializeRequiresAPIKey(t *testing.T) {
	client := NewClient(&Config{}, testLogger())
	if err := client.Initialize(); err == nil {
		t.Fatal("Initialize() error = nil, want error for missing API key")
	}
}

func TestCloseIdempotent(t *testing.T) {
	client := newTestClient(t, "http://unused.invalid")

	client.Close()
	client.Close()

	if client.Initialized() {
		t.Error("Initialized() = true after Close")
	}
}

func TestDataUnwrapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Gate read successfully.",
			"data":    map[string]any{"id": "my_gate", "isEnabled": true},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.GetGate(context.Background(), "my_gate")
	if err != nil {
		t.Fatalf("GetGate() error = %v", err)
	}
	if !result.Found {
		t.Error("Found = false, want true")
	}
	if result.Data["id"] != "my_gate" {
		t.Errorf("Data = %v, want unwrapped gate object", result.Data)
	}
	if _, hasEnvelope := result.Data["data"]; hasEnvelope {
		t.Error("Data still contains the response envelope")
	}
}

func TestAPIErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status": 401, "message": "Invalid API key"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.ListGates(context.Background(), 0)
	if err == nil {
		t.Fatal("ListGates() error = nil, want API error")
	}
	if !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "Invalid API key") {
		t.Errorf("error = %v, want status and message", err)
	}
}

func TestAPIErrorNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.ListGates(context.Background(), 0)
	if err == nil {
		t.Fatal("ListGates() error = nil, want API error")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("error = %v, want status code", err)
	}
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.ListGates(ctx, 0); err == nil {
		t.Fatal("ListGates() error = nil, want context error")
	}
}

func TestLimitQueryForwarded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "25" {
			t.Errorf("limit query = %q, want 25", got)
		}
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	if _, err := client.ListGates(context.Background(), 25); err != nil {
		t.Fatalf("ListGates() error = %v", err)
	}
}

func TestEscapePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"simple_id", "simple_id"},
		{"  padded  ", "padded"},
		{"has space", "has%20space"},
	}
	for _, tt := range tests {
		if got := escapePath(tt.in); got != tt.want {
			t.Errorf("escapePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
