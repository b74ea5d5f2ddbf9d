package base

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	client := NewClient()
	if client == nil {
		t.Fatal("NewClient returned nil")
	}
	if client.HTTPClient == nil {
		t.Error("HTTPClient is nil")
	}
	if client.Logger == nil {
		t.Error("Logger is nil")
	}
	if client.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want %q", client.UserAgent, DefaultUserAgent)
	}
}

func TestNewClientWithOptions(t *testing.T) {
	customHTTPClient := &http.Client{Timeout: 60 * time.Second}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client := NewClient(WithHTTPClient(customHTTPClient), WithLogger(logger))

	if client.HTTPClient != customHTTPClient {
		t.Error("custom HTTP client was not set")
	}
	if client.Logger != logger {
		t.Error("custom logger was not set")
	}
}

func TestClient_DefaultTimeout(t *testing.T) {
	client := NewClient()

	if client.HTTPClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", client.HTTPClient.Timeout, DefaultTimeout)
	}
}

func TestWithTimeout(t *testing.T) {
	client := NewClient(WithTimeout(5 * time.Second))

	if client.HTTPClient.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want %v", client.HTTPClient.Timeout, 5*time.Second)
	}
}

func TestDoRequest_HeaderInjection(t *testing.T) {
	var gotAPIKey, gotVersion, gotAccept, gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("STATSIG-API-KEY")
		gotVersion = r.Header.Get("STATSIG-API-VERSION")
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(WithHTTPClient(server.Client()))

	_, status, err := client.DoRequest(context.Background(), RequestConfig{
		Method: http.MethodGet,
		URL:    server.URL,
		Headers: map[string]string{
			"STATSIG-API-KEY":     "console-test",
			"STATSIG-API-VERSION": "20240601",
		},
	})
	if err != nil {
		t.Fatalf("DoRequest error: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if gotAPIKey != "console-test" {
		t.Errorf("STATSIG-API-KEY = %q", gotAPIKey)
	}
	if gotVersion != "20240601" {
		t.Errorf("STATSIG-API-VERSION = %q", gotVersion)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
	if gotUA != DefaultUserAgent {
		t.Errorf("User-Agent = %q", gotUA)
	}
}

func TestDoRequest_PostBody(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient(WithHTTPClient(server.Client()))

	body, status, err := client.DoRequest(context.Background(), RequestConfig{
		Method: http.MethodPost,
		URL:    server.URL,
		Body:   []byte(`{"name":"new_gate"}`),
	})
	if err != nil {
		t.Fatalf("DoRequest error: %v", err)
	}
	if status != http.StatusCreated {
		t.Errorf("status = %d, want 201", status)
	}
	if string(gotBody) != `{"name":"new_gate"}` {
		t.Errorf("request body = %q", gotBody)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("response body = %q", body)
	}
}

func TestDoRequest_SingleAttempt(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(WithHTTPClient(server.Client()))

	_, status, err := client.DoRequest(context.Background(), RequestConfig{
		Method: http.MethodGet,
		URL:    server.URL,
	})
	if err != nil {
		t.Fatalf("DoRequest error: %v", err)
	}
	if status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", status)
	}
	if calls != 1 {
		t.Errorf("server called %d times, want exactly 1 (no retries)", calls)
	}
}

func TestDoRequest_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(WithHTTPClient(server.Client()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, _, err := client.DoRequest(ctx, RequestConfig{
		Method: http.MethodGet,
		URL:    server.URL,
	})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("Truncate short = %q", got)
	}
	if got := Truncate("hello world", 5); got != "hello..." {
		t.Errorf("Truncate long = %q", got)
	}
}
