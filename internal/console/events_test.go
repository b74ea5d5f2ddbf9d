package console

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestQueryEventsMCPList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/console/v1/events" {
			t.Errorf("path = %q", r.URL.Path)
		}
		data := make([]map[string]any, 15)
		for i := range data {
			data[i] = map[string]any{"name": "event"}
		}
		json.NewEncoder(w).Encode(map[string]any{"data": data})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.QueryEventsMCP(context.Background(), QueryEventsArgs{Limit: 5})
	if err != nil {
		t.Fatalf("QueryEventsMCP() error = %v", err)
	}
	if len(result.EventTypes) != 5 {
		t.Errorf("EventTypes = %d entries, want 5 (limit applied)", len(result.EventTypes))
	}
	if result.TotalFound != 5 {
		t.Errorf("TotalFound = %d, want 5", result.TotalFound)
	}
}

func TestQueryEventsMCPDefaultLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data := make([]map[string]any, 25)
		for i := range data {
			data[i] = map[string]any{"name": "event"}
		}
		json.NewEncoder(w).Encode(map[string]any{"data": data})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.QueryEventsMCP(context.Background(), QueryEventsArgs{})
	if err != nil {
		t.Fatalf("QueryEventsMCP() error = %v", err)
	}
	if len(result.EventTypes) != DefaultEventLimit {
		t.Errorf("EventTypes = %d entries, want default limit %d", len(result.EventTypes), DefaultEventLimit)
	}
}

func TestQueryEventsMCPByName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/console/v1/events/purchase" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"name": "purchase", "count": 4210},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.QueryEventsMCP(context.Background(), QueryEventsArgs{EventName: "purchase"})
	if err != nil {
		t.Fatalf("QueryEventsMCP() error = %v", err)
	}
	if result.Found == nil || !*result.Found {
		t.Error("Found = false, want true")
	}
	if result.Details["name"] != "purchase" {
		t.Errorf("Details = %v", result.Details)
	}
	if result.TotalFound != 1 {
		t.Errorf("TotalFound = %d, want 1", result.TotalFound)
	}
}

func TestQueryEventsMCPNameNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status": 404, "message": "Event not found."}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.QueryEventsMCP(context.Background(), QueryEventsArgs{EventName: "ghost"})
	if err != nil {
		t.Fatalf("QueryEventsMCP() error = %v, want nil for missing event", err)
	}
	if result.Found == nil || *result.Found {
		t.Error("Found = true, want false")
	}
	if result.Message != "Event 'ghost' not found" {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestGetUserByEmailMCPNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status": 404, "message": "User not found."}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	result, err := client.GetUserByEmailMCP(context.Background(), GetUserByEmailArgs{Email: "ghost@example.com"})
	if err != nil {
		t.Fatalf("GetUserByEmailMCP() error = %v, want nil for missing user", err)
	}
	if result.Found {
		t.Error("Found = true, want false")
	}
	if result.Message != "User with email 'ghost@example.com' not found in Statsig team" {
		t.Errorf("Message = %q", result.Message)
	}
}
