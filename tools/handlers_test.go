package tools

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/statsig-community/statsig-mcp-server/internal/console"
	"github.com/statsig-community/statsig-mcp-server/internal/evaluate"
	"github.com/statsig-community/statsig-mcp-server/internal/format"
)

func testClients(t *testing.T) (*console.Client, *evaluate.Client, *slog.Logger) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	consoleClient := console.NewClient(&console.Config{APIKey: "console-test"}, logger)
	evalClient := evaluate.NewClient(&evaluate.Config{SecretKey: "secret-test"}, logger)
	return consoleClient, evalClient, logger
}

func TestNewHandlerRegistry(t *testing.T) {
	consoleClient, evalClient, logger := testClients(t)
	defer consoleClient.Close()
	defer evalClient.Close()

	registry := NewHandlerRegistry(consoleClient, evalClient, logger)

	if registry == nil {
		t.Fatal("Expected non-nil registry")
	}
	if registry.consoleClient != consoleClient {
		t.Error("Registry should hold the console client reference")
	}
	if registry.evalClient != evalClient {
		t.Error("Registry should hold the evaluation client reference")
	}
	if registry.logger != logger {
		t.Error("Registry should hold the logger reference")
	}
}

func TestBuildTool(t *testing.T) {
	consoleClient, evalClient, logger := testClients(t)
	defer consoleClient.Close()
	defer evalClient.Close()

	registry := NewHandlerRegistry(consoleClient, evalClient, logger)

	tests := []struct {
		name      string
		spec      ToolSpec
		wantName  string
		wantDesc  string
		wantRO    bool
		wantIdem  bool
		wantDestr bool
		wantOpen  bool
	}{
		{
			name: "read-only tool",
			spec: ToolSpec{
				Name:        "list_gates",
				Title:       "List Feature Gates",
				Description: "List all feature gates",
				Method:      "ListGates",
				Category:    "gates",
				ReadOnly:    true,
				Idempotent:  true,
			},
			wantName: "list_gates",
			wantDesc: "List all feature gates",
			wantRO:   true,
			wantIdem: true,
		},
		{
			name: "destructive tool",
			spec: ToolSpec{
				Name:        "delete_gate",
				Title:       "Delete Feature Gate",
				Description: "Delete a feature gate",
				Method:      "DeleteGate",
				Category:    "gates",
				Destructive: true,
				OpenWorld:   true,
			},
			wantName:  "delete_gate",
			wantDesc:  "Delete a feature gate",
			wantDestr: true,
			wantOpen:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := registry.buildTool(tt.spec)

			if tool.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", tool.Name, tt.wantName)
			}
			if tool.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", tool.Description, tt.wantDesc)
			}
			if tool.Annotations == nil {
				t.Fatal("Expected annotations")
			}
			if tool.Annotations.ReadOnlyHint != tt.wantRO {
				t.Errorf("ReadOnlyHint = %v, want %v", tool.Annotations.ReadOnlyHint, tt.wantRO)
			}
			if tool.Annotations.IdempotentHint != tt.wantIdem {
				t.Errorf("IdempotentHint = %v, want %v", tool.Annotations.IdempotentHint, tt.wantIdem)
			}
			if tt.wantDestr && (tool.Annotations.DestructiveHint == nil || !*tool.Annotations.DestructiveHint) {
				t.Error("Expected DestructiveHint to be true")
			}
			if tt.wantOpen && (tool.Annotations.OpenWorldHint == nil || !*tool.Annotations.OpenWorldHint) {
				t.Error("Expected OpenWorldHint to be true")
			}
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	consoleClient, evalClient, logger := testClients(t)
	defer consoleClient.Close()
	defer evalClient.Close()

	registry := NewHandlerRegistry(consoleClient, evalClient, logger)

	// Test that recoverPanic doesn't panic itself
	func() {
		defer registry.recoverPanic("test_tool")
		panic("test panic")
	}()

	// If we get here, panic was recovered successfully
}

func TestLogExecution(t *testing.T) {
	consoleClient, evalClient, logger := testClients(t)
	defer consoleClient.Close()
	defer evalClient.Close()

	registry := NewHandlerRegistry(consoleClient, evalClient, logger)
	spec := ToolSpec{Name: "test_tool", Category: "gates"}

	registry.logExecution(spec,
		console.GetGateArgs{GateID: "my_gate"},
		console.ItemResult{Found: true})

	registry.logExecution(spec,
		console.ListGatesArgs{Limit: 10},
		console.ListResult{Count: 3})

	registry.logExecution(spec,
		evaluate.CheckFeatureGateArgs{
			UserAttributes: evaluate.UserAttributes{UserID: "u1"},
			GateName:       "my_gate",
		},
		evaluate.GateEvaluation{Value: true, RuleID: "rule_1"})

	registry.logExecution(spec,
		evaluate.LogEventArgs{
			UserAttributes: evaluate.UserAttributes{UserID: "u1"},
			EventName:      "purchase",
		},
		evaluate.EventLogResult{Success: true})
}

func TestToMap(t *testing.T) {
	m := toMap(console.ListResult{
		Items: []map[string]any{{"id": "gate_a"}},
		Count: 1,
	})

	items, ok := m["items"].([]any)
	if !ok || len(items) != 1 {
		t.Fatalf("items = %v, want one entry", m["items"])
	}
	if m["count"] != float64(1) {
		t.Errorf("count = %v, want 1", m["count"])
	}
}

func TestAllToolsNotEmpty(t *testing.T) {
	if len(AllTools) == 0 {
		t.Error("AllTools should not be empty")
	}

	// Verify each tool has required fields
	for i, spec := range AllTools {
		if spec.Name == "" {
			t.Errorf("Tool %d has empty Name", i)
		}
		if spec.Method == "" {
			t.Errorf("Tool %s has empty Method", spec.Name)
		}
		if spec.Description == "" {
			t.Errorf("Tool %s has empty Description", spec.Name)
		}
		if spec.Category == "" {
			t.Errorf("Tool %s has empty Category", spec.Name)
		}
		if spec.Shape == "" {
			t.Errorf("Tool %s has empty Shape", spec.Name)
		}
		if spec.Subject == "" {
			t.Errorf("Tool %s has empty Subject", spec.Name)
		}
	}
}

func TestToolNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, spec := range AllTools {
		if seen[spec.Name] {
			t.Errorf("Duplicate tool name: %s", spec.Name)
		}
		seen[spec.Name] = true
	}
}

func TestToolSpecMethods(t *testing.T) {
	knownMethods := map[string]bool{
		// Feature gates
		"ListGates":  true,
		"GetGate":    true,
		"CreateGate": true,
		"UpdateGate": true,
		"DeleteGate": true,
		// Experiments
		"ListExperiments":  true,
		"GetExperiment":    true,
		"CreateExperiment": true,
		"UpdateExperiment": true,
		"DeleteExperiment": true,
		// Dynamic configs
		"ListDynamicConfigs":  true,
		"GetDynamicConfig":    true,
		"CreateDynamicConfig": true,
		"UpdateDynamicConfig": true,
		"DeleteDynamicConfig": true,
		// Segments
		"ListSegments":  true,
		"GetSegment":    true,
		"CreateSegment": true,
		// Metrics
		"ListMetrics": true,
		"GetMetric":   true,
		// Project
		"ListAuditLogs":  true,
		"ListTargetApps": true,
		"GetTargetApp":   true,
		"ListAPIKeys":    true,
		"QueryEvents":    true,
		"GetUserByEmail": true,
		"ListTeamUsers":  true,
		// Analytics
		"GetExperimentResults": true,
		"GetExperimentPulse":   true,
		"GetMetricDetails":     true,
		"ExportPulseReport":    true,
		// Evaluation
		"CheckFeatureGate":      true,
		"EvaluateDynamicConfig": true,
		"EvaluateExperiment":    true,
		"GetLayer":              true,
		"LogEvent":              true,
	}

	for _, spec := range AllTools {
		if !knownMethods[spec.Method] {
			t.Errorf("Tool %s has unknown method: %s", spec.Name, spec.Method)
		}
	}
}

func TestToolsByCategory(t *testing.T) {
	evalTools := ToolsByCategory("evaluation")
	if len(evalTools) != 5 {
		t.Errorf("evaluation tools = %d, want 5", len(evalTools))
	}
	for _, tool := range evalTools {
		if tool.Category != "evaluation" {
			t.Errorf("Tool %s has category %s, expected evaluation", tool.Name, tool.Category)
		}
	}

	if len(ToolsByCategory("unknown")) != 0 {
		t.Error("Expected 0 tools for unknown category")
	}
}

func TestDestructiveToolsAreDeletes(t *testing.T) {
	for _, spec := range AllTools {
		if spec.Destructive && !strings.HasPrefix(spec.Name, "delete_") {
			t.Errorf("Tool %s is destructive but not a delete", spec.Name)
		}
		if strings.HasPrefix(spec.Name, "delete_") && !spec.Destructive {
			t.Errorf("Tool %s deletes but is not marked destructive", spec.Name)
		}
	}
}

func TestShapesMatchNames(t *testing.T) {
	for _, spec := range AllTools {
		switch {
		case strings.HasPrefix(spec.Name, "list_"):
			if spec.Shape != format.ShapeList {
				t.Errorf("Tool %s shape = %s, want list", spec.Name, spec.Shape)
			}
		case strings.HasPrefix(spec.Name, "create_"):
			if spec.Shape != format.ShapeCreate {
				t.Errorf("Tool %s shape = %s, want create", spec.Name, spec.Shape)
			}
		case strings.HasPrefix(spec.Name, "update_"):
			if spec.Shape != format.ShapeUpdate {
				t.Errorf("Tool %s shape = %s, want update", spec.Name, spec.Shape)
			}
		case strings.HasPrefix(spec.Name, "delete_"):
			if spec.Shape != format.ShapeDelete {
				t.Errorf("Tool %s shape = %s, want delete", spec.Name, spec.Shape)
			}
		}
	}
}
