package evals

import (
	"path/filepath"
	"strings"
	"testing"
)

// mockSelector maps inputs to canned tool selections.
type mockSelector struct {
	responses map[string]struct {
		Tool string
		Args map[string]any
	}
	defaultTool string
}

func (m *mockSelector) SelectTool(input string) (string, map[string]any, error) {
	if resp, ok := m.responses[input]; ok {
		return resp.Tool, resp.Args, nil
	}
	return m.defaultTool, nil, nil
}

// perfectSelector answers every suite test correctly.
type perfectSelector struct {
	suite *ToolSelectionSuite
}

func (p *perfectSelector) SelectTool(input string) (string, map[string]any, error) {
	for _, test := range p.suite.Tests {
		if test.Input == input {
			return test.ExpectedTool, test.ExpectedArgs, nil
		}
	}
	return "", nil, nil
}

func TestLoadToolSelectionSuite(t *testing.T) {
	suite, err := LoadToolSelectionSuite(filepath.Join(".", "tool_selection.json"))
	if err != nil {
		t.Fatalf("Failed to load tool selection suite: %v", err)
	}

	if suite.Name == "" {
		t.Error("Suite name should not be empty")
	}
	if len(suite.Tests) == 0 {
		t.Fatal("Suite should have tests")
	}

	for _, test := range suite.Tests {
		if test.ID == "" || test.Input == "" || test.ExpectedTool == "" {
			t.Errorf("Test %q missing required fields", test.ID)
		}
	}
}

func TestLoadConfusionPairSuite(t *testing.T) {
	suite, err := LoadConfusionPairSuite(filepath.Join(".", "confusion_pairs.json"))
	if err != nil {
		t.Fatalf("Failed to load confusion pair suite: %v", err)
	}

	if len(suite.Pairs) == 0 {
		t.Fatal("Suite should have confusion pairs")
	}

	for _, pair := range suite.Pairs {
		if pair.ID == "" {
			t.Error("Pair ID should not be empty")
		}
		if len(pair.Tools) < 2 {
			t.Errorf("Pair %s should name at least 2 tools", pair.ID)
		}
		if len(pair.Tests) == 0 {
			t.Errorf("Pair %s should have tests", pair.ID)
		}
	}
}

func TestLoadArgumentSuite(t *testing.T) {
	suite, err := LoadArgumentSuite(filepath.Join(".", "argument_correctness.json"))
	if err != nil {
		t.Fatalf("Failed to load argument suite: %v", err)
	}

	if len(suite.Tests) == 0 {
		t.Fatal("Suite should have tests")
	}

	for _, test := range suite.Tests {
		if test.ID == "" || test.Tool == "" || test.Input == "" {
			t.Errorf("Test %q missing required fields", test.ID)
		}
	}
}

func TestEvaluateToolSelection(t *testing.T) {
	suite, err := LoadToolSelectionSuite(filepath.Join(".", "tool_selection.json"))
	if err != nil {
		t.Fatalf("Failed to load suite: %v", err)
	}

	metrics, results := EvaluateToolSelection(suite, &perfectSelector{suite: suite})

	if metrics.TotalTests != len(suite.Tests) {
		t.Errorf("Total tests = %d, want %d", metrics.TotalTests, len(suite.Tests))
	}
	if metrics.Accuracy != 1.0 {
		t.Errorf("Perfect selector should have 100%% accuracy, got %.1f%%", metrics.Accuracy*100)
	}
	for _, result := range results {
		if !result.Passed {
			t.Errorf("Test %s should pass with perfect selector: %v", result.TestID, result.Errors)
		}
	}
}

func TestEvaluateToolSelectionWithWrongAnswers(t *testing.T) {
	suite := &ToolSelectionSuite{
		Name: "Test Suite",
		Tests: []ToolSelectionTest{
			{
				ID:           "test-001",
				Category:     "gates",
				Input:        "is new_checkout on for user u1",
				ExpectedTool: "check_feature_gate",
				ExpectedArgs: map[string]any{"gate_name": "new_checkout"},
				NotTools:     []string{"get_gate"},
			},
			{
				ID:           "test-002",
				Category:     "gates",
				Input:        "show the new_checkout gate",
				ExpectedTool: "get_gate",
				ExpectedArgs: map[string]any{"gate_id": "new_checkout"},
			},
		},
	}

	wrongSelector := &mockSelector{defaultTool: "get_gate"}
	metrics, results := EvaluateToolSelection(suite, wrongSelector)

	if metrics.PassedTests != 0 {
		t.Errorf("Passed = %d, want 0", metrics.PassedTests)
	}
	if metrics.FailedTests != 2 {
		t.Errorf("Failed = %d, want 2", metrics.FailedTests)
	}
	for _, result := range results {
		if result.Passed {
			t.Errorf("Test %s should not pass", result.TestID)
		}
		if len(result.Errors) == 0 {
			t.Errorf("Test %s should record errors", result.TestID)
		}
	}
}

func TestEvaluateConfusionPairs(t *testing.T) {
	suite := &ConfusionPairSuite{
		Name: "Test Confusion Pairs",
		Pairs: []ConfusionPair{
			{
				ID:             "gate-config-vs-eval",
				Tools:          []string{"get_gate", "check_feature_gate"},
				Disambiguation: "definition read vs per-user evaluation",
				Tests: []ConfusionPairTest{
					{
						Input:    "show the rules on new_checkout",
						Expected: "get_gate",
						Reason:   "No user mentioned",
					},
					{
						Input:    "does u1 pass new_checkout",
						Expected: "check_feature_gate",
						Reason:   "Per-user question",
					},
				},
			},
		},
	}

	selector := &mockSelector{
		responses: map[string]struct {
			Tool string
			Args map[string]any
		}{
			"show the rules on new_checkout": {Tool: "get_gate"},
			"does u1 pass new_checkout":      {Tool: "check_feature_gate"},
		},
	}

	metrics, results := EvaluateConfusionPairs(suite, selector)

	if metrics.TotalTests != 2 {
		t.Errorf("Total = %d, want 2", metrics.TotalTests)
	}
	if metrics.Accuracy != 1.0 {
		t.Errorf("Accuracy = %.2f, want 1.0", metrics.Accuracy)
	}
	for _, result := range results {
		if !result.Passed {
			t.Errorf("Test should pass: %s", result.Input)
		}
	}
}

func TestEvaluateArguments(t *testing.T) {
	suite := &ArgumentSuite{
		Name: "Test Arguments",
		Tests: []ArgumentTest{
			{
				ID:           "args-001",
				Tool:         "list_gates",
				Input:        "list the first 5 gates",
				RequiredArgs: []string{"limit"},
				ExpectedArgs: map[string]any{
					"limit": float64(5), // JSON numbers decode as float64
				},
				ForbiddenArgs: []string{"gate_id"},
			},
		},
	}

	selector := &mockSelector{
		responses: map[string]struct {
			Tool string
			Args map[string]any
		}{
			"list the first 5 gates": {
				Tool: "list_gates",
				Args: map[string]any{"limit": float64(5)},
			},
		},
	}

	metrics, results := EvaluateArguments(suite, selector)

	if metrics.PassedTests != 1 {
		t.Errorf("Passed = %d, want 1", metrics.PassedTests)
	}
	if len(results) > 0 && !results[0].Passed {
		t.Errorf("Test should pass: %v", results[0].Errors)
	}
}

func TestEvaluateArgumentsWithForbidden(t *testing.T) {
	suite := &ArgumentSuite{
		Name: "Test Forbidden Args",
		Tests: []ArgumentTest{
			{
				ID:            "args-001",
				Tool:          "check_feature_gate",
				Input:         "check new_checkout for u1",
				RequiredArgs:  []string{"user_id", "gate_name"},
				ExpectedArgs:  map[string]any{"gate_name": "new_checkout"},
				ForbiddenArgs: []string{"gate_id"},
			},
		},
	}

	badSelector := &mockSelector{
		responses: map[string]struct {
			Tool string
			Args map[string]any
		}{
			"check new_checkout for u1": {
				Tool: "check_feature_gate",
				Args: map[string]any{
					"user_id":   "u1",
					"gate_name": "new_checkout",
					"gate_id":   "new_checkout",
				},
			},
		},
	}

	metrics, results := EvaluateArguments(suite, badSelector)

	if metrics.PassedTests != 0 {
		t.Errorf("Passed = %d, want 0 (forbidden arg used)", metrics.PassedTests)
	}
	if len(results) > 0 {
		joined := strings.Join(results[0].Errors, "; ")
		if !strings.Contains(joined, "forbidden") {
			t.Errorf("Errors should flag forbidden arg, got %q", joined)
		}
	}
}

func TestCompareValues(t *testing.T) {
	tests := []struct {
		name     string
		expected any
		actual   any
		want     bool
	}{
		{"equal strings", "gate", "gate", true},
		{"different strings", "gate", "config", false},
		{"int vs float64", 20, float64(20), true},
		{"float vs float64", 9.99, float64(9.99), true},
		{"equal slices", []string{"a", "b"}, []string{"a", "b"}, true},
		{"different slices", []string{"a", "b"}, []string{"a", "c"}, false},
		{"nil values", nil, nil, true},
		{"nil vs value", nil, "x", false},
		{"equal bools", true, true, true},
		{"different bools", true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareValues(tt.expected, tt.actual); got != tt.want {
				t.Errorf("compareValues(%v, %v) = %v, want %v", tt.expected, tt.actual, got, tt.want)
			}
		})
	}
}

func TestFormatMetrics(t *testing.T) {
	metrics := &Metrics{
		TotalTests:  10,
		PassedTests: 8,
		FailedTests: 2,
		Accuracy:    0.8,
		ByCategory: map[string]*CategoryMetrics{
			"gates":      {Total: 5, Passed: 4, Failed: 1},
			"evaluation": {Total: 5, Passed: 4, Failed: 1},
		},
		FailedDetails: []string{
			"[ts-001] input: wrong tool",
			"[ts-002] input: missing arg",
		},
	}

	output := FormatMetrics(metrics, "Test Suite")

	if !strings.Contains(output, "80") {
		t.Error("Should show accuracy percentage")
	}
	if !strings.Contains(output, "gates") {
		t.Error("Should show category breakdown")
	}
	if !strings.Contains(output, "Failed Tests") {
		t.Error("Should show failed tests section")
	}
}

func TestLoadAllEvals(t *testing.T) {
	toolSelection, confusionPairs, arguments, err := LoadAllEvals(".")
	if err != nil {
		t.Fatalf("Failed to load all evals: %v", err)
	}

	total := len(toolSelection.Tests) + len(arguments.Tests)
	for _, pair := range confusionPairs.Pairs {
		total += len(pair.Tests)
	}
	if total == 0 {
		t.Error("Expected evaluation tests to be loaded")
	}
	t.Logf("Loaded %d total evaluation tests", total)
}
