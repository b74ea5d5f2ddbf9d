// Package evals provides an evaluation framework for testing MCP tool
// selection accuracy. It validates that LLMs pick the correct Statsig tool
// and extract proper arguments from natural language requests.
package evals

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

// ToolSelectionTest is a single tool selection case: a natural language
// request, the tool it should map to, and tools it must not map to.
type ToolSelectionTest struct {
	ID           string         `json:"id"`
	Category     string         `json:"category"`
	Input        string         `json:"input"`
	ExpectedTool string         `json:"expected_tool"`
	ExpectedArgs map[string]any `json:"expected_args"`
	NotTools     []string       `json:"not_tools"`
}

// ToolSelectionSuite contains all tool selection tests.
type ToolSelectionSuite struct {
	Name        string              `json:"name"`
	Version     string              `json:"version"`
	Description string              `json:"description"`
	Tests       []ToolSelectionTest `json:"tests"`
}

// ConfusionPairTest is a single disambiguation case.
type ConfusionPairTest struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Reason   string `json:"reason"`
}

// ConfusionPair groups tools that are commonly confused, such as get_gate
// vs check_feature_gate, with the rule that separates them.
type ConfusionPair struct {
	ID             string              `json:"id"`
	Tools          []string            `json:"tools"`
	Disambiguation string              `json:"disambiguation"`
	Tests          []ConfusionPairTest `json:"tests"`
}

// ConfusionPairSuite contains all confusion pair tests.
type ConfusionPairSuite struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Pairs       []ConfusionPair `json:"pairs"`
}

// ArgumentTest is a single argument correctness case.
type ArgumentTest struct {
	ID            string         `json:"id"`
	Tool          string         `json:"tool"`
	Input         string         `json:"input"`
	RequiredArgs  []string       `json:"required_args"`
	ExpectedArgs  map[string]any `json:"expected_args"`
	ForbiddenArgs []string       `json:"forbidden_args"`
	ArgNotes      string         `json:"arg_notes,omitempty"`
}

// ArgumentSuite contains all argument correctness tests.
type ArgumentSuite struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Tests       []ArgumentTest `json:"tests"`
}

// Result records one evaluated case.
type Result struct {
	TestID       string
	Input        string
	ExpectedTool string
	ActualTool   string
	Passed       bool
	Errors       []string
}

// Metrics aggregates an evaluation run.
type Metrics struct {
	TotalTests    int
	PassedTests   int
	FailedTests   int
	Accuracy      float64
	ByCategory    map[string]*CategoryMetrics
	FailedDetails []string
}

// CategoryMetrics counts outcomes per category.
type CategoryMetrics struct {
	Total  int
	Passed int
	Failed int
}

func newMetrics() *Metrics {
	return &Metrics{ByCategory: make(map[string]*CategoryMetrics)}
}

func (m *Metrics) record(category string, passed bool, detail string) {
	m.TotalTests++
	if m.ByCategory[category] == nil {
		m.ByCategory[category] = &CategoryMetrics{}
	}
	m.ByCategory[category].Total++

	if passed {
		m.PassedTests++
		m.ByCategory[category].Passed++
	} else {
		m.FailedTests++
		m.ByCategory[category].Failed++
		m.FailedDetails = append(m.FailedDetails, detail)
	}
}

func (m *Metrics) finish() {
	if m.TotalTests > 0 {
		m.Accuracy = float64(m.PassedTests) / float64(m.TotalTests)
	}
}

// ToolSelector is implemented by an LLM harness or a mock under test.
type ToolSelector interface {
	// SelectTool returns the tool name and arguments for a natural language input.
	SelectTool(input string) (toolName string, args map[string]any, err error)
}

func loadSuite(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing JSON: %w", err)
	}
	return nil
}

// LoadToolSelectionSuite loads tool selection tests from a JSON file.
func LoadToolSelectionSuite(path string) (*ToolSelectionSuite, error) {
	var suite ToolSelectionSuite
	if err := loadSuite(path, &suite); err != nil {
		return nil, err
	}
	return &suite, nil
}

// LoadConfusionPairSuite loads confusion pair tests from a JSON file.
func LoadConfusionPairSuite(path string) (*ConfusionPairSuite, error) {
	var suite ConfusionPairSuite
	if err := loadSuite(path, &suite); err != nil {
		return nil, err
	}
	return &suite, nil
}

// LoadArgumentSuite loads argument correctness tests from a JSON file.
func LoadArgumentSuite(path string) (*ArgumentSuite, error) {
	var suite ArgumentSuite
	if err := loadSuite(path, &suite); err != nil {
		return nil, err
	}
	return &suite, nil
}

// LoadAllEvals loads all evaluation suites from a directory.
func LoadAllEvals(dir string) (*ToolSelectionSuite, *ConfusionPairSuite, *ArgumentSuite, error) {
	toolSelection, err := LoadToolSelectionSuite(filepath.Join(dir, "tool_selection.json"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading tool selection: %w", err)
	}

	confusionPairs, err := LoadConfusionPairSuite(filepath.Join(dir, "confusion_pairs.json"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading confusion pairs: %w", err)
	}

	arguments, err := LoadArgumentSuite(filepath.Join(dir, "argument_correctness.json"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading arguments: %w", err)
	}

	return toolSelection, confusionPairs, arguments, nil
}

// EvaluateToolSelection runs tool selection tests against a selector.
func EvaluateToolSelection(suite *ToolSelectionSuite, selector ToolSelector) (*Metrics, []Result) {
	metrics := newMetrics()
	var results []Result

	for _, test := range suite.Tests {
		actualTool, actualArgs, err := selector.SelectTool(test.Input)

		result := Result{
			TestID:       test.ID,
			Input:        test.Input,
			ExpectedTool: test.ExpectedTool,
			ActualTool:   actualTool,
			Passed:       true,
		}

		if err != nil {
			result.fail(fmt.Sprintf("selector error: %v", err))
		}
		if actualTool != test.ExpectedTool {
			result.fail(fmt.Sprintf("wrong tool: expected %s, got %s", test.ExpectedTool, actualTool))
		}
		for _, forbidden := range test.NotTools {
			if actualTool == forbidden {
				result.fail(fmt.Sprintf("selected forbidden tool: %s", forbidden))
			}
		}
		checkArgs(&result, test.ExpectedArgs, actualArgs)

		metrics.record(test.Category, result.Passed,
			fmt.Sprintf("[%s] %s: %s", test.ID, test.Input, strings.Join(result.Errors, "; ")))
		results = append(results, result)
	}

	metrics.finish()
	return metrics, results
}

// EvaluateConfusionPairs runs disambiguation tests against a selector.
func EvaluateConfusionPairs(suite *ConfusionPairSuite, selector ToolSelector) (*Metrics, []Result) {
	metrics := newMetrics()
	var results []Result

	for _, pair := range suite.Pairs {
		for _, test := range pair.Tests {
			actualTool, _, err := selector.SelectTool(test.Input)

			result := Result{
				TestID:       pair.ID,
				Input:        test.Input,
				ExpectedTool: test.Expected,
				ActualTool:   actualTool,
				Passed:       err == nil && actualTool == test.Expected,
			}

			metrics.record(pair.ID, result.Passed,
				fmt.Sprintf("[%s] %s: expected %s, got %s (%s)",
					pair.ID, test.Input, test.Expected, actualTool, test.Reason))
			results = append(results, result)
		}
	}

	metrics.finish()
	return metrics, results
}

// EvaluateArguments runs argument correctness tests against a selector.
func EvaluateArguments(suite *ArgumentSuite, selector ToolSelector) (*Metrics, []Result) {
	metrics := newMetrics()
	var results []Result

	for _, test := range suite.Tests {
		actualTool, actualArgs, err := selector.SelectTool(test.Input)

		result := Result{
			TestID:       test.ID,
			Input:        test.Input,
			ExpectedTool: test.Tool,
			ActualTool:   actualTool,
			Passed:       true,
		}

		switch {
		case err != nil:
			result.fail(fmt.Sprintf("selector error: %v", err))
		case actualTool != test.Tool:
			result.fail(fmt.Sprintf("wrong tool: expected %s, got %s", test.Tool, actualTool))
		default:
			for _, reqArg := range test.RequiredArgs {
				if _, exists := actualArgs[reqArg]; !exists {
					result.fail(fmt.Sprintf("missing required arg: %s", reqArg))
				}
			}
			checkArgs(&result, test.ExpectedArgs, actualArgs)
			for _, forbidden := range test.ForbiddenArgs {
				if _, exists := actualArgs[forbidden]; exists {
					result.fail(fmt.Sprintf("forbidden arg used: %s", forbidden))
				}
			}
		}

		metrics.record(test.Tool, result.Passed,
			fmt.Sprintf("[%s] %s: %s", test.ID, test.Input, strings.Join(result.Errors, "; ")))
		results = append(results, result)
	}

	metrics.finish()
	return metrics, results
}

func (r *Result) fail(msg string) {
	r.Passed = false
	r.Errors = append(r.Errors, msg)
}

func checkArgs(result *Result, expected, actual map[string]any) {
	for key, expectedValue := range expected {
		actualValue, exists := actual[key]
		if !exists {
			result.fail(fmt.Sprintf("missing arg %s (expected %v)", key, expectedValue))
		} else if !compareValues(expectedValue, actualValue) {
			result.fail(fmt.Sprintf("wrong arg %s: expected %v, got %v", key, expectedValue, actualValue))
		}
	}
}

// compareValues compares expected and actual values, tolerating the numeric
// type differences introduced by JSON decoding.
func compareValues(expected, actual any) bool {
	if expected == nil && actual == nil {
		return true
	}
	if expected == nil || actual == nil {
		return false
	}

	ev := reflect.ValueOf(expected)
	av := reflect.ValueOf(actual)

	switch ev.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if av.Kind() == reflect.Float64 {
			return float64(ev.Int()) == av.Float()
		}
	case reflect.Float32, reflect.Float64:
		if av.Kind() == reflect.Float64 {
			return ev.Float() == av.Float()
		}
	}

	if ev.Kind() == reflect.Slice && av.Kind() == reflect.Slice {
		if ev.Len() != av.Len() {
			return false
		}
		for i := 0; i < ev.Len(); i++ {
			if !compareValues(ev.Index(i).Interface(), av.Index(i).Interface()) {
				return false
			}
		}
		return true
	}

	return reflect.DeepEqual(expected, actual)
}

// FormatMetrics returns a human-readable summary of an evaluation run.
func FormatMetrics(metrics *Metrics, suiteName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n=== %s ===\n", suiteName)
	fmt.Fprintf(&b, "Total: %d tests\n", metrics.TotalTests)
	fmt.Fprintf(&b, "Passed: %d (%.1f%%)\n", metrics.PassedTests, metrics.Accuracy*100)
	fmt.Fprintf(&b, "Failed: %d\n", metrics.FailedTests)

	if len(metrics.ByCategory) > 0 {
		b.WriteString("\nBy Category:\n")
		for cat, m := range metrics.ByCategory {
			if m.Total > 0 {
				acc := float64(m.Passed) / float64(m.Total) * 100
				fmt.Fprintf(&b, "  %-25s: %d/%d (%.0f%%)\n", cat, m.Passed, m.Total, acc)
			}
		}
	}

	const maxDetails = 10
	if n := len(metrics.FailedDetails); n > 0 {
		details := metrics.FailedDetails
		if n > maxDetails {
			fmt.Fprintf(&b, "\nFailed Tests (showing first %d of %d):\n", maxDetails, n)
			details = details[:maxDetails]
		} else {
			b.WriteString("\nFailed Tests:\n")
		}
		for _, detail := range details {
			fmt.Fprintf(&b, "  - %s\n", detail)
		}
	}

	return b.String()
}
