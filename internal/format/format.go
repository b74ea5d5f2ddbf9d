// Package format renders result envelopes as human-readable text.
// Rendering is a pure function of its inputs: no backend calls, no side
// effects, and identical envelopes always produce identical text.
package format

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Shape is the semantic category of a tool result. It selects the text layout.
type Shape string

const (
	ShapeList   Shape = "list"
	ShapeItem   Shape = "item"
	ShapeCreate Shape = "create"
	ShapeUpdate Shape = "update"
	ShapeDelete Shape = "delete"
	ShapeReport Shape = "report"
)

// Envelope is the uniform result wrapper rendered by this package.
// A non-empty Error marks a failed call regardless of Data contents.
type Envelope struct {
	Success bool
	Data    map[string]any
	Error   string
}

// Render converts an envelope into display text for the given shape.
// subject is the human-readable resource label, e.g. "Feature Gates".
func Render(shape Shape, subject string, env Envelope) string {
	if !env.Success || env.Error != "" {
		return renderError(subject, env.Error)
	}

	switch shape {
	case ShapeList:
		return renderList(subject, env.Data)
	case ShapeItem:
		return renderItem(subject, env.Data)
	case ShapeCreate:
		return renderOutcome(subject, "created", env.Data)
	case ShapeUpdate:
		return renderOutcome(subject, "updated", env.Data)
	case ShapeDelete:
		return renderOutcome(subject, "deleted", env.Data)
	case ShapeReport:
		return renderReport(subject, env.Data)
	default:
		return renderItem(subject, env.Data)
	}
}

func renderError(subject, msg string) string {
	if msg == "" {
		msg = "unknown error"
	}
	return fmt.Sprintf("Error: %s: %s", subject, msg)
}

// renderList expects the entries under an "items" key and renders every other
// top-level key after the enumeration so no field is lost.
func renderList(subject string, data map[string]any) string {
	items, _ := data["items"].([]any)

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d found)\n", subject, len(items))

	if len(items) == 0 {
		b.WriteString("No results.\n")
	}
	for i, item := range items {
		if m, ok := item.(map[string]any); ok {
			fmt.Fprintf(&b, "%d. %s\n", i+1, entryTitle(m))
			writeFields(&b, m, "   ", []string{"id", "name"})
		} else {
			fmt.Fprintf(&b, "%d. %s\n", i+1, formatValue("", item))
		}
	}

	writeFields(&b, data, "", []string{"items"})
	return b.String()
}

// renderItem renders a single resource. Data carrying found=false turns into
// a not-found message; otherwise every key is rendered.
func renderItem(subject string, data map[string]any) string {
	if found, ok := data["found"].(bool); ok && !found {
		msg, _ := data["message"].(string)
		if msg == "" {
			msg = subject + " not found"
		}
		return msg
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", subject)
	writeFields(&b, data, "", []string{"found"})
	return b.String()
}

func renderOutcome(subject, verb string, data map[string]any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s successfully.\n", subject, verb)
	if msg, ok := data["message"].(string); ok && msg != "" {
		b.WriteString(msg + "\n")
	}
	writeFields(&b, data, "", []string{"message", "success"})
	return b.String()
}

// renderReport renders analytics payloads, applying numeric formatting to
// statistical fields (p-values, percentages, confidence bounds).
func renderReport(subject string, data map[string]any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", subject)
	writeFields(&b, data, "", nil)
	return b.String()
}

// entryTitle picks a display title for a list entry.
func entryTitle(m map[string]any) string {
	if name, ok := m["name"].(string); ok && name != "" {
		if id, ok := m["id"].(string); ok && id != "" && id != name {
			return fmt.Sprintf("%s (%s)", name, id)
		}
		return name
	}
	if id, ok := m["id"].(string); ok && id != "" {
		return id
	}
	return "(unnamed)"
}

// writeFields renders the map's keys in sorted order, skipping the given
// keys. Nested maps and slices are serialized as compact JSON, which keeps
// ordering deterministic.
func writeFields(b *strings.Builder, m map[string]any, indent string, skip []string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		if contains(skip, k) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(b, "%s- %s: %s\n", indent, k, formatValue(k, m[k]))
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// formatValue renders a single value. Missing optionals render as "N/A";
// statistical fields get fixed-precision formatting keyed off the field name.
func formatValue(key string, v any) string {
	switch val := v.(type) {
	case nil:
		return "N/A"
	case string:
		if val == "" {
			return "N/A"
		}
		return val
	case bool:
		return fmt.Sprintf("%t", val)
	case float64:
		return formatNumber(key, val)
	case int:
		return fmt.Sprintf("%d", val)
	case int64:
		return fmt.Sprintf("%d", val)
	case map[string]any, []any:
		raw, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(raw)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// formatNumber applies statistical formatting conventions by field name.
func formatNumber(key string, f float64) string {
	lower := strings.ToLower(key)
	switch {
	case strings.Contains(lower, "p_value") || strings.Contains(lower, "pvalue"):
		return fmt.Sprintf("%.4f", f)
	case strings.Contains(lower, "percent") || strings.Contains(lower, "_pct") || strings.HasSuffix(lower, "rate"):
		return fmt.Sprintf("%.2f%%", f)
	case strings.Contains(lower, "confidence") || strings.Contains(lower, "interval") || strings.Contains(lower, "delta"):
		return fmt.Sprintf("%.4f", f)
	case f == math.Trunc(f) && math.Abs(f) < 1e15:
		return fmt.Sprintf("%d", int64(f))
	default:
		return fmt.Sprintf("%g", f)
	}
}
