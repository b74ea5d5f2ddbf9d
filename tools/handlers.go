package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/statsig-community/statsig-mcp-server/internal/console"
	"github.com/statsig-community/statsig-mcp-server/internal/evaluate"
	"github.com/statsig-community/statsig-mcp-server/internal/format"
	"github.com/statsig-community/statsig-mcp-server/metrics"
	"github.com/statsig-community/statsig-mcp-server/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	consoleClient *console.Client
	evalClient    *evaluate.Client
	logger        *slog.Logger
}

// NewHandlerRegistry creates a new handler registry. evalClient may be nil,
// in which case evaluation tools are not registered.
func NewHandlerRegistry(consoleClient *console.Client, evalClient *evaluate.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		consoleClient: consoleClient,
		evalClient:    evalClient,
		logger:        logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	registered := 0
	for _, spec := range AllTools {
		if spec.Category == "evaluation" && h.evalClient == nil {
			h.logger.Warn("Evaluation client not configured, tool not registered", "tool", spec.Name)
			continue
		}
		h.registerByName(server, spec)
		registered++
	}
	h.logger.Info("Registered all tools", "count", registered)
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	// Feature gates
	case "ListGates":
		h.register(server, tool, spec, h.consoleClient.ListGatesMCP)
	case "GetGate":
		h.register(server, tool, spec, h.consoleClient.GetGateMCP)
	case "CreateGate":
		h.register(server, tool, spec, h.consoleClient.CreateGateMCP)
	case "UpdateGate":
		h.register(server, tool, spec, h.consoleClient.UpdateGateMCP)
	case "DeleteGate":
		h.register(server, tool, spec, h.consoleClient.DeleteGateMCP)

	// Experiments
	case "ListExperiments":
		h.register(server, tool, spec, h.consoleClient.ListExperimentsMCP)
	case "GetExperiment":
		h.register(server, tool, spec, h.consoleClient.GetExperimentMCP)
	case "CreateExperiment":
		h.register(server, tool, spec, h.consoleClient.CreateExperimentMCP)
	case "UpdateExperiment":
		h.register(server, tool, spec, h.consoleClient.UpdateExperimentMCP)
	case "DeleteExperiment":
		h.register(server, tool, spec, h.consoleClient.DeleteExperimentMCP)

	// Dynamic configs
	case "ListDynamicConfigs":
		h.register(server, tool, spec, h.consoleClient.ListDynamicConfigsMCP)
	case "GetDynamicConfig":
		h.register(server, tool, spec, h.consoleClient.GetDynamicConfigMCP)
	case "CreateDynamicConfig":
		h.register(server, tool, spec, h.consoleClient.CreateDynamicConfigMCP)
	case "UpdateDynamicConfig":
		h.register(server, tool, spec, h.consoleClient.UpdateDynamicConfigMCP)
	case "DeleteDynamicConfig":
		h.register(server, tool, spec, h.consoleClient.DeleteDynamicConfigMCP)

	// Segments
	case "ListSegments":
		h.register(server, tool, spec, h.consoleClient.ListSegmentsMCP)
	case "GetSegment":
		h.register(server, tool, spec, h.consoleClient.GetSegmentMCP)
	case "CreateSegment":
		h.register(server, tool, spec, h.consoleClient.CreateSegmentMCP)

	// Metrics
	case "ListMetrics":
		h.register(server, tool, spec, h.consoleClient.ListMetricsMCP)
	case "GetMetric":
		h.register(server, tool, spec, h.consoleClient.GetMetricMCP)

	// Project
	case "ListAuditLogs":
		h.register(server, tool, spec, h.consoleClient.ListAuditLogsMCP)
	case "ListTargetApps":
		h.register(server, tool, spec, h.consoleClient.ListTargetAppsMCP)
	case "GetTargetApp":
		h.register(server, tool, spec, h.consoleClient.GetTargetAppMCP)
	case "ListAPIKeys":
		h.register(server, tool, spec, h.consoleClient.ListAPIKeysMCP)
	case "QueryEvents":
		h.register(server, tool, spec, h.consoleClient.QueryEventsMCP)
	case "GetUserByEmail":
		h.register(server, tool, spec, h.consoleClient.GetUserByEmailMCP)
	case "ListTeamUsers":
		h.register(server, tool, spec, h.consoleClient.ListTeamUsersMCP)

	// Analytics
	case "GetExperimentResults":
		h.register(server, tool, spec, h.consoleClient.GetExperimentResultsMCP)
	case "GetExperimentPulse":
		h.register(server, tool, spec, h.consoleClient.GetExperimentPulseMCP)
	case "GetMetricDetails":
		h.register(server, tool, spec, h.consoleClient.GetMetricDetailsMCP)
	case "ExportPulseReport":
		h.register(server, tool, spec, h.consoleClient.ExportPulseReportMCP)

	// Evaluation
	case "CheckFeatureGate":
		h.register(server, tool, spec, h.evalClient.CheckFeatureGateMCP)
	case "EvaluateDynamicConfig":
		h.register(server, tool, spec, h.evalClient.EvaluateDynamicConfigMCP)
	case "EvaluateExperiment":
		h.register(server, tool, spec, h.evalClient.EvaluateExperimentMCP)
	case "GetLayer":
		h.register(server, tool, spec, h.evalClient.GetLayerMCP)
	case "LogEvent":
		h.register(server, tool, spec, h.evalClient.LogEventMCP)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the client method with panic recovery, metrics, tracing, logging,
// and text rendering of the typed result.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)

		text := format.Render(spec.Shape, spec.Subject, format.Envelope{
			Success: true,
			Data:    toMap(result),
		})
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, result, nil
	})
}

// toMap converts a typed result into the generic map the renderer consumes.
// The JSON round trip keeps rendered text and structured content consistent.
func toMap(result any) map[string]any {
	raw, err := json.Marshal(result)
	if err != nil {
		return map[string]any{}
	}
	m := map[string]any{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{}
	}
	return m
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "category", spec.Category}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case console.GetGateArgs:
		attrs = append(attrs, "gate_id", a.GateID)
	case console.UpdateGateArgs:
		attrs = append(attrs, "gate_id", a.GateID)
	case console.DeleteGateArgs:
		attrs = append(attrs, "gate_id", a.GateID)
	case console.GetExperimentArgs:
		attrs = append(attrs, "experiment_id", a.ExperimentID)
	case console.UpdateExperimentArgs:
		attrs = append(attrs, "experiment_id", a.ExperimentID)
	case console.DeleteExperimentArgs:
		attrs = append(attrs, "experiment_id", a.ExperimentID)
	case console.GetDynamicConfigArgs:
		attrs = append(attrs, "config_id", a.ConfigID)
	case console.UpdateDynamicConfigArgs:
		attrs = append(attrs, "config_id", a.ConfigID)
	case console.DeleteDynamicConfigArgs:
		attrs = append(attrs, "config_id", a.ConfigID)
	case console.GetSegmentArgs:
		attrs = append(attrs, "segment_id", a.SegmentID)
	case console.GetMetricArgs:
		attrs = append(attrs, "metric_id", a.MetricID)
	case console.GetTargetAppArgs:
		attrs = append(attrs, "app_id", a.AppID)
	case console.QueryEventsArgs:
		attrs = append(attrs, "event_name", a.EventName)
	case console.GetUserByEmailArgs:
		attrs = append(attrs, "email", a.Email)
	case console.GetExperimentResultsArgs:
		attrs = append(attrs, "experiment_id", a.ExperimentID)
	case console.GetExperimentPulseArgs:
		attrs = append(attrs, "experiment_id", a.ExperimentID)
	case console.GetMetricDetailsArgs:
		attrs = append(attrs, "metric_id", a.MetricID)
	case console.ExportPulseReportArgs:
		attrs = append(attrs, "experiment_id", a.ExperimentID)
	case evaluate.CheckFeatureGateArgs:
		attrs = append(attrs, "user_id", a.UserID, "gate_name", a.GateName)
	case evaluate.EvaluateDynamicConfigArgs:
		attrs = append(attrs, "user_id", a.UserID, "config_name", a.ConfigName)
	case evaluate.EvaluateExperimentArgs:
		attrs = append(attrs, "user_id", a.UserID, "experiment_name", a.ExperimentName)
	case evaluate.GetLayerArgs:
		attrs = append(attrs, "user_id", a.UserID, "layer_name", a.LayerName)
	case evaluate.LogEventArgs:
		attrs = append(attrs, "user_id", a.UserID, "event_name", a.EventName)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case console.ListResult:
		attrs = append(attrs, "count", r.Count)
	case console.ItemResult:
		attrs = append(attrs, "found", r.Found)
	case console.QueryEventsResult:
		attrs = append(attrs, "total_found", r.TotalFound)
	case console.GetUserResult:
		attrs = append(attrs, "found", r.Found)
	case evaluate.GateEvaluation:
		attrs = append(attrs, "value", r.Value, "rule_id", r.RuleID)
	case evaluate.ExperimentEvaluation:
		attrs = append(attrs, "group_name", r.GroupName)
	case evaluate.LayerEvaluation:
		attrs = append(attrs, "allocated_experiment", r.AllocatedExperimentName)
	case evaluate.EventLogResult:
		attrs = append(attrs, "success", r.Success)
	}

	h.logger.Info("Tool executed", attrs...)
}

// Convenience function to call the generic register with method receiver
func (h *HandlerRegistry) register(server *mcp.Server, tool *mcp.Tool, spec ToolSpec, method any) {
	switch m := method.(type) {
	// Feature gates
	case func(context.Context, console.ListGatesArgs) (console.ListResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.GetGateArgs) (console.ItemResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.CreateGateArgs) (console.CreateResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.UpdateGateArgs) (console.UpdateResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.DeleteGateArgs) (console.DeleteResult, error):
		register(h, server, tool, spec, m)

	// Experiments
	case func(context.Context, console.ListExperimentsArgs) (console.ListResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.GetExperimentArgs) (console.ItemResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.CreateExperimentArgs) (console.CreateResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.UpdateExperimentArgs) (console.UpdateResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.DeleteExperimentArgs) (console.DeleteResult, error):
		register(h, server, tool, spec, m)

	// Dynamic configs
	case func(context.Context, console.ListDynamicConfigsArgs) (console.ListResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.GetDynamicConfigArgs) (console.ItemResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.CreateDynamicConfigArgs) (console.CreateResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.UpdateDynamicConfigArgs) (console.UpdateResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.DeleteDynamicConfigArgs) (console.DeleteResult, error):
		register(h, server, tool, spec, m)

	// Segments
	case func(context.Context, console.ListSegmentsArgs) (console.ListResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.GetSegmentArgs) (console.ItemResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.CreateSegmentArgs) (console.CreateResult, error):
		register(h, server, tool, spec, m)

	// Metrics
	case func(context.Context, console.ListMetricsArgs) (console.ListResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.GetMetricArgs) (console.ItemResult, error):
		register(h, server, tool, spec, m)

	// Project
	case func(context.Context, console.ListAuditLogsArgs) (console.ListResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.ListTargetAppsArgs) (console.ListResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.GetTargetAppArgs) (console.ItemResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.ListAPIKeysArgs) (console.ListResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.QueryEventsArgs) (console.QueryEventsResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.GetUserByEmailArgs) (console.GetUserResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.ListTeamUsersArgs) (console.ListResult, error):
		register(h, server, tool, spec, m)

	// Analytics
	case func(context.Context, console.GetExperimentResultsArgs) (console.ReportResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.GetExperimentPulseArgs) (console.ReportResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.GetMetricDetailsArgs) (console.ReportResult, error):
		register(h, server, tool, spec, m)
	case func(context.Context, console.ExportPulseReportArgs) (console.ReportResult, error):
		register(h, server, tool, spec, m)

	// Evaluation
	case func(context.Context, evaluate.CheckFeatureGateArgs) (evaluate.GateEvaluation, error):
		register(h, server, tool, spec, m)
	case func(context.Context, evaluate.EvaluateDynamicConfigArgs) (evaluate.ConfigEvaluation, error):
		register(h, server, tool, spec, m)
	case func(context.Context, evaluate.EvaluateExperimentArgs) (evaluate.ExperimentEvaluation, error):
		register(h, server, tool, spec, m)
	case func(context.Context, evaluate.GetLayerArgs) (evaluate.LayerEvaluation, error):
		register(h, server, tool, spec, m)
	case func(context.Context, evaluate.LogEventArgs) (evaluate.EventLogResult, error):
		register(h, server, tool, spec, m)

	default:
		h.logger.Error("Unknown method type, tool not registered", "tool", spec.Name)
	}
}
