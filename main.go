// Statsig MCP Server - A Model Context Protocol server for Statsig
// feature management: gates, experiments, dynamic configs, analytics,
// and live evaluation.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/statsig-community/statsig-mcp-server/internal/console"
	"github.com/statsig-community/statsig-mcp-server/internal/evaluate"
	"github.com/statsig-community/statsig-mcp-server/tools"
	"github.com/statsig-community/statsig-mcp-server/tracing"
)

const (
	ServerName    = "statsig-mcp-server"
	ServerVersion = "1.0.0"
)

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()

	// Initialize tracing
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		logger.Warn("Failed to initialize tracing, continuing without it", "error", err)
		shutdownTracing = func(context.Context) error { return nil }
	}
	defer shutdownTracing(ctx)

	// Console credential is required; without it the server has nothing to serve.
	consoleCfg, err := console.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	consoleClient := console.NewClient(consoleCfg, logger)
	if err := consoleClient.Initialize(); err != nil {
		log.Fatalf("Failed to initialize console client: %v", err)
	}
	defer consoleClient.Close()

	// Evaluation credential is optional; without it only console tools register.
	var evalClient *evaluate.Client
	if evalCfg, err := evaluate.LoadConfig(); err != nil {
		logger.Warn("Evaluation tools disabled", "reason", err)
	} else {
		evalClient = evaluate.NewClient(evalCfg, logger)
		if err := evalClient.Initialize(); err != nil {
			log.Fatalf("Failed to initialize evaluation client: %v", err)
		}
		defer evalClient.Close()
	}

	// Optional Prometheus endpoint
	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		go serveMetrics(logger, addr)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `Statsig MCP Server provides tools for managing and evaluating Statsig
feature gates, experiments, dynamic configs, segments, and metrics.

Tool categories:
- Feature gates: list_gates, get_gate, create_gate, update_gate, delete_gate
- Experiments: list_experiments, get_experiment, create_experiment, update_experiment, delete_experiment
- Dynamic configs: list_dynamic_configs, get_dynamic_config, create_dynamic_config, update_dynamic_config, delete_dynamic_config
- Segments: list_segments, get_segment, create_segment
- Metrics: list_metrics, get_metric
- Project: list_audit_logs, list_target_apps, get_target_app, list_api_keys, query_events, get_user_by_email, list_team_users
- Analytics: get_experiment_results, get_experiment_pulse, get_metric_details, export_pulse_report
- Evaluation: check_feature_gate, evaluate_dynamic_config, evaluate_experiment, get_layer, log_event

Configure via environment variables:
- STATSIG_CONSOLE_API_KEY: Console API key (required)
- STATSIG_SERVER_SECRET_KEY: Server secret key (enables evaluation tools)
- STATSIG_ENVIRONMENT: Environment tier for evaluations (default: development)`,
	})

	registry := tools.NewHandlerRegistry(consoleClient, evalClient, logger)
	registry.RegisterAll(server)

	logger.Info("Starting Statsig MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"console_url", consoleCfg.BaseURL,
		"evaluation_enabled", evalClient != nil,
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// serveMetrics exposes Prometheus metrics on a separate listener so the
// stdio transport stays untouched.
func serveMetrics(logger *slog.Logger, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	logger.Info("Serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("Metrics server stopped", "error", err)
	}
}
