package tools

import "github.com/statsig-community/statsig-mcp-server/internal/format"

// AllTools contains all tool specifications for the Statsig MCP server.
// Tools are organized by category for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// FEATURE GATE TOOLS
	// ==========================================================================
	{
		Name:     "list_gates",
		Method:   "ListGates",
		Title:    "List Feature Gates",
		Category: "gates",
		Shape:    format.ShapeList,
		Subject:  "Feature Gates",
		Description: `List all feature gates in the Statsig project.

USE WHEN: User asks "what gates exist", "show me all feature flags", "list gates".

NOT FOR: Checking whether a gate passes for a user (use check_feature_gate).

PARAMETERS:
- limit: Max gates to return (default: all)

RETURNS: Gate IDs, names, enabled state, and metadata.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_gate",
		Method:   "GetGate",
		Title:    "Get Feature Gate",
		Category: "gates",
		Shape:    format.ShapeItem,
		Subject:  "Feature Gate",
		Description: `Retrieve one feature gate's full configuration.

USE WHEN: User asks "show me gate X", "what rules does gate X have", "is gate X enabled".

NOT FOR: Evaluating the gate for a user (use check_feature_gate).

PARAMETERS:
- gate_id: Gate ID or name (required)

RETURNS: Gate configuration including rules, enabled state, and tags. Reports not found for unknown IDs.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "create_gate",
		Method:   "CreateGate",
		Title:    "Create Feature Gate",
		Category: "gates",
		Shape:    format.ShapeCreate,
		Subject:  "Feature Gate",
		Description: `Create a new feature gate.

USE WHEN: User says "create a gate", "add a feature flag named X".

PARAMETERS:
- name: Gate name (required)
- description: Human-readable description (optional)
- is_enabled: Start enabled (default false)

RETURNS: The created gate's configuration.`,
		OpenWorld: true,
	},
	{
		Name:     "update_gate",
		Method:   "UpdateGate",
		Title:    "Update Feature Gate",
		Category: "gates",
		Shape:    format.ShapeUpdate,
		Subject:  "Feature Gate",
		Description: `Update a feature gate's name, description, or enabled state.

USE WHEN: User says "enable gate X", "disable gate X", "rename gate X".

PARAMETERS:
- gate_id: Gate ID (required)
- name, description, is_enabled: Fields to change (at least one required)

RETURNS: Confirmation of the update.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "delete_gate",
		Method:   "DeleteGate",
		Title:    "Delete Feature Gate",
		Category: "gates",
		Shape:    format.ShapeDelete,
		Subject:  "Feature Gate",
		Description: `Permanently delete a feature gate.

USE WHEN: User says "delete gate X", "remove the feature flag X".

PARAMETERS:
- gate_id: Gate ID to delete (required)

RETURNS: Confirmation of the deletion.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// EXPERIMENT TOOLS
	// ==========================================================================
	{
		Name:     "list_experiments",
		Method:   "ListExperiments",
		Title:    "List Experiments",
		Category: "experiments",
		Shape:    format.ShapeList,
		Subject:  "Experiments",
		Description: `List all experiments in the Statsig project.

USE WHEN: User asks "what experiments are running", "show all A/B tests".

NOT FOR: Statistical results (use get_experiment_results).

PARAMETERS:
- limit: Max experiments to return (default: all)

RETURNS: Experiment IDs, names, status, and metadata.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_experiment",
		Method:   "GetExperiment",
		Title:    "Get Experiment",
		Category: "experiments",
		Shape:    format.ShapeItem,
		Subject:  "Experiment",
		Description: `Retrieve one experiment's full configuration.

USE WHEN: User asks "show me experiment X", "what groups does experiment X have".

NOT FOR: Statistical results (use get_experiment_results). Not for assigning a user (use evaluate_experiment).

PARAMETERS:
- experiment_id: Experiment ID or name (required)

RETURNS: Experiment configuration including groups, allocation, hypothesis, and status.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "create_experiment",
		Method:   "CreateExperiment",
		Title:    "Create Experiment",
		Category: "experiments",
		Shape:    format.ShapeCreate,
		Subject:  "Experiment",
		Description: `Create a new experiment.

USE WHEN: User says "create an experiment", "set up an A/B test named X".

PARAMETERS:
- name: Experiment name (required)
- description: Human-readable description (optional)
- hypothesis: Hypothesis being tested (optional)

RETURNS: The created experiment's configuration.`,
		OpenWorld: true,
	},
	{
		Name:     "update_experiment",
		Method:   "UpdateExperiment",
		Title:    "Update Experiment",
		Category: "experiments",
		Shape:    format.ShapeUpdate,
		Subject:  "Experiment",
		Description: `Update an experiment's name, description, hypothesis, or status.

USE WHEN: User says "start experiment X", "mark experiment X decision made", "update the hypothesis".

PARAMETERS:
- experiment_id: Experiment ID (required)
- name, description, hypothesis, status: Fields to change (at least one required)

RETURNS: Confirmation of the update.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "delete_experiment",
		Method:   "DeleteExperiment",
		Title:    "Delete Experiment",
		Category: "experiments",
		Shape:    format.ShapeDelete,
		Subject:  "Experiment",
		Description: `Permanently delete an experiment.

USE WHEN: User says "delete experiment X", "remove the A/B test X".

PARAMETERS:
- experiment_id: Experiment ID to delete (required)

RETURNS: Confirmation of the deletion.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// DYNAMIC CONFIG TOOLS
	// ==========================================================================
	{
		Name:     "list_dynamic_configs",
		Method:   "ListDynamicConfigs",
		Title:    "List Dynamic Configs",
		Category: "dynamic_configs",
		Shape:    format.ShapeList,
		Subject:  "Dynamic Configs",
		Description: `List all dynamic configs in the Statsig project.

USE WHEN: User asks "what configs exist", "show all dynamic configs".

PARAMETERS:
- limit: Max configs to return (default: all)

RETURNS: Config IDs, names, and metadata.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_dynamic_config",
		Method:   "GetDynamicConfig",
		Title:    "Get Dynamic Config",
		Category: "dynamic_configs",
		Shape:    format.ShapeItem,
		Subject:  "Dynamic Config",
		Description: `Retrieve one dynamic config's definition from the console.

USE WHEN: User asks "show me config X", "what is the default value of config X".

NOT FOR: Evaluating the config for a user (use evaluate_dynamic_config).

PARAMETERS:
- config_id: Config ID or name (required)

RETURNS: Config definition including default value and rules.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "create_dynamic_config",
		Method:   "CreateDynamicConfig",
		Title:    "Create Dynamic Config",
		Category: "dynamic_configs",
		Shape:    format.ShapeCreate,
		Subject:  "Dynamic Config",
		Description: `Create a new dynamic config.

USE WHEN: User says "create a config", "add a dynamic config named X".

PARAMETERS:
- name: Config name (required)
- description: Human-readable description (optional)

RETURNS: The created config's definition.`,
		OpenWorld: true,
	},
	{
		Name:     "update_dynamic_config",
		Method:   "UpdateDynamicConfig",
		Title:    "Update Dynamic Config",
		Category: "dynamic_configs",
		Shape:    format.ShapeUpdate,
		Subject:  "Dynamic Config",
		Description: `Update a dynamic config's name, description, or default value.

USE WHEN: User says "change config X's default value", "rename config X".

PARAMETERS:
- config_id: Config ID (required)
- name, description, default_value: Fields to change (at least one required)

RETURNS: Confirmation of the update.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "delete_dynamic_config",
		Method:   "DeleteDynamicConfig",
		Title:    "Delete Dynamic Config",
		Category: "dynamic_configs",
		Shape:    format.ShapeDelete,
		Subject:  "Dynamic Config",
		Description: `Permanently delete a dynamic config.

USE WHEN: User says "delete config X".

PARAMETERS:
- config_id: Config ID to delete (required)

RETURNS: Confirmation of the deletion.`,
		Destructive: true,
		Idempotent:  true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// SEGMENT TOOLS
	// ==========================================================================
	{
		Name:     "list_segments",
		Method:   "ListSegments",
		Title:    "List Segments",
		Category: "segments",
		Shape:    format.ShapeList,
		Subject:  "Segments",
		Description: `List all user segments in the Statsig project.

USE WHEN: User asks "what segments exist", "show all user segments".

PARAMETERS:
- limit: Max segments to return (default: all)

RETURNS: Segment IDs, names, types, and metadata.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_segment",
		Method:   "GetSegment",
		Title:    "Get Segment",
		Category: "segments",
		Shape:    format.ShapeItem,
		Subject:  "Segment",
		Description: `Retrieve one segment's definition.

USE WHEN: User asks "show me segment X", "who is in segment X".

PARAMETERS:
- segment_id: Segment ID or name (required)

RETURNS: Segment definition including type and rules.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "create_segment",
		Method:   "CreateSegment",
		Title:    "Create Segment",
		Category: "segments",
		Shape:    format.ShapeCreate,
		Subject:  "Segment",
		Description: `Create a new user segment.

USE WHEN: User says "create a segment named X".

PARAMETERS:
- name: Segment name (required)
- description: Human-readable description (optional)

RETURNS: The created segment's definition.`,
		OpenWorld: true,
	},

	// ==========================================================================
	// METRIC TOOLS
	// ==========================================================================
	{
		Name:     "list_metrics",
		Method:   "ListMetrics",
		Title:    "List Metrics",
		Category: "metrics",
		Shape:    format.ShapeList,
		Subject:  "Metrics",
		Description: `List all metrics tracked in the Statsig project.

USE WHEN: User asks "what metrics exist", "show all metrics".

NOT FOR: Statistical analysis of a metric in an experiment (use get_metric_details).

PARAMETERS:
- limit: Max metrics to return (default: all)

RETURNS: Metric IDs, names, types, and metadata.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_metric",
		Method:   "GetMetric",
		Title:    "Get Metric",
		Category: "metrics",
		Shape:    format.ShapeItem,
		Subject:  "Metric",
		Description: `Retrieve one metric's definition.

USE WHEN: User asks "show me metric X", "how is metric X defined".

NOT FOR: Experiment impact analysis (use get_metric_details).

PARAMETERS:
- metric_id: Metric ID or name (required)

RETURNS: Metric definition including type and sources.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// PROJECT TOOLS
	// ==========================================================================
	{
		Name:     "list_audit_logs",
		Method:   "ListAuditLogs",
		Title:    "List Audit Logs",
		Category: "project",
		Shape:    format.ShapeList,
		Subject:  "Audit Logs",
		Description: `List recent configuration changes in the project.

USE WHEN: User asks "who changed X", "show recent changes", "audit history".

PARAMETERS:
- limit: Max entries to return (default 20)
- from, to: Date range filters, YYYY-MM-DD (optional)

RETURNS: Change entries with actor, action, and timestamp.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "list_target_apps",
		Method:   "ListTargetApps",
		Title:    "List Target Apps",
		Category: "project",
		Shape:    format.ShapeList,
		Subject:  "Target Apps",
		Description: `List target apps configured in the project.

USE WHEN: User asks "what target apps exist", "show app targeting".

RETURNS: Target app IDs and names.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_target_app",
		Method:   "GetTargetApp",
		Title:    "Get Target App",
		Category: "project",
		Shape:    format.ShapeItem,
		Subject:  "Target App",
		Description: `Retrieve one target app's configuration.

USE WHEN: User asks "show me target app X".

PARAMETERS:
- app_id: Target app ID or name (required)

RETURNS: Target app configuration.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "list_api_keys",
		Method:   "ListAPIKeys",
		Title:    "List API Keys",
		Category: "project",
		Shape:    format.ShapeList,
		Subject:  "API Keys",
		Description: `List API keys in the project.

USE WHEN: User asks "what API keys exist", "show the project's keys".

RETURNS: Key metadata (type, scopes, creation date). Secret values are never returned.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "query_events",
		Method:   "QueryEvents",
		Title:    "Query Event Types",
		Category: "project",
		Shape:    format.ShapeItem,
		Subject:  "Event Types",
		Description: `Query event type definitions seen by the project.

USE WHEN: User asks "what events are tracked", "show me the purchase event".

NOT FOR: Logging a new event (use log_event). These are event type definitions, not per-user event history.

PARAMETERS:
- event_name: Specific event type to look up (omit to list all)
- limit: Max event types when listing (default 10)

RETURNS: Event type details or a list of event types.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_user_by_email",
		Method:   "GetUserByEmail",
		Title:    "Get Team Member",
		Category: "project",
		Shape:    format.ShapeItem,
		Subject:  "Team Member",
		Description: `Look up a Statsig project team member by email.

USE WHEN: User asks "is X on the team", "find the team member with email X".

NOT FOR: End users of your application (team members are console users).

PARAMETERS:
- email: Team member email address (required)

RETURNS: Team member details, or not found.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "list_team_users",
		Method:   "ListTeamUsers",
		Title:    "List Team Members",
		Category: "project",
		Shape:    format.ShapeList,
		Subject:  "Team Members",
		Description: `List all Statsig project team members.

USE WHEN: User asks "who is on the team", "list project members".

RETURNS: Team member emails, names, and roles.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// ANALYTICS TOOLS
	// ==========================================================================
	{
		Name:     "get_experiment_results",
		Method:   "GetExperimentResults",
		Title:    "Get Experiment Results",
		Category: "analytics",
		Shape:    format.ShapeReport,
		Subject:  "Experiment Results",
		Description: `Retrieve statistical results for an experiment.

USE WHEN: User asks "how is experiment X doing", "is experiment X significant", "show results for X".

NOT FOR: Experiment configuration (use get_experiment).

PARAMETERS:
- experiment_id: Experiment ID (required)
- include_metrics: Include per-metric breakdowns (default false)

RETURNS: Statistical results with p-values, deltas, and confidence intervals.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_experiment_pulse",
		Method:   "GetExperimentPulse",
		Title:    "Get Experiment Pulse",
		Category: "analytics",
		Shape:    format.ShapeReport,
		Subject:  "Experiment Pulse",
		Description: `Retrieve pulse health data for a running experiment.

USE WHEN: User asks "is experiment X healthy", "show the pulse for X", "any regressions in X".

PARAMETERS:
- experiment_id: Experiment ID (required)

RETURNS: Pulse metrics with exposure counts and health indicators.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_metric_details",
		Method:   "GetMetricDetails",
		Title:    "Get Metric Analysis",
		Category: "analytics",
		Shape:    format.ShapeReport,
		Subject:  "Metric Analysis",
		Description: `Retrieve a metric's statistical analysis, optionally scoped to one experiment.

USE WHEN: User asks "how did experiment Y move metric X", "analyze metric X".

NOT FOR: Metric definitions (use get_metric).

PARAMETERS:
- metric_id: Metric ID (required)
- experiment_id: Scope the analysis to one experiment (optional)

RETURNS: Metric analysis with deltas and significance.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "export_pulse_report",
		Method:   "ExportPulseReport",
		Title:    "Export Pulse Report",
		Category: "analytics",
		Shape:    format.ShapeReport,
		Subject:  "Pulse Report",
		Description: `Export a full pulse report for an experiment.

USE WHEN: User asks "export the results of X", "give me the full report for X as CSV".

PARAMETERS:
- experiment_id: Experiment ID (required)
- format: "json" (default) or "csv"

RETURNS: The exported report payload.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// EVALUATION TOOLS
	// ==========================================================================
	{
		Name:     "check_feature_gate",
		Method:   "CheckFeatureGate",
		Title:    "Check Feature Gate",
		Category: "evaluation",
		Shape:    format.ShapeItem,
		Subject:  "Gate Check",
		Description: `Check whether a feature gate passes for a specific user.

USE WHEN: User asks "is gate X on for user Y", "would user Y see feature X".

NOT FOR: Gate configuration (use get_gate).

PARAMETERS:
- user_id: User identifier (required)
- gate_name: Gate to check (required)
- user_email, user_country, custom_attributes, ...: Optional targeting attributes

RETURNS: Pass/fail value with the matched rule. Backend failures return the default (false).`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "evaluate_dynamic_config",
		Method:   "EvaluateDynamicConfig",
		Title:    "Evaluate Dynamic Config",
		Category: "evaluation",
		Shape:    format.ShapeItem,
		Subject:  "Config Evaluation",
		Description: `Evaluate a dynamic config for a specific user.

USE WHEN: User asks "what config values does user Y get for X".

NOT FOR: Config definitions (use get_dynamic_config).

PARAMETERS:
- user_id: User identifier (required)
- config_name: Config to evaluate (required)
- user_email, user_country, custom_attributes, ...: Optional targeting attributes

RETURNS: The resolved value object with the matched rule. Backend failures return an empty value.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "evaluate_experiment",
		Method:   "EvaluateExperiment",
		Title:    "Evaluate Experiment",
		Category: "evaluation",
		Shape:    format.ShapeItem,
		Subject:  "Experiment Assignment",
		Description: `Get a user's experiment group assignment and parameters.

USE WHEN: User asks "which group is user Y in for experiment X", "what parameters does Y get".

NOT FOR: Experiment results (use get_experiment_results).

PARAMETERS:
- user_id: User identifier (required)
- experiment_name: Experiment to evaluate (required)
- user_email, user_country, custom_attributes, ...: Optional targeting attributes

RETURNS: Assigned group and parameters. Backend failures return empty parameters.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "get_layer",
		Method:   "GetLayer",
		Title:    "Get Layer Values",
		Category: "evaluation",
		Shape:    format.ShapeItem,
		Subject:  "Layer Evaluation",
		Description: `Evaluate a layer for a specific user.

USE WHEN: User asks "what layer values does user Y get for X", "which experiment in layer X is Y allocated to".

PARAMETERS:
- user_id: User identifier (required)
- layer_name: Layer to evaluate (required)
- user_email, user_country, custom_attributes, ...: Optional targeting attributes

RETURNS: Layer parameters and the allocated experiment, if any. Backend failures return empty parameters.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "log_event",
		Method:   "LogEvent",
		Title:    "Log Event",
		Category: "evaluation",
		Shape:    format.ShapeItem,
		Subject:  "Event Log",
		Description: `Log a custom event for a user.

USE WHEN: User says "log a purchase event for user Y", "record event X".

NOT FOR: Querying existing event types (use query_events).

PARAMETERS:
- user_id: User identifier (required)
- event_name: Event name (required)
- value: Event value, string or number (optional)
- metadata: Key/value event metadata (optional)

RETURNS: Whether the event was accepted.`,
		OpenWorld: true,
	},
}
