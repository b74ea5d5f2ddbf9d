package evaluate

// MCP argument structs and wrappers. Each wrapper validates inputs, runs the
// evaluation, and returns the typed result the tool layer renders.

import (
	"context"
)

// CheckFeatureGateArgs contains parameters for a feature gate check.
type CheckFeatureGateArgs struct {
	UserAttributes
	GateName string `json:"gate_name" jsonschema:"required" jsonschema_description:"Feature gate name to check"`
}

// EvaluateDynamicConfigArgs contains parameters for a dynamic config evaluation.
type EvaluateDynamicConfigArgs struct {
	UserAttributes
	ConfigName string `json:"config_name" jsonschema:"required" jsonschema_description:"Dynamic config name to evaluate"`
}

// EvaluateExperimentArgs contains parameters for an experiment assignment.
type EvaluateExperimentArgs struct {
	UserAttributes
	ExperimentName string `json:"experiment_name" jsonschema:"required" jsonschema_description:"Experiment name to evaluate"`
}

// GetLayerArgs contains parameters for a layer evaluation.
type GetLayerArgs struct {
	UserAttributes
	LayerName string `json:"layer_name" jsonschema:"required" jsonschema_description:"Layer name to evaluate"`
}

// LogEventArgs contains parameters for logging a custom event.
type LogEventArgs struct {
	UserAttributes
	EventName string            `json:"event_name" jsonschema:"required" jsonschema_description:"Name of the event to log"`
	Value     any               `json:"value,omitempty" jsonschema_description:"Optional event value (string or number)"`
	Metadata  map[string]string `json:"metadata,omitempty" jsonschema_description:"Optional event metadata"`
}

// CheckFeatureGateMCP is the MCP wrapper for CheckGate.
func (c *Client) CheckFeatureGateMCP(ctx context.Context, args CheckFeatureGateArgs) (GateEvaluation, error) {
	if err := ValidateUserID(args.UserID); err != nil {
		return GateEvaluation{}, err
	}
	if err := ValidateResourceName("gate_name", args.GateName); err != nil {
		return GateEvaluation{}, err
	}
	result, err := c.CheckGate(ctx, args.UserAttributes, args.GateName)
	if err != nil {
		return GateEvaluation{}, err
	}
	return *result, nil
}

// EvaluateDynamicConfigMCP is the MCP wrapper for GetConfig.
func (c *Client) EvaluateDynamicConfigMCP(ctx context.Context, args EvaluateDynamicConfigArgs) (ConfigEvaluation, error) {
	if err := ValidateUserID(args.UserID); err != nil {
		return ConfigEvaluation{}, err
	}
	if err := ValidateResourceName("config_name", args.ConfigName); err != nil {
		return ConfigEvaluation{}, err
	}
	result, err := c.GetConfig(ctx, args.UserAttributes, args.ConfigName)
	if err != nil {
		return ConfigEvaluation{}, err
	}
	return *result, nil
}

// EvaluateExperimentMCP is the MCP wrapper for GetExperiment.
func (c *Client) EvaluateExperimentMCP(ctx context.Context, args EvaluateExperimentArgs) (ExperimentEvaluation, error) {
	if err := ValidateUserID(args.UserID); err != nil {
		return ExperimentEvaluation{}, err
	}
	if err := ValidateResourceName("experiment_name", args.ExperimentName); err != nil {
		return ExperimentEvaluation{}, err
	}
	result, err := c.GetExperiment(ctx, args.UserAttributes, args.ExperimentName)
	if err != nil {
		return ExperimentEvaluation{}, err
	}
	return *result, nil
}

// GetLayerMCP is the MCP wrapper for GetLayer.
func (c *Client) GetLayerMCP(ctx context.Context, args GetLayerArgs) (LayerEvaluation, error) {
	if err := ValidateUserID(args.UserID); err != nil {
		return LayerEvaluation{}, err
	}
	if err := ValidateResourceName("layer_name", args.LayerName); err != nil {
		return LayerEvaluation{}, err
	}
	result, err := c.GetLayer(ctx, args.UserAttributes, args.LayerName)
	if err != nil {
		return LayerEvaluation{}, err
	}
	return *result, nil
}

// LogEventMCP is the MCP wrapper for LogEvent.
func (c *Client) LogEventMCP(ctx context.Context, args LogEventArgs) (EventLogResult, error) {
	if err := ValidateUserID(args.UserID); err != nil {
		return EventLogResult{}, err
	}
	if err := ValidateResourceName("event_name", args.EventName); err != nil {
		return EventLogResult{}, err
	}
	result, err := c.LogEvent(ctx, args.UserAttributes, args.EventName, args.Value, args.Metadata)
	if err != nil {
		return EventLogResult{}, err
	}
	return *result, nil
}
