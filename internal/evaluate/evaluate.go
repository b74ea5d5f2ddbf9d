package evaluate

import (
	"context"

	"github.com/statsig-community/statsig-mcp-server/metrics"
)

// GateEvaluation is the outcome of a feature gate check. A failed backend
// call degrades to Value false with the error recorded, never an error
// return, so callers can always act on the result.
type GateEvaluation struct {
	GateName  string `json:"gate_name"`
	Value     bool   `json:"value"`
	RuleID    string `json:"rule_id,omitempty"`
	GroupName string `json:"group_name,omitempty"`
	EvalError string `json:"eval_error,omitempty"`
}

// ConfigEvaluation is the outcome of a dynamic config evaluation. Failures
// degrade to an empty value map.
type ConfigEvaluation struct {
	ConfigName string         `json:"config_name"`
	Value      map[string]any `json:"value"`
	RuleID     string         `json:"rule_id,omitempty"`
	GroupName  string         `json:"group_name,omitempty"`
	EvalError  string         `json:"eval_error,omitempty"`
}

// ExperimentEvaluation is the outcome of an experiment assignment. Failures
// degrade to an empty parameter map.
type ExperimentEvaluation struct {
	ExperimentName string         `json:"experiment_name"`
	Parameters     map[string]any `json:"parameters"`
	RuleID         string         `json:"rule_id,omitempty"`
	GroupName      string         `json:"group_name,omitempty"`
	EvalError      string         `json:"eval_error,omitempty"`
}

// LayerEvaluation is the outcome of a layer evaluation. Failures degrade to
// an empty parameter map.
type LayerEvaluation struct {
	LayerName               string         `json:"layer_name"`
	Parameters              map[string]any `json:"parameters"`
	RuleID                  string         `json:"rule_id,omitempty"`
	GroupName               string         `json:"group_name,omitempty"`
	AllocatedExperimentName string         `json:"allocated_experiment_name,omitempty"`
	EvalError               string         `json:"eval_error,omitempty"`
}

// CheckGate evaluates a feature gate for a user. Backend failures return a
// degraded result with Value false and RuleID "error"; the only error paths
// are an uninitialized client and context cancellation.
func (c *Client) CheckGate(ctx context.Context, user UserAttributes, gateName string) (*GateEvaluation, error) {
	payload := map[string]any{
		"user":     user.apiUser(),
		"gateName": gateName,
	}

	resp, err := c.post(ctx, c.cfg.APIBaseURL, "/v1/check_gate", payload)
	if err != nil {
		if hardFailure(ctx, err) {
			return nil, err
		}
		metrics.RecordEvalDefault("gate")
		c.Logger.Warn("gate check failed, returning default", "gate", gateName, "error", err)
		return &GateEvaluation{
			GateName:  gateName,
			Value:     false,
			RuleID:    "error",
			EvalError: err.Error(),
		}, nil
	}

	return &GateEvaluation{
		GateName:  gateName,
		Value:     boolField(resp, "value"),
		RuleID:    stringField(resp, "rule_id"),
		GroupName: stringField(resp, "group_name"),
	}, nil
}

// GetConfig evaluates a dynamic config for a user. Backend failures degrade
// to an empty value map.
func (c *Client) GetConfig(ctx context.Context, user UserAttributes, configName string) (*ConfigEvaluation, error) {
	payload := map[string]any{
		"user":       user.apiUser(),
		"configName": configName,
	}

	resp, err := c.post(ctx, c.cfg.APIBaseURL, "/v1/get_config", payload)
	if err != nil {
		if hardFailure(ctx, err) {
			return nil, err
		}
		metrics.RecordEvalDefault("config")
		c.Logger.Warn("config evaluation failed, returning default", "config", configName, "error", err)
		return &ConfigEvaluation{
			ConfigName: configName,
			Value:      map[string]any{},
			RuleID:     "error",
			EvalError:  err.Error(),
		}, nil
	}

	return &ConfigEvaluation{
		ConfigName: configName,
		Value:      mapField(resp, "value"),
		RuleID:     stringField(resp, "rule_id"),
		GroupName:  stringField(resp, "group_name"),
	}, nil
}

// GetExperiment evaluates an experiment for a user. Experiments share the
// dynamic config endpoint; the response value carries the assigned
// parameters. Backend failures degrade to an empty parameter map.
func (c *Client) GetExperiment(ctx context.Context, user UserAttributes, experimentName string) (*ExperimentEvaluation, error) {
	payload := map[string]any{
		"user":       user.apiUser(),
		"configName": experimentName,
	}

	resp, err := c.post(ctx, c.cfg.APIBaseURL, "/v1/get_config", payload)
	if err != nil {
		if hardFailure(ctx, err) {
			return nil, err
		}
		metrics.RecordEvalDefault("experiment")
		c.Logger.Warn("experiment evaluation failed, returning default", "experiment", experimentName, "error", err)
		return &ExperimentEvaluation{
			ExperimentName: experimentName,
			Parameters:     map[string]any{},
			RuleID:         "error",
			EvalError:      err.Error(),
		}, nil
	}

	return &ExperimentEvaluation{
		ExperimentName: experimentName,
		Parameters:     mapField(resp, "value"),
		RuleID:         stringField(resp, "rule_id"),
		GroupName:      stringField(resp, "group_name"),
	}, nil
}

// GetLayer evaluates a layer for a user. Backend failures degrade to an
// empty parameter map.
func (c *Client) GetLayer(ctx context.Context, user UserAttributes, layerName string) (*LayerEvaluation, error) {
	payload := map[string]any{
		"user":      user.apiUser(),
		"layerName": layerName,
	}

	resp, err := c.post(ctx, c.cfg.APIBaseURL, "/v1/get_layer", payload)
	if err != nil {
		if hardFailure(ctx, err) {
			return nil, err
		}
		metrics.RecordEvalDefault("layer")
		c.Logger.Warn("layer evaluation failed, returning default", "layer", layerName, "error", err)
		return &LayerEvaluation{
			LayerName:  layerName,
			Parameters: map[string]any{},
			RuleID:     "error",
			EvalError:  err.Error(),
		}, nil
	}

	return &LayerEvaluation{
		LayerName:               layerName,
		Parameters:              mapField(resp, "value"),
		RuleID:                  stringField(resp, "rule_id"),
		GroupName:               stringField(resp, "group_name"),
		AllocatedExperimentName: stringField(resp, "allocated_experiment_name"),
	}, nil
}

func boolField(m map[string]any, key string) bool {
	v, _ := m[key].(bool)
	return v
}

func stringField(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}

func mapField(m map[string]any, key string) map[string]any {
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return map[string]any{}
}
