package console

import (
	"context"
	"errors"

	apierrors "github.com/statsig-community/statsig-mcp-server/internal/errors"
)

// ListExperimentsArgs contains parameters for listing experiments.
type ListExperimentsArgs struct {
	Limit int `json:"limit,omitempty" jsonschema_description:"Maximum number of experiments to return (default: all)"`
}

// GetExperimentArgs contains parameters for fetching an experiment.
type GetExperimentArgs struct {
	ExperimentID string `json:"experiment_id" jsonschema:"required" jsonschema_description:"Experiment ID or name"`
}

// CreateExperimentArgs contains parameters for creating an experiment.
type CreateExperimentArgs struct {
	Name        string `json:"name" jsonschema:"required" jsonschema_description:"Name of the new experiment"`
	Description string `json:"description,omitempty" jsonschema_description:"Human-readable description"`
	Hypothesis  string `json:"hypothesis,omitempty" jsonschema_description:"Hypothesis being tested"`
}

// UpdateExperimentArgs contains parameters for updating an experiment. Only
// the provided fields are sent to the API.
type UpdateExperimentArgs struct {
	ExperimentID string  `json:"experiment_id" jsonschema:"required" jsonschema_description:"Experiment ID to update"`
	Name         *string `json:"name,omitempty" jsonschema_description:"New experiment name"`
	Description  *string `json:"description,omitempty" jsonschema_description:"New description"`
	Hypothesis   *string `json:"hypothesis,omitempty" jsonschema_description:"New hypothesis"`
	Status       *string `json:"status,omitempty" jsonschema_description:"New status (setup, active, decision_made)"`
}

// DeleteExperimentArgs contains parameters for deleting an experiment.
type DeleteExperimentArgs struct {
	ExperimentID string `json:"experiment_id" jsonschema:"required" jsonschema_description:"Experiment ID to delete"`
}

// ListExperiments lists all experiments.
func (c *Client) ListExperiments(ctx context.Context, limit int) (*ListResult, error) {
	return c.getList(ctx, "/experiments", limitQuery(limit))
}

// GetExperiment retrieves an experiment by ID.
func (c *Client) GetExperiment(ctx context.Context, experimentID string) (*ItemResult, error) {
	return c.getItem(ctx, "/experiments/"+escapePath(experimentID), "Experiment", experimentID)
}

// CreateExperiment creates a new experiment.
func (c *Client) CreateExperiment(ctx context.Context, name, description, hypothesis string) (*CreateResult, error) {
	payload := map[string]any{
		"name":        name,
		"description": description,
	}
	if hypothesis != "" {
		payload["hypothesis"] = hypothesis
	}
	return c.create(ctx, "/experiments", "Experiment", payload)
}

// UpdateExperiment applies a partial update to an experiment.
func (c *Client) UpdateExperiment(ctx context.Context, experimentID string, updates map[string]any) (*UpdateResult, error) {
	return c.update(ctx, "/experiments/"+escapePath(experimentID), "Experiment", experimentID, updates)
}

// DeleteExperiment deletes an experiment.
func (c *Client) DeleteExperiment(ctx context.Context, experimentID string) (*DeleteResult, error) {
	return c.delete(ctx, "/experiments/"+escapePath(experimentID), "Experiment", experimentID)
}

// ListExperimentsMCP is the MCP wrapper for ListExperiments.
func (c *Client) ListExperimentsMCP(ctx context.Context, args ListExperimentsArgs) (ListResult, error) {
	if err := ValidateLimit(args.Limit); err != nil {
		return ListResult{}, err
	}
	result, err := c.ListExperiments(ctx, args.Limit)
	if err != nil {
		return ListResult{}, err
	}
	return *result, nil
}

// GetExperimentMCP is the MCP wrapper for GetExperiment.
func (c *Client) GetExperimentMCP(ctx context.Context, args GetExperimentArgs) (ItemResult, error) {
	if err := ValidateID("experiment_id", args.ExperimentID); err != nil {
		return ItemResult{}, err
	}
	result, err := c.GetExperiment(ctx, args.ExperimentID)
	if err != nil {
		var notFound *apierrors.NotFoundError
		if errors.As(err, &notFound) {
			return ItemResult{Found: false, Message: notFound.Error()}, nil
		}
		return ItemResult{}, err
	}
	return *result, nil
}

// CreateExperimentMCP is the MCP wrapper for CreateExperiment.
func (c *Client) CreateExperimentMCP(ctx context.Context, args CreateExperimentArgs) (CreateResult, error) {
	if err := ValidateName("name", args.Name); err != nil {
		return CreateResult{}, err
	}
	result, err := c.CreateExperiment(ctx, args.Name, args.Description, args.Hypothesis)
	if err != nil {
		return CreateResult{}, err
	}
	return *result, nil
}

// UpdateExperimentMCP is the MCP wrapper for UpdateExperiment.
func (c *Client) UpdateExperimentMCP(ctx context.Context, args UpdateExperimentArgs) (UpdateResult, error) {
	if err := ValidateID("experiment_id", args.ExperimentID); err != nil {
		return UpdateResult{}, err
	}

	updates := map[string]any{}
	if args.Name != nil {
		updates["name"] = *args.Name
	}
	if args.Description != nil {
		updates["description"] = *args.Description
	}
	if args.Hypothesis != nil {
		updates["hypothesis"] = *args.Hypothesis
	}
	if args.Status != nil {
		updates["status"] = *args.Status
	}
	if len(updates) == 0 {
		return UpdateResult{}, apierrors.NewValidationError("updates", "", "at least one field to update is required")
	}

	result, err := c.UpdateExperiment(ctx, args.ExperimentID, updates)
	if err != nil {
		return UpdateResult{}, err
	}
	return *result, nil
}

// DeleteExperimentMCP is the MCP wrapper for DeleteExperiment.
func (c *Client) DeleteExperimentMCP(ctx context.Context, args DeleteExperimentArgs) (DeleteResult, error) {
	if err := ValidateID("experiment_id", args.ExperimentID); err != nil {
		return DeleteResult{}, err
	}
	result, err := c.DeleteExperiment(ctx, args.ExperimentID)
	if err != nil {
		return DeleteResult{}, err
	}
	return *result, nil
}
