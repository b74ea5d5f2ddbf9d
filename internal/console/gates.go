package console

import (
	"context"
	"errors"

	apierrors "github.com/statsig-community/statsig-mcp-server/internal/errors"
)

// ListGatesArgs contains parameters for listing feature gates.
type ListGatesArgs struct {
	Limit int `json:"limit,omitempty" jsonschema_description:"Maximum number of gates to return (default: all)"`
}

// GetGateArgs contains parameters for fetching a feature gate.
type GetGateArgs struct {
	GateID string `json:"gate_id" jsonschema:"required" jsonschema_description:"Feature gate ID or name"`
}

// CreateGateArgs contains parameters for creating a feature gate.
type CreateGateArgs struct {
	Name        string `json:"name" jsonschema:"required" jsonschema_description:"Name of the new feature gate"`
	Description string `json:"description,omitempty" jsonschema_description:"Human-readable description"`
	IsEnabled   bool   `json:"is_enabled,omitempty" jsonschema_description:"Whether the gate starts enabled (default: false)"`
}

// UpdateGateArgs contains parameters for updating a feature gate. Only the
// provided fields are sent to the API.
type UpdateGateArgs struct {
	GateID      string  `json:"gate_id" jsonschema:"required" jsonschema_description:"Feature gate ID to update"`
	Name        *string `json:"name,omitempty" jsonschema_description:"New gate name"`
	Description *string `json:"description,omitempty" jsonschema_description:"New description"`
	IsEnabled   *bool   `json:"is_enabled,omitempty" jsonschema_description:"New enabled state"`
}

// DeleteGateArgs contains parameters for deleting a feature gate.
type DeleteGateArgs struct {
	GateID string `json:"gate_id" jsonschema:"required" jsonschema_description:"Feature gate ID to delete"`
}

// ListGates lists all feature gates.
func (c *Client) ListGates(ctx context.Context, limit int) (*ListResult, error) {
	return c.getList(ctx, "/gates", limitQuery(limit))
}

// GetGate retrieves a feature gate by ID.
func (c *Client) GetGate(ctx context.Context, gateID string) (*ItemResult, error) {
	return c.getItem(ctx, "/gates/"+escapePath(gateID), "Gate", gateID)
}

// CreateGate creates a new feature gate.
func (c *Client) CreateGate(ctx context.Context, name, description string, isEnabled bool) (*CreateResult, error) {
	payload := map[string]any{
		"name":        name,
		"description": description,
		"isEnabled":   isEnabled,
	}
	return c.create(ctx, "/gates", "Gate", payload)
}

// UpdateGate applies a partial update to a feature gate.
func (c *Client) UpdateGate(ctx context.Context, gateID string, updates map[string]any) (*UpdateResult, error) {
	return c.update(ctx, "/gates/"+escapePath(gateID), "Gate", gateID, updates)
}

// DeleteGate deletes a feature gate.
func (c *Client) DeleteGate(ctx context.Context, gateID string) (*DeleteResult, error) {
	return c.delete(ctx, "/gates/"+escapePath(gateID), "Gate", gateID)
}

// ListGatesMCP is the MCP wrapper for ListGates.
func (c *Client) ListGatesMCP(ctx context.Context, args ListGatesArgs) (ListResult, error) {
	if err := ValidateLimit(args.Limit); err != nil {
		return ListResult{}, err
	}
	result, err := c.ListGates(ctx, args.Limit)
	if err != nil {
		return ListResult{}, err
	}
	return *result, nil
}

// GetGateMCP is the MCP wrapper for GetGate. A missing gate is reported as
// found=false rather than an error.
func (c *Client) GetGateMCP(ctx context.Context, args GetGateArgs) (ItemResult, error) {
	if err := ValidateID("gate_id", args.GateID); err != nil {
		return ItemResult{}, err
	}
	result, err := c.GetGate(ctx, args.GateID)
	if err != nil {
		var notFound *apierrors.NotFoundError
		if errors.As(err, &notFound) {
			return ItemResult{Found: false, Message: notFound.Error()}, nil
		}
		return ItemResult{}, err
	}
	return *result, nil
}

// CreateGateMCP is the MCP wrapper for CreateGate.
func (c *Client) CreateGateMCP(ctx context.Context, args CreateGateArgs) (CreateResult, error) {
	if err := ValidateName("name", args.Name); err != nil {
		return CreateResult{}, err
	}
	result, err := c.CreateGate(ctx, args.Name, args.Description, args.IsEnabled)
	if err != nil {
		return CreateResult{}, err
	}
	return *result, nil
}

// UpdateGateMCP is the MCP wrapper for UpdateGate.
func (c *Client) UpdateGateMCP(ctx context.Context, args UpdateGateArgs) (UpdateResult, error) {
	if err := ValidateID("gate_id", args.GateID); err != nil {
		return UpdateResult{}, err
	}

	updates := map[string]any{}
	if args.Name != nil {
		updates["name"] = *args.Name
	}
	if args.Description != nil {
		updates["description"] = *args.Description
	}
	if args.IsEnabled != nil {
		updates["isEnabled"] = *args.IsEnabled
	}
	if len(updates) == 0 {
		return UpdateResult{}, apierrors.NewValidationError("updates", "", "at least one field to update is required")
	}

	result, err := c.UpdateGate(ctx, args.GateID, updates)
	if err != nil {
		return UpdateResult{}, err
	}
	return *result, nil
}

// DeleteGateMCP is the MCP wrapper for DeleteGate.
func (c *Client) DeleteGateMCP(ctx context.Context, args DeleteGateArgs) (DeleteResult, error) {
	if err := ValidateID("gate_id", args.GateID); err != nil {
		return DeleteResult{}, err
	}
	result, err := c.DeleteGate(ctx, args.GateID)
	if err != nil {
		return DeleteResult{}, err
	}
	return *result, nil
}
