package console

import (
	"context"
	"errors"

	apierrors "github.com/statsig-community/statsig-mcp-server/internal/errors"
)

// ListDynamicConfigsArgs contains parameters for listing dynamic configs.
type ListDynamicConfigsArgs struct {
	Limit int `json:"limit,omitempty" jsonschema_description:"Maximum number of configs to return (default: all)"`
}

// GetDynamicConfigArgs contains parameters for fetching a dynamic config.
type GetDynamicConfigArgs struct {
	ConfigID string `json:"config_id" jsonschema:"required" jsonschema_description:"Dynamic config ID or name"`
}

// CreateDynamicConfigArgs contains parameters for creating a dynamic config.
type CreateDynamicConfigArgs struct {
	Name        string `json:"name" jsonschema:"required" jsonschema_description:"Name of the new dynamic config"`
	Description string `json:"description,omitempty" jsonschema_description:"Human-readable description"`
}

// UpdateDynamicConfigArgs contains parameters for updating a dynamic config.
type UpdateDynamicConfigArgs struct {
	ConfigID     string         `json:"config_id" jsonschema:"required" jsonschema_description:"Dynamic config ID to update"`
	Name         *string        `json:"name,omitempty" jsonschema_description:"New config name"`
	Description  *string        `json:"description,omitempty" jsonschema_description:"New description"`
	DefaultValue map[string]any `json:"default_value,omitempty" jsonschema_description:"New default value object"`
}

// DeleteDynamicConfigArgs contains parameters for deleting a dynamic config.
type DeleteDynamicConfigArgs struct {
	ConfigID string `json:"config_id" jsonschema:"required" jsonschema_description:"Dynamic config ID to delete"`
}

// ListDynamicConfigs lists all dynamic configs.
func (c *Client) ListDynamicConfigs(ctx context.Context, limit int) (*ListResult, error) {
	return c.getList(ctx, "/dynamic_configs", limitQuery(limit))
}

// GetDynamicConfig retrieves a dynamic config by ID.
func (c *Client) GetDynamicConfig(ctx context.Context, configID string) (*ItemResult, error) {
	return c.getItem(ctx, "/dynamic_configs/"+escapePath(configID), "Dynamic config", configID)
}

// CreateDynamicConfig creates a new dynamic config.
func (c *Client) CreateDynamicConfig(ctx context.Context, name, description string) (*CreateResult, error) {
	payload := map[string]any{
		"name":        name,
		"description": description,
	}
	return c.create(ctx, "/dynamic_configs", "Dynamic config", payload)
}

// UpdateDynamicConfig applies a partial update to a dynamic config.
func (c *Client) UpdateDynamicConfig(ctx context.Context, configID string, updates map[string]any) (*UpdateResult, error) {
	return c.update(ctx, "/dynamic_configs/"+escapePath(configID), "Dynamic config", configID, updates)
}

// DeleteDynamicConfig deletes a dynamic config.
func (c *Client) DeleteDynamicConfig(ctx context.Context, configID string) (*DeleteResult, error) {
	return c.delete(ctx, "/dynamic_configs/"+escapePath(configID), "Dynamic config", configID)
}

// ListDynamicConfigsMCP is the MCP wrapper for ListDynamicConfigs.
func (c *Client) ListDynamicConfigsMCP(ctx context.Context, args ListDynamicConfigsArgs) (ListResult, error) {
	if err := ValidateLimit(args.Limit); err != nil {
		return ListResult{}, err
	}
	result, err := c.ListDynamicConfigs(ctx, args.Limit)
	if err != nil {
		return ListResult{}, err
	}
	return *result, nil
}

// GetDynamicConfigMCP is the MCP wrapper for GetDynamicConfig.
func (c *Client) GetDynamicConfigMCP(ctx context.Context, args GetDynamicConfigArgs) (ItemResult, error) {
	if err := ValidateID("config_id", args.ConfigID); err != nil {
		return ItemResult{}, err
	}
	result, err := c.GetDynamicConfig(ctx, args.ConfigID)
	if err != nil {
		var notFound *apierrors.NotFoundError
		if errors.As(err, &notFound) {
			return ItemResult{Found: false, Message: notFound.Error()}, nil
		}
		return ItemResult{}, err
	}
	return *result, nil
}

// CreateDynamicConfigMCP is the MCP wrapper for CreateDynamicConfig.
func (c *Client) CreateDynamicConfigMCP(ctx context.Context, args CreateDynamicConfigArgs) (CreateResult, error) {
	if err := ValidateName("name", args.Name); err != nil {
		return CreateResult{}, err
	}
	result, err := c.CreateDynamicConfig(ctx, args.Name, args.Description)
	if err != nil {
		return CreateResult{}, err
	}
	return *result, nil
}

// UpdateDynamicConfigMCP is the MCP wrapper for UpdateDynamicConfig.
func (c *Client) UpdateDynamicConfigMCP(ctx context.Context, args UpdateDynamicConfigArgs) (UpdateResult, error) {
	if err := ValidateID("config_id", args.ConfigID); err != nil {
		return UpdateResult{}, err
	}

	updates := map[string]any{}
	if args.Name != nil {
		updates["name"] = *args.Name
	}
	if args.Description != nil {
		updates["description"] = *args.Description
	}
	if args.DefaultValue != nil {
		updates["defaultValue"] = args.DefaultValue
	}
	if len(updates) == 0 {
		return UpdateResult{}, apierrors.NewValidationError("updates", "", "at least one field to update is required")
	}

	result, err := c.UpdateDynamicConfig(ctx, args.ConfigID, updates)
	if err != nil {
		return UpdateResult{}, err
	}
	return *result, nil
}

// DeleteDynamicConfigMCP is the MCP wrapper for DeleteDynamicConfig.
func (c *Client) DeleteDynamicConfigMCP(ctx context.Context, args DeleteDynamicConfigArgs) (DeleteResult, error) {
	if err := ValidateID("config_id", args.ConfigID); err != nil {
		return DeleteResult{}, err
	}
	result, err := c.DeleteDynamicConfig(ctx, args.ConfigID)
	if err != nil {
		return DeleteResult{}, err
	}
	return *result, nil
}
