package console

import (
	"context"
	"errors"

	apierrors "github.com/statsig-community/statsig-mcp-server/internal/errors"
)

// ListTargetAppsArgs contains parameters for listing target apps.
type ListTargetAppsArgs struct{}

// GetTargetAppArgs contains parameters for fetching a target app.
type GetTargetAppArgs struct {
	AppID string `json:"app_id" jsonschema:"required" jsonschema_description:"Target app ID or name"`
}

// ListTargetApps lists all target apps.
func (c *Client) ListTargetApps(ctx context.Context) (*ListResult, error) {
	return c.getList(ctx, "/target_apps", nil)
}

// GetTargetApp retrieves a target app by ID.
func (c *Client) GetTargetApp(ctx context.Context, appID string) (*ItemResult, error) {
	return c.getItem(ctx, "/target_apps/"+escapePath(appID), "Target app", appID)
}

// ListTargetAppsMCP is the MCP wrapper for ListTargetApps.
func (c *Client) ListTargetAppsMCP(ctx context.Context, _ ListTargetAppsArgs) (ListResult, error) {
	result, err := c.ListTargetApps(ctx)
	if err != nil {
		return ListResult{}, err
	}
	return *result, nil
}

// GetTargetAppMCP is the MCP wrapper for GetTargetApp.
func (c *Client) GetTargetAppMCP(ctx context.Context, args GetTargetAppArgs) (ItemResult, error) {
	if err := ValidateID("app_id", args.AppID); err != nil {
		return ItemResult{}, err
	}
	result, err := c.GetTargetApp(ctx, args.AppID)
	if err != nil {
		var notFound *apierrors.NotFoundError
		if errors.As(err, &notFound) {
			return ItemResult{Found: false, Message: notFound.Error()}, nil
		}
		return ItemResult{}, err
	}
	return *result, nil
}
