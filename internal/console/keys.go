package console

import (
	"context"
)

// ListAPIKeysArgs contains parameters for listing API keys.
type ListAPIKeysArgs struct{}

// ListAPIKeys lists all API keys in the project. Key secrets are returned
// exactly as the Console API reports them; nothing is stored locally.
func (c *Client) ListAPIKeys(ctx context.Context) (*ListResult, error) {
	return c.getList(ctx, "/keys", nil)
}

// ListAPIKeysMCP is the MCP wrapper for ListAPIKeys.
func (c *Client) ListAPIKeysMCP(ctx context.Context, _ ListAPIKeysArgs) (ListResult, error) {
	result, err := c.ListAPIKeys(ctx)
	if err != nil {
		return ListResult{}, err
	}
	return *result, nil
}
