package console

import (
	"context"
	"fmt"
	"net/url"
)

// DefaultAuditLogLimit applies when the caller does not specify one.
const DefaultAuditLogLimit = 20

// ListAuditLogsArgs contains parameters for listing audit logs.
type ListAuditLogsArgs struct {
	Limit int    `json:"limit,omitempty" jsonschema_description:"Maximum number of entries to return (default: 20)"`
	From  string `json:"from,omitempty" jsonschema_description:"Start date filter, YYYY-MM-DD"`
	To    string `json:"to,omitempty" jsonschema_description:"End date filter, YYYY-MM-DD"`
}

// ListAuditLogs lists audit log entries with optional date filters.
func (c *Client) ListAuditLogs(ctx context.Context, limit int, from, to string) (*ListResult, error) {
	if limit <= 0 {
		limit = DefaultAuditLogLimit
	}

	query := url.Values{}
	query.Set("limit", fmt.Sprintf("%d", limit))
	if from != "" {
		query.Set("from", from)
	}
	if to != "" {
		query.Set("to", to)
	}

	return c.getList(ctx, "/audit_logs", query)
}

// ListAuditLogsMCP is the MCP wrapper for ListAuditLogs.
func (c *Client) ListAuditLogsMCP(ctx context.Context, args ListAuditLogsArgs) (ListResult, error) {
	if err := ValidateLimit(args.Limit); err != nil {
		return ListResult{}, err
	}
	if err := ValidateDate("from", args.From); err != nil {
		return ListResult{}, err
	}
	if err := ValidateDate("to", args.To); err != nil {
		return ListResult{}, err
	}

	result, err := c.ListAuditLogs(ctx, args.Limit, args.From, args.To)
	if err != nil {
		return ListResult{}, err
	}
	return *result, nil
}
