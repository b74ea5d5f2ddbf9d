package console

import (
	"context"
	"errors"

	apierrors "github.com/statsig-community/statsig-mcp-server/internal/errors"
)

// ListMetricsArgs contains parameters for listing metrics.
type ListMetricsArgs struct {
	Limit int `json:"limit,omitempty" jsonschema_description:"Maximum number of metrics to return (default: all)"`
}

// GetMetricArgs contains parameters for fetching a metric.
type GetMetricArgs struct {
	MetricID string `json:"metric_id" jsonschema:"required" jsonschema_description:"Metric ID or name"`
}

// ListMetrics lists all metrics.
func (c *Client) ListMetrics(ctx context.Context, limit int) (*ListResult, error) {
	return c.getList(ctx, "/metrics", limitQuery(limit))
}

// GetMetric retrieves a metric by ID.
func (c *Client) GetMetric(ctx context.Context, metricID string) (*ItemResult, error) {
	return c.getItem(ctx, "/metrics/"+escapePath(metricID), "Metric", metricID)
}

// ListMetricsMCP is the MCP wrapper for ListMetrics.
func (c *Client) ListMetricsMCP(ctx context.Context, args ListMetricsArgs) (ListResult, error) {
	if err := ValidateLimit(args.Limit); err != nil {
		return ListResult{}, err
	}
	result, err := c.ListMetrics(ctx, args.Limit)
	if err != nil {
		return ListResult{}, err
	}
	return *result, nil
}

// GetMetricMCP is the MCP wrapper for GetMetric.
func (c *Client) GetMetricMCP(ctx context.Context, args GetMetricArgs) (ItemResult, error) {
	if err := ValidateID("metric_id", args.MetricID); err != nil {
		return ItemResult{}, err
	}
	result, err := c.GetMetric(ctx, args.MetricID)
	if err != nil {
		var notFound *apierrors.NotFoundError
		if errors.As(err, &notFound) {
			return ItemResult{Found: false, Message: notFound.Error()}, nil
		}
		return ItemResult{}, err
	}
	return *result, nil
}
