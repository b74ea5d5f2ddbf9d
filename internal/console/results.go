package console

import (
	"context"
	"errors"
	"net/url"

	apierrors "github.com/statsig-community/statsig-mcp-server/internal/errors"
)

// Experiment analytics endpoints. These sit under the experiment resource
// (results, pulse, pulse/export, metrics/{id}) and return statistical
// payloads rendered with the report shape.

// GetExperimentResultsArgs contains parameters for fetching experiment results.
type GetExperimentResultsArgs struct {
	ExperimentID   string `json:"experiment_id" jsonschema:"required" jsonschema_description:"Experiment ID to fetch results for"`
	IncludeMetrics bool   `json:"include_metrics,omitempty" jsonschema_description:"Include per-metric breakdowns (default: false)"`
}

// GetExperimentPulseArgs contains parameters for fetching pulse data.
type GetExperimentPulseArgs struct {
	ExperimentID string `json:"experiment_id" jsonschema:"required" jsonschema_description:"Experiment ID to fetch pulse data for"`
}

// GetMetricDetailsArgs contains parameters for fetching metric analysis.
type GetMetricDetailsArgs struct {
	MetricID     string `json:"metric_id" jsonschema:"required" jsonschema_description:"Metric ID to analyze"`
	ExperimentID string `json:"experiment_id,omitempty" jsonschema_description:"Scope the analysis to one experiment"`
}

// ExportPulseReportArgs contains parameters for exporting a pulse report.
type ExportPulseReportArgs struct {
	ExperimentID string `json:"experiment_id" jsonschema:"required" jsonschema_description:"Experiment ID to export"`
	Format       string `json:"format,omitempty" jsonschema_description:"Export format: json (default) or csv"`
}

// GetExperimentResults retrieves statistical results for an experiment.
func (c *Client) GetExperimentResults(ctx context.Context, experimentID string, includeMetrics bool) (*ReportResult, error) {
	var query url.Values
	if includeMetrics {
		query = url.Values{}
		query.Set("includeMetrics", "true")
	}
	return c.report(ctx, "/experiments/"+escapePath(experimentID)+"/results", "Experiment", experimentID, query)
}

// GetExperimentPulse retrieves pulse health data for an experiment.
func (c *Client) GetExperimentPulse(ctx context.Context, experimentID string) (*ReportResult, error) {
	return c.report(ctx, "/experiments/"+escapePath(experimentID)+"/pulse", "Experiment", experimentID, nil)
}

// GetMetricDetails retrieves a metric's statistical analysis, optionally
// scoped to one experiment.
func (c *Client) GetMetricDetails(ctx context.Context, metricID, experimentID string) (*ReportResult, error) {
	var query url.Values
	if experimentID != "" {
		query = url.Values{}
		query.Set("experimentId", experimentID)
	}
	return c.report(ctx, "/metrics/"+escapePath(metricID), "Metric", metricID, query)
}

// ExportPulseReport exports a full pulse report in the requested format.
func (c *Client) ExportPulseReport(ctx context.Context, experimentID, format string) (*ReportResult, error) {
	if format == "" {
		format = "json"
	}
	query := url.Values{}
	query.Set("format", format)
	return c.report(ctx, "/experiments/"+escapePath(experimentID)+"/pulse/export", "Experiment", experimentID, query)
}

// GetExperimentResultsMCP is the MCP wrapper for GetExperimentResults.
func (c *Client) GetExperimentResultsMCP(ctx context.Context, args GetExperimentResultsArgs) (ReportResult, error) {
	if err := ValidateID("experiment_id", args.ExperimentID); err != nil {
		return ReportResult{}, err
	}
	result, err := c.GetExperimentResults(ctx, args.ExperimentID, args.IncludeMetrics)
	if err != nil {
		return reportNotFound(err)
	}
	return *result, nil
}

// GetExperimentPulseMCP is the MCP wrapper for GetExperimentPulse.
func (c *Client) GetExperimentPulseMCP(ctx context.Context, args GetExperimentPulseArgs) (ReportResult, error) {
	if err := ValidateID("experiment_id", args.ExperimentID); err != nil {
		return ReportResult{}, err
	}
	result, err := c.GetExperimentPulse(ctx, args.ExperimentID)
	if err != nil {
		return reportNotFound(err)
	}
	return *result, nil
}

// GetMetricDetailsMCP is the MCP wrapper for GetMetricDetails.
func (c *Client) GetMetricDetailsMCP(ctx context.Context, args GetMetricDetailsArgs) (ReportResult, error) {
	if err := ValidateID("metric_id", args.MetricID); err != nil {
		return ReportResult{}, err
	}
	if args.ExperimentID != "" {
		if err := ValidateID("experiment_id", args.ExperimentID); err != nil {
			return ReportResult{}, err
		}
	}
	result, err := c.GetMetricDetails(ctx, args.MetricID, args.ExperimentID)
	if err != nil {
		return reportNotFound(err)
	}
	return *result, nil
}

// ExportPulseReportMCP is the MCP wrapper for ExportPulseReport.
func (c *Client) ExportPulseReportMCP(ctx context.Context, args ExportPulseReportArgs) (ReportResult, error) {
	if err := ValidateID("experiment_id", args.ExperimentID); err != nil {
		return ReportResult{}, err
	}
	if err := ValidateExportFormat(args.Format); err != nil {
		return ReportResult{}, err
	}
	result, err := c.ExportPulseReport(ctx, args.ExperimentID, args.Format)
	if err != nil {
		return reportNotFound(err)
	}
	return *result, nil
}

// reportNotFound turns a NotFoundError into a report-shaped message so
// analytics tools stay fail-soft on missing experiments.
func reportNotFound(err error) (ReportResult, error) {
	var notFound *apierrors.NotFoundError
	if errors.As(err, &notFound) {
		return ReportResult{Message: notFound.Error()}, nil
	}
	return ReportResult{}, err
}
