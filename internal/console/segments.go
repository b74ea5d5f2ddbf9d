package console

import (
	"context"
	"errors"

	apierrors "github.com/statsig-community/statsig-mcp-server/internal/errors"
)

// ListSegmentsArgs contains parameters for listing segments.
type ListSegmentsArgs struct {
	Limit int `json:"limit,omitempty" jsonschema_description:"Maximum number of segments to return (default: all)"`
}

// GetSegmentArgs contains parameters for fetching a segment.
type GetSegmentArgs struct {
	SegmentID string `json:"segment_id" jsonschema:"required" jsonschema_description:"Segment ID or name"`
}

// CreateSegmentArgs contains parameters for creating a segment.
type CreateSegmentArgs struct {
	Name        string `json:"name" jsonschema:"required" jsonschema_description:"Name of the new segment"`
	Description string `json:"description,omitempty" jsonschema_description:"Human-readable description"`
}

// ListSegments lists all segments.
func (c *Client) ListSegments(ctx context.Context, limit int) (*ListResult, error) {
	return c.getList(ctx, "/segments", limitQuery(limit))
}

// GetSegment retrieves a segment by ID.
func (c *Client) GetSegment(ctx context.Context, segmentID string) (*ItemResult, error) {
	return c.getItem(ctx, "/segments/"+escapePath(segmentID), "Segment", segmentID)
}

// CreateSegment creates a new segment.
func (c *Client) CreateSegment(ctx context.Context, name, description string) (*CreateResult, error) {
	payload := map[string]any{
		"name":        name,
		"description": description,
	}
	return c.create(ctx, "/segments", "Segment", payload)
}

// ListSegmentsMCP is the MCP wrapper for ListSegments.
func (c *Client) ListSegmentsMCP(ctx context.Context, args ListSegmentsArgs) (ListResult, error) {
	if err := ValidateLimit(args.Limit); err != nil {
		return ListResult{}, err
	}
	result, err := c.ListSegments(ctx, args.Limit)
	if err != nil {
		return ListResult{}, err
	}
	return *result, nil
}

// GetSegmentMCP is the MCP wrapper for GetSegment.
func (c *Client) GetSegmentMCP(ctx context.Context, args GetSegmentArgs) (ItemResult, error) {
	if err := ValidateID("segment_id", args.SegmentID); err != nil {
		return ItemResult{}, err
	}
	result, err := c.GetSegment(ctx, args.SegmentID)
	if err != nil {
		var notFound *apierrors.NotFoundError
		if errors.As(err, &notFound) {
			return ItemResult{Found: false, Message: notFound.Error()}, nil
		}
		return ItemResult{}, err
	}
	return *result, nil
}

// CreateSegmentMCP is the MCP wrapper for CreateSegment.
func (c *Client) CreateSegmentMCP(ctx context.Context, args CreateSegmentArgs) (CreateResult, error) {
	if err := ValidateName("name", args.Name); err != nil {
		return CreateResult{}, err
	}
	result, err := c.CreateSegment(ctx, args.Name, args.Description)
	if err != nil {
		return CreateResult{}, err
	}
	return *result, nil
}
