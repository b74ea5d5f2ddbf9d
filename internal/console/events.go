package console

import (
	"context"
	"net/http"
)

// DefaultEventLimit applies when the caller does not specify one.
const DefaultEventLimit = 10

// QueryEventsArgs contains parameters for querying event types.
type QueryEventsArgs struct {
	EventName string `json:"event_name,omitempty" jsonschema_description:"Specific event type to look up (omit to list all)"`
	Limit     int    `json:"limit,omitempty" jsonschema_description:"Maximum number of event types to return (default: 10)"`
}

// QueryEventsResult carries either a single event type's details or a list of
// event types. These are event type definitions, not per-user event history.
type QueryEventsResult struct {
	EventName  string           `json:"event_name,omitempty"`
	Found      *bool            `json:"found,omitempty"`
	Details    map[string]any   `json:"details,omitempty"`
	EventTypes []map[string]any `json:"event_types,omitempty"`
	TotalFound int              `json:"total_found"`
	Message    string           `json:"message,omitempty"`
}

// GetEvent retrieves a single event type's details.
func (c *Client) GetEvent(ctx context.Context, eventName string) (*QueryEventsResult, error) {
	body, status, err := c.do(ctx, http.MethodGet, "/events/"+escapePath(eventName), nil, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		found := false
		return &QueryEventsResult{
			EventName: eventName,
			Found:     &found,
			Message:   "Event '" + eventName + "' not found",
		}, nil
	}
	if status >= 400 {
		return nil, apiError(status, body)
	}

	found := true
	return &QueryEventsResult{
		EventName:  eventName,
		Found:      &found,
		Details:    dataObject(body),
		TotalFound: 1,
	}, nil
}

// ListEvents lists event types, truncated to limit.
func (c *Client) ListEvents(ctx context.Context, limit int) (*QueryEventsResult, error) {
	if limit <= 0 {
		limit = DefaultEventLimit
	}

	body, status, err := c.do(ctx, http.MethodGet, "/events", nil, nil)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, apiError(status, body)
	}

	events := dataList(body)
	if len(events) > limit {
		events = events[:limit]
	}

	return &QueryEventsResult{
		EventTypes: events,
		TotalFound: len(events),
	}, nil
}

// QueryEventsMCP is the MCP wrapper for event type queries. With an event
// name it returns that event's details; without one it lists event types.
func (c *Client) QueryEventsMCP(ctx context.Context, args QueryEventsArgs) (QueryEventsResult, error) {
	if err := ValidateLimit(args.Limit); err != nil {
		return QueryEventsResult{}, err
	}

	var result *QueryEventsResult
	var err error
	if args.EventName != "" {
		result, err = c.GetEvent(ctx, args.EventName)
	} else {
		result, err = c.ListEvents(ctx, args.Limit)
	}
	if err != nil {
		return QueryEventsResult{}, err
	}
	return *result, nil
}
