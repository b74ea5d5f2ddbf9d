package evaluate

import (
	"context"
	"fmt"
	"time"

	"github.com/statsig-community/statsig-mcp-server/metrics"
)

// EventLogResult reports whether an event was accepted. Delivery failures
// are reported in Message, never as an error.
type EventLogResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// LogEvent records a custom event for a user. When logging is disabled via
// configuration the event is dropped and reported as logged, matching
// SDK-side noop behavior. Backend failures degrade to Success false.
func (c *Client) LogEvent(ctx context.Context, user UserAttributes, eventName string, value any, metadata map[string]string) (*EventLogResult, error) {
	if c.cfg.DisableLogging {
		return &EventLogResult{
			Success: true,
			Message: fmt.Sprintf("Event '%s' logged successfully", eventName),
		}, nil
	}

	event := map[string]any{
		"eventName": eventName,
		"user":      user.apiUser(),
		"time":      time.Now().UnixMilli(),
	}
	if value != nil {
		event["value"] = value
	}
	if len(metadata) > 0 {
		event["metadata"] = metadata
	}

	payload := map[string]any{
		"events": []map[string]any{event},
	}

	_, err := c.post(ctx, c.cfg.EventsBaseURL, "/v1/log_event", payload)
	if err != nil {
		if hardFailure(ctx, err) {
			return nil, err
		}
		metrics.EventsLoggedTotal.WithLabelValues("error").Inc()
		c.Logger.Warn("event logging failed", "event", eventName, "error", err)
		return &EventLogResult{
			Success: false,
			Message: fmt.Sprintf("Failed to log event: %s", err),
		}, nil
	}

	metrics.EventsLoggedTotal.WithLabelValues("success").Inc()
	return &EventLogResult{
		Success: true,
		Message: fmt.Sprintf("Event '%s' logged successfully", eventName),
	}, nil
}
