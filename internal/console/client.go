// Package console provides a client for the Statsig Console API.
// Management resources (gates, experiments, dynamic configs, segments,
// metrics, audit logs, target apps, keys, events, team users) and experiment
// analytics are each exposed as one method per endpoint.
package console

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/statsig-community/statsig-mcp-server/internal/base"
	apierrors "github.com/statsig-community/statsig-mcp-server/internal/errors"
	"github.com/statsig-community/statsig-mcp-server/metrics"
)

const apiPrefix = "/console/v1"

// Client provides access to the Statsig Console API. Construct it once at
// startup, call Initialize before the first request, and Close on shutdown.
// Configuration is never mutated after Initialize.
type Client struct {
	*base.Client

	cfg         *Config
	initialized bool
	closeOnce   sync.Once
}

// NewClient creates a new Console API client. The client is unusable until
// Initialize is called.
func NewClient(cfg *Config, logger *slog.Logger, opts ...base.ClientOption) *Client {
	baseOpts := []base.ClientOption{base.WithLogger(logger)}
	if cfg.Timeout > 0 {
		baseOpts = append(baseOpts, base.WithTimeout(cfg.Timeout))
	}
	baseOpts = append(baseOpts, opts...)

	return &Client{
		Client: base.NewClient(baseOpts...),
		cfg:    cfg,
	}
}

// Initialize validates the credential and marks the client ready.
func (c *Client) Initialize() error {
	if c.initialized {
		return nil
	}
	if c.cfg.APIKey == "" {
		return fmt.Errorf("console API key is required")
	}
	c.initialized = true
	c.Logger.Info("Statsig Console API client initialized", "base_url", c.cfg.BaseURL)
	return nil
}

// Close releases the client. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.initialized = false
		c.HTTPClient.CloseIdleConnections()
		c.Logger.Info("Statsig Console API client shut down")
	})
}

// Initialized reports whether the client is ready for requests.
func (c *Client) Initialized() bool {
	return c.initialized
}

// do performs one Console API request and parses the JSON body. It returns
// the parsed body and HTTP status; the caller interprets non-2xx statuses.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) (map[string]any, int, error) {
	if !c.initialized {
		return nil, 0, apierrors.NewNotInitializedError("console")
	}

	reqURL := c.cfg.BaseURL + apiPrefix + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode request: %w", err)
		}
	}

	start := time.Now()
	respBody, status, err := c.Client.DoRequest(ctx, base.RequestConfig{
		Method: method,
		URL:    reqURL,
		Body:   body,
		Headers: map[string]string{
			"STATSIG-API-KEY":     c.cfg.APIKey,
			"STATSIG-API-VERSION": c.cfg.APIVersion,
		},
	})
	metrics.RecordConsoleCall(resourceFromPath(path), method, time.Since(start).Seconds(), err == nil && status < 400)
	if err != nil {
		return nil, status, err
	}

	parsed := map[string]any{}
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			// Non-JSON error pages still need a readable message.
			if status >= 400 {
				return nil, status, nil
			}
			return nil, status, fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return parsed, status, nil
}

// apiError converts a non-2xx response into an error using the Console API's
// message field when present.
func apiError(status int, body map[string]any) error {
	if msg, ok := body["message"].(string); ok && msg != "" {
		return fmt.Errorf("console API error %d: %s", status, msg)
	}
	if errs, ok := body["errors"].([]any); ok && len(errs) > 0 {
		raw, _ := json.Marshal(errs)
		return fmt.Errorf("console API error %d: %s", status, base.Truncate(string(raw), 200))
	}
	return fmt.Errorf("console API error %d", status)
}

// dataObject extracts the resource object from a Console API response, which
// wraps payloads as {"message": ..., "data": {...}}.
func dataObject(body map[string]any) map[string]any {
	if data, ok := body["data"].(map[string]any); ok {
		return data
	}
	return body
}

// dataList extracts the resource list from a Console API response.
func dataList(body map[string]any) []map[string]any {
	raw, ok := body["data"].([]any)
	if !ok {
		return nil
	}
	items := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]any); ok {
			items = append(items, m)
		}
	}
	return items
}

// getList performs a GET returning a ListResult.
func (c *Client) getList(ctx context.Context, path string, query url.Values) (*ListResult, error) {
	body, status, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, apiError(status, body)
	}

	items := dataList(body)
	return &ListResult{Items: items, Count: len(items)}, nil
}

// getItem performs a GET returning an ItemResult, translating 404 into a
// NotFoundError for the wrapper layer.
func (c *Client) getItem(ctx context.Context, path, resource, id string) (*ItemResult, error) {
	body, status, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, apierrors.NewNotFoundError(resource, id)
	}
	if status >= 400 {
		return nil, apiError(status, body)
	}

	return &ItemResult{Found: true, Data: dataObject(body)}, nil
}

// create performs a POST returning a CreateResult.
func (c *Client) create(ctx context.Context, path, resource string, payload any) (*CreateResult, error) {
	body, status, err := c.do(ctx, http.MethodPost, path, nil, payload)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, apiError(status, body)
	}

	return &CreateResult{
		Success: true,
		Data:    dataObject(body),
		Message: resource + " created",
	}, nil
}

// update performs a PATCH returning an UpdateResult.
func (c *Client) update(ctx context.Context, path, resource, id string, payload any) (*UpdateResult, error) {
	body, status, err := c.do(ctx, http.MethodPatch, path, nil, payload)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, apierrors.NewNotFoundError(resource, id)
	}
	if status >= 400 {
		return nil, apiError(status, body)
	}

	return &UpdateResult{
		Success: true,
		Message: fmt.Sprintf("%s '%s' updated", resource, id),
	}, nil
}

// delete performs a DELETE returning a DeleteResult.
func (c *Client) delete(ctx context.Context, path, resource, id string) (*DeleteResult, error) {
	body, status, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, apierrors.NewNotFoundError(resource, id)
	}
	if status >= 400 {
		return nil, apiError(status, body)
	}

	return &DeleteResult{
		Success: true,
		Message: fmt.Sprintf("%s '%s' deleted", resource, id),
	}, nil
}

// report performs a GET returning a ReportResult for analytics endpoints.
func (c *Client) report(ctx context.Context, path, resource, id string, query url.Values) (*ReportResult, error) {
	body, status, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, apierrors.NewNotFoundError(resource, id)
	}
	if status >= 400 {
		return nil, apiError(status, body)
	}

	return &ReportResult{Data: dataObject(body)}, nil
}

// resourceFromPath extracts the resource segment for metric labels, e.g.
// "/gates/my_gate" reports as "gates".
func resourceFromPath(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}

// escapePath escapes a resource identifier for use in a URL path segment.
func escapePath(id string) string {
	return url.PathEscape(strings.TrimSpace(id))
}

// limitQuery builds the optional limit query parameter.
func limitQuery(limit int) url.Values {
	if limit <= 0 {
		return nil
	}
	q := url.Values{}
	q.Set("limit", fmt.Sprintf("%d", limit))
	return q
}
