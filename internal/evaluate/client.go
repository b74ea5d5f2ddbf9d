// Package evaluate provides a client for Statsig's evaluation surface:
// feature gate checks, dynamic config / experiment / layer evaluation, and
// event logging, all keyed by a server secret.
//
// Evaluation failures never propagate: gates degrade to false, value lookups
// to an empty parameter map, and event logging to an unsuccessful result.
package evaluate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/statsig-community/statsig-mcp-server/internal/base"
	apierrors "github.com/statsig-community/statsig-mcp-server/internal/errors"
	"github.com/statsig-community/statsig-mcp-server/metrics"
)

// Client provides access to the Statsig evaluation API. Construct once,
// Initialize before first use, Close on shutdown. Configuration is never
// mutated after Initialize.
type Client struct {
	*base.Client

	cfg         *Config
	initialized bool
	closeOnce   sync.Once
}

// NewClient creates a new evaluation client. The client is unusable until
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
	if c.cfg.SecretKey == "" {
		return fmt.Errorf("server secret key is required")
	}
	c.initialized = true
	c.Logger.Info("Statsig evaluation client initialized", "environment", c.cfg.Environment)
	return nil
}

// Close releases the client. Safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.initialized = false
		c.HTTPClient.CloseIdleConnections()
		c.Logger.Info("Statsig evaluation client shut down")
	})
}

// Initialized reports whether the client is ready for requests.
func (c *Client) Initialized() bool {
	return c.initialized
}

// hardFailure reports whether an evaluation error must propagate instead of
// degrading to a default result. Uninitialized clients and canceled contexts
// are caller mistakes, not backend unavailability.
func hardFailure(ctx context.Context, err error) bool {
	if apierrors.IsNotInitialized(err) {
		return true
	}
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return true
	}
	return false
}

// post performs one evaluation API call and parses the JSON response.
func (c *Client) post(ctx context.Context, baseURL, path string, payload map[string]any) (map[string]any, error) {
	if !c.initialized {
		return nil, apierrors.NewNotInitializedError("evaluation")
	}

	payload["statsigEnvironment"] = map[string]any{"tier": c.cfg.Environment}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	respBody, status, err := c.Client.DoRequest(ctx, base.RequestConfig{
		Method: http.MethodPost,
		URL:    baseURL + path,
		Body:   body,
		Headers: map[string]string{
			"statsig-api-key": c.cfg.SecretKey,
		},
	})
	metrics.RecordEvalCall(path, err == nil && status < 400)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, fmt.Errorf("evaluation API error %d: %s", status, base.Truncate(string(respBody), 200))
	}

	parsed := map[string]any{}
	if len(respBody) > 0 {
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return parsed, nil
}
