package console

import (
	"errors"
	"os"
	"time"
)

const (
	// DefaultBaseURL is the Statsig Console API endpoint.
	DefaultBaseURL = "https://statsigapi.net"

	// DefaultAPIVersion is sent as the STATSIG-API-VERSION header on every request.
	DefaultAPIVersion = "20240601"
)

// Config holds Console API connection settings.
type Config struct {
	// APIKey is the Console API key (console-xxx). Required.
	APIKey string

	// BaseURL is the Console API endpoint.
	BaseURL string

	// APIVersion pins the Console API version header.
	APIVersion string

	// Timeout for API requests. Applies uniformly to all calls.
	Timeout time.Duration
}

// LoadConfig loads configuration from environment variables.
// A missing STATSIG_CONSOLE_API_KEY is a startup error.
func LoadConfig() (*Config, error) {
	apiKey := os.Getenv("STATSIG_CONSOLE_API_KEY")
	if apiKey == "" {
		return nil, errors.New("STATSIG_CONSOLE_API_KEY environment variable is required")
	}

	baseURL := os.Getenv("STATSIG_CONSOLE_API_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	apiVersion := os.Getenv("STATSIG_API_VERSION")
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	timeout := 30 * time.Second
	if t := os.Getenv("STATSIG_API_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	return &Config{
		APIKey:     apiKey,
		BaseURL:    baseURL,
		APIVersion: apiVersion,
		Timeout:    timeout,
	}, nil
}
