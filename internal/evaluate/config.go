package evaluate

import (
	"errors"
	"os"
	"strings"
	"time"
)

const (
	// DefaultAPIBaseURL is the Statsig HTTP evaluation endpoint.
	DefaultAPIBaseURL = "https://api.statsig.com"

	// DefaultEventsBaseURL is the Statsig event ingestion endpoint.
	DefaultEventsBaseURL = "https://events.statsigapi.net"

	// DefaultEnvironment is the tier used when none is configured.
	DefaultEnvironment = "development"
)

// Config holds evaluation client settings.
type Config struct {
	// SecretKey is the server secret key (secret-xxx). Required.
	SecretKey string

	// Environment is the tier attached to every evaluation (development,
	// staging, production).
	Environment string

	// Timeout for evaluation requests. Applies uniformly to all calls.
	Timeout time.Duration

	// DisableLogging suppresses event logging when true; log_event calls
	// report success without contacting the backend.
	DisableLogging bool

	// APIBaseURL is the evaluation endpoint.
	APIBaseURL string

	// EventsBaseURL is the event ingestion endpoint.
	EventsBaseURL string
}

// LoadConfig loads configuration from environment variables.
// A missing STATSIG_SERVER_SECRET_KEY is an error; the caller decides whether
// that disables evaluation tools or aborts startup.
func LoadConfig() (*Config, error) {
	secretKey := os.Getenv("STATSIG_SERVER_SECRET_KEY")
	if secretKey == "" {
		return nil, errors.New("STATSIG_SERVER_SECRET_KEY environment variable is required")
	}

	environment := os.Getenv("STATSIG_ENVIRONMENT")
	if environment == "" {
		environment = DefaultEnvironment
	}

	timeout := 3 * time.Second
	if t := os.Getenv("STATSIG_API_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	apiBase := os.Getenv("STATSIG_API_URL")
	if apiBase == "" {
		apiBase = DefaultAPIBaseURL
	}

	eventsBase := os.Getenv("STATSIG_EVENTS_API_URL")
	if eventsBase == "" {
		eventsBase = DefaultEventsBaseURL
	}

	return &Config{
		SecretKey:      secretKey,
		Environment:    environment,
		Timeout:        timeout,
		DisableLogging: strings.EqualFold(os.Getenv("STATSIG_DISABLE_LOGGING"), "true"),
		APIBaseURL:     apiBase,
		EventsBaseURL:  eventsBase,
	}, nil
}
