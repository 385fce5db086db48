// Package cfg holds the application configuration, bound to flags and
// filled from the environment by main.
package cfg

import (
	"errors"
	"flag"
	"fmt"
)

// Config adds intake-specific configuration fields to the
// common cfg.Registerable and cfg.Validatable interfaces
type Config struct {
	DrainSeconds            int
	ShutdownBudgetSeconds   int
	APIPort                 int
	DatabaseURL             string
	PredictorEndpoint       string
	PredictorTimeoutSeconds int
	ClaudeAPIKey            string
	ClaudeModel             string
	SlackWebhookURL         string
	OverpassEndpoint        string
	APIToken                string
}

// RegisterFlags binds Config fields to the given FlagSet with defaults inline
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.DrainSeconds, "drain-seconds", 60, "seconds to wait for in-flight requests to drain before shutdown (1..300)")
	fs.IntVar(&c.ShutdownBudgetSeconds, "shutdown-budget-seconds", 90, "total seconds for component shutdown after drain (1..300)")
	fs.IntVar(&c.APIPort, "http-port", 8080, "API listen TCP port (1..65535)")
	fs.StringVar(&c.DatabaseURL, "database-url", "", "PostgreSQL connection URL (empty = in-memory store)")
	fs.StringVar(&c.PredictorEndpoint, "predictor-endpoint", "", "remote prediction service URL (empty = local engine only)")
	fs.IntVar(&c.PredictorTimeoutSeconds, "predictor-timeout-seconds", 3, "per-call budget for the remote predictor (1..60)")
	fs.StringVar(&c.ClaudeAPIKey, "claude-api-key", "", "API key for assessment explanations (empty = explanations disabled)")
	fs.StringVar(&c.ClaudeModel, "claude-model", "claude-sonnet-4-5", "Claude model for assessment explanations")
	fs.StringVar(&c.SlackWebhookURL, "slack-webhook-url", "", "Slack webhook URL for high-risk notifications")
	fs.StringVar(&c.OverpassEndpoint, "overpass-endpoint", "", "Overpass API URL for hospital lookups (empty = public instance)")
	fs.StringVar(&c.APIToken, "api-token", "", "bearer token for the API (empty = no authentication)")
}

// Validate checks all configuration fields for correctness.
// It returns an error if any field is invalid, or nil if all fields are valid.
func (c *Config) Validate() error {
	var errs []error

	// Drain and shutdown budgets
	if c.DrainSeconds <= 0 || c.DrainSeconds > 300 {
		errs = append(errs, fmt.Errorf("invalid DRAIN_SECONDS %d (must be 1..300)", c.DrainSeconds))
	}
	if c.ShutdownBudgetSeconds <= 0 || c.ShutdownBudgetSeconds > 300 {
		errs = append(errs, fmt.Errorf("invalid SHUTDOWN_BUDGET_SECONDS %d (must be 1..300)", c.ShutdownBudgetSeconds))
	}

	// Shutdown budget must be greater than drain time
	if c.ShutdownBudgetSeconds <= c.DrainSeconds {
		errs = append(errs, fmt.Errorf("SHUTDOWN_BUDGET_SECONDS %d must be greater than DRAIN_SECONDS %d", c.ShutdownBudgetSeconds, c.DrainSeconds))
	}

	// API port must be valid TCP port number
	if c.APIPort <= 0 || c.APIPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid HTTP_PORT %d (must be 1..65535)", c.APIPort))
	}

	if c.PredictorTimeoutSeconds <= 0 || c.PredictorTimeoutSeconds > 60 {
		errs = append(errs, fmt.Errorf("invalid PREDICTOR_TIMEOUT_SECONDS %d (must be 1..60)", c.PredictorTimeoutSeconds))
	}

	// The model only matters when explanations are enabled
	if c.ClaudeAPIKey != "" && c.ClaudeModel == "" {
		errs = append(errs, errors.New("CLAUDE_MODEL is required when CLAUDE_API_KEY is set"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
