package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Tx.validate(); err != nil {
		return fmt.Errorf("tx: %w", err)
	}

	if c.Usage.DailyTokenLimit < 0 {
		return fmt.Errorf("usage.daily_token_limit must be >= 0 (got %d)", c.Usage.DailyTokenLimit)
	}
	if strings.TrimSpace(c.Usage.DefaultApp) == "" {
		return fmt.Errorf("usage.default_app must not be empty")
	}

	if c.Content.MaxListLimit < 1 {
		return fmt.Errorf("content.max_list_limit must be >= 1 (got %d)", c.Content.MaxListLimit)
	}
	if c.Content.DefaultListLimit < 1 || c.Content.DefaultListLimit > c.Content.MaxListLimit {
		return fmt.Errorf("content.default_list_limit must be in [1, %d] (got %d)", c.Content.MaxListLimit, c.Content.DefaultListLimit)
	}

	if c.Metrics.Enabled && strings.TrimSpace(c.Metrics.Endpoint) == "" {
		return fmt.Errorf("metrics.endpoint is required when metrics are enabled")
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (t *TxConfig) validate() error {
	if t.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", t.Timeout)
	}
	if t.LockTimeout <= 0 || t.LockTimeout > t.Timeout {
		return fmt.Errorf("lock_timeout must be in (0, timeout] (got %v)", t.LockTimeout)
	}
	if t.MaxRetries > 10 {
		return fmt.Errorf("max_retries must be <= 10 (got %d)", t.MaxRetries)
	}
	if t.RetryBaseDelay <= 0 {
		return fmt.Errorf("retry_base_delay must be > 0 (got %v)", t.RetryBaseDelay)
	}
	return nil
}
