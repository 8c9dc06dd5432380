package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validate checks configuration invariants and returns actionable errors.
func Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	var errs []error

	if strings.TrimSpace(cfg.UnityHost) == "" {
		errs = append(errs, errors.New("unity_host: must not be empty"))
	}
	errs = append(errs, validatePort("unity_port", cfg.UnityPort)...)
	errs = append(errs, validatePort("mcp_port", cfg.MCPPort)...)
	if cfg.UnityPort == cfg.MCPPort {
		errs = append(errs, fmt.Errorf("unity_port and mcp_port: must differ, both are %d", cfg.UnityPort))
	}

	errs = append(errs, validateDuration("connection_timeout", cfg.ConnectionTimeout)...)
	errs = append(errs, validateDuration("retry_delay", cfg.RetryDelay)...)

	if cfg.BufferSize <= 0 {
		errs = append(errs, fmt.Errorf("buffer_size: must be > 0, got %d", cfg.BufferSize))
	}
	if cfg.MaxRetries < 1 {
		errs = append(errs, fmt.Errorf("max_retries: must be >= 1, got %d", cfg.MaxRetries))
	}

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level: unknown level %q, use debug, info, warn or error", cfg.LogLevel))
	}

	return errors.Join(errs...)
}

func validatePort(key string, port int) []error {
	if port < 1 || port > 65535 {
		return []error{fmt.Errorf("%s: must be in 1..65535, got %d", key, port)}
	}
	return nil
}

func validateDuration(key, raw string) []error {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return []error{fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)}
	}
	if d <= 0 {
		return []error{fmt.Errorf("%s: must be > 0, got %q", key, raw)}
	}
	return nil
}
