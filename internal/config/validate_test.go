package config

import (
	"strings"
	"testing"
)

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("Validate(Default()) error = %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{
			name:    "empty host",
			mutate:  func(c *Config) { c.UnityHost = "  " },
			wantSub: "unity_host",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.UnityPort = 70000 },
			wantSub: "unity_port",
		},
		{
			name:    "ports collide",
			mutate:  func(c *Config) { c.MCPPort = c.UnityPort },
			wantSub: "must differ",
		},
		{
			name:    "bad timeout",
			mutate:  func(c *Config) { c.ConnectionTimeout = "fifteen" },
			wantSub: "connection_timeout",
		},
		{
			name:    "negative retry delay",
			mutate:  func(c *Config) { c.RetryDelay = "-1s" },
			wantSub: "retry_delay",
		},
		{
			name:    "zero buffer",
			mutate:  func(c *Config) { c.BufferSize = 0 },
			wantSub: "buffer_size",
		},
		{
			name:    "zero retries",
			mutate:  func(c *Config) { c.MaxRetries = 0 },
			wantSub: "max_retries",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantSub: "log_level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Fatalf("Validate() error = %q, want substring %q", err, tt.wantSub)
			}
		})
	}
}

func TestValidateJoinsMultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.UnityHost = ""
	cfg.BufferSize = -1

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	for _, sub := range []string{"unity_host", "buffer_size"} {
		if !strings.Contains(err.Error(), sub) {
			t.Fatalf("Validate() error = %q, missing %q", err, sub)
		}
	}
}
