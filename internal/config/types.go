package config

import "time"

// Config holds every setting the bridge reads at startup.
type Config struct {
	// Network settings
	UnityHost string `toml:"unity_host"`
	UnityPort int    `toml:"unity_port"`
	MCPPort   int    `toml:"mcp_port"`

	// Connection settings
	ConnectionTimeout string `toml:"connection_timeout"`
	BufferSize        int    `toml:"buffer_size"`
	MaxRetries        int    `toml:"max_retries"`
	RetryDelay        string `toml:"retry_delay"`

	// Logging settings
	LogLevel string `toml:"log_level"`
}

// Defaults mirror the stock bridge configuration: a local editor
// listening on 6400, with the MCP SSE transport on 6500.
const (
	DefaultUnityHost         = "localhost"
	DefaultUnityPort         = 6400
	DefaultMCPPort           = 6500
	DefaultConnectionTimeout = "15s"
	DefaultBufferSize        = 32768
	DefaultMaxRetries        = 3
	DefaultRetryDelay        = "1s"
	DefaultLogLevel          = "info"
)

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		UnityHost:         DefaultUnityHost,
		UnityPort:         DefaultUnityPort,
		MCPPort:           DefaultMCPPort,
		ConnectionTimeout: DefaultConnectionTimeout,
		BufferSize:        DefaultBufferSize,
		MaxRetries:        DefaultMaxRetries,
		RetryDelay:        DefaultRetryDelay,
		LogLevel:          DefaultLogLevel,
	}
}

// Timeout returns the parsed connection timeout. Validate guarantees the
// string parses, so the zero duration only appears for unvalidated configs.
func (c *Config) Timeout() time.Duration {
	d, _ := time.ParseDuration(c.ConnectionTimeout)
	return d
}

// Delay returns the parsed retry delay.
func (c *Config) Delay() time.Duration {
	d, _ := time.ParseDuration(c.RetryDelay)
	return d
}
