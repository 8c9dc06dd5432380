package paths

import (
	"os"
	"path/filepath"
)

func homeDir() string {
	if h := os.Getenv("HOME"); h != "" {
		return h
	}
	h, _ := os.UserHomeDir()
	return h
}

func xdgDir(envVar, fallbackSuffix string) string {
	if v := os.Getenv(envVar); v != "" {
		return filepath.Join(v, "unity-mcp")
	}
	return filepath.Join(homeDir(), fallbackSuffix, "unity-mcp")
}

// ConfigDir returns the unity-mcp config directory ($XDG_CONFIG_HOME/unity-mcp).
func ConfigDir() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the unity-mcp state directory ($XDG_STATE_HOME/unity-mcp).
func StateDir() string {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

// RuntimeDir returns the unity-mcp runtime directory for lock files.
// Falls back to $XDG_STATE_HOME/unity-mcp if XDG_RUNTIME_DIR is unset.
func RuntimeDir() string {
	if v := os.Getenv("XDG_RUNTIME_DIR"); v != "" {
		return filepath.Join(v, "unity-mcp")
	}
	return StateDir()
}

// ConfigFile returns the path to config.toml.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LogFile returns the path to the bridge log file.
func LogFile() string {
	return filepath.Join(StateDir(), "unity-mcp.log")
}

// LockPath returns the path to the single-instance file lock.
func LockPath() string {
	return filepath.Join(RuntimeDir(), "bridge.lock")
}

// EnsureDir creates a directory and parents if needed.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0700)
}
