package paths

import (
	"path/filepath"
	"testing"
)

func TestRuntimeDirUsesXDGStateHomeFallback(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "")
	t.Setenv("XDG_STATE_HOME", "/tmp/state-home")
	t.Setenv("HOME", "/tmp/home")

	got := RuntimeDir()
	want := filepath.Join("/tmp/state-home", "unity-mcp")
	if got != want {
		t.Fatalf("RuntimeDir() = %q, want %q", got, want)
	}
}

func TestRuntimeDirFallsBackToHomeLocalState(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "")
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", "/tmp/home")

	got := RuntimeDir()
	want := filepath.Join("/tmp/home", ".local", "state", "unity-mcp")
	if got != want {
		t.Fatalf("RuntimeDir() = %q, want %q", got, want)
	}
}

func TestRuntimeDirPrefersXDGRuntimeDir(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/tmp/xdg-runtime")
	t.Setenv("XDG_STATE_HOME", "/tmp/state-home")

	got := RuntimeDir()
	want := filepath.Join("/tmp/xdg-runtime", "unity-mcp")
	if got != want {
		t.Fatalf("RuntimeDir() = %q, want %q", got, want)
	}
}

func TestConfigFileLivesUnderXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/config-home")
	t.Setenv("HOME", "/tmp/home")

	got := ConfigFile()
	want := filepath.Join("/tmp/config-home", "unity-mcp", "config.toml")
	if got != want {
		t.Fatalf("ConfigFile() = %q, want %q", got, want)
	}
}

func TestLogFileFallsBackToHomeLocalState(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", "/tmp/home")

	got := LogFile()
	want := filepath.Join("/tmp/home", ".local", "state", "unity-mcp", "unity-mcp.log")
	if got != want {
		t.Fatalf("LogFile() = %q, want %q", got, want)
	}
}
