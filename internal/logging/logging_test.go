package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "test.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return path
}

func TestInitWritesToFile(t *testing.T) {
	path := setupTestLogger(t)

	Get().Info("unity command sent", "type", "GET_SCENE_INFO")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "unity command sent") {
		t.Fatalf("log file missing entry, got: %s", data)
	}
}

func TestDebugEntriesSuppressedByDefault(t *testing.T) {
	path := setupTestLogger(t)

	Get().Debug("noisy detail")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if strings.Contains(string(data), "noisy detail") {
		t.Fatal("debug entry written without SetDebug(true)")
	}
}

func TestSetDebugEnablesDebugEntries(t *testing.T) {
	path := setupTestLogger(t)
	SetDebug(true)

	Get().Debug("wire dump")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "wire dump") {
		t.Fatal("debug entry missing after SetDebug(true)")
	}
}

func TestWithComponentAttachesField(t *testing.T) {
	path := setupTestLogger(t)

	WithComponent("unity").Info("connected")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "component=unity") {
		t.Fatalf("component field missing, got: %s", data)
	}
}
