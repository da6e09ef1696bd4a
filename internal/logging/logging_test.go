package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewTestLogger_CapturesOutput(t *testing.T) {
	logger, buf := NewTestLogger()

	logger.Info("rules loaded", "count", 3)

	output := buf.String()
	if !strings.Contains(output, "rules loaded") {
		t.Errorf("expected log output to contain message, got: %s", output)
	}
	if !strings.Contains(output, "count=3") {
		t.Errorf("expected log output to contain keyvals, got: %s", output)
	}
}

func TestNewTestLogger_DebugEnabled(t *testing.T) {
	logger, buf := NewTestLogger()

	logger.Debug("skipping unreadable rule", "file", "broken.mdc")

	if !strings.Contains(buf.String(), "broken.mdc") {
		t.Errorf("expected debug output in test logger, got: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"error", "error"},
		{"", "info"},
		{"nonsense", "info"},
	}

	for _, tt := range tests {
		t.Run("level "+tt.input, func(t *testing.T) {
			got := parseLevel(tt.input)
			if got.String() != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rulekit.log")

	logger, err := New(Options{Level: "info", File: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("written to file")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file missing entry, got: %s", data)
	}
}

func TestNew_BadLogFilePath(t *testing.T) {
	_, err := New(Options{File: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	if err == nil {
		t.Fatal("expected error for unwritable log file path")
	}
}

func TestNew_CloseWithoutFileIsNoop(t *testing.T) {
	logger, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close without file = %v, want nil", err)
	}
}
