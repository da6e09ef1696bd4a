package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFile != "" {
		t.Errorf("LogFile = %q, want empty", cfg.LogFile)
	}
	if !cfg.UpdateCheck {
		t.Error("UpdateCheck = false, want true")
	}
}

func TestPath(t *testing.T) {
	got := Path()
	want := filepath.Join(appName, "config.yaml")
	if !strings.HasSuffix(got, want) {
		t.Errorf("Path() = %q, want suffix %q", got, want)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("Path() = %q, want an absolute path", got)
	}
}

func TestLoadFrom(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
		if err != nil {
			t.Fatalf("LoadFrom() error = %v", err)
		}
		if cfg != Default() {
			t.Errorf("LoadFrom() = %+v, want defaults", cfg)
		}
	})

	t.Run("empty file returns defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, nil, 0o600); err != nil {
			t.Fatalf("writing config: %v", err)
		}

		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom() error = %v", err)
		}
		if cfg != Default() {
			t.Errorf("LoadFrom() = %+v, want defaults", cfg)
		}
	})

	t.Run("omitted keys keep defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("log_level: debug\n"), 0o600); err != nil {
			t.Fatalf("writing config: %v", err)
		}

		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom() error = %v", err)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
		}
		if !cfg.UpdateCheck {
			t.Error("UpdateCheck = false, want the default true")
		}
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("log_level: [unclosed\n"), 0o600); err != nil {
			t.Fatalf("writing config: %v", err)
		}

		if _, err := LoadFrom(path); err == nil {
			t.Fatal("LoadFrom() = nil error, want parse error")
		}
	})
}

func TestSaveTo(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "config.yaml")
		want := Config{LogLevel: "warn", LogFile: "/tmp/rulekit.log", UpdateCheck: false}
		if err := want.SaveTo(path); err != nil {
			t.Fatalf("SaveTo() error = %v", err)
		}

		got, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom() error = %v", err)
		}
		if got != want {
			t.Errorf("LoadFrom() = %+v, want %+v", got, want)
		}
	})

	t.Run("restrictive permissions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := Default().SaveTo(path); err != nil {
			t.Fatalf("SaveTo() error = %v", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stating config: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Errorf("permissions = %o, want 600", perm)
		}
	})
}
