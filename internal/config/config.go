// Package config reads and writes the user configuration file,
// stored at the platform config home under the application name.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// appName names the directory under the user config home.
const appName = "rulekit"

// Config holds user configuration for rulekit.
type Config struct {
	// LogLevel is the minimum level the server logs at: debug,
	// info, warn, or error.
	LogLevel string `yaml:"log_level"`
	// LogFile, when set, receives log output instead of stderr.
	LogFile string `yaml:"log_file,omitempty"`
	// UpdateCheck controls the release check on server startup.
	UpdateCheck bool `yaml:"update_check"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogLevel:    "info",
		UpdateCheck: true,
	}
}

// Path returns the standard config file location for the platform.
func Path() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// Load reads the config from the standard location. Running without
// a config file is the normal case, so a missing file just returns
// defaults.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config from a specific path. Keys omitted from
// the file keep their default values.
func LoadFrom(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to the standard location.
func (c Config) Save() error {
	return c.SaveTo(Path())
}

// SaveTo writes the config to a specific path, creating parent
// directories as needed. The file is created with owner-only
// permissions.
func (c Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
