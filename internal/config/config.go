// Package config handles loading and saving user configuration for readage.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the config file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration.
type Config struct {
	Provider    string        `yaml:"provider"`          // gemini or anthropic
	Model       string        `yaml:"model,omitempty"`   // empty picks the provider default
	APIKey      string        `yaml:"api_key,omitempty"` // usually supplied through the environment
	BaseURL     string        `yaml:"base_url,omitempty"`
	Locale      string        `yaml:"locale"` // school system for school year labels
	Temperature float64       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
	Log         LogConfig     `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `yaml:"level"`  // debug, info, warn, error
	Format     string `yaml:"format"` // text or json
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Provider:    "gemini",
		Locale:      "UK",
		Temperature: 0.1,
		Timeout:     60 * time.Second,
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}
}

// Load reads the config file at path over the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Save writes cfg to path. The API key is never written.
func Save(path string, cfg *Config) error {
	out := *cfg
	out.APIKey = ""

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ResolveAPIKey picks the credential for cfg.Provider: the configured key
// first, then READAGE_API_KEY, the provider's own variable and API_KEY.
func ResolveAPIKey(cfg *Config, getenv func(string) string) string {
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		return key
	}

	names := []string{"READAGE_API_KEY"}
	switch strings.ToLower(cfg.Provider) {
	case "anthropic", "claude":
		names = append(names, "ANTHROPIC_API_KEY")
	default:
		names = append(names, "GEMINI_API_KEY", "GOOGLE_API_KEY")
	}
	names = append(names, "API_KEY")

	for _, name := range names {
		if key := strings.TrimSpace(getenv(name)); key != "" {
			return key
		}
	}
	return ""
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "readage"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "readage"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}
