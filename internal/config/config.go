// Package config handles configuration and endpoint resolution for the assistant.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Environment variables recognized for endpoint resolution
const (
	EnvBase = "API_BASE"
	EnvHost = "API_HOST"
	EnvPort = "API_PORT"
)

// Defaults applied when only a partial host/port override is configured
const (
	DefaultHost = "localhost"
	DefaultPort = "3001"

	// DefaultAskPath is the backend path questions are posted to.
	// The trailing slash matters: the dev proxy does not redirect.
	DefaultAskPath = "/api/ask/"
)

// Endpoint holds the raw endpoint overrides, captured once at startup.
// Resolution happens in BaseURL; the struct itself is never mutated.
type Endpoint struct {
	Base string // Explicit full base URL, overrides everything
	Host string
	Port string
}

// EndpointFromEnv captures the endpoint environment variables.
// Call once at process start and pass the result down explicitly.
func EndpointFromEnv() Endpoint {
	return Endpoint{
		Base: os.Getenv(EnvBase),
		Host: os.Getenv(EnvHost),
		Port: os.Getenv(EnvPort),
	}
}

// BaseURL resolves the address prefix for all backend calls.
// First matching rule wins:
//  1. explicit base URL, with trailing slashes stripped
//  2. host and/or port override: http://{host|localhost}:{port|3001}
//  3. empty string (requests stay relative to the serving origin)
func (e Endpoint) BaseURL() string {
	if e.Base != "" {
		return strings.TrimRight(e.Base, "/")
	}

	if e.Host != "" || e.Port != "" {
		host := e.Host
		if host == "" {
			host = DefaultHost
		}
		port := e.Port
		if port == "" {
			port = DefaultPort
		}
		return fmt.Sprintf("http://%s:%s", host, port)
	}

	return ""
}

// Config represents the user configuration
type Config struct {
	// AskPath is the backend path for questions. Two deployments of the
	// answer service disagree on the trailing slash, so it is a setting
	// rather than a constant.
	AskPath string `json:"ask_path"`
	// CopyToClipboard copies one-shot answers to the system clipboard.
	CopyToClipboard bool `json:"copy_to_clipboard"`
	// MarkdownStyle is the glamour style used for answer rendering
	// ("dark", "light", or "auto").
	MarkdownStyle string `json:"markdown_style"`
	// Verbose enables request timing output on stderr.
	Verbose bool `json:"verbose"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		AskPath:         DefaultAskPath,
		CopyToClipboard: false,
		MarkdownStyle:   "dark",
		Verbose:         false,
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".qa-assistant"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if config doesn't exist
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.AskPath == "" {
		cfg.AskPath = DefaultAskPath
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
