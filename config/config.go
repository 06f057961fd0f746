// Package config handles application configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// EnvBackendURL names the variable holding the backend base URL.
	EnvBackendURL = "BACKEND_URL"

	// DefaultBackendURL is used when EnvBackendURL is unset.
	DefaultBackendURL = "http://localhost:8000"

	envFileName = ".env"
)

// Config represents the application configuration.
type Config struct {
	BackendURL     string        `json:"backend_url"`
	RequestTimeout time.Duration `json:"request_timeout"`
	HistoryLimit   int           `json:"history_limit"`
	Hotkeys        Hotkeys       `json:"hotkeys"`
}

// Hotkeys holds the global shortcut combinations.
type Hotkeys struct {
	ShowWindow  string `json:"show_window"`
	ToggleVoice string `json:"toggle_voice"`
}

// Load builds the configuration from the environment, reading a .env file
// in the working directory first when one exists. Variables already set
// in the environment win over the file.
func Load() (*Config, error) {
	return LoadFrom(envFileName)
}

// LoadFrom is Load with an explicit env file path.
func LoadFrom(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := Default()
	if v := strings.TrimSpace(os.Getenv(EnvBackendURL)); v != "" {
		cfg.BackendURL = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and normalizes the backend URL.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return fmt.Errorf("parse backend url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend url must be http or https: %q", c.BackendURL)
	}
	if u.Host == "" {
		return fmt.Errorf("backend url has no host: %q", c.BackendURL)
	}
	c.BackendURL = strings.TrimRight(c.BackendURL, "/")
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BackendURL:     DefaultBackendURL,
		RequestTimeout: 30 * time.Second,
		HistoryLimit:   50,
		Hotkeys: Hotkeys{
			ShowWindow:  "ctrl+shift+t",
			ToggleVoice: "ctrl+shift+v",
		},
	}
}
