// Package config handles XDG configuration directory and file paths.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// AppName is the application directory name.
	AppName = "taskdash"

	// TokenFile is the stored session token filename.
	TokenFile = "token.json"

	// DarkModeFile stores the dark-mode preference as "true" or "false".
	DarkModeFile = "darkmode"

	// DefaultBaseURL is the production endpoint.
	DefaultBaseURL = "https://smartdash-backend-pkgl.onrender.com/api"

	// BaseURLEnv overrides the endpoint, e.g. http://localhost:5000/api
	// for local development.
	BaseURLEnv = "TASKDASH_API_URL"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// BaseURL is the remote service endpoint.
	BaseURL string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/taskdash or $HOME/.config/taskdash.
// The base endpoint comes from TASKDASH_API_URL when set.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	base := os.Getenv(BaseURLEnv)
	if base == "" {
		base = DefaultBaseURL
	}
	return &Config{Dir: dir, BaseURL: base}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// TokenPath returns the path to the stored session token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// DarkModePath returns the path to the dark-mode preference file.
func (c *Config) DarkModePath() string {
	return filepath.Join(c.Dir, DarkModeFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// DarkMode reads the dark-mode preference. Missing or unreadable means off.
func (c *Config) DarkMode() bool {
	data, err := os.ReadFile(c.DarkModePath())
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(data)) == "true"
}

// SetDarkMode persists the dark-mode preference.
func (c *Config) SetDarkMode(on bool) error {
	if err := c.EnsureDir(); err != nil {
		return err
	}
	value := "false"
	if on {
		value = "true"
	}
	return os.WriteFile(c.DarkModePath(), []byte(value), 0644)
}
