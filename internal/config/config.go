// Package config handles the XDG configuration directory, config.yaml and
// credential file paths.
package config

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pintask/internal/seed"
)

const (
	// AppName is the application directory name.
	AppName = "pintask"

	// ConfigFile is the optional settings filename.
	ConfigFile = "config.yaml"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Settings is the parsed config.yaml (defaults when the file is absent).
	Settings Settings
}

// Settings mirrors config.yaml.
type Settings struct {
	// Tasks are created at startup, in order.
	Tasks []seed.Entry `yaml:"tasks"`

	Google GoogleSettings `yaml:"google"`
	Theme  ThemeSettings  `yaml:"theme"`
}

// GoogleSettings controls the read-only Google Tasks import.
type GoogleSettings struct {
	Enabled bool `yaml:"enabled"`

	// List is the list title to import; empty means the default list.
	List string `yaml:"list"`
}

// ThemeSettings holds TUI colours as lipgloss colour strings.
type ThemeSettings struct {
	Accent string `yaml:"accent"`
	Muted  string `yaml:"muted"`
	Error  string `yaml:"error"`
}

// DefaultSettings returns the settings used when config.yaml is absent.
func DefaultSettings() Settings {
	return Settings{
		Theme: ThemeSettings{
			Accent: "#89B4FA",
			Muted:  "#7F849C",
			Error:  "#F38BA8",
		},
	}
}

// New creates a new Config with the default or specified config directory and
// loads config.yaml from it if present.
// If configDir is empty, uses XDG_CONFIG_HOME/pintask or $HOME/.config/pintask.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir, Settings: DefaultSettings()}
	if err := cfg.load(); err != nil {
		return nil, err
	}
	return cfg, nil
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

// load reads config.yaml over the defaults. A missing file is not an error.
func (c *Config) load() error {
	data, err := os.ReadFile(c.SettingsPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	}
	if err := yaml.Unmarshal(data, &c.Settings); err != nil {
		return fmt.Errorf("invalid %s: %w", ConfigFile, err)
	}
	return nil
}

// SettingsPath returns the path to config.yaml.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}

// Logger returns a debug logger writing to w when Debug is set, and a
// discarding one otherwise.
func (c *Config) Logger(w io.Writer) *log.Logger {
	if !c.Debug {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, "debug: ", 0)
}
