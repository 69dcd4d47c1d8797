// Package config handles typex CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/hasbyte1/go-typex/digest"
	"github.com/hasbyte1/go-typex/query"
)

// Config represents the typex configuration file.
type Config struct {
	// DefaultMode is the filter mode used when --mode is not given.
	DefaultMode query.Mode `toml:"default_mode"`

	// DefaultAlgorithm is the digest algorithm used by the hash command.
	DefaultAlgorithm string `toml:"default_algorithm"`

	// Output is the result encoding: "yaml" or "json".
	Output string `toml:"output"`

	// WeekStart is the first day of the week for date expressions
	// ("monday" or "sunday").
	WeekStart string `toml:"week_start"`

	// UI controls optional theming.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an ANSI colour code ("0" to "255") or a hex colour
	// ("#RRGGBB") used for table headers.
	Accent string `toml:"accent"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DefaultMode:      query.Default,
		DefaultAlgorithm: string(digest.AlgMD5),
		Output:           "yaml",
		WeekStart:        "monday",
	}
}

// Load reads the configuration at path, or at DefaultPath when path is empty.
// A missing file yields Default.
func Load(path string) (*Config, string, error) {
	if path == "" {
		path = DefaultPath()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return Default(), path, nil
		}
	}
	cfg, err := LoadFrom(path)
	return cfg, path, err
}

// LoadFrom reads the configuration at path. Unset keys keep their defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values the TOML decoder cannot.
func (c *Config) Validate() error {
	switch c.Output {
	case "yaml", "json":
	default:
		return fmt.Errorf("output must be yaml or json, got %q", c.Output)
	}
	if _, err := c.Weekday(); err != nil {
		return err
	}
	if c.DefaultAlgorithm == "" {
		return fmt.Errorf("default_algorithm must not be empty")
	}
	return nil
}

// Algorithm returns DefaultAlgorithm in canonical form.
func (c *Config) Algorithm() digest.Algorithm {
	return digest.ParseAlgorithm(c.DefaultAlgorithm)
}

// Weekday returns WeekStart as a time.Weekday.
func (c *Config) Weekday() (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(c.WeekStart)) {
	case "", "monday", "mon":
		return time.Monday, nil
	case "sunday", "sun":
		return time.Sunday, nil
	}
	return time.Monday, fmt.Errorf("week_start must be monday or sunday, got %q", c.WeekStart)
}

// DefaultPath returns the config file path. ~/.config/typex/config.toml is
// preferred, then the OS-specific config directory.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "typex", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "typex", "config.toml")
	}
	return filepath.Join(".", "config.toml")
}
