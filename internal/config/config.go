package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/edgejump/internal/relocate"
)

const (
	DefaultConfigDir  = ".config/edgejump"
	DefaultConfigFile = "config.yaml"

	DefaultSocketPath = "/tmp/edgejump-helper.sock"
	DefaultTimeoutMs  = 5000
	DefaultDPI        = 96
)

// DefaultConfig returns the configuration used when no file exists.
// Jump and unstick are on, wrap is off.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			AllowJump:    true,
			AllowUnstick: true,
			AllowWrap:    false,
			ReferenceDPI: DefaultDPI,
			LogLevel:     "info",
		},
		Platform: PlatformConfig{
			Backend:   "helper",
			Socket:    DefaultSocketPath,
			TimeoutMs: DefaultTimeoutMs,
		},
	}
}

// LoadConfig loads configuration from the specified path or default location
// If path is empty, uses ~/.config/edgejump/config.yaml, then config.json,
// and falls back to DefaultConfig when neither exists
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		yamlPath := filepath.Join(home, DefaultConfigDir, "config.yaml")
		jsonPath := filepath.Join(home, DefaultConfigDir, "config.json")

		if _, err := os.Stat(yamlPath); err == nil {
			path = yamlPath
		} else if _, err := os.Stat(jsonPath); err == nil {
			path = jsonPath
		} else {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return LoadConfigFromBytes(data, formatFromPath(path))
}

// LoadConfigFromBytes loads configuration from raw bytes on top of the defaults
// format should be "yaml" or "json"
func LoadConfigFromBytes(data []byte, format string) (*Config, error) {
	cfg := DefaultConfig()

	if err := decode(data, format, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadScenario reads a scenario file (.yaml, .yml or .json)
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return LoadScenarioFromBytes(data, formatFromPath(path))
}

// LoadScenarioFromBytes parses and validates a scenario
func LoadScenarioFromBytes(data []byte, format string) (*Scenario, error) {
	var sc Scenario
	if err := decode(data, format, &sc); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &sc, nil
}

// Marshal encodes the config in the given format
func (c *Config) Marshal(format string) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		return yaml.Marshal(c)
	case "json":
		return json.MarshalIndent(c, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}
}

// GetConfigPath returns the default config file path
func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
}

// Policy returns the relocation policy flags from settings
func (c *Config) Policy() relocate.Policy {
	return relocate.Policy{
		AllowJump:    c.Settings.AllowJump,
		AllowUnstick: c.Settings.AllowUnstick,
		AllowWrap:    c.Settings.AllowWrap,
	}
}

// Timeout returns the helper request timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Platform.TimeoutMs) * time.Millisecond
}

// Apply overlays the set fields of p onto base
func (p *PolicyConfig) Apply(base relocate.Policy) relocate.Policy {
	if p == nil {
		return base
	}
	if p.AllowJump != nil {
		base.AllowJump = *p.AllowJump
	}
	if p.AllowUnstick != nil {
		base.AllowUnstick = *p.AllowUnstick
	}
	if p.AllowWrap != nil {
		base.AllowWrap = *p.AllowWrap
	}
	return base
}

func formatFromPath(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func decode(data []byte, format string, v interface{}) error {
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %q", format)
	}
	return nil
}
