package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/FluidXR/lockboxctl/internal/device"
)

// DeviceConfig stores per-device settings.
type DeviceConfig struct {
	Nickname string `yaml:"nickname,omitempty"`
}

// Config is the top-level configuration.
type Config struct {
	Coin         string                  `yaml:"coin"`
	BridgePath   string                  `yaml:"bridge_path"`
	PollInterval time.Duration           `yaml:"poll_interval"`
	Timezone     string                  `yaml:"timezone,omitempty"`
	LogLevel     string                  `yaml:"log_level"`
	Marquees     []string                `yaml:"marquees"`
	Devices      map[string]DeviceConfig `yaml:"devices,omitempty"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Coin:         "btc",
		BridgePath:   device.DefaultBridge,
		PollInterval: time.Second,
		LogLevel:     "development",
		Marquees: []string{
			"Enter your PIN on the device",
			"Open the coin app from the dashboard",
			"Keep the device unlocked until you are done",
		},
		Devices: make(map[string]DeviceConfig),
	}
}

// Dir returns the config directory path.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lockboxctl")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "lockboxctl")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile reads the config at path, returning defaults if it doesn't exist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Devices == nil {
		cfg.Devices = make(map[string]DeviceConfig)
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	return SaveFile(Path(), cfg)
}

// SaveFile writes the config to path, creating its directory.
func SaveFile(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Location resolves the configured timezone. Empty means the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Nickname returns the configured name for serial, or serial itself.
func (c *Config) Nickname(serial string) string {
	if dc, ok := c.Devices[serial]; ok && dc.Nickname != "" {
		return dc.Nickname
	}
	return serial
}
