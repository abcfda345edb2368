package config

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/c360/containerkit/container"
	"github.com/c360/containerkit/errors"
	"github.com/c360/containerkit/wire"
)

// Config represents the complete codec and container configuration
type Config struct {
	Version            string `yaml:"version"`              // Wire protocol version stamped into headers
	DefaultMessageType string `yaml:"default_message_type"` // Message type for unaddressed containers
	MaxValues          int    `yaml:"max_values"`           // Per-container value cap
	MaxDepth           int    `yaml:"max_depth"`            // Nesting limit for encode and decode
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Version:            container.DefaultVersion,
		DefaultMessageType: container.DefaultMessageType,
		MaxValues:          container.DefaultMaxValues,
		MaxDepth:           wire.DefaultMaxDepth,
	}
}

// Validate checks the configuration and fills in safe defaults for
// unset fields. MaxValues is capped at the absolute ceiling.
func (c *Config) Validate() error {
	if c.Version == "" {
		c.Version = container.DefaultVersion
	}
	if c.DefaultMessageType == "" {
		c.DefaultMessageType = container.DefaultMessageType
	}

	if c.MaxValues < 0 {
		return errors.WrapInvalid(
			fmt.Errorf("max_values %d is negative: %w", c.MaxValues, errors.ErrInvalidConfig),
			"config", "Validate", "validation")
	}
	if c.MaxValues == 0 {
		c.MaxValues = container.DefaultMaxValues
	}
	if c.MaxValues > container.AbsoluteMaxValues {
		c.MaxValues = container.AbsoluteMaxValues
	}

	if c.MaxDepth < 0 {
		return errors.WrapInvalid(
			fmt.Errorf("max_depth %d is negative: %w", c.MaxDepth, errors.ErrInvalidConfig),
			"config", "Validate", "validation")
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = wire.DefaultMaxDepth
	}

	return nil
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return Default()
	}
	copied := *c
	return &copied
}

// ContainerOptions translates the configuration into container
// options. Unset fields are skipped so the container keeps its own
// defaults.
func (c *Config) ContainerOptions() []container.Option {
	opts := []container.Option{container.WithMaxValues(c.MaxValues)}
	if c.DefaultMessageType != "" {
		opts = append(opts, container.WithMessageType(c.DefaultMessageType))
	}
	if c.Version != "" {
		opts = append(opts, container.WithVersion(c.Version))
	}
	return opts
}

// CodecOptions translates the configuration into wire codec options
func (c *Config) CodecOptions() []wire.Option {
	return []wire.Option{
		wire.WithMaxDepth(c.MaxDepth),
		wire.WithMaxValues(c.MaxValues),
	}
}

// Load reads and validates a YAML configuration file
func Load(path string) (*Config, error) {
	logger := slog.Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(
			fmt.Errorf("%w: %s: %v", errors.ErrMissingConfig, path, err),
			"config", "Load", "reading config file")
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapInvalid(err, "config", "Load", "parsing config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Info("configuration loaded",
		"path", path,
		"version", cfg.Version,
		"max_values", cfg.MaxValues,
		"max_depth", cfg.MaxDepth)

	return cfg, nil
}

// SafeConfig provides thread-safe access to configuration
type SafeConfig struct {
	mu     sync.RWMutex
	config *Config
}

// NewSafeConfig creates a new thread-safe config wrapper
func NewSafeConfig(cfg *Config) *SafeConfig {
	if cfg == nil {
		cfg = Default()
	}
	return &SafeConfig{config: cfg}
}

// Get returns a copy of the current configuration
func (sc *SafeConfig) Get() *Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.config.Clone()
}

// Update atomically updates the configuration after validation
func (sc *SafeConfig) Update(cfg *Config) error {
	if cfg == nil {
		return errors.WrapInvalid(
			errors.New("config cannot be nil"), "config", "Update", "update")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.config = cfg
	return nil
}
