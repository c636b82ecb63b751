// Package config loads elemwise settings from defaults, a YAML file and the environment.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	Kernel  KernelConfig  `mapstructure:"kernel"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// KernelConfig tunes the CPU kernels.
type KernelConfig struct {
	// LaneBytes is the batch width of the vectorized paths, in bytes.
	LaneBytes int `mapstructure:"lane_bytes"`
}

// LoggingConfig controls the shared logger.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Kernel: KernelConfig{
			LaneBytes: 32,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from file, environment, and defaults.
// An empty cfgFile searches for elemwise.yaml in the working directory; a
// missing file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	cfg := DefaultConfig()
	v.SetDefault("kernel.lane_bytes", cfg.Kernel.LaneBytes)
	v.SetDefault("logging.level", cfg.Logging.Level)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("elemwise")
	}

	v.SetEnvPrefix("ELEMWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "reading config")
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	lb := c.Kernel.LaneBytes
	if lb < 8 || lb > 256 || lb&(lb-1) != 0 {
		return errors.Errorf("kernel.lane_bytes must be a power of two between 8 and 256, got %d", lb)
	}

	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return errors.Errorf("logging.level must be one of trace, debug, info, warn, error; got %q", c.Logging.Level)
	}

	return nil
}
