package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the demo configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Retry   RetryConfig   `yaml:"retry"`
	Timeout TimeoutConfig `yaml:"timeout"`
	// Failures is how many times the demo's flaky operation fails first.
	Failures int `yaml:"failures"`
	// Workers bounds concurrent zip evaluation, 0 = unbounded
	Workers int `yaml:"workers"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

type RetryConfig struct {
	Times         uint          `yaml:"times"`
	Delay         time.Duration `yaml:"delay"`
	BackoffFactor float64       `yaml:"backoff_factor"`
}

type TimeoutConfig struct {
	Duration time.Duration `yaml:"duration"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Retry: RetryConfig{
			Times:         3,
			Delay:         50 * time.Millisecond,
			BackoffFactor: 2,
		},
		Timeout:  TimeoutConfig{Duration: 2 * time.Second},
		Failures: 2,
	}
}

// Load reads configuration from a YAML file on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Retry.Delay < 0 {
		return fmt.Errorf("retry.delay must not be negative, got %v", c.Retry.Delay)
	}
	if c.Timeout.Duration <= 0 {
		return fmt.Errorf("timeout.duration must be positive, got %v", c.Timeout.Duration)
	}
	if c.Failures < 0 {
		return fmt.Errorf("failures must not be negative, got %d", c.Failures)
	}
	return nil
}
