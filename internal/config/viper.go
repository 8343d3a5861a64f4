// Package config provides Viper-based hierarchical configuration for the CLI
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete CLI configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Gateway struct {
		Login          string `mapstructure:"login" yaml:"login"`
		TransactionKey string `mapstructure:"transaction_key" yaml:"-"` // Never serialize the key
		TestMode       bool   `mapstructure:"test_mode" yaml:"test_mode"`
		Debug          bool   `mapstructure:"debug" yaml:"debug"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	} `mapstructure:"gateway" yaml:"gateway"`

	Export struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
	} `mapstructure:"export" yaml:"export"`
}

// Timeout returns the gateway timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Gateway.TimeoutSeconds) * time.Second
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then CIM_-prefixed environment
// variables. The transaction key is only ever read from the environment.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.cim-cli")
	v.AddConfigPath(".cim-cli")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("CIM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. Credentials always bind to unprefixed-friendly names too
	if err := v.BindEnv("gateway.login", "CIM_LOGIN"); err != nil {
		fmt.Printf("Warning: failed to bind CIM_LOGIN environment variable: %v\n", err)
	}
	if err := v.BindEnv("gateway.transaction_key", "CIM_TRANSACTION_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind CIM_TRANSACTION_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Gateway defaults
	v.SetDefault("gateway.login", "")
	v.SetDefault("gateway.transaction_key", "")
	v.SetDefault("gateway.test_mode", false)
	v.SetDefault("gateway.debug", false)
	v.SetDefault("gateway.timeout_seconds", 30)

	// Export defaults
	v.SetDefault("export.delimiter", ",")
	v.SetDefault("export.include_headers", true)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate export delimiter
	if len(config.Export.Delimiter) != 1 {
		return fmt.Errorf("export delimiter must be a single character, got: %s", config.Export.Delimiter)
	}

	// Validate gateway timeout
	if config.Gateway.TimeoutSeconds < 1 || config.Gateway.TimeoutSeconds > 300 {
		return fmt.Errorf("gateway.timeout_seconds must be between 1 and 300, got: %d", config.Gateway.TimeoutSeconds)
	}

	return nil
}
