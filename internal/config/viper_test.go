package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Gateway.TestMode)
	assert.False(t, cfg.Gateway.Debug)
	assert.Equal(t, 30, cfg.Gateway.TimeoutSeconds)
	assert.Equal(t, ",", cfg.Export.Delimiter)
	assert.True(t, cfg.Export.IncludeHeaders)
}

func TestInitializeConfigEnvOverrides(t *testing.T) {
	t.Setenv("CIM_LOGIN", "merchant-1")
	t.Setenv("CIM_TRANSACTION_KEY", "supersecret")
	t.Setenv("CIM_GATEWAY_TEST_MODE", "true")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "merchant-1", cfg.Gateway.Login)
	assert.Equal(t, "supersecret", cfg.Gateway.TransactionKey)
	assert.True(t, cfg.Gateway.TestMode)
}

func TestConfigTimeout(t *testing.T) {
	cfg := &Config{}
	cfg.Gateway.TimeoutSeconds = 45
	assert.Equal(t, 45*time.Second, cfg.Timeout())
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.Export.Delimiter = ","
		cfg.Gateway.TimeoutSeconds = 30
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "valid config passes",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: "invalid log level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: "invalid log format",
		},
		{
			name:    "multi-character delimiter",
			mutate:  func(c *Config) { c.Export.Delimiter = ",," },
			wantErr: "delimiter must be a single character",
		},
		{
			name:    "timeout out of range",
			mutate:  func(c *Config) { c.Gateway.TimeoutSeconds = 0 },
			wantErr: "timeout_seconds must be between",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
