package config

import (
	"testing"
	"time"

	"github.com/gaurav-prasanna/nhsmeds/core/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"NHSMEDS_BASE_URL", "NHSMEDS_OUTPUT", "NHSMEDS_ENGINE", "NHSMEDS_FORMAT",
	"NHSMEDS_MERGE", "NHSMEDS_HEADLESS", "NHSMEDS_TIMEOUT", "NHSMEDS_USER_AGENT",
	"NHSMEDS_METRICS_FILE", "NHSMEDS_LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "https://www.nhs.uk", cfg.BaseURL)
	assert.Equal(t, "./output/medicine-details.json", cfg.Output)
	assert.Equal(t, EngineBrowser, cfg.Engine)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, extract.MergeOverwrite, cfg.MergeMode())
	assert.True(t, cfg.Headless)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.MetricsFile)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("NHSMEDS_BASE_URL", "http://localhost:8080")
	t.Setenv("NHSMEDS_ENGINE", "http")
	t.Setenv("NHSMEDS_FORMAT", "pdf")
	t.Setenv("NHSMEDS_MERGE", "concat")
	t.Setenv("NHSMEDS_HEADLESS", "false")
	t.Setenv("NHSMEDS_TIMEOUT", "5s")
	t.Setenv("NHSMEDS_METRICS_FILE", "/tmp/nhsmeds.prom")
	t.Setenv("NHSMEDS_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, EngineHTTP, cfg.Engine)
	assert.Equal(t, FormatPDF, cfg.Format)
	assert.Equal(t, extract.MergeConcat, cfg.MergeMode())
	assert.False(t, cfg.Headless)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "/tmp/nhsmeds.prom", cfg.MetricsFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("NHSMEDS_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("NHSMEDS_HEADLESS", "maybe")
	_, err = Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			BaseURL:  "https://www.nhs.uk",
			Output:   "./output/medicine-details.json",
			Engine:   EngineBrowser,
			Format:   FormatJSON,
			Merge:    "overwrite",
			Timeout:  time.Second,
			LogLevel: "info",
		}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"relative base URL", func(c *Config) { c.BaseURL = "/medicines" }},
		{"ftp base URL", func(c *Config) { c.BaseURL = "ftp://www.nhs.uk" }},
		{"empty output", func(c *Config) { c.Output = " " }},
		{"unknown engine", func(c *Config) { c.Engine = "puppeteer" }},
		{"unknown format", func(c *Config) { c.Format = "xml" }},
		{"unknown merge", func(c *Config) { c.Merge = "append" }},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "trace" }},
	}

	require.NoError(t, valid().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
