// Package config has the runtime configuration for nhsmeds
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gaurav-prasanna/nhsmeds/core/extract"
	"github.com/gaurav-prasanna/nhsmeds/logging"
	"github.com/joho/godotenv"
)

// Page engines.
const (
	EngineBrowser = "browser"
	EngineHTTP    = "http"
)

// Output formats.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatPDF      = "pdf"
)

// Config holds all scrape configuration
type Config struct {
	BaseURL     string
	Output      string // path of the JSON catalog
	Engine      string
	Format      string
	Merge       string // merge mode for two-section pages
	Headless    bool
	Timeout     time.Duration // per navigation
	UserAgent   string
	MetricsFile string // optional Prometheus textfile
	LogLevel    string
}

// Load reads an optional .env file, then loads configuration from the
// environment with defaults.
func Load() (*Config, error) {
	// A missing .env is fine: the environment and defaults still apply.
	_ = godotenv.Load()

	timeout, err := getDurationEnvWithDefault("NHSMEDS_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	headless, err := getBoolEnvWithDefault("NHSMEDS_HEADLESS", true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BaseURL:     getEnvWithDefault("NHSMEDS_BASE_URL", "https://www.nhs.uk"),
		Output:      getEnvWithDefault("NHSMEDS_OUTPUT", "./output/medicine-details.json"),
		Engine:      getEnvWithDefault("NHSMEDS_ENGINE", EngineBrowser),
		Format:      getEnvWithDefault("NHSMEDS_FORMAT", FormatJSON),
		Merge:       getEnvWithDefault("NHSMEDS_MERGE", "overwrite"),
		Headless:    headless,
		Timeout:     timeout,
		UserAgent:   os.Getenv("NHSMEDS_USER_AGENT"),
		MetricsFile: os.Getenv("NHSMEDS_METRICS_FILE"),
		LogLevel:    getEnvWithDefault("NHSMEDS_LOG_LEVEL", "info"),
	}
	return cfg, nil
}

// Validate checks every configuration value.
func (c *Config) Validate() error {
	if err := validateBaseURL(c.BaseURL); err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("invalid output: path cannot be empty")
	}
	switch c.Engine {
	case EngineBrowser, EngineHTTP:
	default:
		return fmt.Errorf("invalid engine %q: must be %s or %s", c.Engine, EngineBrowser, EngineHTTP)
	}
	switch c.Format {
	case FormatJSON, FormatMarkdown, FormatPDF:
	default:
		return fmt.Errorf("invalid format %q: must be json, markdown or pdf", c.Format)
	}
	if _, err := extract.ParseMergeMode(c.Merge); err != nil {
		return fmt.Errorf("invalid merge: %w", err)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid timeout %s: must be positive", c.Timeout)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// MergeMode returns the parsed merge mode. Call Validate first.
func (c *Config) MergeMode() extract.MergeMode {
	m, _ := extract.ParseMergeMode(c.Merge)
	return m
}

// validateBaseURL requires an absolute http(s) URL.
func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s: missing host", raw)
	}
	return nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnvWithDefault(key string, defaultValue bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}

func getDurationEnvWithDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}
