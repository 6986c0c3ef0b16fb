// Package cmd — scrape command.
// This is the main command that orchestrates the run:
// discover → classify → extract → render → write.
//
// Flags override the environment configuration loaded by package config.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gaurav-prasanna/nhsmeds/config"
	"github.com/gaurav-prasanna/nhsmeds/core"
	"github.com/gaurav-prasanna/nhsmeds/core/browser"
	"github.com/gaurav-prasanna/nhsmeds/core/fetch"
	"github.com/gaurav-prasanna/nhsmeds/core/output"
	"github.com/gaurav-prasanna/nhsmeds/core/render"
	"github.com/gaurav-prasanna/nhsmeds/crawl"
	"github.com/gaurav-prasanna/nhsmeds/logging"
	"github.com/gaurav-prasanna/nhsmeds/metrics"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagEngine      string
	flagBaseURL     string
	flagOutput      string
	flagFormat      string
	flagMerge       string
	flagMetricsFile string
	flagHeadless    bool
	flagTimeout     time.Duration
	flagLogLevel    string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape every medicine into the output catalog",
	Long: `Scrape loads the medicines index, visits each medicine's hub page,
classifies its links and extracts every supported category. The catalog is
written only when the whole run succeeds.

Examples:
  nhsmeds scrape
  nhsmeds scrape --engine http --output ./output/medicine-details.json
  nhsmeds scrape --format markdown --merge concat
  nhsmeds scrape --metrics_file ./output/nhsmeds.prom`,
	Args: cobra.NoArgs,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	// Engine flags.
	scrapeCmd.Flags().StringVar(&flagEngine, "engine", config.EngineBrowser, "Page engine: browser or http")
	scrapeCmd.Flags().BoolVar(&flagHeadless, "headless", true, "Run the browser without a window")
	scrapeCmd.Flags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "Timeout per navigation")

	// Site and extraction flags.
	scrapeCmd.Flags().StringVar(&flagBaseURL, "base_url", "https://www.nhs.uk", "Site origin")
	scrapeCmd.Flags().StringVar(&flagMerge, "merge", "overwrite", "How two-section pages combine: overwrite or concat")

	// Output flags.
	scrapeCmd.Flags().StringVar(&flagOutput, "output", "./output/medicine-details.json", "Catalog path (directory must exist)")
	scrapeCmd.Flags().StringVar(&flagFormat, "format", config.FormatJSON, "Output format: json, markdown or pdf")
	scrapeCmd.Flags().StringVar(&flagMetricsFile, "metrics_file", "", "Write Prometheus metrics to this textfile")
	scrapeCmd.Flags().StringVar(&flagLogLevel, "log_level", "info", "Log level: debug, info, warn or error")
}

func runScrape(cmd *cobra.Command, args []string) error {
	start := time.Now()

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.Setup(cfg.LogLevel)
	if err != nil {
		return err
	}

	renderer, err := selectRenderer(cfg.Format)
	if err != nil {
		return err
	}
	writer, err := output.New(cfg.Output)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// --- Engine ---
	page, err := openPage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("starting %s engine: %w", cfg.Engine, err)
	}
	defer func() {
		if err := page.Close(); err != nil {
			logger.Warn("closing page engine", "error", err)
		}
	}()

	scraper, err := crawl.New(metrics.InstrumentPage(page), crawl.Options{
		BaseURL: cfg.BaseURL,
		Merge:   cfg.MergeMode(),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	// --- Run ---
	fmt.Fprintln(cmd.OutOrStdout(), "Scraping NHS medicines...")
	catalog, err := scraper.Run(ctx)
	if err != nil {
		return err
	}

	data, err := renderer.Render(catalog)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	path, err := writer.Write(data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s bundle has been created: %s\n", formatLabel(cfg.Format), filepath.Base(path))

	metrics.RunDuration.Set(time.Since(start).Seconds())
	metrics.LastSuccess.SetToCurrentTime()
	logger.Info("scrape finished",
		"medicines", catalog.Len(),
		"path", path,
		"duration", time.Since(start).Round(time.Millisecond),
	)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}

// applyFlags copies every flag the user set explicitly over cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("engine") {
		cfg.Engine = flagEngine
	}
	if flags.Changed("base_url") {
		cfg.BaseURL = flagBaseURL
	}
	if flags.Changed("output") {
		cfg.Output = flagOutput
	}
	if flags.Changed("format") {
		cfg.Format = flagFormat
	}
	if flags.Changed("merge") {
		cfg.Merge = flagMerge
	}
	if flags.Changed("metrics_file") {
		cfg.MetricsFile = flagMetricsFile
	}
	if flags.Changed("headless") {
		cfg.Headless = flagHeadless
	}
	if flags.Changed("timeout") {
		cfg.Timeout = flagTimeout
	}
	if flags.Changed("log_level") {
		cfg.LogLevel = flagLogLevel
	}
}

// openPage starts the configured page engine.
func openPage(ctx context.Context, cfg *config.Config) (core.Page, error) {
	if cfg.Engine == config.EngineHTTP {
		return fetch.New(fetch.Options{Timeout: cfg.Timeout, UserAgent: cfg.UserAgent}), nil
	}

	slog.Debug("launching browser", "headless", cfg.Headless)
	page, err := browser.Launch(ctx, browser.Options{
		Headless:  cfg.Headless,
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

// selectRenderer creates the Renderer for format.
func selectRenderer(format string) (core.Renderer, error) {
	switch format {
	case config.FormatJSON:
		return render.NewJSONRenderer(), nil
	case config.FormatMarkdown:
		return render.NewMarkdownRenderer(), nil
	case config.FormatPDF:
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func formatLabel(format string) string {
	switch format {
	case config.FormatMarkdown:
		return "Markdown"
	case config.FormatPDF:
		return "PDF"
	default:
		return "JSON"
	}
}
