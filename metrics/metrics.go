// Package metrics provides Prometheus metrics for a scrape run.
// It exports:
//   - nhsmeds_navigations_total: Counter with status label
//   - nhsmeds_navigation_duration_seconds: Histogram of page loads
//   - nhsmeds_medicines_total: Counter with result label (details, no_details)
//   - nhsmeds_sections_total: Counter with category and status labels
//   - nhsmeds_run_duration_seconds: Gauge set when a run completes
//   - nhsmeds_last_success_timestamp_seconds: Gauge set when output is written
//
// A scrape is a one-shot process, so instead of serving /metrics the
// registry is written to a node-exporter textfile at the end of the run.
package metrics

import (
	"context"
	"time"

	"github.com/gaurav-prasanna/nhsmeds/core"
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every nhsmeds metric.
var Registry = prometheus.NewRegistry()

var (
	NavigationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nhsmeds_navigations_total",
			Help: "Total page navigations",
		},
		[]string{"status"},
	)

	NavigationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nhsmeds_navigation_duration_seconds",
			Help:    "Page navigation latency",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	MedicinesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nhsmeds_medicines_total",
			Help: "Medicines scraped, by result",
		},
		[]string{"result"},
	)

	SectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nhsmeds_sections_total",
			Help: "Category sections processed, by category and status",
		},
		[]string{"category", "status"},
	)

	RunDuration = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "nhsmeds_run_duration_seconds",
			Help: "Duration of the last completed scrape",
		},
	)

	LastSuccess = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "nhsmeds_last_success_timestamp_seconds",
			Help: "Unix time the catalog was last written",
		},
	)
)

func init() {
	Registry.MustRegister(NavigationsTotal)
	Registry.MustRegister(NavigationDuration)
	Registry.MustRegister(MedicinesTotal)
	Registry.MustRegister(SectionsTotal)
	Registry.MustRegister(RunDuration)
	Registry.MustRegister(LastSuccess)

	// Export every category at zero so absent sections still show up.
	for _, c := range core.Categories() {
		SectionsTotal.WithLabelValues(c.String(), "extracted")
	}
}

// WriteTextfile writes the registry to path in the text exposition format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}

// InstrumentPage wraps page so every navigation is counted and timed.
func InstrumentPage(page core.Page) core.Page {
	return &instrumentedPage{Page: page}
}

type instrumentedPage struct {
	core.Page
}

func (p *instrumentedPage) Navigate(ctx context.Context, url string) error {
	start := time.Now()
	err := p.Page.Navigate(ctx, url)
	NavigationDuration.Observe(time.Since(start).Seconds())

	status := "ok"
	if err != nil {
		status = "error"
	}
	NavigationsTotal.WithLabelValues(status).Inc()
	return err
}
