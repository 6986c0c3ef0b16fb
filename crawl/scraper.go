package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/gaurav-prasanna/nhsmeds/core"
	"github.com/gaurav-prasanna/nhsmeds/core/classify"
	"github.com/gaurav-prasanna/nhsmeds/core/extract"
	"github.com/gaurav-prasanna/nhsmeds/metrics"
)

// Options configures a Scraper.
type Options struct {
	// BaseURL is the site origin, e.g. https://www.nhs.uk.
	BaseURL string
	Merge   extract.MergeMode
	Logger  *slog.Logger
}

// Scraper walks the medicines site on a single page, strictly in sequence.
type Scraper struct {
	page       core.Page
	base       *url.URL
	dispatcher *extract.Dispatcher
	logger     *slog.Logger
}

// New creates a Scraper driving page.
func New(page core.Page, opts Options) (*Scraper, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", opts.BaseURL)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Scraper{
		page:       page,
		base:       base,
		dispatcher: extract.New(opts.Merge),
		logger:     logger,
	}, nil
}

// Run discovers every medicine and scrapes them one after another. Any
// navigation failure aborts the run and discards what was gathered.
func (s *Scraper) Run(ctx context.Context) (*core.Catalog, error) {
	listings, err := s.DiscoverMedicines(ctx)
	if err != nil {
		return nil, fmt.Errorf("discovering medicines: %w", err)
	}

	catalog := core.NewCatalog(s.base.String())
	for i, listing := range listings {
		s.logger.Debug("scraping medicine", "n", i+1, "of", len(listings), "name", listing.Name)

		details, err := s.ScrapeMedicine(ctx, listing.Link)
		if err != nil {
			return nil, fmt.Errorf("scraping %s: %w", listing.Name, err)
		}
		catalog.Set(listing.Name, details)
	}
	return catalog, nil
}

// ScrapeMedicine loads a medicine's hub page, classifies its links and
// extracts every category found. A hub page without any classifiable link
// yields the NoDetailsFound record rather than an error.
func (s *Scraper) ScrapeMedicine(ctx context.Context, link string) (core.MedicineDetails, error) {
	hubURL := ResolveURL(link, s.base)
	if hubURL == "" {
		return core.MedicineDetails{}, fmt.Errorf("cannot navigate to medicine link %q", link)
	}
	if err := s.page.Navigate(ctx, hubURL); err != nil {
		return core.MedicineDetails{}, fmt.Errorf("loading hub page: %w", err)
	}
	doc, err := s.page.Document(ctx)
	if err != nil {
		return core.MedicineDetails{}, fmt.Errorf("reading hub page: %w", err)
	}

	categories := classify.Categorize(extractLinks(doc, hubLinkSelector))
	if categories.Len() == 0 {
		s.logger.Warn("no details found", "link", link)
		metrics.MedicinesTotal.WithLabelValues("no_details").Inc()
		return core.MedicineDetails{Link: link, Error: core.NoDetailsFound}, nil
	}

	// Category hrefs are relative to the hub page, not the site root.
	hub, err := url.Parse(hubURL)
	if err != nil {
		return core.MedicineDetails{}, fmt.Errorf("parsing hub URL: %w", err)
	}

	details := core.NewDetails()
	for _, c := range categories.Categories() {
		href, _ := categories.Get(c)
		ref := core.Ref{Link: href, URL: ResolveURL(href, hub)}
		if ref.URL == "" && s.dispatcher.Implemented(c) {
			return core.MedicineDetails{}, fmt.Errorf("cannot navigate to %s link %q", c, href)
		}

		section, err := s.dispatcher.Extract(ctx, s.page, c, ref)
		if err != nil {
			return core.MedicineDetails{}, err
		}
		details.Set(section)

		status := "extracted"
		if _, ok := section.(core.UnimplementedSection); ok {
			status = "unimplemented"
		}
		metrics.SectionsTotal.WithLabelValues(c.String(), status).Inc()
	}

	metrics.MedicinesTotal.WithLabelValues("details").Inc()
	s.logger.Info("scraped medicine", "link", link, "sections", details.Len())
	return core.MedicineDetails{Link: link, Details: details}, nil
}
