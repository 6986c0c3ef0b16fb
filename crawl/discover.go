// Package crawl drives the page engine through the medicines site.
// It discovers every medicine on the index page, then visits each hub page,
// classifies its links and hands every category page to its extractor,
// keeping navigation logic separate from the per-page DOM readers.
package crawl

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/nhsmeds/core"
)

const (
	indexPath = "/medicines/"

	// listingSelector matches every medicine on the index page.
	listingSelector = ".nhsuk-list li a"
	// hubLinkSelector matches the category links on a medicine hub page.
	hubLinkSelector = ".nhsuk-u-reading-width li a"
)

// DiscoverMedicines loads the index page and returns every listed medicine
// in page order.
func (s *Scraper) DiscoverMedicines(ctx context.Context) ([]core.Listing, error) {
	indexURL := ResolveURL(indexPath, s.base)
	if err := s.page.Navigate(ctx, indexURL); err != nil {
		return nil, fmt.Errorf("loading index: %w", err)
	}
	if err := s.page.WaitFor(ctx, listingSelector); err != nil {
		return nil, fmt.Errorf("waiting for medicine list: %w", err)
	}

	doc, err := s.page.Document(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}

	listings := extractListings(doc)
	s.logger.Info("discovered medicines", "count", len(listings), "index", indexURL)
	return listings, nil
}

// extractListings returns a listing for every index anchor whose label is
// longer than one character and which has an href. Single letters are the
// A to Z navigation.
func extractListings(doc *goquery.Document) []core.Listing {
	var listings []core.Listing
	doc.Find(listingSelector).Each(func(_ int, s *goquery.Selection) {
		name := strings.TrimSpace(s.Text())
		href, _ := s.Attr("href")
		if utf8.RuneCountInString(name) > 1 && href != "" {
			listings = append(listings, core.Listing{Name: name, Link: href})
		}
	})
	return listings
}

// extractLinks returns every anchor under sel's matches as a trimmed
// label and raw href.
func extractLinks(doc *goquery.Document, selector string) []core.Link {
	var links []core.Link
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		links = append(links, core.Link{
			Text: strings.TrimSpace(s.Text()),
			Href: href,
		})
	})
	return links
}
