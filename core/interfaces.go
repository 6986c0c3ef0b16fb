// Package core defines the pipeline interfaces and the data model for nhsmeds.
// Each stage of the scrape is a clean, testable interface: the page engine
// that navigates and snapshots the DOM, and the renderers that turn the
// aggregated catalog into output bytes.
package core

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// Page is the single navigable page the whole scrape runs on.
// Implementations are driven strictly sequentially and need no locking.
type Page interface {
	// Navigate loads url and returns once navigation has completed.
	Navigate(ctx context.Context, url string) error
	// URL returns the currently loaded URL, or "" before the first navigation.
	URL() string
	// Document returns a snapshot of the current DOM.
	Document(ctx context.Context) (*goquery.Document, error)
	// InnerText returns the rendered, whitespace-collapsed text of the first
	// element matching selector. found is false when nothing matches.
	InnerText(ctx context.Context, selector string) (text string, found bool, err error)
	// WaitFor blocks until selector matches an element on the current page.
	WaitFor(ctx context.Context, selector string) error
	// Close releases the page and whatever session backs it.
	Close() error
}

// Renderer converts the aggregated catalog into a final output format.
type Renderer interface {
	Render(catalog *Catalog) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".json", ".pdf").
	Extension() string
}

// Link represents an anchor found on a page.
type Link struct {
	Text string
	Href string
}

// Listing is a medicine discovered on the index page.
type Listing struct {
	Name string
	Link string
}

// Ref points at a category page. Link is the href exactly as found on the
// hub page and is what gets recorded; URL is its absolute form.
type Ref struct {
	Link string
	URL  string
}
