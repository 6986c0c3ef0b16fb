// Package fetch implements core.Page over plain HTTP.
// It performs GET requests with resty and serves the DOM straight from the
// response body, for pages whose content does not depend on JavaScript.
// Rendered text is approximated with textutil.InnerText.
package fetch

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/nhsmeds/core"
	"github.com/gaurav-prasanna/nhsmeds/core/textutil"
	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "nhsmeds/1.0 (https://github.com/gaurav-prasanna/nhsmeds)"
)

var _ core.Page = (*HTTPPage)(nil)

// Options configures an HTTPPage. Zero values fall back to defaults.
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

// HTTPPage is a core.Page backed by HTTP GET requests.
type HTTPPage struct {
	client *resty.Client
	url    string
	doc    *goquery.Document
}

// New creates an HTTPPage with a sensible timeout.
func New(opts Options) *HTTPPage {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}

	client := resty.New().
		SetTimeout(opts.Timeout).
		SetHeader("User-Agent", opts.UserAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml")

	return &HTTPPage{client: client}
}

// Navigate fetches url and parses the response as the current page.
// Only transport failures are errors; 4xx and 5xx bodies load normally.
func (p *HTTPPage) Navigate(ctx context.Context, url string) error {
	resp, err := p.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	// Like a browser, an error status still loads whatever page came back.
	if !resp.IsSuccess() {
		slog.Warn("page returned error status", "url", url, "status", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return fmt.Errorf("parsing HTML of %s: %w", url, err)
	}

	p.url = url
	p.doc = doc
	return nil
}

// URL returns the last successfully fetched URL.
func (p *HTTPPage) URL() string {
	return p.url
}

// Document returns the parsed current page.
func (p *HTTPPage) Document(ctx context.Context) (*goquery.Document, error) {
	if p.doc == nil {
		return nil, fmt.Errorf("no page loaded")
	}
	return p.doc, nil
}

// InnerText approximates the rendered text of the first match of selector.
func (p *HTTPPage) InnerText(ctx context.Context, selector string) (string, bool, error) {
	doc, err := p.Document(ctx)
	if err != nil {
		return "", false, err
	}
	text, found := textutil.SelectionInnerText(doc.Find(selector).First())
	return text, found, nil
}

// WaitFor checks that selector is present. A static document never
// changes, so a missing element is an error right away.
func (p *HTTPPage) WaitFor(ctx context.Context, selector string) error {
	doc, err := p.Document(ctx)
	if err != nil {
		return err
	}
	if doc.Find(selector).Length() == 0 {
		return fmt.Errorf("selector %q not found on %s", selector, p.url)
	}
	return nil
}

// Close is a no-op; the HTTP client holds no session.
func (p *HTTPPage) Close() error {
	return nil
}
