// Package pagetest provides an in-memory core.Page for network-free tests.
package pagetest

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/nhsmeds/core"
	"github.com/gaurav-prasanna/nhsmeds/core/textutil"
)

var _ core.Page = (*Page)(nil)

// Page serves fixed HTML documents keyed by absolute URL and records every
// navigation it receives.
type Page struct {
	// Pages maps URL to HTML. Navigating anywhere else fails.
	Pages map[string]string
	// Errors makes navigation to the given URLs fail with the given error.
	Errors map[string]error
	// Visits lists every navigated URL in order.
	Visits []string
	Closed bool

	current string
}

// New creates a Page serving pages.
func New(pages map[string]string) *Page {
	return &Page{Pages: pages, Errors: map[string]error{}}
}

func (p *Page) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.Visits = append(p.Visits, url)
	if err := p.Errors[url]; err != nil {
		return err
	}
	if _, ok := p.Pages[url]; !ok {
		return fmt.Errorf("no page for %s", url)
	}
	p.current = url
	return nil
}

func (p *Page) URL() string {
	return p.current
}

func (p *Page) Document(ctx context.Context) (*goquery.Document, error) {
	if p.current == "" {
		return nil, fmt.Errorf("no page loaded")
	}
	return goquery.NewDocumentFromReader(strings.NewReader(p.Pages[p.current]))
}

func (p *Page) InnerText(ctx context.Context, selector string) (string, bool, error) {
	doc, err := p.Document(ctx)
	if err != nil {
		return "", false, err
	}
	text, found := textutil.SelectionInnerText(doc.Find(selector).First())
	return text, found, nil
}

func (p *Page) WaitFor(ctx context.Context, selector string) error {
	doc, err := p.Document(ctx)
	if err != nil {
		return err
	}
	if doc.Find(selector).Length() == 0 {
		return fmt.Errorf("waiting for %q: not found on %s", selector, p.current)
	}
	return nil
}

func (p *Page) Close() error {
	p.Closed = true
	return nil
}

// VisitCount returns how many times url was navigated to.
func (p *Page) VisitCount(url string) int {
	n := 0
	for _, v := range p.Visits {
		if v == url {
			n++
		}
	}
	return n
}
