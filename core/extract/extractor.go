// Package extract implements the per-category section extractors.
// Each medicine category page follows one of a few fixed layout templates,
// and each extractor reads its template's selectors directly:
//  1. Load the category page (skipped when the page is already there)
//  2. Snapshot the DOM and read fixed section/selector positions
//
// Missing sections are not errors: they yield empty arrays, or an omitted
// field where the page shape calls for it. Only navigation and DOM
// snapshot failures are returned as errors.
package extract

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/nhsmeds/core"
)

// Func extracts one category page into its section variant.
type Func func(ctx context.Context, page core.Page, ref core.Ref) (core.Section, error)

// Dispatcher maps each implemented category to its extractor.
type Dispatcher struct {
	funcs map[core.Category]Func
}

// New creates a Dispatcher whose two-section extractors merge with mode.
func New(mode MergeMode) *Dispatcher {
	return &Dispatcher{
		funcs: map[core.Category]Func{
			core.About:                  About,
			core.Limitations:            Limitations,
			core.Instructions:           InstructionsFunc(mode),
			core.SideEffects:            SideEffectsFunc(mode),
			core.PregnancyBreastfeeding: Breastfeeding,
		},
	}
}

// Implemented reports whether c has an extractor.
func (d *Dispatcher) Implemented(c core.Category) bool {
	_, ok := d.funcs[c]
	return ok
}

// Extract runs the extractor for c. Categories without an extractor are
// not visited and come back as core.UnimplementedSection.
func (d *Dispatcher) Extract(ctx context.Context, page core.Page, c core.Category, ref core.Ref) (core.Section, error) {
	fn, ok := d.funcs[c]
	if !ok {
		return core.UnimplementedSection{Kind: c, Link: ref.Link}, nil
	}
	section, err := fn(ctx, page, ref)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", c, err)
	}
	return section, nil
}

// load makes sure page shows url and returns a DOM snapshot.
func load(ctx context.Context, page core.Page, url string) (*goquery.Document, error) {
	if page.URL() != url {
		if err := page.Navigate(ctx, url); err != nil {
			return nil, fmt.Errorf("navigating to %s: %w", url, err)
		}
	}
	doc, err := page.Document(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading DOM of %s: %w", url, err)
	}
	return doc, nil
}
