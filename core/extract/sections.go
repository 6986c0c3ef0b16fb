package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/nhsmeds/core/textutil"
)

// Fixed selectors shared by the page templates.
const (
	firstSection  = "section:nth-of-type(1)"
	secondSection = "section:nth-of-type(2)"
	anySection    = "section"

	cardItems      = "div .nhsuk-card__content ul li"
	cardParagraphs = "div .nhsuk-card__content p"
)

// MergeMode decides how the two sections of Instructions and Side effects
// pages are combined.
type MergeMode int

const (
	// MergeOverwrite keeps the second section's fields and drops the
	// first's, since both sections always carry every field.
	MergeOverwrite MergeMode = iota
	// MergeConcat appends the second section's arrays to the first's.
	MergeConcat
)

// ParseMergeMode parses "overwrite" or "concat".
func ParseMergeMode(s string) (MergeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "overwrite":
		return MergeOverwrite, nil
	case "concat":
		return MergeConcat, nil
	default:
		return 0, fmt.Errorf("unknown merge mode %q (want overwrite or concat)", s)
	}
}

func (m MergeMode) String() string {
	if m == MergeConcat {
		return "concat"
	}
	return "overwrite"
}

// cardMode selects which card-content elements feed divContentData.
type cardMode int

const (
	noCards cardMode = iota
	cardListItems
	cardListItemsAndParagraphs
)

// sectionData is what a headed text section yields.
type sectionData struct {
	paragraphs []string
	headers    []string
	cards      []string
}

// readSection reads paragraphs, h2 headers and, depending on mode, card
// content from the first element matching selector. A missing section
// yields empty arrays.
func readSection(doc *goquery.Document, selector string, mode cardMode) sectionData {
	sel := doc.Find(selector).First()
	data := sectionData{
		paragraphs: textutil.Texts(sel.Find("p")),
		headers:    textutil.Texts(sel.Find("h2")),
		cards:      []string{},
	}
	switch mode {
	case cardListItems:
		data.cards = textutil.Texts(sel.Find(cardItems))
	case cardListItemsAndParagraphs:
		data.cards = append(textutil.Texts(sel.Find(cardItems)), textutil.Texts(sel.Find(cardParagraphs))...)
	}
	return data
}

// merge combines the results of section 1 (a) and section 2 (b).
func merge(a, b sectionData, mode MergeMode) sectionData {
	if mode == MergeConcat {
		return sectionData{
			paragraphs: concat(a.paragraphs, b.paragraphs),
			headers:    concat(a.headers, b.headers),
			cards:      concat(a.cards, b.cards),
		}
	}
	return b
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
