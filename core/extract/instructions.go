package extract

import (
	"context"

	"github.com/gaurav-prasanna/nhsmeds/core"
)

// InstructionsFunc returns the extractor for "How and when" pages, which
// spread their headings and paragraphs over two sections.
func InstructionsFunc(mode MergeMode) Func {
	return func(ctx context.Context, page core.Page, ref core.Ref) (core.Section, error) {
		doc, err := load(ctx, page, ref.URL)
		if err != nil {
			return nil, err
		}

		data := merge(
			readSection(doc, firstSection, noCards),
			readSection(doc, secondSection, noCards),
			mode,
		)
		return core.InstructionsSection{
			Link:          ref.Link,
			ParagraphData: data.paragraphs,
			HeaderData:    data.headers,
		}, nil
	}
}

// SideEffectsFunc returns the extractor for "Side effects" pages. On top
// of the Instructions layout, each section carries card content: card list
// items first, then card paragraphs.
func SideEffectsFunc(mode MergeMode) Func {
	return func(ctx context.Context, page core.Page, ref core.Ref) (core.Section, error) {
		doc, err := load(ctx, page, ref.URL)
		if err != nil {
			return nil, err
		}

		data := merge(
			readSection(doc, firstSection, cardListItemsAndParagraphs),
			readSection(doc, secondSection, cardListItemsAndParagraphs),
			mode,
		)
		return core.SideEffectsSection{
			Link:           ref.Link,
			ParagraphData:  data.paragraphs,
			HeaderData:     data.headers,
			DivContentData: data.cards,
		}, nil
	}
}

// Breastfeeding reads the "Pregnancy, breastfeeding" page: a single
// section whose card content contributes list items only.
func Breastfeeding(ctx context.Context, page core.Page, ref core.Ref) (core.Section, error) {
	doc, err := load(ctx, page, ref.URL)
	if err != nil {
		return nil, err
	}

	data := readSection(doc, anySection, cardListItems)
	return core.BreastfeedingSection{
		Link:           ref.Link,
		ParagraphData:  data.paragraphs,
		HeaderData:     data.headers,
		DivContentData: data.cards,
	}, nil
}
