package extract

import (
	"context"

	"github.com/gaurav-prasanna/nhsmeds/core"
	"github.com/gaurav-prasanna/nhsmeds/core/textutil"
)

// About reads the "About" page: section 1 holds the description paragraphs
// and lists, section 2 the key facts list.
func About(ctx context.Context, page core.Page, ref core.Ref) (core.Section, error) {
	doc, err := load(ctx, page, ref.URL)
	if err != nil {
		return nil, err
	}

	intro := doc.Find(firstSection).First()
	facts := doc.Find(secondSection).First()

	return core.AboutSection{
		Link: ref.Link,
		AboutData: core.AboutData{
			Paragraphs: textutil.Texts(intro.Find("p")),
			ListItems:  textutil.Texts(intro.Find("ul li")),
		},
		KeyFacts: textutil.Texts(facts.Find("ul li")),
	}, nil
}
