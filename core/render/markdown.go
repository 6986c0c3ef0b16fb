// Package render provides output renderers for the scraped catalog.
// This file implements the Markdown renderer, a readable export of the
// same data as the JSON catalog. The PDF renderer typesets its output.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/nhsmeds/core"
)

// MarkdownRenderer writes the catalog as one Markdown document with a
// second-level heading per medicine and a third-level heading per category.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts the catalog into Markdown bytes.
func (r *MarkdownRenderer) Render(catalog *core.Catalog) ([]byte, error) {
	return []byte(catalogMarkdown(catalog)), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func catalogMarkdown(catalog *core.Catalog) string {
	var b strings.Builder
	b.WriteString("# NHS medicines\n\n")
	if catalog.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n\n", catalog.Source)
	}

	for _, name := range catalog.Names() {
		med, _ := catalog.Get(name)
		fmt.Fprintf(&b, "## %s\n\n", name)
		fmt.Fprintf(&b, "Link: %s\n\n", med.Link)

		if med.Error != "" || med.Details == nil {
			fmt.Fprintf(&b, "_%s_\n\n", med.Error)
			continue
		}
		for _, c := range med.Details.Categories() {
			section, _ := med.Details.Get(c)
			fmt.Fprintf(&b, "### %s\n\n", c)
			writeSection(&b, section)
		}
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeSection(b *strings.Builder, section core.Section) {
	switch s := section.(type) {
	case core.AboutSection:
		writeParagraphs(b, s.AboutData.Paragraphs)
		writeList(b, "", s.AboutData.ListItems)
		writeList(b, "Key facts", s.KeyFacts)
	case core.LimitationsSection:
		if s.LimitationsData == nil {
			b.WriteString("_No information found._\n\n")
			return
		}
		writeParagraphs(b, s.LimitationsData)
	case core.InstructionsSection:
		writeList(b, "Headings", s.HeaderData)
		writeParagraphs(b, s.ParagraphData)
	case core.SideEffectsSection:
		writeList(b, "Headings", s.HeaderData)
		writeParagraphs(b, s.ParagraphData)
		writeList(b, "Highlighted", s.DivContentData)
	case core.BreastfeedingSection:
		writeList(b, "Headings", s.HeaderData)
		writeParagraphs(b, s.ParagraphData)
		writeList(b, "Highlighted", s.DivContentData)
	case core.UnimplementedSection:
		fmt.Fprintf(b, "Not extracted. See %s\n\n", s.Link)
	}
}

// writeParagraphs writes each non-empty string as its own paragraph.
func writeParagraphs(b *strings.Builder, paragraphs []string) {
	for _, p := range paragraphs {
		if p = strings.TrimSpace(p); p != "" {
			b.WriteString(p)
			b.WriteString("\n\n")
		}
	}
}

// writeList writes items as a bullet list under an optional bold title.
func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	if title != "" {
		fmt.Fprintf(b, "**%s**\n\n", title)
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", strings.TrimSpace(item))
	}
	b.WriteString("\n")
}
