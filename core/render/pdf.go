// Package render — PDF renderer.
// Typesets the Markdown export of the catalog into a PDF using gofpdf.
// Handles headings (variable font sizes), paragraphs and lists.
package render

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/nhsmeds/core"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders the catalog as a PDF booklet.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the catalog into PDF bytes.
func (r *PDFRenderer) Render(catalog *core.Catalog) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; extracted text is UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Parse and render Markdown line by line.
	for _, line := range strings.Split(catalogMarkdown(catalog), "\n") {
		// Skip empty lines (add spacing instead).
		if strings.TrimSpace(line) == "" {
			pdf.Ln(3)
			continue
		}

		// Headings.
		if strings.HasPrefix(line, "#") {
			level := 0
			for _, ch := range line {
				if ch != '#' {
					break
				}
				level++
			}
			text := strings.TrimSpace(strings.TrimLeft(line, "# "))
			renderHeading(pdf, tr(text), level)
			continue
		}

		// List items.
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") {
			pdf.SetFont("Helvetica", "", 10)
			text := tr("• " + cleanInlineMarkdown(trimmed[2:]))
			pdf.MultiCell(0, 5, text, "", "L", false)
			continue
		}

		// Source and link lines.
		if strings.HasPrefix(line, "Source: ") || strings.HasPrefix(line, "Link: ") {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.SetTextColor(100, 100, 100)
			pdf.MultiCell(0, 5, tr(line), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
			continue
		}

		// Regular paragraph text.
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(line)), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	if level == 2 {
		pdf.AddPage()
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, cleanInlineMarkdown(text), "", "L", false)
	pdf.Ln(2)
}

var (
	boldRegex   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRegex = regexp.MustCompile(`(?:^|\s)_([^_]+)_(?:\s|$)`)
)

// cleanInlineMarkdown strips the inline Markdown the catalog export emits.
func cleanInlineMarkdown(text string) string {
	text = boldRegex.ReplaceAllString(text, "$1")
	text = italicRegex.ReplaceAllString(text, " $1 ")
	return strings.TrimSpace(text)
}
