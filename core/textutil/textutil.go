// Package textutil turns DOM nodes into the text a reader would see.
//
// InnerText approximates the browser's innerText algorithm for static HTML:
// whitespace inside text runs is collapsed, block-level elements start and
// end on their own line, paragraphs are separated by a blank line, and
// non-rendered elements (script, style, template, hidden) are skipped.
// There is no layout engine here, so CSS-driven visibility is not honored.
package textutil

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// skipped elements contribute no rendered text.
var skipped = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Noscript: true,
	atom.Template: true, atom.Head: true, atom.Title: true,
	atom.Svg: true, atom.Iframe: true,
}

// blocks are elements laid out as blocks by default user-agent styles.
var blocks = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Dd: true, atom.Details: true, atom.Dialog: true, atom.Div: true,
	atom.Dl: true, atom.Dt: true, atom.Fieldset: true, atom.Figcaption: true,
	atom.Figure: true, atom.Footer: true, atom.Form: true, atom.H1: true,
	atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Header: true, atom.Hr: true, atom.Li: true, atom.Main: true,
	atom.Nav: true, atom.Ol: true, atom.P: true, atom.Pre: true,
	atom.Section: true, atom.Summary: true, atom.Table: true, atom.Tr: true,
	atom.Ul: true, atom.Body: true, atom.Html: true,
}

// InnerText returns the rendered text of n.
func InnerText(n *html.Node) string {
	w := &textWriter{}
	w.walk(n)
	return w.String()
}

// SelectionInnerText returns the rendered text of the first node in sel,
// or "" and false when sel is empty.
func SelectionInnerText(sel *goquery.Selection) (string, bool) {
	if sel.Length() == 0 {
		return "", false
	}
	return InnerText(sel.Get(0)), true
}

// Texts returns the trimmed text content of every node in sel.
// It never returns nil.
func Texts(sel *goquery.Selection) []string {
	out := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}

// textWriter accumulates text with pending line breaks. Consecutive
// requested breaks collapse to the largest request, and breaks at the
// very start or end are dropped.
type textWriter struct {
	b       strings.Builder
	pending int
}

func (w *textWriter) requestBreaks(n int) {
	if n > w.pending {
		w.pending = n
	}
}

func (w *textWriter) writeText(s string) {
	if s == "" {
		return
	}
	// Whitespace between blocks is not rendered.
	if s == " " && (w.pending > 0 || w.b.Len() == 0) {
		return
	}
	if w.b.Len() > 0 && w.pending > 0 {
		w.b.WriteString(strings.Repeat("\n", w.pending))
	}
	w.pending = 0
	w.b.WriteString(s)
}

func (w *textWriter) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.writeText(collapse(n.Data))
		return
	case html.ElementNode:
		if skipped[n.DataAtom] || hasAttr(n, "hidden") {
			return
		}
		if n.DataAtom == atom.Br {
			// A forced break is written even if it ends up trailing.
			w.pending = 0
			w.b.WriteByte('\n')
			return
		}
	}

	breaks := 0
	if n.Type == html.ElementNode {
		switch {
		case n.DataAtom == atom.P:
			breaks = 2
		case blocks[n.DataAtom]:
			breaks = 1
		}
	}

	if breaks > 0 {
		w.requestBreaks(breaks)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
	if breaks > 0 {
		w.requestBreaks(breaks)
	}
}

// String returns the text with every line collapsed and trimmed.
// Only ASCII whitespace collapses; a no-break space is text.
func (w *textWriter) String() string {
	lines := strings.Split(w.b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.Trim(collapse(line), " ")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

// collapse replaces runs of whitespace with a single space.
func collapse(s string) string {
	var b strings.Builder
	space := false
	for i := 0; i < len(s); i++ {
		if isSpace(s[i]) {
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteByte(s[i])
	}
	if space {
		b.WriteByte(' ')
	}
	return b.String()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}
