// Package crawl — URL rules.
// Resolves hrefs found on a page against the page they were found on.
package crawl

import (
	"net/url"
	"strings"
)

// ResolveURL resolves a potentially relative href against base and strips
// the fragment, so a same-page anchor resolves to the page itself.
// Hrefs that cannot be navigated (mailto:, javascript:, tel:) resolve to "".
func ResolveURL(href string, base *url.URL) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "tel:") {
		return ""
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := base.ResolveReference(parsed)
	resolved.Fragment = ""
	resolved.RawFragment = ""
	return resolved.String()
}
