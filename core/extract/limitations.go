package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/nhsmeds/core"
)

// Limitations reads the "Who can and cannot" page. The first section's
// rendered text is split into lines; without a section the data is nil.
func Limitations(ctx context.Context, page core.Page, ref core.Ref) (core.Section, error) {
	if page.URL() != ref.URL {
		if err := page.Navigate(ctx, ref.URL); err != nil {
			return nil, fmt.Errorf("navigating to %s: %w", ref.URL, err)
		}
	}

	text, found, err := page.InnerText(ctx, anySection)
	if err != nil {
		return nil, fmt.Errorf("reading section text of %s: %w", ref.URL, err)
	}

	section := core.LimitationsSection{Link: ref.Link}
	if found {
		section.LimitationsData = strings.Split(strings.TrimSpace(text), "\n")
	}
	return section, nil
}
