// Package classify maps hub-page anchor labels to medicine categories.
//
// Matching is a case-sensitive substring test against an explicit, ordered
// rule list; the first rule that matches decides the category. More specific
// labels are listed before the generic "About" so that, for example,
// "About side effects of aspirin" is not misfiled.
package classify

import (
	"strings"

	"github.com/gaurav-prasanna/nhsmeds/core"
)

// Rule assigns labels containing Substring to Category.
type Rule struct {
	Substring string
	Category  core.Category
}

var rules = []Rule{
	{"Side effects", core.SideEffects},
	{"Who can and cannot", core.Limitations},
	{"How and when", core.Instructions},
	{"Pregnancy, breastfeeding", core.PregnancyBreastfeeding},
	{"other medicines", core.OtherMedicines},
	{"Common questions", core.CommonQuestions},
	{"About", core.About},
}

// Rules returns a copy of the rule table in match order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Classify returns the category for an anchor label, or false if the label
// matches no rule.
func Classify(label string) (core.Category, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, false
	}
	for _, r := range rules {
		if strings.Contains(label, r.Substring) {
			return r.Category, true
		}
	}
	return 0, false
}

// Categorize classifies every anchor in order. Anchors without a label or
// href are ignored; a later anchor for the same category replaces the link
// of an earlier one.
func Categorize(links []core.Link) *core.CategoryMap {
	m := core.NewCategoryMap()
	for _, l := range links {
		if strings.TrimSpace(l.Text) == "" || l.Href == "" {
			continue
		}
		if c, ok := Classify(l.Text); ok {
			m.Set(c, l.Href)
		}
	}
	return m
}
