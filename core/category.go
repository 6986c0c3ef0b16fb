package core

// Category is one of the seven fixed medicine-information types linked
// from a medicine's hub page.
type Category int

const (
	About Category = iota
	Limitations
	Instructions
	SideEffects
	PregnancyBreastfeeding
	OtherMedicines
	CommonQuestions
)

var categoryNames = [...]string{
	About:                  "About",
	Limitations:            "Limitations",
	Instructions:           "Instructions",
	SideEffects:            "Side effects",
	PregnancyBreastfeeding: "Pregnancy and breastfeeding",
	OtherMedicines:         "Using with other medicines",
	CommonQuestions:        "Common questions",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	return []Category{About, Limitations, Instructions, SideEffects, PregnancyBreastfeeding, OtherMedicines, CommonQuestions}
}

// String returns the canonical category name used as the JSON key.
func (c Category) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return categoryNames[c]
}

// Valid reports whether c is one of the seven known categories.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < len(categoryNames)
}

// CategoryMap maps categories to the link found for them on a hub page.
// Setting a category again replaces its link but keeps its position.
type CategoryMap struct {
	order []Category
	links map[Category]string
}

// NewCategoryMap creates an empty CategoryMap.
func NewCategoryMap() *CategoryMap {
	return &CategoryMap{links: make(map[Category]string)}
}

// Set records link for c, overwriting any earlier link.
func (m *CategoryMap) Set(c Category, link string) {
	if _, ok := m.links[c]; !ok {
		m.order = append(m.order, c)
	}
	m.links[c] = link
}

// Get returns the link recorded for c.
func (m *CategoryMap) Get(c Category) (string, bool) {
	link, ok := m.links[c]
	return link, ok
}

// Len returns the number of categories found.
func (m *CategoryMap) Len() int {
	return len(m.order)
}

// Categories returns the categories in first-seen order.
func (m *CategoryMap) Categories() []Category {
	out := make([]Category, len(m.order))
	copy(out, m.order)
	return out
}
