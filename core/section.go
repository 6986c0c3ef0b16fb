package core

// Section is the structured result extracted from one category page.
// There is one variant per category; every variant carries the link it
// was extracted from.
type Section interface {
	Category() Category
	SourceLink() string
}

// AboutData is the first section of an About page.
type AboutData struct {
	Paragraphs []string `json:"paragraphs"`
	ListItems  []string `json:"listItems"`
}

// AboutSection is extracted from the "About" page.
type AboutSection struct {
	Link      string    `json:"link"`
	AboutData AboutData `json:"AboutData"`
	KeyFacts  []string  `json:"KeyFacts"`
}

func (s AboutSection) Category() Category { return About }
func (s AboutSection) SourceLink() string { return s.Link }

// LimitationsSection is extracted from the "Who can and cannot" page.
// LimitationsData is nil when the page had no section at all.
type LimitationsSection struct {
	Link            string   `json:"link"`
	LimitationsData []string `json:"LimitationsData,omitempty"`
}

func (s LimitationsSection) Category() Category { return Limitations }
func (s LimitationsSection) SourceLink() string { return s.Link }

// InstructionsSection is extracted from the "How and when" page.
type InstructionsSection struct {
	Link          string   `json:"link"`
	ParagraphData []string `json:"paragraphData"`
	HeaderData    []string `json:"headerData"`
}

func (s InstructionsSection) Category() Category { return Instructions }
func (s InstructionsSection) SourceLink() string { return s.Link }

// SideEffectsSection is extracted from the "Side effects" page.
type SideEffectsSection struct {
	Link           string   `json:"link"`
	ParagraphData  []string `json:"paragraphData"`
	HeaderData     []string `json:"headerData"`
	DivContentData []string `json:"divContentData"`
}

func (s SideEffectsSection) Category() Category { return SideEffects }
func (s SideEffectsSection) SourceLink() string { return s.Link }

// BreastfeedingSection is extracted from the "Pregnancy, breastfeeding" page.
type BreastfeedingSection struct {
	Link           string   `json:"link"`
	ParagraphData  []string `json:"paragraphData"`
	HeaderData     []string `json:"headerData"`
	DivContentData []string `json:"divContentData"`
}

func (s BreastfeedingSection) Category() Category { return PregnancyBreastfeeding }
func (s BreastfeedingSection) SourceLink() string { return s.Link }

// UnimplementedSection stands in for a recognized category that has no
// extractor. It serializes as the bare link.
type UnimplementedSection struct {
	Kind Category
	Link string
}

func (s UnimplementedSection) Category() Category { return s.Kind }
func (s UnimplementedSection) SourceLink() string { return s.Link }

// MarshalJSON encodes the section as its link string.
func (s UnimplementedSection) MarshalJSON() ([]byte, error) {
	return encodeJSON(s.Link)
}
