package core

import (
	"bytes"
	"encoding/json"
)

// NoDetailsFound is the error recorded for a medicine whose hub page had
// no classifiable links.
const NoDetailsFound = "No details found"

// Details holds the extracted sections of one medicine, in the order their
// categories were found on the hub page.
type Details struct {
	order    []Category
	sections map[Category]Section
}

// NewDetails creates an empty Details.
func NewDetails() *Details {
	return &Details{sections: make(map[Category]Section)}
}

// Set stores s under its category, replacing any earlier section in place.
func (d *Details) Set(s Section) {
	c := s.Category()
	if _, ok := d.sections[c]; !ok {
		d.order = append(d.order, c)
	}
	d.sections[c] = s
}

// Get returns the section stored for c.
func (d *Details) Get(c Category) (Section, bool) {
	s, ok := d.sections[c]
	return s, ok
}

// Len returns the number of sections.
func (d *Details) Len() int {
	return len(d.order)
}

// Categories returns the stored categories in order.
func (d *Details) Categories() []Category {
	out := make([]Category, len(d.order))
	copy(out, d.order)
	return out
}

// MarshalJSON encodes the sections as an object keyed by category name.
func (d *Details) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range d.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, c.String(), d.sections[c]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MedicineDetails is the scrape result for one medicine. Exactly one of
// Details and Error is meaningful: Error is set iff no categories were found.
type MedicineDetails struct {
	Link    string
	Details *Details
	Error   string
}

// MarshalJSON encodes {"link": ..., "details": ...}, where details is either
// the section object or {"error": ...}.
func (m MedicineDetails) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeMember(&buf, "link", m.Link); err != nil {
		return nil, err
	}
	buf.WriteByte(',')

	var details any = m.Details
	if m.Error != "" || m.Details == nil {
		details = struct {
			Error string `json:"error"`
		}{Error: m.Error}
	}
	if err := writeMember(&buf, "details", details); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Catalog maps medicine names to their details in discovery order.
// Setting an existing name overwrites its value in place.
type Catalog struct {
	// Source is the site the catalog was scraped from. It is not serialized.
	Source string

	names   []string
	entries map[string]MedicineDetails
}

// NewCatalog creates an empty Catalog.
func NewCatalog(source string) *Catalog {
	return &Catalog{
		Source:  source,
		entries: make(map[string]MedicineDetails),
	}
}

// Set stores details under name (last write wins).
func (c *Catalog) Set(name string, details MedicineDetails) {
	if _, ok := c.entries[name]; !ok {
		c.names = append(c.names, name)
	}
	c.entries[name] = details
}

// Get returns the details stored under name.
func (c *Catalog) Get(name string) (MedicineDetails, bool) {
	d, ok := c.entries[name]
	return d, ok
}

// Names returns all medicine names in insertion order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of medicines.
func (c *Catalog) Len() int {
	return len(c.names)
}

// MarshalJSON encodes the catalog as an object keyed by medicine name.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range c.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, name, c.entries[name]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	k, err := encodeJSON(key)
	if err != nil {
		return err
	}
	v, err := encodeJSON(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// encodeJSON marshals v without HTML escaping, so extracted text such as
// "&" or "<" is kept verbatim.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
