package steg

import (
	"regexp"

	"github.com/wudi/svgsteg/profile"
	"github.com/wudi/svgsteg/svg"
)

// literalRe matches a plain decimal literal: digits, a literal point,
// digits. Signs, bare integers, and exponent forms are intentionally
// not carriers.
var literalRe = regexp.MustCompile(`[0-9]+\.[0-9]+`)

// Slot identifies one decimal literal occurrence inside one attribute
// value: the byte span [Start, End) of the current value of Attr on
// Element. A slot carries exactly one bit.
type Slot struct {
	Element *svg.Element
	Attr    string
	Start   int
	End     int
}

// Literal returns the slot's literal text from the attribute's current
// value, or "" if the attribute has disappeared or shrunk (which does
// not happen under this package's same-length edits).
func (s Slot) Literal() (string, bool) {
	val, ok := s.Element.Attr(s.Attr)
	if !ok || s.End > len(val) {
		return "", false
	}
	return val[s.Start:s.End], true
}

// DiscoverSlots scans the document for every eligible literal and
// returns the canonical slot sequence: elements in document order,
// attributes in the profile's listed order, literals left to right.
// The result is a pure function of the document and profile; repeated
// calls on an unmodified document are identical. Discovery must finish
// before any embedding starts, since slots are positional references
// into attribute values.
func DiscoverSlots(doc *svg.Document, prof profile.Profile) []Slot {
	var slots []Slot
	for _, el := range doc.Elements() {
		attrs := prof.Attrs(el.Name.Local)
		if attrs == nil {
			continue
		}
		for _, attr := range attrs {
			val, ok := el.Attr(attr)
			if !ok {
				continue
			}
			for _, span := range literalRe.FindAllStringIndex(val, -1) {
				slots = append(slots, Slot{Element: el, Attr: attr, Start: span[0], End: span[1]})
			}
		}
	}
	return slots
}

// SlotFilter decides whether a discovered slot stays in the carrier
// sequence. Filters must be deterministic: embedder and extractor see
// the same slots only if they apply the same filter.
type SlotFilter interface {
	Keep(tag, attr, literal string) (bool, error)
}

func filterSlots(slots []Slot, filter SlotFilter) ([]Slot, error) {
	if filter == nil {
		return slots, nil
	}
	kept := slots[:0]
	for _, s := range slots {
		lit, ok := s.Literal()
		if !ok {
			continue
		}
		keep, err := filter.Keep(s.Element.Name.Local, s.Attr, lit)
		if err != nil {
			return nil, err
		}
		if keep {
			kept = append(kept, s)
		}
	}
	return kept, nil
}
