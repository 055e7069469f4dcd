package steg

import (
	"fmt"
	"strings"
	"testing"

	"github.com/wudi/svgsteg/profile"
	"github.com/wudi/svgsteg/svg"
)

const docHeader = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
`

func mustParse(t *testing.T, text string) *svg.Document {
	t.Helper()
	doc, err := svg.Parse(strings.NewReader(text))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return doc
}

// coverWithSlots builds a document whose single path holds exactly n
// eligible literals.
func coverWithSlots(t *testing.T, n int) *svg.Document {
	t.Helper()
	var b strings.Builder
	b.WriteString(docHeader)
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"><path d="M`)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, " %d.75", i)
	}
	b.WriteString(`"/></svg>`)
	return mustParse(t, b.String())
}

func literals(t *testing.T, slots []Slot) []string {
	t.Helper()
	out := make([]string, len(slots))
	for i, s := range slots {
		lit, ok := s.Literal()
		if !ok {
			t.Fatalf("slot %d has no literal", i)
		}
		out[i] = lit
	}
	return out
}

func TestDiscoverSlotsCanonicalOrder(t *testing.T) {
	// Attributes appear in the document in reverse of the profile
	// order; canonical order must follow the profile, not the markup.
	doc := mustParse(t, docHeader+`<svg xmlns="http://www.w3.org/2000/svg">
	<radialGradient r="3.5" cy="2.5" cx="1.5"/>
	<linearGradient y1="7.125" x1="0.25"/>
	<path d="M 4.5 2.25 L 3.75"/>
</svg>`)

	got := literals(t, DiscoverSlots(doc, profile.Default()))
	want := []string{"1.5", "2.5", "3.5", "0.25", "7.125", "4.5", "2.25", "3.75"}
	if len(got) != len(want) {
		t.Fatalf("slots = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slots = %v, want %v", got, want)
		}
	}
}

func TestDiscoverSlotsDeterministic(t *testing.T) {
	doc := coverWithSlots(t, 25)
	a := DiscoverSlots(doc, profile.Default())
	b := DiscoverSlots(doc, profile.Default())
	if len(a) != len(b) {
		t.Fatalf("slot counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("slot %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestDiscoverSlotsIgnoresIntegersAndNonCarrierTags(t *testing.T) {
	doc := mustParse(t, docHeader+`<svg xmlns="http://www.w3.org/2000/svg">
	<path d="M 10 20 Z"/>
	<rect x="1.5" y="2.5"/>
	<circle cx="3.5"/>
</svg>`)
	if slots := DiscoverSlots(doc, profile.Default()); len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", literals(t, slots))
	}
}

func TestDiscoverSlotsMatchesUnsignedPartOfSignedNumbers(t *testing.T) {
	// The literal pattern has no sign; "-1.5" contributes its unsigned
	// digits as a carrier, same as the original matcher.
	doc := mustParse(t, docHeader+`<svg xmlns="http://www.w3.org/2000/svg"><path d="M -1.5"/></svg>`)
	got := literals(t, DiscoverSlots(doc, profile.Default()))
	if len(got) != 1 || got[0] != "1.5" {
		t.Fatalf("slots = %v, want [1.5]", got)
	}
}

func TestDiscoverSlotsSkipsAbsentAttributes(t *testing.T) {
	doc := mustParse(t, docHeader+`<svg xmlns="http://www.w3.org/2000/svg"><linearGradient x1="0.5"/></svg>`)
	got := literals(t, DiscoverSlots(doc, profile.Default()))
	if len(got) != 1 || got[0] != "0.5" {
		t.Fatalf("slots = %v, want [0.5]", got)
	}
}

type attrFilter struct{ drop string }

func (f attrFilter) Keep(tag, attr, literal string) (bool, error) {
	return attr != f.drop, nil
}

func TestFilterSlots(t *testing.T) {
	doc := mustParse(t, docHeader+`<svg xmlns="http://www.w3.org/2000/svg">
	<linearGradient x1="0.5" y1="1.5"/>
	<path d="M 2.5 3.5"/>
</svg>`)
	slots := DiscoverSlots(doc, profile.Default())
	kept, err := filterSlots(slots, attrFilter{drop: "d"})
	if err != nil {
		t.Fatalf("filter error: %v", err)
	}
	got := literals(t, kept)
	if len(got) != 2 || got[0] != "0.5" || got[1] != "1.5" {
		t.Fatalf("kept slots = %v, want [0.5 1.5]", got)
	}
}
