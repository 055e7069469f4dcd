package profile

import (
	"strings"
	"testing"
)

func TestDefaultProfile(t *testing.T) {
	p := Default()
	cases := []struct {
		tag   string
		attrs []string
	}{
		{"linearGradient", []string{"x1", "y1", "x2", "y2"}},
		{"radialGradient", []string{"cx", "cy", "r", "gradientTransform"}},
		{"path", []string{"d"}},
	}
	for _, tc := range cases {
		got := p.Attrs(tc.tag)
		if len(got) != len(tc.attrs) {
			t.Fatalf("%s attrs = %v, want %v", tc.tag, got, tc.attrs)
		}
		for i := range tc.attrs {
			if got[i] != tc.attrs[i] {
				t.Fatalf("%s attrs = %v, want %v", tc.tag, got, tc.attrs)
			}
		}
	}
	if p.Attrs("rect") != nil {
		t.Fatalf("rect should not be a carrier in the default profile")
	}
}

func TestLoadProfile(t *testing.T) {
	p, err := Load(strings.NewReader("circle: [cx, cy, r]\nline:\n  - x1\n  - y1\n"))
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if got := p.Attrs("circle"); len(got) != 3 || got[0] != "cx" || got[2] != "r" {
		t.Fatalf("circle attrs = %v", got)
	}
	if got := p.Attrs("line"); len(got) != 2 || got[1] != "y1" {
		t.Fatalf("line attrs = %v", got)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	if _, err := Load(strings.NewReader("circle: [cx")); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestLoadRejectsEmptyProfile(t *testing.T) {
	if _, err := Load(strings.NewReader("")); err == nil {
		t.Fatalf("expected error for empty profile")
	}
}

func TestLoadRejectsEmptyAttrList(t *testing.T) {
	if _, err := Load(strings.NewReader("circle: []")); err == nil {
		t.Fatalf("expected error for tag with no attributes")
	}
}

func TestLoadRejectsDuplicateAttrs(t *testing.T) {
	if _, err := Load(strings.NewReader("circle: [cx, cx]")); err == nil {
		t.Fatalf("expected error for duplicate attribute")
	}
}
