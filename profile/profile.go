// Package profile defines which elements and attributes of an SVG
// document may carry embedded bits. A profile maps a tag name to the
// ordered list of its attributes known to hold plain decimal literals;
// the attribute order is part of the canonical slot order, so embedder
// and extractor must use the same profile.
package profile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Profile maps tag name to the ordered attribute list eligible for
// embedding on that tag.
type Profile map[string][]string

// Default returns the built-in SVG carrier profile: gradient geometry
// and path data, the attributes where fractional coordinates are both
// common and visually insignificant in their last digit.
func Default() Profile {
	return Profile{
		"linearGradient": {"x1", "y1", "x2", "y2"},
		"radialGradient": {"cx", "cy", "r", "gradientTransform"},
		"path":           {"d"},
	}
}

// Attrs returns the eligible attribute list for a tag, or nil when the
// tag is not a carrier.
func (p Profile) Attrs(tag string) []string {
	return p[tag]
}

// Load reads a profile from YAML: a mapping of tag name to a sequence
// of attribute names, for example
//
//	linearGradient: [x1, y1, x2, y2]
//	circle: [cx, cy, r]
//
// The sequence order is the canonical attribute order.
func Load(r io.Reader) (Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p Profile) validate() error {
	if len(p) == 0 {
		return errors.New("profile is empty")
	}
	for tag, attrs := range p {
		if tag == "" {
			return errors.New("profile contains an empty tag name")
		}
		if len(attrs) == 0 {
			return fmt.Errorf("profile tag %q has no attributes", tag)
		}
		seen := make(map[string]bool, len(attrs))
		for _, a := range attrs {
			if a == "" {
				return fmt.Errorf("profile tag %q has an empty attribute name", tag)
			}
			if seen[a] {
				return fmt.Errorf("profile tag %q lists attribute %q twice", tag, a)
			}
			seen[a] = true
		}
	}
	return nil
}
