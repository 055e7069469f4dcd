// Package svg provides a token-level DOM for SVG documents. The parser
// keeps every node the decoder reports (declaration, doctype, comments,
// processing instructions, character data) so a document can be
// serialized back without structural loss.
package svg

import (
	"encoding/xml"
	"errors"
)

// ErrInvalidDocument reports input that is not well-formed XML or whose
// doctype is not a recognized SVG schema.
var ErrInvalidDocument = errors.New("not a valid svg image")

// Doctype system identifiers accepted as SVG. This is a hard gate: a
// document without one of these is rejected, not warned about.
var validDoctypes = []string{
	"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd",
	"http://www.w3.org/TR/2001/REC-SVG-20010904/DTD/svg10.dtd",
}

// Node is one ordered item in a document or element body: *Element,
// CharData, Comment, ProcInst, or Directive.
type Node interface{}

// CharData is literal text between markup.
type CharData string

// Comment is the body of an XML comment, without the <!-- --> markers.
type Comment string

// Directive is the body of a <!...> directive, such as a DOCTYPE.
type Directive string

// ProcInst is a processing instruction. The XML declaration itself
// arrives as a ProcInst with target "xml".
type ProcInst struct {
	Target string
	Inst   string
}

// Attr is a single attribute. Name.Space holds the resolved namespace
// URL for prefixed attributes and "xmlns" for namespace declarations.
type Attr struct {
	Name  xml.Name
	Value string
}

// Element is one element with ordered attributes and children.
type Element struct {
	Name     xml.Name
	Attrs    []Attr
	Children []Node
}

// Document is a parsed SVG file: the prolog nodes before the root
// element, the root, and any trailing nodes (typically whitespace).
type Document struct {
	Prolog  []Node
	Root    *Element
	Trailer []Node

	// DoctypeSystemID is the system identifier from the DOCTYPE
	// directive, already validated against the accepted set.
	DoctypeSystemID string
}

// Attr returns the value of the named attribute. Names are matched on
// the local part, so "x1" finds both x1 and a prefixed variant.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name && a.Name.Space != "xmlns" {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr replaces the value of an existing attribute or appends a new
// unprefixed one. The update is visible to subsequent Attr calls and to
// serialization.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.Attrs {
		if a.Name.Local == name && a.Name.Space != "xmlns" {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: xml.Name{Local: name}, Value: value})
}

// Elements returns every element in document order (depth-first,
// pre-order). The slice is rebuilt on each call; element pointers are
// stable for the life of the document.
func (d *Document) Elements() []*Element {
	var out []*Element
	if d.Root != nil {
		collect(d.Root, &out)
	}
	return out
}

// ElementsByTag returns every element whose local tag name matches, in
// document order.
func (d *Document) ElementsByTag(name string) []*Element {
	var out []*Element
	for _, el := range d.Elements() {
		if el.Name.Local == name {
			out = append(out, el)
		}
	}
	return out
}

func collect(el *Element, out *[]*Element) {
	*out = append(*out, el)
	for _, child := range el.Children {
		if c, ok := child.(*Element); ok {
			collect(c, out)
		}
	}
}
