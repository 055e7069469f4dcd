package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
)

var quotedRe = regexp.MustCompile(`"([^"]*)"|'([^']*)'`)

// Parse reads an SVG document from r. It fails with an error wrapping
// ErrInvalidDocument when the input is not well-formed XML or when the
// DOCTYPE system identifier is missing or not a recognized SVG schema.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	doc := &Document{}
	var stack []*Element

	appendNode := func(n Node) {
		switch {
		case len(stack) > 0:
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, n)
		case doc.Root == nil:
			doc.Prolog = append(doc.Prolog, n)
		default:
			doc.Trailer = append(doc.Trailer, n)
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: a.Name, Value: a.Value})
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, Node(el))
			} else if doc.Root == nil {
				doc.Root = el
			} else {
				return nil, fmt.Errorf("%w: multiple root elements", ErrInvalidDocument)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unbalanced end tag", ErrInvalidDocument)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			appendNode(CharData(t))
		case xml.Comment:
			appendNode(Comment(t))
		case xml.ProcInst:
			appendNode(ProcInst{Target: t.Target, Inst: string(t.Inst)})
		case xml.Directive:
			d := string(t)
			appendNode(Directive(d))
			if sys, ok := doctypeSystemID(d); ok {
				doc.DoctypeSystemID = sys
			}
		}
	}

	if doc.Root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrInvalidDocument)
	}
	if !recognizedDoctype(doc.DoctypeSystemID) {
		return nil, fmt.Errorf("%w: doctype %q is not a recognized svg schema", ErrInvalidDocument, doc.DoctypeSystemID)
	}
	return doc, nil
}

// doctypeSystemID extracts the system identifier from a DOCTYPE
// directive body. The system identifier is the last quoted string of
// the external identifier, in both the PUBLIC and SYSTEM forms. An
// internal subset (from the first "[") is cut first: editor exports
// commonly declare quoted entity values there, and those must not be
// mistaken for the system identifier.
func doctypeSystemID(directive string) (string, bool) {
	trimmed := strings.TrimSpace(directive)
	if !strings.HasPrefix(trimmed, "DOCTYPE") {
		return "", false
	}
	if i := strings.IndexByte(trimmed, '['); i >= 0 {
		trimmed = trimmed[:i]
	}
	matches := quotedRe.FindAllStringSubmatch(trimmed, -1)
	if len(matches) == 0 {
		return "", false
	}
	last := matches[len(matches)-1]
	if last[1] != "" {
		return last[1], true
	}
	return last[2], true
}

func recognizedDoctype(systemID string) bool {
	for _, d := range validDoctypes {
		if systemID == d {
			return true
		}
	}
	return false
}
