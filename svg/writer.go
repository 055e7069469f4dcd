package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// WriteTo serializes the document back to XML text. Namespace prefixes
// are restored from the xmlns declarations carried in the attribute
// lists, so round-tripping a parsed document keeps its prefixed names.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	for _, n := range d.Prolog {
		if err := writeNode(cw, n, scope{}); err != nil {
			return cw.n, err
		}
	}
	if d.Root != nil {
		if err := writeElement(cw, d.Root, scope{}); err != nil {
			return cw.n, err
		}
	}
	for _, n := range d.Trailer {
		if err := writeNode(cw, n, scope{}); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

// String serializes the document to a string. Useful in tests and for
// small documents; streaming callers should prefer WriteTo.
func (d *Document) String() string {
	var b strings.Builder
	d.WriteTo(&b)
	return b.String()
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func (c *countWriter) WriteString(s string) error {
	_, err := io.WriteString(c, s)
	return err
}

// scope tracks in-force namespace bindings while walking the tree.
type scope struct {
	defaultNS string
	prefixes  map[string]string // namespace URL -> prefix
}

func (s scope) push(el *Element) scope {
	next := s
	copied := false
	for _, a := range el.Attrs {
		switch {
		case a.Name.Space == "xmlns":
			if !copied {
				m := make(map[string]string, len(s.prefixes)+1)
				for k, v := range s.prefixes {
					m[k] = v
				}
				next.prefixes = m
				copied = true
			}
			next.prefixes[a.Value] = a.Name.Local
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			next.defaultNS = a.Value
		}
	}
	return next
}

func writeNode(w *countWriter, n Node, sc scope) error {
	switch t := n.(type) {
	case *Element:
		return writeElement(w, t, sc)
	case CharData:
		return w.WriteString(escapeText(string(t)))
	case Comment:
		return w.WriteString("<!--" + string(t) + "-->")
	case ProcInst:
		return w.WriteString("<?" + t.Target + " " + t.Inst + "?>")
	case Directive:
		return w.WriteString("<!" + string(t) + ">")
	default:
		return fmt.Errorf("unknown node type %T", n)
	}
}

func writeElement(w *countWriter, el *Element, sc scope) error {
	sc = sc.push(el)

	name := elementName(el.Name, sc)
	if err := w.WriteString("<" + name); err != nil {
		return err
	}
	for _, a := range el.Attrs {
		if err := w.WriteString(" " + attrName(a.Name, sc) + `="` + escapeAttr(a.Value) + `"`); err != nil {
			return err
		}
	}
	if len(el.Children) == 0 {
		return w.WriteString("/>")
	}
	if err := w.WriteString(">"); err != nil {
		return err
	}
	for _, child := range el.Children {
		if err := writeNode(w, child, sc); err != nil {
			return err
		}
	}
	return w.WriteString("</" + name + ">")
}

func elementName(n xml.Name, sc scope) string {
	switch {
	case n.Space == "", n.Space == sc.defaultNS:
		return n.Local
	case n.Space == "xml":
		return "xml:" + n.Local
	}
	if prefix, ok := sc.prefixes[n.Space]; ok {
		return prefix + ":" + n.Local
	}
	return n.Local
}

func attrName(n xml.Name, sc scope) string {
	switch n.Space {
	case "":
		return n.Local
	case "xmlns":
		return "xmlns:" + n.Local
	case "xml":
		return "xml:" + n.Local
	}
	if prefix, ok := sc.prefixes[n.Space]; ok {
		return prefix + ":" + n.Local
	}
	return n.Local
}

// escapeText escapes character data. Whitespace is left alone so that
// document formatting survives a round trip.
func escapeText(s string) string {
	if !strings.ContainsAny(s, "&<>") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// escapeAttr escapes a double-quoted attribute value. Literal newlines
// and tabs become character references so the value is not subject to
// attribute whitespace normalization on re-parse.
func escapeAttr(s string) string {
	if !strings.ContainsAny(s, "&<>\"\n\t\r") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&#34;")
		case '\n':
			b.WriteString("&#xA;")
		case '\t':
			b.WriteString("&#x9;")
		case '\r':
			b.WriteString("&#xD;")
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
