// Package fbt reads IEC 61499 function block type files (.fbt) into a
// generic element tree and derives the block interface from it.
package fbt

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// ErrNoRoot is returned when a document has no root element.
var ErrNoRoot = errors.New("fbt: document has no root element")

// Node is an XML element: its name, first non-blank text run, attributes
// and element children in document order.
type Node struct {
	Name     string
	Value    string
	Attrs    map[string]string
	Children []*Node
}

// Attr returns the named attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// AttrOr returns the named attribute, or def when it is absent.
func (n *Node) AttrOr(name, def string) string {
	if v, ok := n.Attrs[name]; ok {
		return v
	}
	return def
}

// ParseFile parses the XML file at path.
func ParseFile(path string) (*Node, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("fbt: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	n, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// Parse reads an XML document and returns its root element.
// Documents declaring a non-UTF-8 encoding are transcoded.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var (
		root  *Node
		stack []*Node
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fbt: parse xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{
				Name:  t.Name.Local,
				Attrs: make(map[string]string, len(t.Attr)),
			}
			for _, a := range t.Attr {
				n.Attrs[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("fbt: parse xml: multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			if top.Value == "" && strings.TrimSpace(string(t)) != "" {
				top.Value = string(t)
			}
		}
	}

	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}

// charsetReader decodes documents whose XML declaration names a charset
// other than UTF-8 (for example windows-1251 or ISO-8859-1).
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("fbt: charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("fbt: charset %q is not supported", label)
	}
	return enc.NewDecoder().Reader(input), nil
}

// Dump writes an indented outline of the tree rooted at n: one line per
// element with its attributes (sorted by name), text value and child count.
func (n *Node) Dump(w io.Writer) error {
	return n.dump(w, 0)
}

func (n *Node) dump(w io.Writer, depth int) error {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString("Node: ")
	b.WriteString(n.Name)

	if len(n.Attrs) > 0 {
		b.WriteString(" [")
		for i, k := range slices.Sorted(maps.Keys(n.Attrs)) {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(n.Attrs[k])
		}
		b.WriteByte(']')
	}
	if v := strings.TrimSpace(n.Value); v != "" {
		b.WriteString(" Value: ")
		b.WriteString(v)
	}
	fmt.Fprintf(&b, " Children: %d\n", len(n.Children))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := c.dump(w, depth+1); err != nil {
			return err
		}
	}
	return nil
}
