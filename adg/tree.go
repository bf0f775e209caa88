package adg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Node is one element of a parsed preset document
type Node struct {
	Tag      string
	Attrs    map[string]string
	Children []*Node
}

// ParseDocument builds the element tree of an XML document.
// Text content is dropped; only tags, attributes and nesting are kept.
func ParseDocument(text string) (*Node, error) {
	dec := xml.NewDecoder(strings.NewReader(text))

	var root *Node
	var stack []*Node

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFormat, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Tag: t.Name.Local}
			if len(t.Attr) > 0 {
				n.Attrs = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					n.Attrs[a.Name.Local] = a.Value
				}
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrFormat)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)

		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrFormat)
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: unclosed <%s>", ErrFormat, stack[len(stack)-1].Tag)
	}
	return root, nil
}

// Child returns the first direct child named tag
func (n *Node) Child(tag string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// Attr returns the named attribute, or "" if absent
func (n *Node) Attr(name string) string {
	if n == nil {
		return ""
	}
	return n.Attrs[name]
}

// IntAttr reads the leading integer of the named attribute, so "80.0"
// gives 80. It returns dflt when the attribute is absent or does not
// start with a number.
func (n *Node) IntAttr(name string, dflt int) int {
	if n == nil {
		return dflt
	}
	v, ok := n.Attrs[name]
	if !ok {
		return dflt
	}
	v = strings.TrimSpace(v)
	end := 0
	if end < len(v) && (v[end] == '-' || v[end] == '+') {
		end++
	}
	digits := end
	for end < len(v) && v[end] >= '0' && v[end] <= '9' {
		end++
	}
	if end == digits {
		return dflt
	}
	i, err := strconv.Atoi(v[:end])
	if err != nil {
		return dflt
	}
	return i
}

// ChildValue returns the Value attribute of the direct child named tag
func (n *Node) ChildValue(tag string) string {
	return n.Child(tag).Attr("Value")
}

// HasTag returns a predicate matching nodes named tag
func HasTag(tag string) func(*Node) bool {
	return func(n *Node) bool { return n.Tag == tag }
}

// FindFirst returns the first node in pre-order, n included, that
// satisfies pred.
func FindFirst(n *Node, pred func(*Node) bool) *Node {
	if n == nil {
		return nil
	}
	if pred(n) {
		return n
	}
	for _, c := range n.Children {
		if found := FindFirst(c, pred); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node in pre-order that satisfies pred. The
// search does not descend into a matching node.
func FindAll(n *Node, pred func(*Node) bool) []*Node {
	return appendMatches(nil, n, pred)
}

func appendMatches(acc []*Node, n *Node, pred func(*Node) bool) []*Node {
	if n == nil {
		return acc
	}
	if pred(n) {
		return append(acc, n)
	}
	for _, c := range n.Children {
		acc = appendMatches(acc, c, pred)
	}
	return acc
}
