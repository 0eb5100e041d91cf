package markup

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Declaration is written in front of every part by WriteFile
const Declaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Attr is a single attribute of a node
type Attr struct {
	Key   string
	Value string
}

// A returns an attribute. It keeps attribute lists short at call sites.
func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Node is an element of a markup tree
type Node struct {
	tag         string
	attrs       []Attr
	children    []*Node
	text        string
	hasText     bool
	selfClosing bool
	attached    bool
}

// New creates an empty element with the given tag
func New(tag string) *Node {
	return &Node{tag: tag}
}

// NewSelfClosing creates an empty element that serializes as <tag/>
func NewSelfClosing(tag string) *Node {
	return &Node{tag: tag, selfClosing: true}
}

// Tag returns the element name, including any namespace prefix
func (n *Node) Tag() string {
	return n.tag
}

// Attrs returns a copy of the attributes in insertion order
func (n *Node) Attrs() []Attr {
	out := make([]Attr, len(n.attrs))
	copy(out, n.attrs)
	return out
}

// Attr returns the value of the attribute with the given key
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Children returns the child nodes in order. The slice is a copy; the nodes
// are not.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Text returns the text content of the node
func (n *Node) Text() string {
	return n.text
}

// HasText reports whether text content was set, even if it is empty
func (n *Node) HasText() bool {
	return n.hasText
}

// SelfClosing reports whether the node serializes as a single empty tag
func (n *Node) SelfClosing() bool {
	return n.selfClosing
}

// SetAttr appends an attribute. Keys must be unique within a node.
func (n *Node) SetAttr(key, value string) error {
	if key == "" {
		return NewFormatError(n.tag, "empty attribute key")
	}
	if _, exists := n.Attr(key); exists {
		return NewFormatError(n.tag, fmt.Sprintf("duplicate attribute %q", key))
	}
	n.attrs = append(n.attrs, Attr{Key: key, Value: value})
	return nil
}

// AddChild appends child to the node's children. The child becomes owned by
// n and cannot be attached anywhere else afterwards.
func (n *Node) AddChild(child *Node) error {
	switch {
	case child == nil:
		return NewFormatError(n.tag, "nil child")
	case child == n:
		return NewFormatError(n.tag, "node cannot contain itself")
	case n.selfClosing:
		return NewFormatError(n.tag, fmt.Sprintf("self-closing element cannot contain <%s>", child.tag))
	case child.attached:
		return NewFormatError(n.tag, fmt.Sprintf("<%s> already has a parent", child.tag))
	}
	child.attached = true
	n.children = append(n.children, child)
	return nil
}

// SetText sets the text content of the node
func (n *Node) SetText(text string) error {
	if n.selfClosing {
		return NewFormatError(n.tag, "self-closing element cannot carry text")
	}
	n.text = text
	n.hasText = true
	return nil
}

// SetSelfClosing changes how an empty node is serialized
func (n *Node) SetSelfClosing(selfClosing bool) error {
	if selfClosing && (len(n.children) > 0 || n.hasText && n.text != "") {
		return NewFormatError(n.tag, "element with content cannot be self-closing")
	}
	n.selfClosing = selfClosing
	if selfClosing {
		n.hasText = false
	}
	return nil
}

// String returns the serialized markup of the node and its subtree
func (n *Node) String() string {
	var sb strings.Builder
	n.serialize(&sb)
	return sb.String()
}

// WriteTo writes the serialized markup to w
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	n.serialize(&sb)
	written, err := io.WriteString(w, sb.String())
	return int64(written), err
}

func (n *Node) serialize(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(n.tag)
	for _, a := range n.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		escape(sb, a.Value)
		sb.WriteByte('"')
	}
	if n.selfClosing {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')

	for _, child := range n.children {
		child.serialize(sb)
	}
	if n.hasText {
		escape(sb, n.text)
	}

	sb.WriteString("</")
	sb.WriteString(n.tag)
	sb.WriteByte('>')
}

func escape(sb *strings.Builder, s string) {
	// strings.Builder never returns a write error
	_ = xml.EscapeText(sb, []byte(s))
}

// Fprint writes the serialized node followed by a newline to w
func Fprint(w io.Writer, n *Node) error {
	if _, err := n.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFile writes the XML declaration and the serialized node to path
func WriteFile(path string, n *Node) error {
	var sb strings.Builder
	sb.WriteString(Declaration)
	n.serialize(&sb)
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
