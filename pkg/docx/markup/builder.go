package markup

// Builder creates and links nodes while remembering the first structural
// error, so fragment code can be written without checking each step. Only
// the first error is kept. After it, Append stops linking children; Elem,
// Leaf and TextElem still return fresh nodes so callers always get a usable
// value. The zero value is ready to use.
type Builder struct {
	err error
}

// Err returns the first error recorded by the builder
func (b *Builder) Err() error {
	return b.err
}

func (b *Builder) record(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

// Elem creates an element with the given attributes
func (b *Builder) Elem(tag string, attrs ...Attr) *Node {
	n := New(tag)
	for _, a := range attrs {
		b.record(n.SetAttr(a.Key, a.Value))
	}
	return n
}

// Leaf creates a self-closing element with the given attributes
func (b *Builder) Leaf(tag string, attrs ...Attr) *Node {
	n := b.Elem(tag, attrs...)
	b.record(n.SetSelfClosing(true))
	return n
}

// TextElem creates an element carrying text content
func (b *Builder) TextElem(tag, text string, attrs ...Attr) *Node {
	n := b.Elem(tag, attrs...)
	b.record(n.SetText(text))
	return n
}

// Append adds children to parent in order and returns parent
func (b *Builder) Append(parent *Node, children ...*Node) *Node {
	for _, child := range children {
		if b.err != nil {
			break
		}
		b.record(parent.AddChild(child))
	}
	return parent
}
