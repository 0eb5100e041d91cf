// Package markup provides the ordered XML tree used to build every part of a
// DOCX package.
//
// OOXML consumers are sensitive to element and attribute order in several
// parts, so a Node keeps its attributes and children exactly in the order they
// were added and serializes them in that order. Nothing is sorted or
// deduplicated on output.
//
// # Structure Rules
//
// The tree is strict: a node is owned by at most one parent. The mutating
// methods enforce the structural rules when they are called and return a
// *FormatError instead of silently dropping data:
//
//   - a self-closing node cannot receive children or text
//   - a node with children or text cannot be made self-closing
//   - attribute keys are unique within a node
//   - a node cannot be attached twice, or to itself
//
// # Usage
//
// Building fragments with many children is easier with a Builder, which keeps
// the first error and turns later operations into no-ops:
//
//	var b markup.Builder
//	run := b.Elem("w:r")
//	b.Append(run,
//	    b.Append(b.Elem("w:rPr"), b.Leaf("w:b"), b.Leaf("w:bCs")),
//	    b.TextElem("w:t", "Hello, world!"),
//	)
//	if err := b.Err(); err != nil {
//	    return err
//	}
//	fmt.Println(run) // <w:r><w:rPr><w:b/><w:bCs/></w:rPr><w:t>Hello, world!</w:t></w:r>
package markup
