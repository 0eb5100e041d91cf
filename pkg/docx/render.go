package docx

import (
	"fmt"
	"strconv"

	"github.com/benjaminschreck/go-docx/pkg/docx/markup"
	"github.com/benjaminschreck/go-docx/pkg/docx/parts"
)

// documentNamespaces are declared on w:document in this order
var documentNamespaces = []markup.Attr{
	markup.A("xmlns:o", "urn:schemas-microsoft-com:office:office"),
	markup.A("xmlns:r", parts.NSOfficeRels),
	markup.A("xmlns:v", "urn:schemas-microsoft-com:vml"),
	markup.A("xmlns:w", parts.NSWordprocessingML),
	markup.A("xmlns:w10", "urn:schemas-microsoft-com:office:word"),
	markup.A("xmlns:wp", "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"),
	markup.A("xmlns:pic", "http://schemas.openxmlformats.org/drawingml/2006/picture"),
	markup.A("xmlns:wps", "http://schemas.microsoft.com/office/word/2010/wordprocessingShape"),
	markup.A("xmlns:wpg", "http://schemas.microsoft.com/office/word/2010/wordprocessingGroup"),
	markup.A("xmlns:mc", parts.NSMarkupCompat),
	markup.A("xmlns:wp14", "http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing"),
	markup.A("xmlns:w14", parts.NSWord2010),
	markup.A("xmlns:w15", "http://schemas.microsoft.com/office/word/2012/wordml"),
	markup.A("mc:Ignorable", "w14 wp14 w15"),
}

// RenderRun renders a run as a w:r fragment. A size override is emitted only
// when the run's size differs from ambient.
func RenderRun(r Run, ambient int) (*markup.Node, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	var b markup.Builder
	n := renderRun(&b, r, ambient)
	if err := b.Err(); err != nil {
		return nil, err
	}
	return n, nil
}

// RenderParagraph renders a paragraph as a w:p fragment
func RenderParagraph(p Paragraph, ambient int) (*markup.Node, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	var b markup.Builder
	n := renderParagraph(&b, &p, ambient)
	if err := b.Err(); err != nil {
		return nil, err
	}
	return n, nil
}

// Render builds the markup tree of word/document.xml
func (d *Document) Render() (*markup.Node, error) {
	if d.AmbientFontSize > MaxFontSize {
		return nil, NewInvalidArgumentError("AmbientFontSize", d.AmbientFontSize, fmt.Sprintf("font size cannot exceed %d", MaxFontSize))
	}
	ambient := d.ambient()
	var b markup.Builder

	body := b.Elem("w:body")
	for i := range d.paragraphs {
		p := &d.paragraphs[i]
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("paragraph %d: %w", i, err)
		}
		b.Append(body, renderParagraph(&b, p, ambient))
	}
	b.Append(body, renderSection(&b, d.layout()))

	root := b.Append(b.Elem("w:document", documentNamespaces...), body)
	if err := b.Err(); err != nil {
		return nil, err
	}
	return root, nil
}

// sizeNodes returns w:sz and w:szCs for a size in points. OOXML sizes are
// half points.
func sizeNodes(b *markup.Builder, points int) []*markup.Node {
	val := strconv.Itoa(2 * points)
	return []*markup.Node{
		b.Leaf("w:sz", markup.A("w:val", val)),
		b.Leaf("w:szCs", markup.A("w:val", val)),
	}
}

func renderRun(b *markup.Builder, r Run, ambient int) *markup.Node {
	rPr := b.Elem("w:rPr")
	if size := r.Size(); size != ambient {
		b.Append(rPr, sizeNodes(b, size)...)
	}
	if r.Bold {
		b.Append(rPr, b.Leaf("w:b"), b.Leaf("w:bCs"))
	}
	if r.Italic {
		b.Append(rPr, b.Leaf("w:i"), b.Leaf("w:iCs"))
	}
	if r.Underline {
		b.Append(rPr, b.Leaf("w:u", markup.A("w:val", "single")))
	}
	if r.Strikethrough {
		b.Append(rPr, b.Leaf("w:strike"))
	}

	var attrs []markup.Attr
	if r.PreserveSpace {
		attrs = append(attrs, markup.A("xml:space", "preserve"))
	}
	return b.Append(b.Elem("w:r"), rPr, b.TextElem("w:t", r.Text, attrs...))
}

func paragraphProperties(b *markup.Builder, style string, align Alignment, runProps ...*markup.Node) *markup.Node {
	rPr := b.Append(b.Elem("w:rPr"), runProps...)
	return b.Append(b.Elem("w:pPr"),
		b.Leaf("w:pStyle", markup.A("w:val", style)),
		b.Leaf("w:bidi", markup.A("w:val", "0")),
		b.Leaf("w:jc", markup.A("w:val", align.String())),
		rPr,
	)
}

func renderParagraph(b *markup.Builder, p *Paragraph, ambient int) *markup.Node {
	para := b.Elem("w:p")

	if p.Blank {
		// the size goes into both property sets so the empty line keeps its height
		var pSize, rSize []*markup.Node
		if p.BlankSize > 0 {
			pSize = sizeNodes(b, p.BlankSize)
			rSize = sizeNodes(b, p.BlankSize)
		}
		return b.Append(para,
			paragraphProperties(b, parts.StyleNormal, AlignStart, pSize...),
			b.Append(b.Elem("w:r"), b.Append(b.Elem("w:rPr"), rSize...)),
		)
	}

	b.Append(para, paragraphProperties(b, p.style(), p.Alignment))
	for _, r := range p.runs {
		b.Append(para, renderRun(b, r, ambient))
	}
	return para
}

func renderSection(b *markup.Builder, l PageLayout) *markup.Node {
	m := l.Margins
	return b.Append(b.Elem("w:sectPr"),
		b.Leaf("w:type", markup.A("w:val", "nextPage")),
		b.Leaf("w:pgSz",
			markup.A("w:w", strconv.Itoa(l.Width)),
			markup.A("w:h", strconv.Itoa(l.Height)),
		),
		b.Leaf("w:pgMar",
			markup.A("w:top", strconv.Itoa(m.Top)),
			markup.A("w:right", strconv.Itoa(m.Right)),
			markup.A("w:bottom", strconv.Itoa(m.Bottom)),
			markup.A("w:left", strconv.Itoa(m.Left)),
			markup.A("w:header", strconv.Itoa(m.Header)),
			markup.A("w:footer", strconv.Itoa(m.Footer)),
			markup.A("w:gutter", strconv.Itoa(m.Gutter)),
		),
		b.Leaf("w:pgNumType", markup.A("w:fmt", "decimal")),
		b.Leaf("w:formProt", markup.A("w:val", "false")),
		b.Leaf("w:textDirection", markup.A("w:val", "lrTb")),
		b.Leaf("w:docGrid",
			markup.A("w:type", "default"),
			markup.A("w:linePitch", "100"),
			markup.A("w:charSpace", "0"),
		),
	)
}
