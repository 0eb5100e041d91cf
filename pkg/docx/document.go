package docx

import (
	"io"
	"strings"

	"github.com/benjaminschreck/go-docx/pkg/docx/markup"
)

// Margins are page margins in twentieths of a point
type Margins struct {
	Top    int
	Right  int
	Bottom int
	Left   int
	Header int
	Footer int
	Gutter int
}

// PageLayout is the page size and margins of the single document section,
// in twentieths of a point
type PageLayout struct {
	Width   int
	Height  int
	Margins Margins
}

// DefaultPageLayout returns an A4 page with 2 cm margins
func DefaultPageLayout() PageLayout {
	return PageLayout{
		Width:  11906,
		Height: 16838,
		Margins: Margins{
			Top:    1134,
			Right:  1134,
			Bottom: 1134,
			Left:   1134,
			Header: 0,
			Footer: 0,
			Gutter: 0,
		},
	}
}

// Document is an ordered sequence of paragraphs. Documents are built by a
// single goroutine and are not safe for concurrent use.
type Document struct {
	// AmbientFontSize is the size in points that runs inherit from the
	// Normal style. Runs of a different size carry an explicit override.
	AmbientFontSize int
	Layout          PageLayout

	paragraphs []Paragraph
}

// New creates an empty document with the default layout. The ambient font
// size comes from DOCX_FONT_SIZE, or DefaultFontSize when that is unset or
// out of range.
func New() *Document {
	return NewWithConfig(ConfigFromEnvironment())
}

// NewWithConfig creates an empty document using the configured font size
func NewWithConfig(cfg *Config) *Document {
	doc := &Document{
		AmbientFontSize: DefaultFontSize,
		Layout:          DefaultPageLayout(),
	}
	if cfg != nil && cfg.AmbientFontSize > 0 && cfg.AmbientFontSize <= MaxFontSize {
		doc.AmbientFontSize = cfg.AmbientFontSize
	}
	return doc
}

// AddParagraph appends a copy of p. Changing p afterwards does not affect
// the document.
func (d *Document) AddParagraph(p Paragraph) error {
	if err := p.validate(); err != nil {
		return err
	}
	d.paragraphs = append(d.paragraphs, p.clone())
	return nil
}

// AddBlankLine appends one blank line of the ambient size
func (d *Document) AddBlankLine() {
	d.paragraphs = append(d.paragraphs, Paragraph{Blank: true})
}

// AddBlankLines appends count blank lines. A positive size sets the line
// height as a font size in points; zero inherits the ambient size.
func (d *Document) AddBlankLines(count, size int) error {
	if count < 1 {
		return NewInvalidArgumentError("count", count, "blank line count must be at least 1")
	}
	if err := checkSize("size", size); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		d.paragraphs = append(d.paragraphs, Paragraph{Blank: true, BlankSize: size})
	}
	return nil
}

// Paragraphs returns a copy of the document's paragraphs
func (d *Document) Paragraphs() []Paragraph {
	out := make([]Paragraph, len(d.paragraphs))
	for i, p := range d.paragraphs {
		out[i] = p.clone()
	}
	return out
}

// Len returns the number of paragraphs
func (d *Document) Len() int {
	return len(d.paragraphs)
}

func (d *Document) ambient() int {
	if d.AmbientFontSize <= 0 {
		return DefaultFontSize
	}
	return d.AmbientFontSize
}

func (d *Document) layout() PageLayout {
	if d.Layout == (PageLayout{}) {
		return DefaultPageLayout()
	}
	return d.Layout
}

// Print writes the markup of word/document.xml to w
func (d *Document) Print(w io.Writer) error {
	root, err := d.Render()
	if err != nil {
		return err
	}
	return markup.Fprint(w, root)
}

// Save renders the document and packages it as a .docx file at filename,
// using the configuration from the environment
func (d *Document) Save(filename string) error {
	a, err := NewAssembler(ConfigFromEnvironment())
	if err != nil {
		return err
	}
	return a.Assemble(d, filename)
}

// Text returns the text of all non-blank paragraphs, one per line
func (d *Document) Text() string {
	lines := make([]string, 0, len(d.paragraphs))
	for _, p := range d.paragraphs {
		if p.Blank {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, p.Text())
	}
	return strings.Join(lines, "\n")
}
