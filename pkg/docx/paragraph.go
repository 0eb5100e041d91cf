package docx

import (
	"slices"
	"strings"

	"github.com/benjaminschreck/go-docx/pkg/docx/parts"
)

// Alignment is the horizontal justification of a paragraph
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
	AlignJustified
)

// String returns the w:jc token of the alignment
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignJustified:
		return "both"
	default:
		return "unknown"
	}
}

func (a Alignment) valid() bool {
	return a >= AlignStart && a <= AlignJustified
}

// ParseAlignment accepts the w:jc tokens and the common names for them
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "start", "left":
		return AlignStart, nil
	case "center", "centre":
		return AlignCenter, nil
	case "end", "right":
		return AlignEnd, nil
	case "both", "justify", "justified":
		return AlignJustified, nil
	}
	return AlignStart, NewInvalidArgumentError("alignment", s, "expected start, center, end or justified")
}

// Paragraph is an ordered sequence of runs with paragraph level formatting.
// The zero value is an empty, start-aligned Normal paragraph.
type Paragraph struct {
	// Blank turns the paragraph into an empty line; its runs are ignored
	Blank bool
	// BlankSize is the height of a blank line as a font size in points.
	// Zero inherits the ambient size.
	BlankSize int
	Alignment Alignment
	// Style is a paragraph style ID from the styles part. Empty means Normal.
	Style string

	runs []Run
}

// AddRun appends a formatted run
func (p *Paragraph) AddRun(r Run) error {
	if err := r.validate(); err != nil {
		return err
	}
	p.runs = append(p.runs, r)
	return nil
}

// AddPlainText appends an unstyled run
func (p *Paragraph) AddPlainText(text string) {
	p.runs = append(p.runs, NewRun(text))
}

// AddSpace appends a run of count spaces that survives serialization
func (p *Paragraph) AddSpace(count int) error {
	if count < 1 {
		return NewInvalidArgumentError("count", count, "space count must be at least 1")
	}
	p.runs = append(p.runs, spaces(count))
	return nil
}

// AddBoldText appends a bold run
func (p *Paragraph) AddBoldText(text string) {
	r := NewRun(text)
	r.Bold = true
	p.runs = append(p.runs, r)
}

// AddItalicText appends an italic run
func (p *Paragraph) AddItalicText(text string) {
	r := NewRun(text)
	r.Italic = true
	p.runs = append(p.runs, r)
}

// AddUnderlinedText appends a single-underlined run
func (p *Paragraph) AddUnderlinedText(text string) {
	r := NewRun(text)
	r.Underline = true
	p.runs = append(p.runs, r)
}

// AddStruckthroughText appends a struck-through run
func (p *Paragraph) AddStruckthroughText(text string) {
	r := NewRun(text)
	r.Strikethrough = true
	p.runs = append(p.runs, r)
}

// Runs returns a copy of the paragraph's runs
func (p *Paragraph) Runs() []Run {
	return slices.Clone(p.runs)
}

// Text returns the concatenated text of all runs
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

func (p *Paragraph) validate() error {
	if err := checkSize("BlankSize", p.BlankSize); err != nil {
		return err
	}
	if !p.Alignment.valid() {
		return NewInvalidArgumentError("Alignment", int(p.Alignment), "unknown alignment")
	}
	if p.Blank {
		return nil
	}
	for _, r := range p.runs {
		if err := r.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p Paragraph) clone() Paragraph {
	p.runs = slices.Clone(p.runs)
	return p
}

func (p *Paragraph) style() string {
	if p.Style == "" {
		return parts.StyleNormal
	}
	return p.Style
}
