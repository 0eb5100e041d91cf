package docx

import (
	"fmt"
	"strings"

	"github.com/benjaminschreck/go-docx/pkg/docx/parts"
)

// DefaultFontSize is the font size in points of runs and documents that do
// not set one
const DefaultFontSize = parts.DefaultFontSize

// MaxFontSize is the largest size in points that fits w:sz (3276 half points)
const MaxFontSize = 1638

// Run is the smallest independently styled span of text in a paragraph.
// The style flags combine freely.
type Run struct {
	Text          string
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	// PreserveSpace keeps leading, trailing and repeated whitespace intact
	PreserveSpace bool
	// FontSize in points. Zero means DefaultFontSize.
	FontSize int
}

// NewRun creates an unstyled run of the default size
func NewRun(text string) Run {
	return Run{Text: text, FontSize: DefaultFontSize}
}

// Size returns the effective font size in points
func (r Run) Size() int {
	if r.FontSize == 0 {
		return DefaultFontSize
	}
	return r.FontSize
}

func (r Run) validate() error {
	return checkSize("FontSize", r.FontSize)
}

// checkSize accepts zero (inherit) and sizes up to MaxFontSize
func checkSize(argument string, size int) error {
	if size < 0 {
		return NewInvalidArgumentError(argument, size, "font size cannot be negative")
	}
	if size > MaxFontSize {
		return NewInvalidArgumentError(argument, size, fmt.Sprintf("font size cannot exceed %d", MaxFontSize))
	}
	return nil
}

// spaces returns a whitespace-preserving run of count spaces
func spaces(count int) Run {
	r := NewRun(strings.Repeat(" ", count))
	r.PreserveSpace = true
	return r
}
