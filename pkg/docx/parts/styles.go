package parts

import (
	"strconv"

	"golang.org/x/text/language"

	"github.com/benjaminschreck/go-docx/pkg/docx/markup"
)

// Paragraph style IDs
const (
	StyleNormal   = "Normal"
	StyleHeading  = "Heading"
	StyleHeading1 = "Heading1"
	StyleHeading2 = "Heading2"
	StyleHeading3 = "Heading3"
	StyleBodyText = "BodyText"
	StyleList     = "List"
	StyleCaption  = "Caption"
	StyleIndex    = "Index"
)

// Spacing is paragraph spacing in twentieths of a point
type Spacing struct {
	Before   int
	After    int
	Line     int
	LineRule string
}

// ParagraphFormat holds the paragraph properties a style sets
type ParagraphFormat struct {
	KeepNext            bool
	WidowControl        bool
	SuppressLineNumbers bool
	Spacing             *Spacing
	Justification       string
	// OutlineLevel is zero based; -1 leaves it unset
	OutlineLevel int
}

// RunFormat holds the run properties a style sets
type RunFormat struct {
	Font   string
	Bold   bool
	Italic bool
	// HalfPoints is the font size in half points, 0 inherits
	HalfPoints int
}

// StyleDef is one paragraph style
type StyleDef struct {
	ID        string
	Name      string
	BasedOn   string
	Next      string
	QFormat   bool
	Paragraph ParagraphFormat
	Run       RunFormat
}

// Styles is word/styles.xml
type Styles struct {
	// FontSize is the ambient size in points
	FontSize int
	Language language.Tag
	Styles   []StyleDef
}

func noOutline(f ParagraphFormat) ParagraphFormat {
	f.OutlineLevel = -1
	return f
}

func heading(id, name string, level, before, halfPoints int) StyleDef {
	return StyleDef{
		ID:      id,
		Name:    name,
		BasedOn: StyleHeading,
		Next:    StyleBodyText,
		QFormat: true,
		Paragraph: ParagraphFormat{
			Spacing:      &Spacing{Before: before, After: 120},
			OutlineLevel: level,
		},
		Run: RunFormat{Bold: true, HalfPoints: halfPoints},
	}
}

// DefaultStyles returns the paragraph style hierarchy. Normal uses the
// ambient font size so runs without an explicit size render at that size.
func DefaultStyles(fontSize int, lang language.Tag) Styles {
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}
	return Styles{
		FontSize: fontSize,
		Language: lang,
		Styles: []StyleDef{
			{
				ID:        StyleNormal,
				Name:      "Normal",
				QFormat:   true,
				Paragraph: noOutline(ParagraphFormat{WidowControl: true, Justification: "start"}),
				Run:       RunFormat{Font: FontSerif, HalfPoints: 2 * fontSize},
			},
			{
				ID:        StyleHeading,
				Name:      "Heading",
				BasedOn:   StyleNormal,
				Next:      StyleBodyText,
				QFormat:   true,
				Paragraph: noOutline(ParagraphFormat{KeepNext: true, Spacing: &Spacing{Before: 240, After: 120}}),
				Run:       RunFormat{Font: FontSans, HalfPoints: 28},
			},
			heading(StyleHeading1, "heading 1", 0, 240, 36),
			heading(StyleHeading2, "heading 2", 1, 200, 32),
			heading(StyleHeading3, "heading 3", 2, 140, 28),
			{
				ID:        StyleBodyText,
				Name:      "Body Text",
				BasedOn:   StyleNormal,
				Paragraph: noOutline(ParagraphFormat{Spacing: &Spacing{Before: 0, After: 140, Line: 276, LineRule: "auto"}}),
			},
			{
				ID:        StyleList,
				Name:      "List",
				BasedOn:   StyleBodyText,
				Paragraph: noOutline(ParagraphFormat{}),
			},
			{
				ID:        StyleCaption,
				Name:      "caption",
				BasedOn:   StyleNormal,
				QFormat:   true,
				Paragraph: noOutline(ParagraphFormat{SuppressLineNumbers: true, Spacing: &Spacing{Before: 120, After: 120}}),
				Run:       RunFormat{Italic: true, HalfPoints: 24},
			},
			{
				ID:        StyleIndex,
				Name:      "Index",
				BasedOn:   StyleNormal,
				QFormat:   true,
				Paragraph: noOutline(ParagraphFormat{SuppressLineNumbers: true}),
			},
		},
	}
}

// Lookup returns the style with the given ID
func (s Styles) Lookup(id string) (StyleDef, bool) {
	for _, st := range s.Styles {
		if st.ID == id {
			return st, true
		}
	}
	return StyleDef{}, false
}

// Node renders the styles part
func (s Styles) Node() (*markup.Node, error) {
	var b markup.Builder
	styles := b.Elem("w:styles",
		markup.A("xmlns:w", NSWordprocessingML),
		markup.A("xmlns:w14", NSWord2010),
		markup.A("xmlns:mc", NSMarkupCompat),
		markup.A("mc:Ignorable", "w14"),
	)

	size := strconv.Itoa(2 * s.FontSize)
	defaultRun := b.Append(b.Elem("w:rPr"),
		fontsNode(&b, FontSerif),
		b.Leaf("w:kern", markup.A("w:val", "2")),
		b.Leaf("w:sz", markup.A("w:val", size)),
		b.Leaf("w:szCs", markup.A("w:val", size)),
	)
	if s.Language != language.Und {
		b.Append(defaultRun, b.Leaf("w:lang", markup.A("w:val", s.Language.String())))
	}
	b.Append(styles, b.Append(b.Elem("w:docDefaults"),
		b.Append(b.Elem("w:rPrDefault"), defaultRun),
		b.Append(b.Elem("w:pPrDefault"), b.Append(b.Elem("w:pPr"),
			b.Leaf("w:suppressAutoHyphens", markup.A("w:val", "true")),
		)),
	))

	for _, st := range s.Styles {
		b.Append(styles, styleNode(&b, st))
	}
	return styles, b.Err()
}

func fontsNode(b *markup.Builder, font string) *markup.Node {
	return b.Leaf("w:rFonts",
		markup.A("w:ascii", font),
		markup.A("w:hAnsi", font),
		markup.A("w:eastAsia", font),
		markup.A("w:cs", font),
	)
}

func styleNode(b *markup.Builder, st StyleDef) *markup.Node {
	n := b.Elem("w:style",
		markup.A("w:type", "paragraph"),
		markup.A("w:styleId", st.ID),
	)
	b.Append(n, b.Leaf("w:name", markup.A("w:val", st.Name)))
	if st.BasedOn != "" {
		b.Append(n, b.Leaf("w:basedOn", markup.A("w:val", st.BasedOn)))
	}
	if st.Next != "" {
		b.Append(n, b.Leaf("w:next", markup.A("w:val", st.Next)))
	}
	if st.QFormat {
		b.Append(n, b.Leaf("w:qFormat"))
	}

	// children follow the CT_PPrBase sequence
	pf := st.Paragraph
	pPr := b.Elem("w:pPr")
	if pf.KeepNext {
		b.Append(pPr, b.Leaf("w:keepNext", markup.A("w:val", "true")))
	}
	if pf.WidowControl {
		b.Append(pPr, b.Leaf("w:widowControl"))
	}
	if pf.SuppressLineNumbers {
		b.Append(pPr, b.Leaf("w:suppressLineNumbers"))
	}
	if sp := pf.Spacing; sp != nil {
		attrs := []markup.Attr{}
		if sp.LineRule != "" {
			attrs = append(attrs, markup.A("w:lineRule", sp.LineRule), markup.A("w:line", strconv.Itoa(sp.Line)))
		}
		attrs = append(attrs,
			markup.A("w:before", strconv.Itoa(sp.Before)),
			markup.A("w:after", strconv.Itoa(sp.After)),
		)
		b.Append(pPr, b.Leaf("w:spacing", attrs...))
	}
	if pf.Justification != "" {
		b.Append(pPr, b.Leaf("w:jc", markup.A("w:val", pf.Justification)))
	}
	if pf.OutlineLevel >= 0 {
		b.Append(pPr, b.Leaf("w:outlineLvl", markup.A("w:val", strconv.Itoa(pf.OutlineLevel))))
	}
	b.Append(n, pPr)

	rf := st.Run
	rPr := b.Elem("w:rPr")
	if rf.Font != "" {
		b.Append(rPr, fontsNode(b, rf.Font))
	}
	if rf.Bold {
		b.Append(rPr, b.Leaf("w:b"), b.Leaf("w:bCs"))
	}
	if rf.Italic {
		b.Append(rPr, b.Leaf("w:i"), b.Leaf("w:iCs"))
	}
	if rf.HalfPoints > 0 {
		size := strconv.Itoa(rf.HalfPoints)
		b.Append(rPr,
			b.Leaf("w:sz", markup.A("w:val", size)),
			b.Leaf("w:szCs", markup.A("w:val", size)),
		)
	}
	b.Append(n, rPr)
	return n
}
