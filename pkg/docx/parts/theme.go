package parts

import (
	"strconv"

	"github.com/benjaminschreck/go-docx/pkg/docx/markup"
)

// ThemeColor is one slot of a colour scheme. System colours carry SysColor
// with Hex as the last computed value.
type ThemeColor struct {
	Slot     string
	Hex      string
	SysColor string
}

// FontScheme names the major (headings) and minor (body) theme fonts
type FontScheme struct {
	Name  string
	Major string
	Minor string
}

// Theme is word/theme/theme1.xml
type Theme struct {
	Name       string
	ColorName  string
	Colors     []ThemeColor
	Fonts      FontScheme
	FormatName string
	// LineWidths are the three line style widths in EMUs
	LineWidths [3]int
}

// DefaultTheme returns a minimal Office-compatible theme
func DefaultTheme() Theme {
	return Theme{
		Name:      "Office Theme",
		ColorName: "Office",
		Colors: []ThemeColor{
			{Slot: "dk1", Hex: "000000", SysColor: "windowText"},
			{Slot: "lt1", Hex: "FFFFFF", SysColor: "window"},
			{Slot: "dk2", Hex: "44546A"},
			{Slot: "lt2", Hex: "E7E6E6"},
			{Slot: "accent1", Hex: "4472C4"},
			{Slot: "accent2", Hex: "ED7D31"},
			{Slot: "accent3", Hex: "A5A5A5"},
			{Slot: "accent4", Hex: "FFC000"},
			{Slot: "accent5", Hex: "5B9BD5"},
			{Slot: "accent6", Hex: "70AD47"},
			{Slot: "hlink", Hex: "0563C1"},
			{Slot: "folHlink", Hex: "954F72"},
		},
		Fonts: FontScheme{
			Name:  "Office",
			Major: FontSans,
			Minor: FontSerif,
		},
		FormatName: "Office",
		LineWidths: [3]int{6350, 12700, 19050},
	}
}

// Node renders the theme part
func (t Theme) Node() (*markup.Node, error) {
	var b markup.Builder
	theme := b.Elem("a:theme",
		markup.A("xmlns:a", NSDrawingML),
		markup.A("name", t.Name),
	)

	clr := b.Elem("a:clrScheme", markup.A("name", t.ColorName))
	for _, c := range t.Colors {
		slot := b.Elem("a:" + c.Slot)
		if c.SysColor != "" {
			b.Append(slot, b.Leaf("a:sysClr", markup.A("val", c.SysColor), markup.A("lastClr", c.Hex)))
		} else {
			b.Append(slot, b.Leaf("a:srgbClr", markup.A("val", c.Hex)))
		}
		b.Append(clr, slot)
	}

	fonts := b.Append(b.Elem("a:fontScheme", markup.A("name", t.Fonts.Name)),
		themeFont(&b, "a:majorFont", t.Fonts.Major),
		themeFont(&b, "a:minorFont", t.Fonts.Minor),
	)

	placeholder := func() *markup.Node {
		return b.Append(b.Elem("a:solidFill"), b.Leaf("a:schemeClr", markup.A("val", "phClr")))
	}
	fills := b.Elem("a:fillStyleLst")
	bgFills := b.Elem("a:bgFillStyleLst")
	lines := b.Elem("a:lnStyleLst")
	effects := b.Elem("a:effectStyleLst")
	for _, w := range t.LineWidths {
		b.Append(fills, placeholder())
		b.Append(bgFills, placeholder())
		b.Append(lines, b.Append(b.Elem("a:ln",
			markup.A("w", strconv.Itoa(w)),
			markup.A("cap", "flat"),
			markup.A("cmpd", "sng"),
			markup.A("algn", "ctr"),
		),
			placeholder(),
			b.Leaf("a:prstDash", markup.A("val", "solid")),
			b.Leaf("a:miter", markup.A("lim", "800000")),
		))
		b.Append(effects, b.Append(b.Elem("a:effectStyle"), b.Elem("a:effectLst")))
	}
	format := b.Append(b.Elem("a:fmtScheme", markup.A("name", t.FormatName)),
		fills, lines, effects, bgFills,
	)

	b.Append(theme,
		b.Append(b.Elem("a:themeElements"), clr, fonts, format),
		b.Elem("a:objectDefaults"),
		b.Elem("a:extraClrSchemeLst"),
	)
	return theme, b.Err()
}

func themeFont(b *markup.Builder, tag, latin string) *markup.Node {
	return b.Append(b.Elem(tag),
		b.Leaf("a:latin", markup.A("typeface", latin)),
		b.Leaf("a:ea", markup.A("typeface", "")),
		b.Leaf("a:cs", markup.A("typeface", "")),
	)
}
