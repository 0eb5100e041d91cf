package parts

import "github.com/benjaminschreck/go-docx/pkg/docx/markup"

// Font families used by the default styles
const (
	FontSerif = "Liberation Serif"
	FontSans  = "Liberation Sans"
)

// Font is one w:font declaration of the font table
type Font struct {
	Name    string
	AltName string
	Charset string
	Family  string
	Pitch   string
}

// FontTable is word/fontTable.xml
type FontTable struct {
	Fonts []Font
}

// DefaultFontTable declares the fonts referenced by the styles and theme
func DefaultFontTable() FontTable {
	return FontTable{Fonts: []Font{
		{Name: "Times New Roman", Charset: "00", Family: "roman", Pitch: "variable"},
		{Name: "Symbol", Charset: "02", Family: "roman", Pitch: "variable"},
		{Name: "Arial", Charset: "00", Family: "swiss", Pitch: "variable"},
		{Name: FontSerif, AltName: "Times New Roman", Charset: "01", Family: "roman", Pitch: "variable"},
		{Name: FontSans, AltName: "Arial", Charset: "01", Family: "swiss", Pitch: "variable"},
	}}
}

// Node renders the font table
func (f FontTable) Node() (*markup.Node, error) {
	var b markup.Builder
	fonts := b.Elem("w:fonts",
		markup.A("xmlns:w", NSWordprocessingML),
		markup.A("xmlns:r", NSOfficeRels),
	)
	for _, font := range f.Fonts {
		n := b.Elem("w:font", markup.A("w:name", font.Name))
		if font.AltName != "" {
			b.Append(n, b.Leaf("w:altName", markup.A("w:val", font.AltName)))
		}
		b.Append(n,
			b.Leaf("w:charset", markup.A("w:val", font.Charset)),
			b.Leaf("w:family", markup.A("w:val", font.Family)),
			b.Leaf("w:pitch", markup.A("w:val", font.Pitch)),
		)
		b.Append(fonts, n)
	}
	return fonts, b.Err()
}
