package parts

import (
	"strconv"

	"golang.org/x/text/language"

	"github.com/benjaminschreck/go-docx/pkg/docx/markup"
)

// CompatSetting is a w:compatSetting entry
type CompatSetting struct {
	Name  string
	Value string
}

// Settings is word/settings.xml
type Settings struct {
	ZoomPercent    int
	DefaultTabStop int
	AutoHyphenate  bool
	Compat         []CompatSetting
	Language       language.Tag
}

// DefaultSettings returns Word 2013+ compatibility settings
func DefaultSettings(lang language.Tag) Settings {
	return Settings{
		ZoomPercent:    100,
		DefaultTabStop: 709,
		AutoHyphenate:  true,
		Compat: []CompatSetting{
			{Name: "compatibilityMode", Value: "15"},
			{Name: "overrideTableStyleFontSizeAndJustification", Value: "1"},
			{Name: "enableOpenTypeFeatures", Value: "1"},
			{Name: "doNotFlipMirrorIndents", Value: "1"},
		},
		Language: lang,
	}
}

// Node renders the settings part
func (s Settings) Node() (*markup.Node, error) {
	var b markup.Builder
	settings := b.Elem("w:settings", markup.A("xmlns:w", NSWordprocessingML))
	b.Append(settings,
		b.Leaf("w:zoom", markup.A("w:percent", strconv.Itoa(s.ZoomPercent))),
		b.Leaf("w:defaultTabStop", markup.A("w:val", strconv.Itoa(s.DefaultTabStop))),
		b.Leaf("w:autoHyphenation", markup.A("w:val", strconv.FormatBool(s.AutoHyphenate))),
		b.Leaf("w:characterSpacingControl", markup.A("w:val", "doNotCompress")),
	)

	compat := b.Elem("w:compat")
	for _, c := range s.Compat {
		b.Append(compat, b.Leaf("w:compatSetting",
			markup.A("w:name", c.Name),
			markup.A("w:uri", NSWordCompat),
			markup.A("w:val", c.Value),
		))
	}
	b.Append(settings, compat)

	if s.Language != language.Und {
		b.Append(settings, b.Leaf("w:themeFontLang", markup.A("w:val", s.Language.String())))
	}
	return settings, b.Err()
}
