package parts

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/benjaminschreck/go-docx/pkg/docx/markup"
)

// wellFormed walks every token of s and fails on the first syntax error
func wellFormed(t *testing.T, s string) {
	t.Helper()
	d := xml.NewDecoder(strings.NewReader(s))
	for {
		_, err := d.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		require.NoError(t, err, "markup is not well-formed:\n%s", s)
	}
}

var fixedTime = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func TestCatalogue(t *testing.T) {
	catalogue, err := Catalogue(Options{Created: fixedTime})
	require.NoError(t, err)

	var paths []string
	for _, p := range catalogue {
		paths = append(paths, p.Path)
		t.Run(p.Path, func(t *testing.T) {
			wellFormed(t, markup.Declaration+p.Node.String())
		})
	}

	want := []string{
		PathContentTypes,
		PathPackageRelationships,
		PathAppProperties,
		PathCoreProperties,
		PathFontTable,
		PathSettings,
		PathStyles,
		PathDocumentRelationships,
		PathTheme,
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("catalogue paths mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, Paths, 10)
	assert.Contains(t, Paths, PathDocument)
}

func TestCatalogueIsDeterministic(t *testing.T) {
	opts := Options{Created: fixedTime, Creator: "docs", Title: "Report"}
	first, err := Catalogue(opts)
	require.NoError(t, err)
	second, err := Catalogue(opts)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Node.String(), second[i].Node.String(), first[i].Path)
	}
}

func TestContentTypesCoverEveryPart(t *testing.T) {
	ct := DefaultContentTypes()

	overrides := map[string]string{}
	for _, o := range ct.Overrides {
		overrides[o.PartName] = o.ContentType
	}
	for _, path := range Paths {
		if path == PathContentTypes {
			continue
		}
		assert.Contains(t, overrides, "/"+path)
	}
	assert.Equal(t, ContentTypeDocument, overrides["/word/document.xml"])

	var extensions []string
	for _, d := range ct.Defaults {
		extensions = append(extensions, d.Extension)
	}
	assert.Equal(t, []string{"xml", "rels", "png", "jpeg"}, extensions)

	node, err := ct.Node()
	require.NoError(t, err)
	s := node.String()
	assert.True(t, strings.HasPrefix(s, `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/>`))
	assert.Contains(t, s, `<Override PartName="/word/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
}

func TestRelationships(t *testing.T) {
	tests := []struct {
		name string
		rels Relationships
		want map[string]string
	}{
		{
			name: "package",
			rels: PackageRelationships(),
			want: map[string]string{
				"rId1": "docProps/core.xml",
				"rId2": "docProps/app.xml",
				"rId3": "word/document.xml",
			},
		},
		{
			name: "document",
			rels: DocumentRelationships(),
			want: map[string]string{
				"rId1": "styles.xml",
				"rId2": "fontTable.xml",
				"rId3": "settings.xml",
				"rId4": "theme/theme1.xml",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.rels.Relationships, len(tt.want))
			for id, target := range tt.want {
				rel, ok := tt.rels.Find(id)
				require.True(t, ok, id)
				assert.Equal(t, target, rel.Target)
			}
			_, ok := tt.rels.Find("rId99")
			assert.False(t, ok)

			node, err := tt.rels.Node()
			require.NoError(t, err)
			wellFormed(t, node.String())
			assert.Len(t, node.Children(), len(tt.want))
		})
	}

	rel, _ := PackageRelationships().Find("rId3")
	assert.Equal(t, RelTypeOfficeDocument, rel.Type)
	rel, _ = DocumentRelationships().Find("rId4")
	assert.Equal(t, RelTypeTheme, rel.Type)
}

func TestCoreProperties(t *testing.T) {
	props := NewCoreProperties(Options{
		Creator:  "Ada & co",
		Title:    "Quarterly <report>",
		Language: language.BritishEnglish,
		Created:  fixedTime,
		Modified: fixedTime.Add(time.Hour),
	})
	node, err := props.Node()
	require.NoError(t, err)
	s := node.String()

	assert.Contains(t, s, `<dc:title>Quarterly &lt;report&gt;</dc:title>`)
	assert.Contains(t, s, `<dc:creator>Ada &amp; co</dc:creator>`)
	assert.Contains(t, s, `<dcterms:created xsi:type="dcterms:W3CDTF">2024-03-01T09:30:00Z</dcterms:created>`)
	assert.Contains(t, s, `<dcterms:modified xsi:type="dcterms:W3CDTF">2024-03-01T10:30:00Z</dcterms:modified>`)
	assert.Contains(t, s, `<dc:language>en-GB</dc:language>`)
	assert.Contains(t, s, `<cp:revision>1</cp:revision>`)
}

func TestCorePropertiesDefaults(t *testing.T) {
	props := NewCoreProperties(Options{Created: fixedTime})
	assert.Equal(t, "en-US", props.Language)
	assert.Equal(t, fixedTime, props.Modified)

	node, err := props.Node()
	require.NoError(t, err)
	assert.NotContains(t, node.String(), "dc:creator")
	assert.NotContains(t, node.String(), "dc:title")
}

func TestCoreTimestampsAreUTC(t *testing.T) {
	zone := time.FixedZone("CET", 3600)
	props := NewCoreProperties(Options{Created: time.Date(2024, 3, 1, 10, 30, 0, 0, zone)})
	node, err := props.Node()
	require.NoError(t, err)
	assert.Contains(t, node.String(), ">2024-03-01T09:30:00Z<")
}

func TestStylesHierarchy(t *testing.T) {
	styles := DefaultStyles(12, language.AmericanEnglish)

	parents := map[string]string{
		StyleNormal:   "",
		StyleHeading:  StyleNormal,
		StyleHeading1: StyleHeading,
		StyleHeading2: StyleHeading,
		StyleHeading3: StyleHeading,
		StyleBodyText: StyleNormal,
		StyleList:     StyleBodyText,
		StyleCaption:  StyleNormal,
		StyleIndex:    StyleNormal,
	}
	for id, parent := range parents {
		st, ok := styles.Lookup(id)
		require.True(t, ok, id)
		assert.Equal(t, parent, st.BasedOn, id)
		if parent != "" {
			_, ok := styles.Lookup(parent)
			assert.True(t, ok, "parent %s of %s is declared", parent, id)
		}
	}

	normal, _ := styles.Lookup(StyleNormal)
	assert.Equal(t, 24, normal.Run.HalfPoints)
}

func TestStylesNode(t *testing.T) {
	tests := []struct {
		name     string
		fontSize int
		want     []string
	}{
		{
			name:     "default size",
			fontSize: 12,
			want: []string{
				`<w:sz w:val="24"/><w:szCs w:val="24"/><w:lang w:val="en-US"/>`,
				`<w:style w:type="paragraph" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/><w:pPr><w:widowControl/><w:jc w:val="start"/></w:pPr>`,
				`<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Heading"/><w:next w:val="BodyText"/><w:qFormat/><w:pPr><w:spacing w:before="240" w:after="120"/><w:outlineLvl w:val="0"/></w:pPr><w:rPr><w:b/><w:bCs/><w:sz w:val="36"/><w:szCs w:val="36"/></w:rPr></w:style>`,
				`<w:spacing w:lineRule="auto" w:line="276" w:before="0" w:after="140"/>`,
			},
		},
		{
			name:     "ambient size follows document",
			fontSize: 11,
			want:     []string{`<w:sz w:val="22"/><w:szCs w:val="22"/>`},
		},
		{
			name:     "non-positive size falls back to default",
			fontSize: 0,
			want:     []string{`<w:sz w:val="24"/>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := DefaultStyles(tt.fontSize, language.AmericanEnglish).Node()
			require.NoError(t, err)
			s := node.String()
			wellFormed(t, s)
			for _, w := range tt.want {
				assert.Contains(t, s, w)
			}
		})
	}
}

func TestFontTable(t *testing.T) {
	node, err := DefaultFontTable().Node()
	require.NoError(t, err)
	s := node.String()

	assert.Contains(t, s, `<w:font w:name="Times New Roman"><w:charset w:val="00"/><w:family w:val="roman"/><w:pitch w:val="variable"/></w:font>`)
	assert.Contains(t, s, `<w:font w:name="Liberation Sans"><w:altName w:val="Arial"/><w:charset w:val="01"/><w:family w:val="swiss"/><w:pitch w:val="variable"/></w:font>`)

	// every font used by the styles is declared
	declared := map[string]bool{}
	for _, f := range DefaultFontTable().Fonts {
		declared[f.Name] = true
	}
	for _, st := range DefaultStyles(12, language.Und).Styles {
		if st.Run.Font != "" {
			assert.True(t, declared[st.Run.Font], st.Run.Font)
		}
	}
}

func TestSettings(t *testing.T) {
	node, err := DefaultSettings(language.German).Node()
	require.NoError(t, err)
	s := node.String()

	assert.Contains(t, s, `<w:compatSetting w:name="compatibilityMode" w:uri="http://schemas.microsoft.com/office/word" w:val="15"/>`)
	assert.True(t, strings.HasSuffix(s, `</w:compat><w:themeFontLang w:val="de"/></w:settings>`))

	node, err = DefaultSettings(language.Und).Node()
	require.NoError(t, err)
	assert.NotContains(t, node.String(), "themeFontLang")
}

func TestTheme(t *testing.T) {
	theme := DefaultTheme()
	node, err := theme.Node()
	require.NoError(t, err)
	s := node.String()
	wellFormed(t, s)

	assert.Contains(t, s, `<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>`)
	assert.Contains(t, s, `<a:accent1><a:srgbClr val="4472C4"/></a:accent1>`)
	assert.Contains(t, s, `<a:majorFont><a:latin typeface="Liberation Sans"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>`)
	assert.Equal(t, 3, strings.Count(s, "<a:effectStyle>"))
	assert.Equal(t, 3, strings.Count(s, "<a:ln "))
	assert.Len(t, theme.Colors, 12)
}

func TestAppProperties(t *testing.T) {
	node, err := DefaultAppProperties().Node()
	require.NoError(t, err)
	s := node.String()
	assert.Contains(t, s, `<Template></Template><TotalTime>0</TotalTime><Application>go-docx</Application><Pages>1</Pages>`)
}
