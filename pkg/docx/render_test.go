package docx

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderRunString(t *testing.T, r Run, ambient int) string {
	t.Helper()
	n, err := RenderRun(r, ambient)
	require.NoError(t, err)
	return n.String()
}

func TestRenderRun(t *testing.T) {
	tests := []struct {
		name    string
		run     Run
		ambient int
		want    string
	}{
		{
			name:    "plain",
			run:     NewRun("Hello"),
			ambient: 12,
			want:    "<w:r><w:rPr></w:rPr><w:t>Hello</w:t></w:r>",
		},
		{
			name:    "zero size means default",
			run:     Run{Text: "x"},
			ambient: 12,
			want:    "<w:r><w:rPr></w:rPr><w:t>x</w:t></w:r>",
		},
		{
			name:    "bold",
			run:     Run{Text: "b", Bold: true},
			ambient: 12,
			want:    "<w:r><w:rPr><w:b/><w:bCs/></w:rPr><w:t>b</w:t></w:r>",
		},
		{
			name:    "italic",
			run:     Run{Text: "i", Italic: true},
			ambient: 12,
			want:    "<w:r><w:rPr><w:i/><w:iCs/></w:rPr><w:t>i</w:t></w:r>",
		},
		{
			name:    "underline",
			run:     Run{Text: "u", Underline: true},
			ambient: 12,
			want:    `<w:r><w:rPr><w:u w:val="single"/></w:rPr><w:t>u</w:t></w:r>`,
		},
		{
			name:    "strikethrough",
			run:     Run{Text: "s", Strikethrough: true},
			ambient: 12,
			want:    "<w:r><w:rPr><w:strike/></w:rPr><w:t>s</w:t></w:r>",
		},
		{
			name:    "size differs from ambient",
			run:     Run{Text: "big", FontSize: 20},
			ambient: 12,
			want:    `<w:r><w:rPr><w:sz w:val="40"/><w:szCs w:val="40"/></w:rPr><w:t>big</w:t></w:r>`,
		},
		{
			name:    "default size in a larger document",
			run:     NewRun("small"),
			ambient: 20,
			want:    `<w:r><w:rPr><w:sz w:val="24"/><w:szCs w:val="24"/></w:rPr><w:t>small</w:t></w:r>`,
		},
		{
			name:    "size equal to ambient",
			run:     Run{Text: "same", FontSize: 20},
			ambient: 20,
			want:    "<w:r><w:rPr></w:rPr><w:t>same</w:t></w:r>",
		},
		{
			name:    "preserved whitespace",
			run:     Run{Text: "  two  ", PreserveSpace: true},
			ambient: 12,
			want:    `<w:r><w:rPr></w:rPr><w:t xml:space="preserve">  two  </w:t></w:r>`,
		},
		{
			name:    "text is escaped",
			run:     NewRun(`a<b & "c"`),
			ambient: 12,
			want:    "<w:r><w:rPr></w:rPr><w:t>a&lt;b &amp; &#34;c&#34;</w:t></w:r>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderRunString(t, tt.run, tt.ambient))
		})
	}
}

func TestRenderRunFlagOrder(t *testing.T) {
	order := []string{"<w:sz ", "<w:b/>", "<w:i/>", "<w:u ", "<w:strike/>"}

	for mask := 0; mask < 16; mask++ {
		r := Run{
			Text:          "x",
			Bold:          mask&1 != 0,
			Italic:        mask&2 != 0,
			Underline:     mask&4 != 0,
			Strikethrough: mask&8 != 0,
			FontSize:      14,
		}
		t.Run(fmt.Sprintf("mask=%04b", mask), func(t *testing.T) {
			got := renderRunString(t, r, 12)
			want := []bool{true, r.Bold, r.Italic, r.Underline, r.Strikethrough}

			last := -1
			for i, token := range order {
				idx := strings.Index(got, token)
				if !want[i] {
					assert.Equal(t, -1, idx, "unexpected %s in %s", token, got)
					continue
				}
				require.NotEqual(t, -1, idx, "missing %s in %s", token, got)
				assert.Greater(t, idx, last, "%s out of order in %s", token, got)
				last = idx
			}
		})
	}
}

func TestRenderRunRejectsInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"negative", -1},
		{"one above the limit", MaxFontSize + 1},
		{"beyond w:sz", 5000},
		{"doubling overflows", math.MaxInt/2 + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := RenderRun(Run{Text: "x", FontSize: tt.size}, 12)
			assert.True(t, IsInvalidArgumentError(err), "size %d: %v", tt.size, err)
			assert.Nil(t, n)
		})
	}
}

func TestRenderRunLargestSize(t *testing.T) {
	got := renderRunString(t, Run{Text: "x", FontSize: MaxFontSize}, 12)
	assert.Contains(t, got, `<w:sz w:val="3276"/><w:szCs w:val="3276"/>`)
}

func TestRenderParagraph(t *testing.T) {
	const pPrNormal = `<w:pStyle w:val="Normal"/><w:bidi w:val="0"/>`

	tests := []struct {
		name  string
		build func(t *testing.T) Paragraph
		want  string
	}{
		{
			name:  "empty",
			build: func(t *testing.T) Paragraph { return Paragraph{} },
			want:  `<w:p><w:pPr>` + pPrNormal + `<w:jc w:val="start"/><w:rPr></w:rPr></w:pPr></w:p>`,
		},
		{
			name: "runs in insertion order",
			build: func(t *testing.T) Paragraph {
				var p Paragraph
				p.AddPlainText("a")
				p.AddBoldText("b")
				return p
			},
			want: `<w:p><w:pPr>` + pPrNormal + `<w:jc w:val="start"/><w:rPr></w:rPr></w:pPr>` +
				`<w:r><w:rPr></w:rPr><w:t>a</w:t></w:r>` +
				`<w:r><w:rPr><w:b/><w:bCs/></w:rPr><w:t>b</w:t></w:r></w:p>`,
		},
		{
			name: "centered",
			build: func(t *testing.T) Paragraph {
				return Paragraph{Alignment: AlignCenter}
			},
			want: `<w:p><w:pPr>` + pPrNormal + `<w:jc w:val="center"/><w:rPr></w:rPr></w:pPr></w:p>`,
		},
		{
			name: "style",
			build: func(t *testing.T) Paragraph {
				return Paragraph{Style: "Heading1", Alignment: AlignJustified}
			},
			want: `<w:p><w:pPr><w:pStyle w:val="Heading1"/><w:bidi w:val="0"/><w:jc w:val="both"/><w:rPr></w:rPr></w:pPr></w:p>`,
		},
		{
			name: "blank ignores runs",
			build: func(t *testing.T) Paragraph {
				p := Paragraph{Blank: true, Alignment: AlignEnd}
				p.AddPlainText("ignored")
				return p
			},
			want: `<w:p><w:pPr>` + pPrNormal + `<w:jc w:val="start"/><w:rPr></w:rPr></w:pPr><w:r><w:rPr></w:rPr></w:r></w:p>`,
		},
		{
			name: "blank with size",
			build: func(t *testing.T) Paragraph {
				return Paragraph{Blank: true, BlankSize: 18}
			},
			want: `<w:p><w:pPr>` + pPrNormal + `<w:jc w:val="start"/>` +
				`<w:rPr><w:sz w:val="36"/><w:szCs w:val="36"/></w:rPr></w:pPr>` +
				`<w:r><w:rPr><w:sz w:val="36"/><w:szCs w:val="36"/></w:rPr></w:r></w:p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := RenderParagraph(tt.build(t), 12)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.String())
		})
	}
}

func TestRenderParagraphRejectsInvalid(t *testing.T) {
	_, err := RenderParagraph(Paragraph{Alignment: Alignment(9)}, 12)
	assert.True(t, IsInvalidArgumentError(err))

	_, err = RenderParagraph(Paragraph{Blank: true, BlankSize: -2}, 12)
	assert.True(t, IsInvalidArgumentError(err))

	_, err = RenderParagraph(Paragraph{Blank: true, BlankSize: MaxFontSize + 1}, 12)
	assert.True(t, IsInvalidArgumentError(err))
}

func TestRenderParagraphBlankIgnoresRunSizes(t *testing.T) {
	p := Paragraph{Blank: true}
	p.runs = append(p.runs, Run{Text: "never rendered", FontSize: -5})

	n, err := RenderParagraph(p, 12)
	require.NoError(t, err)
	assert.NotContains(t, n.String(), "never rendered")

	doc := New()
	assert.NoError(t, doc.AddParagraph(p))
}

func TestDocumentRenderRejectsOversizedAmbient(t *testing.T) {
	doc := New()
	doc.AmbientFontSize = MaxFontSize + 1
	_, err := doc.Render()
	assert.True(t, IsInvalidArgumentError(err))
}

func helloWorld(t *testing.T) *Document {
	t.Helper()
	doc := New()
	var p Paragraph
	p.AddBoldText("Hello")
	require.NoError(t, p.AddSpace(1))
	p.AddItalicText("world")
	require.NoError(t, doc.AddParagraph(p))
	doc.AddBlankLine()
	return doc
}

func TestDocumentRender(t *testing.T) {
	root, err := helloWorld(t).Render()
	require.NoError(t, err)
	got := root.String()

	assert.True(t, strings.HasPrefix(got, `<w:document xmlns:o="urn:schemas-microsoft-com:office:office" xmlns:r=`))
	assert.Contains(t, got, `mc:Ignorable="w14 wp14 w15"><w:body><w:p>`)
	assert.Contains(t, got, `<w:r><w:rPr><w:b/><w:bCs/></w:rPr><w:t>Hello</w:t></w:r>`)
	assert.Contains(t, got, `<w:r><w:rPr></w:rPr><w:t xml:space="preserve"> </w:t></w:r>`)
	assert.Contains(t, got, `<w:r><w:rPr><w:i/><w:iCs/></w:rPr><w:t>world</w:t></w:r>`)
	assert.Equal(t, 2, strings.Count(got, "<w:p>"))
	assert.True(t, strings.HasSuffix(got, "</w:sectPr></w:body></w:document>"))
	assert.Contains(t, got, `<w:pgSz w:w="11906" w:h="16838"/>`)
	assert.Contains(t, got,
		`<w:pgMar w:top="1134" w:right="1134" w:bottom="1134" w:left="1134" w:header="0" w:footer="0" w:gutter="0"/>`)
}

func TestDocumentRenderEmpty(t *testing.T) {
	root, err := New().Render()
	require.NoError(t, err)
	assert.Contains(t, root.String(), "<w:body><w:sectPr>")
}

func TestDocumentRenderDeterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, helloWorld(t).Print(&first))
	require.NoError(t, helloWorld(t).Print(&second))
	if diff := cmp.Diff(first.String(), second.String()); diff != "" {
		t.Errorf("render differs (-first +second):\n%s", diff)
	}
	assert.True(t, strings.HasSuffix(first.String(), "</w:document>\n"))
}

func TestDocumentRenderCustomLayout(t *testing.T) {
	doc := New()
	doc.Layout = PageLayout{Width: 12240, Height: 15840, Margins: Margins{Top: 1440, Right: 1440, Bottom: 1440, Left: 1440, Header: 720, Footer: 720}}
	root, err := doc.Render()
	require.NoError(t, err)
	got := root.String()
	assert.Contains(t, got, `<w:pgSz w:w="12240" w:h="15840"/>`)
	assert.Contains(t, got, `w:header="720" w:footer="720" w:gutter="0"/>`)
}

func TestDocumentRenderAmbientSize(t *testing.T) {
	doc := New()
	doc.AmbientFontSize = 20

	var p Paragraph
	p.AddPlainText("default")
	require.NoError(t, p.AddRun(Run{Text: "ambient", FontSize: 20}))
	require.NoError(t, doc.AddParagraph(p))

	root, err := doc.Render()
	require.NoError(t, err)
	got := root.String()
	assert.Equal(t, 1, strings.Count(got, "<w:sz "))
	assert.Contains(t, got, `<w:sz w:val="24"/><w:szCs w:val="24"/></w:rPr><w:t>default</w:t>`)
}
