package parts

import (
	"strconv"
	"time"

	"github.com/benjaminschreck/go-docx/pkg/docx/markup"
)

// Application is written to docProps/app.xml
const Application = "go-docx"

// AppProperties is docProps/app.xml. The values are placeholders; consumers
// recompute statistics when the document is opened.
type AppProperties struct {
	Template    string
	TotalTime   int
	Application string
	Pages       int
	DocSecurity int
}

// DefaultAppProperties returns the static extended properties
func DefaultAppProperties() AppProperties {
	return AppProperties{
		Application: Application,
		Pages:       1,
	}
}

// Node renders docProps/app.xml
func (p AppProperties) Node() (*markup.Node, error) {
	var b markup.Builder
	props := b.Elem("Properties",
		markup.A("xmlns", NSExtendedProperties),
		markup.A("xmlns:vt", NSDocPropsVTypes),
	)
	b.Append(props,
		b.TextElem("Template", p.Template),
		b.TextElem("TotalTime", strconv.Itoa(p.TotalTime)),
		b.TextElem("Application", p.Application),
		b.TextElem("Pages", strconv.Itoa(p.Pages)),
		b.TextElem("DocSecurity", strconv.Itoa(p.DocSecurity)),
		b.TextElem("ScaleCrop", "false"),
		b.TextElem("LinksUpToDate", "false"),
		b.TextElem("SharedDoc", "false"),
		b.TextElem("HyperlinksChanged", "false"),
	)
	return props, b.Err()
}

// W3CDTF is the timestamp layout used by dcterms:created and dcterms:modified
const W3CDTF = "2006-01-02T15:04:05Z"

// CoreProperties is docProps/core.xml
type CoreProperties struct {
	Title    string
	Creator  string
	Language string
	Revision int
	Created  time.Time
	Modified time.Time
}

// NewCoreProperties returns core properties for the given options
func NewCoreProperties(opts Options) CoreProperties {
	opts = opts.withDefaults()
	return CoreProperties{
		Title:    opts.Title,
		Creator:  opts.Creator,
		Language: opts.Language.String(),
		Revision: 1,
		Created:  opts.Created,
		Modified: opts.Modified,
	}
}

// Node renders docProps/core.xml. Timestamps are written in UTC.
func (p CoreProperties) Node() (*markup.Node, error) {
	var b markup.Builder
	props := b.Elem("cp:coreProperties",
		markup.A("xmlns:cp", NSCoreProperties),
		markup.A("xmlns:dc", NSDublinCore),
		markup.A("xmlns:dcterms", NSDublinCoreTerms),
		markup.A("xmlns:dcmitype", NSDublinCoreTypes),
		markup.A("xmlns:xsi", NSSchemaInstance),
	)
	if p.Title != "" {
		b.Append(props, b.TextElem("dc:title", p.Title))
	}
	if p.Creator != "" {
		b.Append(props, b.TextElem("dc:creator", p.Creator))
	}
	b.Append(props,
		b.TextElem("dcterms:created", p.Created.UTC().Format(W3CDTF), markup.A("xsi:type", "dcterms:W3CDTF")),
	)
	if p.Language != "" {
		b.Append(props, b.TextElem("dc:language", p.Language))
	}
	if p.Creator != "" {
		b.Append(props, b.TextElem("cp:lastModifiedBy", p.Creator))
	}
	b.Append(props,
		b.TextElem("dcterms:modified", p.Modified.UTC().Format(W3CDTF), markup.A("xsi:type", "dcterms:W3CDTF")),
		b.TextElem("cp:revision", strconv.Itoa(p.Revision)),
	)
	return props, b.Err()
}
