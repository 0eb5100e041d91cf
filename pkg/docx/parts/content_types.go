package parts

import "github.com/benjaminschreck/go-docx/pkg/docx/markup"

// Default maps a file extension to a content type
type Default struct {
	Extension   string
	ContentType string
}

// Override sets the content type of a single part
type Override struct {
	PartName    string
	ContentType string
}

// ContentTypes is the [Content_Types].xml manifest
type ContentTypes struct {
	Defaults  []Default
	Overrides []Override
}

// DefaultContentTypes returns the manifest for the fixed part set
func DefaultContentTypes() ContentTypes {
	return ContentTypes{
		Defaults: []Default{
			{Extension: "xml", ContentType: ContentTypeXML},
			{Extension: "rels", ContentType: ContentTypeRelationships},
			{Extension: "png", ContentType: ContentTypePNG},
			{Extension: "jpeg", ContentType: ContentTypeJPEG},
		},
		Overrides: []Override{
			{PartName: "/" + PathPackageRelationships, ContentType: ContentTypeRelationships},
			{PartName: "/" + PathCoreProperties, ContentType: ContentTypeCore},
			{PartName: "/" + PathAppProperties, ContentType: ContentTypeExtended},
			{PartName: "/" + PathDocumentRelationships, ContentType: ContentTypeRelationships},
			{PartName: "/" + PathDocument, ContentType: ContentTypeDocument},
			{PartName: "/" + PathStyles, ContentType: ContentTypeStyles},
			{PartName: "/" + PathFontTable, ContentType: ContentTypeFontTable},
			{PartName: "/" + PathSettings, ContentType: ContentTypeSettings},
			{PartName: "/" + PathTheme, ContentType: ContentTypeTheme},
		},
	}
}

// Node renders the manifest
func (c ContentTypes) Node() (*markup.Node, error) {
	var b markup.Builder
	types := b.Elem("Types", markup.A("xmlns", NSContentTypes))
	for _, d := range c.Defaults {
		b.Append(types, b.Leaf("Default",
			markup.A("Extension", d.Extension),
			markup.A("ContentType", d.ContentType),
		))
	}
	for _, o := range c.Overrides {
		b.Append(types, b.Leaf("Override",
			markup.A("PartName", o.PartName),
			markup.A("ContentType", o.ContentType),
		))
	}
	return types, b.Err()
}
