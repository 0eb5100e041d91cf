package parts

// Namespace URIs used across the parts
const (
	NSContentTypes       = "http://schemas.openxmlformats.org/package/2006/content-types"
	NSPackageRels        = "http://schemas.openxmlformats.org/package/2006/relationships"
	NSWordprocessingML   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	NSOfficeRels         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	NSDrawingML          = "http://schemas.openxmlformats.org/drawingml/2006/main"
	NSMarkupCompat       = "http://schemas.openxmlformats.org/markup-compatibility/2006"
	NSWord2010           = "http://schemas.microsoft.com/office/word/2010/wordml"
	NSExtendedProperties = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	NSDocPropsVTypes     = "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"
	NSCoreProperties     = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	NSDublinCore         = "http://purl.org/dc/elements/1.1/"
	NSDublinCoreTerms    = "http://purl.org/dc/terms/"
	NSDublinCoreTypes    = "http://purl.org/dc/dcmitype/"
	NSSchemaInstance     = "http://www.w3.org/2001/XMLSchema-instance"
	NSWordCompat         = "http://schemas.microsoft.com/office/word"
)

// Content types of the parts
const (
	ContentTypeRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ContentTypeXML           = "application/xml"
	ContentTypePNG           = "image/png"
	ContentTypeJPEG          = "image/jpeg"
	ContentTypeCore          = "application/vnd.openxmlformats-package.core-properties+xml"
	ContentTypeExtended      = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ContentTypeDocument      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ContentTypeStyles        = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ContentTypeFontTable     = "application/vnd.openxmlformats-officedocument.wordprocessingml.fontTable+xml"
	ContentTypeSettings      = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	ContentTypeTheme         = "application/vnd.openxmlformats-officedocument.theme+xml"
)

// Relationship types
const (
	RelTypeCoreProperties     = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RelTypeExtendedProperties = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	RelTypeOfficeDocument     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeStyles             = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	RelTypeFontTable          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/fontTable"
	RelTypeSettings           = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
	RelTypeTheme              = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
)
