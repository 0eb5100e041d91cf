// Package parts contains the fixed library of auxiliary parts that every DOCX
// package produced by go-docx carries next to word/document.xml.
//
// A DOCX file is a ZIP archive whose parts reference each other by fixed paths
// and relationship IDs. The parts here are independent of document content:
//
//   - content_types.go: [Content_Types].xml, default and override content types
//   - relationships.go: _rels/.rels and word/_rels/document.xml.rels
//   - properties.go: docProps/app.xml and docProps/core.xml
//   - fonts.go: word/fontTable.xml
//   - settings.go: word/settings.xml
//   - styles.go: word/styles.xml with the paragraph style hierarchy
//   - theme.go: word/theme/theme1.xml
//
// Each part is described by a small typed shape (ContentTypes, Relationships,
// Styles, ...) with a Node method that renders it to a markup tree. Catalogue
// renders the complete set with their package paths.
package parts
