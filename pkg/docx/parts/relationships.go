package parts

import "github.com/benjaminschreck/go-docx/pkg/docx/markup"

// Relationship is a typed link from one part to another
type Relationship struct {
	ID     string
	Type   string
	Target string
}

// Relationships is the content of a .rels part
type Relationships struct {
	Relationships []Relationship
}

// PackageRelationships returns _rels/.rels. Targets are relative to the
// package root.
func PackageRelationships() Relationships {
	return Relationships{Relationships: []Relationship{
		{ID: "rId1", Type: RelTypeCoreProperties, Target: PathCoreProperties},
		{ID: "rId2", Type: RelTypeExtendedProperties, Target: PathAppProperties},
		{ID: "rId3", Type: RelTypeOfficeDocument, Target: PathDocument},
	}}
}

// DocumentRelationships returns word/_rels/document.xml.rels. Targets are
// relative to the word directory.
func DocumentRelationships() Relationships {
	return Relationships{Relationships: []Relationship{
		{ID: "rId1", Type: RelTypeStyles, Target: "styles.xml"},
		{ID: "rId2", Type: RelTypeFontTable, Target: "fontTable.xml"},
		{ID: "rId3", Type: RelTypeSettings, Target: "settings.xml"},
		{ID: "rId4", Type: RelTypeTheme, Target: "theme/theme1.xml"},
	}}
}

// Find returns the relationship with the given ID
func (r Relationships) Find(id string) (Relationship, bool) {
	for _, rel := range r.Relationships {
		if rel.ID == id {
			return rel, true
		}
	}
	return Relationship{}, false
}

// Node renders the relationships part
func (r Relationships) Node() (*markup.Node, error) {
	var b markup.Builder
	root := b.Elem("Relationships", markup.A("xmlns", NSPackageRels))
	for _, rel := range r.Relationships {
		b.Append(root, b.Leaf("Relationship",
			markup.A("Id", rel.ID),
			markup.A("Type", rel.Type),
			markup.A("Target", rel.Target),
		))
	}
	return root, b.Err()
}
