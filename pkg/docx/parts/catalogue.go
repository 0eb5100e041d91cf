package parts

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/benjaminschreck/go-docx/pkg/docx/markup"
)

// Package part paths, relative to the package root
const (
	PathContentTypes          = "[Content_Types].xml"
	PathPackageRelationships  = "_rels/.rels"
	PathAppProperties         = "docProps/app.xml"
	PathCoreProperties        = "docProps/core.xml"
	PathDocument              = "word/document.xml"
	PathFontTable             = "word/fontTable.xml"
	PathSettings              = "word/settings.xml"
	PathStyles                = "word/styles.xml"
	PathDocumentRelationships = "word/_rels/document.xml.rels"
	PathTheme                 = "word/theme/theme1.xml"
)

// Paths lists every part of a package in the order they are staged
var Paths = []string{
	PathContentTypes,
	PathPackageRelationships,
	PathAppProperties,
	PathCoreProperties,
	PathDocument,
	PathFontTable,
	PathSettings,
	PathStyles,
	PathDocumentRelationships,
	PathTheme,
}

// Directories lists the staging skeleton, parents before children
var Directories = []string{
	"_rels",
	"docProps",
	"word",
	"word/_rels",
	"word/theme",
}

// DefaultFontSize is the ambient font size in points
const DefaultFontSize = 12

// DefaultLanguage is used when Options.Language is the zero tag
var DefaultLanguage = language.AmericanEnglish

// Part is one rendered part of the package
type Part struct {
	Path string
	Node *markup.Node
}

// Options carries the few values the static parts depend on
type Options struct {
	// FontSize is the ambient font size in points, used by the Normal style
	FontSize int
	// Language is written to core properties, styles and settings
	Language language.Tag
	Creator  string
	Title    string
	// Created and Modified default to the current time
	Created  time.Time
	Modified time.Time
}

func (o Options) withDefaults() Options {
	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
	if o.Language == language.Und {
		o.Language = DefaultLanguage
	}
	if o.Created.IsZero() {
		o.Created = time.Now()
	}
	if o.Modified.IsZero() {
		o.Modified = o.Created
	}
	return o
}

// Catalogue renders every auxiliary part. The main document part is not
// included; it is rendered from the document model.
func Catalogue(opts Options) ([]Part, error) {
	opts = opts.withDefaults()
	if opts.FontSize < 0 {
		return nil, fmt.Errorf("invalid font size %d", opts.FontSize)
	}

	generators := []struct {
		path string
		node func() (*markup.Node, error)
	}{
		{PathContentTypes, DefaultContentTypes().Node},
		{PathPackageRelationships, PackageRelationships().Node},
		{PathAppProperties, DefaultAppProperties().Node},
		{PathCoreProperties, NewCoreProperties(opts).Node},
		{PathFontTable, DefaultFontTable().Node},
		{PathSettings, DefaultSettings(opts.Language).Node},
		{PathStyles, DefaultStyles(opts.FontSize, opts.Language).Node},
		{PathDocumentRelationships, DocumentRelationships().Node},
		{PathTheme, DefaultTheme().Node},
	}

	result := make([]Part, 0, len(generators))
	for _, g := range generators {
		node, err := g.node()
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", g.path, err)
		}
		result = append(result, Part{Path: g.path, Node: node})
	}
	return result, nil
}
