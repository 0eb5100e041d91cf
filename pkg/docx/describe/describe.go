// Package describe loads documents from a YAML description.
//
//	font_size: 12
//	paragraphs:
//	  - style: Heading1
//	    align: center
//	    runs:
//	      - text: Title
//	        bold: true
//	  - blank: true
//	    blank_size: 8
//	  - runs:
//	      - text: "Written by ${USER}"
//
// Environment variables in the description are expanded before parsing.
// Unknown keys are rejected.
package describe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/benjaminschreck/go-docx/pkg/docx"
)

// Description is the YAML form of a document
type Description struct {
	FontSize   int                    `yaml:"font_size,omitempty"`
	Paragraphs []ParagraphDescription `yaml:"paragraphs"`
}

// ParagraphDescription is the YAML form of a paragraph
type ParagraphDescription struct {
	Style     string           `yaml:"style,omitempty"`
	Align     string           `yaml:"align,omitempty"`
	Blank     bool             `yaml:"blank,omitempty"`
	BlankSize int              `yaml:"blank_size,omitempty"`
	Runs      []RunDescription `yaml:"runs,omitempty"`
}

// RunDescription is the YAML form of a run
type RunDescription struct {
	Text          string `yaml:"text"`
	Bold          bool   `yaml:"bold,omitempty"`
	Italic        bool   `yaml:"italic,omitempty"`
	Underline     bool   `yaml:"underline,omitempty"`
	Strike        bool   `yaml:"strike,omitempty"`
	Size          int    `yaml:"size,omitempty"`
	PreserveSpace bool   `yaml:"preserve_space,omitempty"`
	// Spaces appends a run of that many preserved spaces instead of text
	Spaces int `yaml:"spaces,omitempty"`
}

// Parse decodes a description without building a document
func Parse(r io.Reader) (*Description, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read description: %w", err)
	}
	expanded := os.ExpandEnv(string(data))

	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)

	var d Description
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return &d, nil
		}
		return nil, fmt.Errorf("failed to unmarshal description: %w", err)
	}
	return &d, nil
}

// Load parses a description and builds the document it describes
func Load(r io.Reader) (*docx.Document, error) {
	d, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return d.Document()
}

// LoadFile is Load for a file path
func LoadFile(path string) (*docx.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open description: %w", err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Document builds the described document
func (d *Description) Document() (*docx.Document, error) {
	doc := docx.New()
	if d.FontSize < 0 || d.FontSize > docx.MaxFontSize {
		return nil, docx.NewInvalidArgumentError("font_size", d.FontSize, fmt.Sprintf("font size must be between 0 and %d", docx.MaxFontSize))
	}
	if d.FontSize > 0 {
		doc.AmbientFontSize = d.FontSize
	}

	for i, pd := range d.Paragraphs {
		p, err := pd.paragraph()
		if err != nil {
			return nil, fmt.Errorf("paragraph %d: %w", i, err)
		}
		if err := doc.AddParagraph(p); err != nil {
			return nil, fmt.Errorf("paragraph %d: %w", i, err)
		}
	}
	return doc, nil
}

func (pd ParagraphDescription) paragraph() (docx.Paragraph, error) {
	align, err := docx.ParseAlignment(pd.Align)
	if err != nil {
		return docx.Paragraph{}, err
	}
	p := docx.Paragraph{
		Blank:     pd.Blank,
		BlankSize: pd.BlankSize,
		Alignment: align,
		Style:     pd.Style,
	}
	for j, rd := range pd.Runs {
		if rd.Spaces > 0 {
			if rd.Text != "" {
				return p, docx.NewInvalidArgumentError("spaces", rd.Spaces, fmt.Sprintf("run %d sets both text and spaces", j))
			}
			if err := p.AddSpace(rd.Spaces); err != nil {
				return p, err
			}
			continue
		}
		if err := p.AddRun(rd.run()); err != nil {
			return p, fmt.Errorf("run %d: %w", j, err)
		}
	}
	return p, nil
}

func (rd RunDescription) run() docx.Run {
	r := docx.NewRun(rd.Text)
	r.Bold = rd.Bold
	r.Italic = rd.Italic
	r.Underline = rd.Underline
	r.Strikethrough = rd.Strike
	r.PreserveSpace = rd.PreserveSpace
	if rd.Size != 0 {
		r.FontSize = rd.Size
	}
	return r
}
