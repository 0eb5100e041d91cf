package main

import (
	"github.com/benjaminschreck/go-docx/pkg/docx"
)

// Demo builds the showcase document: every run style, preserved spaces,
// blank lines and per-run font sizes
func Demo(cfg *docx.Config) (*docx.Document, error) {
	doc := docx.NewWithConfig(cfg)

	var intro docx.Paragraph
	intro.AddPlainText("hello world")
	if err := intro.AddSpace(1); err != nil {
		return nil, err
	}
	intro.AddItalicText("this is italic")

	var bold docx.Paragraph
	bold.AddBoldText("this is bold")
	if err := bold.AddSpace(1); err != nil {
		return nil, err
	}
	bold.AddPlainText("this is not bold")

	var both docx.Paragraph
	if err := both.AddRun(docx.Run{Text: "This is both bold and italic!", Bold: true, Italic: true}); err != nil {
		return nil, err
	}

	var plain docx.Paragraph
	if err := plain.AddRun(docx.NewRun("This text is just plain")); err != nil {
		return nil, err
	}

	var lines docx.Paragraph
	lines.AddUnderlinedText("hello underline")
	if err := lines.AddSpace(1); err != nil {
		return nil, err
	}
	lines.AddPlainText("and")
	if err := lines.AddSpace(1); err != nil {
		return nil, err
	}
	lines.AddStruckthroughText("strikethrough")

	var all docx.Paragraph
	all.AddPlainText("Wow,")
	if err := all.AddSpace(1); err != nil {
		return nil, err
	}
	if err := all.AddRun(docx.Run{Text: "these words", Bold: true, Italic: true, Underline: true, Strikethrough: true}); err != nil {
		return nil, err
	}
	if err := all.AddSpace(1); err != nil {
		return nil, err
	}
	all.AddPlainText("have all the formatting!")

	var gaps docx.Paragraph
	gaps.AddPlainText("Look at all")
	if err := gaps.AddSpace(6); err != nil {
		return nil, err
	}
	gaps.AddPlainText("these")
	if err := gaps.AddSpace(4); err != nil {
		return nil, err
	}
	gaps.AddPlainText("spaces")

	var after docx.Paragraph
	after.AddPlainText("There are 5 empty lines above this line!")

	var sizes docx.Paragraph
	if err := sizes.AddRun(docx.Run{Text: "this text is smol", FontSize: 9}); err != nil {
		return nil, err
	}
	if err := sizes.AddSpace(1); err != nil {
		return nil, err
	}
	if err := sizes.AddRun(docx.Run{Text: "this text is HUGE!", FontSize: 20}); err != nil {
		return nil, err
	}

	steps := []func() error{
		func() error { return doc.AddParagraph(intro) },
		func() error { return doc.AddParagraph(bold) },
		blank(doc),
		func() error { return doc.AddParagraph(intro) },
		func() error { return doc.AddParagraph(both) },
		blank(doc),
		func() error { return doc.AddParagraph(plain) },
		blank(doc),
		func() error { return doc.AddParagraph(lines) },
		blank(doc),
		func() error { return doc.AddParagraph(all) },
		blank(doc),
		func() error { return doc.AddParagraph(gaps) },
		func() error { return doc.AddBlankLines(5, 0) },
		func() error { return doc.AddParagraph(after) },
		func() error { return doc.AddParagraph(sizes) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func blank(doc *docx.Document) func() error {
	return func() error {
		doc.AddBlankLine()
		return nil
	}
}
