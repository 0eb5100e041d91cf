// Package docx builds WordprocessingML documents and saves them as .docx
// containers.
//
// A Document is an ordered list of paragraphs, each holding formatted runs:
//
//	doc := docx.New()
//	var p docx.Paragraph
//	p.AddBoldText("Hello")
//	p.AddSpace(1)
//	p.AddItalicText("world")
//	doc.AddParagraph(p)
//	doc.AddBlankLine()
//	err := doc.Save("hello.docx")
//
// Save renders word/document.xml, stages it next to the fixed parts of the
// package (styles, fonts, settings, theme, properties and relationships) in a
// fresh directory, and zips the directory into the output file. An Assembler
// gives control over the staging location, the archiver and the logger.
//
// Configuration can be supplied through environment variables:
//
//	DOCX_FONT_SIZE        ambient font size in points (default 12)
//	DOCX_STAGING_DIR      parent of staging directories (default os.TempDir())
//	DOCX_ARCHIVER         zip or command (default zip)
//	DOCX_ARCHIVE_COMMAND  external archiver for the command archiver (default zip)
//	DOCX_LOG_LEVEL        debug, info, warn, error or off (default info)
//	DOCX_LANGUAGE         BCP 47 language tag (default en-US)
//	DOCX_CREATOR          document author
//	DOCX_TITLE            document title
package docx
