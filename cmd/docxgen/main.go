// Command docxgen writes .docx files from YAML descriptions.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/benjaminschreck/go-docx/pkg/docx"
	"github.com/benjaminschreck/go-docx/pkg/docx/describe"
)

const version = "0.1.0"

// Global carries state shared by the commands
type Global struct {
	Stdout io.Writer
	Logger *docx.Logger
}

// CLI definition & global flags
type CLI struct {
	Verbose    bool   `short:"v" help:"Enable verbose logging"`
	EnvFile    string `name:"env-file" help:"Environment file with DOCX_* settings" default:".env"`
	FontSize   int    `name:"font-size" help:"Ambient font size in points (overrides DOCX_FONT_SIZE)"`
	Archiver   string `help:"How staged parts are zipped: zip or command (overrides DOCX_ARCHIVER)"`
	StagingDir string `name:"staging-dir" help:"Parent directory for staging (overrides DOCX_STAGING_DIR)" type:"path"`

	Demo    DemoCmd    `cmd:"" help:"Write the formatting showcase document"`
	Build   BuildCmd   `cmd:"" help:"Build a document from a YAML description"`
	Print   PrintCmd   `cmd:"" help:"Print the document part of a YAML description"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// config resolves the environment and the global flag overrides
func (c *CLI) config() (*docx.Config, error) {
	if err := docx.LoadEnvFile(c.EnvFile); err != nil {
		return nil, err
	}
	cfg := docx.ConfigFromEnvironment()
	if c.FontSize != 0 {
		cfg.AmbientFontSize = c.FontSize
	}
	if c.Archiver != "" {
		cfg.Archiver = strings.ToLower(c.Archiver)
	}
	if c.StagingDir != "" {
		cfg.StagingDir = c.StagingDir
	}
	if c.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *CLI) save(g *Global, doc *docx.Document, output string) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}
	a, err := docx.NewAssembler(cfg)
	if err != nil {
		return err
	}
	a.Logger = g.Logger
	return a.Assemble(doc, output)
}

// DemoCmd implements the 'demo' command
type DemoCmd struct {
	Output string `short:"o" help:"Output file" default:"my_document.docx"`
}

func (d *DemoCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.config()
	if err != nil {
		return err
	}
	doc, err := Demo(cfg)
	if err != nil {
		return err
	}
	if err := root.save(g, doc, d.Output); err != nil {
		return err
	}
	fmt.Fprintf(g.Stdout, "Wrote %s\n", d.Output)
	return nil
}

// BuildCmd implements the 'build' command
type BuildCmd struct {
	File   string `arg:"" help:"YAML description" type:"existingfile"`
	Output string `short:"o" help:"Output file (defaults to the description name with .docx)"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	doc, err := load(root, b.File)
	if err != nil {
		return err
	}
	output := b.Output
	if output == "" {
		output = strings.TrimSuffix(b.File, filepath.Ext(b.File)) + ".docx"
	}
	if err := root.save(g, doc, output); err != nil {
		return err
	}
	fmt.Fprintf(g.Stdout, "Wrote %s\n", output)
	return nil
}

// PrintCmd implements the 'print' command
type PrintCmd struct {
	File string `arg:"" optional:"" help:"YAML description (the demo document when omitted)" type:"existingfile"`
}

func (p *PrintCmd) Run(g *Global, root *CLI) error {
	var doc *docx.Document
	var err error
	if p.File == "" {
		var cfg *docx.Config
		if cfg, err = root.config(); err == nil {
			doc, err = Demo(cfg)
		}
	} else {
		doc, err = load(root, p.File)
	}
	if err != nil {
		return err
	}
	return doc.Print(g.Stdout)
}

// VersionCmd implements the 'version' command
type VersionCmd struct{}

func (VersionCmd) Run(g *Global) error {
	_, err := fmt.Fprintf(g.Stdout, "docxgen version %s\n", version)
	return err
}

// load reads a description. The --font-size flag wins over font_size in the file.
func load(root *CLI, path string) (*docx.Document, error) {
	doc, err := describe.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if root.FontSize > 0 {
		doc.AmbientFontSize = root.FontSize
	}
	return doc, nil
}

// run parses args and executes the selected command
func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("docxgen"),
		kong.Description("Generate Word documents (.docx)"),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// the env file can set DOCX_LOG_LEVEL, so it is loaded before the logger
	if err := docx.LoadEnvFile(cli.EnvFile); err != nil {
		return err
	}
	level := docx.LogInfo
	if cli.Verbose {
		level = docx.LogDebug
	} else if v := os.Getenv("DOCX_LOG_LEVEL"); v != "" {
		level = docx.ParseLogLevel(v)
	}
	logger := docx.NewLogger(stderr, level)
	docx.SetLogger(logger)

	return ctx.Run(&Global{Stdout: stdout, Logger: logger}, &cli)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		docx.GetLogger().Error("docxgen failed", "error", err)
		os.Exit(1)
	}
}
