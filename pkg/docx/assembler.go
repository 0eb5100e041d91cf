package docx

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/benjaminschreck/go-docx/pkg/docx/markup"
	"github.com/benjaminschreck/go-docx/pkg/docx/parts"
)

// Assembler stages the parts of a document in a directory laid out like the
// container, hands the directory to an Archiver and removes it again.
// Every call uses its own staging directory, so one Assembler can save
// different documents concurrently.
type Assembler struct {
	// StagingRoot is the parent of the staging directories. Empty means os.TempDir().
	StagingRoot string
	// Archiver defaults to ZipArchiver
	Archiver Archiver
	// Logger defaults to the package logger
	Logger   *Logger
	Language language.Tag
	Creator  string
	Title    string
	// Now is used for the document timestamps, time.Now when nil
	Now func() time.Time
}

// NewAssembler creates an assembler from a validated configuration
func NewAssembler(cfg *Config) (*Assembler, error) {
	cfg = NewConfigWithDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lang, err := cfg.LanguageTag()
	if err != nil {
		return nil, err
	}

	a := &Assembler{
		StagingRoot: cfg.StagingDir,
		Language:    lang,
		Creator:     cfg.Creator,
		Title:       cfg.Title,
	}
	switch cfg.Archiver {
	case ArchiverCommand:
		a.Archiver = CommandArchiver{Command: cfg.ArchiveCommand}
	default:
		a.Archiver = ZipArchiver{}
	}
	return a, nil
}

func (a *Assembler) logger() *Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return GetLogger()
}

func (a *Assembler) archiver() Archiver {
	if a.Archiver != nil {
		return a.Archiver
	}
	return ZipArchiver{}
}

func (a *Assembler) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// stage tracks what was created so it can be removed in reverse order
type stage struct {
	dir   string
	dirs  []string
	files []string
}

// Assemble renders doc and writes the .docx container to output. The staging
// directory is removed whether archiving succeeds or not; when archiving
// fails, a partially written output file is removed as well.
func (a *Assembler) Assemble(doc *Document, output string) (err error) {
	if doc == nil {
		return NewInvalidArgumentError("doc", nil, "document is nil")
	}
	if strings.TrimSpace(output) == "" {
		return NewInvalidArgumentError("output", output, "output path is empty")
	}

	root, err := doc.Render()
	if err != nil {
		return err
	}
	now := a.now()
	catalogue, err := parts.Catalogue(parts.Options{
		FontSize: doc.ambient(),
		Language: a.Language,
		Creator:  a.Creator,
		Title:    a.Title,
		Created:  now,
		Modified: now,
	})
	if err != nil {
		return err
	}

	log := a.logger().WithField("output", output)

	st, err := a.createStage()
	if err != nil {
		return err
	}
	log = log.WithField("staging", st.dir)
	log.Debug("Created staging directory")

	defer func() {
		if cerr := st.remove(); cerr != nil {
			log.Warn("Failed to remove staging directory", "error", cerr)
			err = errors.Join(err, cerr)
			return
		}
		log.Debug("Removed staging directory")
	}()

	all := append([]parts.Part{{Path: parts.PathDocument, Node: root}}, catalogue...)
	for _, p := range all {
		if err := st.write(p); err != nil {
			return err
		}
	}
	log.Debug("Staged package parts", "parts", len(all))

	if err := a.archiver().Archive(st.dir, output); err != nil {
		if rerr := os.Remove(output); rerr != nil && !errors.Is(rerr, fs.ErrNotExist) {
			log.Warn("Failed to remove partial output", "error", rerr)
		}
		if !IsPackagingError(err) {
			err = NewPackagingError(output, err)
		}
		return err
	}

	log.Info("Saved document", "paragraphs", doc.Len())
	return nil
}

func (a *Assembler) createStage() (*stage, error) {
	root := a.StagingRoot
	if root == "" {
		root = os.TempDir()
	}
	st := &stage{dir: filepath.Join(root, "docx-"+uuid.NewString())}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, NewIOError("mkdir", root, err)
	}
	if err := os.Mkdir(st.dir, 0o755); err != nil {
		return nil, NewIOError("mkdir", st.dir, err)
	}
	for _, d := range parts.Directories {
		path := filepath.Join(st.dir, filepath.FromSlash(d))
		if err := os.Mkdir(path, 0o755); err != nil {
			return st, errors.Join(NewIOError("mkdir", path, err), st.remove())
		}
		st.dirs = append(st.dirs, path)
	}
	return st, nil
}

func (s *stage) write(p parts.Part) error {
	path := filepath.Join(s.dir, filepath.FromSlash(p.Path))
	s.files = append(s.files, path)
	if err := markup.WriteFile(path, p.Node); err != nil {
		return NewIOError("write", path, errors.Unwrap(err))
	}
	return nil
}

// remove deletes the staged files, then the directories innermost first.
// Anything left over is removed recursively before giving up.
func (s *stage) remove() error {
	var errs []error
	for i := len(s.files) - 1; i >= 0; i-- {
		if err := os.Remove(s.files[i]); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	for i := len(s.dirs) - 1; i >= 0; i-- {
		if err := os.Remove(s.dirs[i]); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	if err := os.Remove(s.dir); err != nil && !errors.Is(err, fs.ErrNotExist) {
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil
	}
	if err := os.RemoveAll(s.dir); err != nil {
		return NewIOError("cleanup", s.dir, errors.Join(append(errs, err)...))
	}
	return nil
}
