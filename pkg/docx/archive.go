package docx

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/benjaminschreck/go-docx/pkg/docx/parts"
)

// Archiver folds a staging directory into a single container file. Every
// staged file must appear in the container at its path relative to stageDir.
type Archiver interface {
	Archive(stageDir, output string) error
}

// ArchiverFunc adapts a function to the Archiver interface
type ArchiverFunc func(stageDir, output string) error

// Archive calls f(stageDir, output)
func (f ArchiverFunc) Archive(stageDir, output string) error {
	return f(stageDir, output)
}

// ZipArchiver writes the container in-process with archive/zip
type ZipArchiver struct {
	// Store disables compression
	Store bool
}

// Archive implements Archiver
func (z ZipArchiver) Archive(stageDir, output string) (err error) {
	entries, err := stagedFiles(stageDir)
	if err != nil {
		return NewPackagingError(output, err)
	}

	f, err := os.Create(output)
	if err != nil {
		return NewPackagingError(output, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = NewPackagingError(output, cerr)
		}
	}()

	method := zip.Deflate
	if z.Store {
		method = zip.Store
	}

	w := zip.NewWriter(f)
	for _, name := range entries {
		if err := addZipEntry(w, stageDir, name, method); err != nil {
			return NewPackagingError(output, err)
		}
	}
	if err := w.Close(); err != nil {
		return NewPackagingError(output, fmt.Errorf("failed to finalize zip: %w", err))
	}
	return nil
}

func addZipEntry(w *zip.Writer, stageDir, name string, method uint16) error {
	src, err := os.Open(filepath.Join(stageDir, filepath.FromSlash(name)))
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := w.CreateHeader(&zip.FileHeader{Name: name, Method: method})
	if err != nil {
		return fmt.Errorf("failed to create zip entry %s: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write zip entry %s: %w", name, err)
	}
	return nil
}

// stagedFiles lists the regular files below dir as slash separated relative
// paths. [Content_Types].xml comes first, the rest in lexical order.
func stagedFiles(dir string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files: %w", err)
	}

	sort.Slice(names, func(i, j int) bool {
		if (names[i] == parts.PathContentTypes) != (names[j] == parts.PathContentTypes) {
			return names[i] == parts.PathContentTypes
		}
		return names[i] < names[j]
	})
	return names, nil
}

// CommandArchiver runs an external zip-compatible program inside the staging
// directory
type CommandArchiver struct {
	// Command defaults to "zip"
	Command string
	// Args precede the output path and "."; they default to -r -D -X -q.
	// -D keeps directory entries out of the container.
	Args []string
}

// Archive implements Archiver
func (c CommandArchiver) Archive(stageDir, output string) error {
	name := c.Command
	if name == "" {
		name = "zip"
	}
	args := c.Args
	if args == nil {
		args = []string{"-r", "-D", "-X", "-q"}
	}

	abs, err := filepath.Abs(output)
	if err != nil {
		return NewPackagingError(output, err)
	}
	// zip updates existing archives in place
	if err := os.Remove(abs); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return NewPackagingError(output, err)
	}

	cmd := exec.Command(name, append(append([]string{}, args...), abs, ".")...)
	cmd.Dir = stageDir
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return NewPackagingError(output, fmt.Errorf("%s: %w: %s", name, err, msg))
		}
		return NewPackagingError(output, fmt.Errorf("%s: %w", name, err))
	}
	return nil
}
