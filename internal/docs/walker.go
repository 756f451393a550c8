package docs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	derrors "git.home.luguber.info/inful/docnav/internal/docs/errors"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

const (
	// DefaultHiddenPrefix marks names that are never listed.
	DefaultHiddenPrefix = "."
	// DefaultIndexFile is the file that promotes its directory to a section.
	DefaultIndexFile = "README.md"
	// Root is the walker path of the documentation root.
	Root = "."
)

// DefaultIgnore lists dependency and build output names skipped in every listing.
var DefaultIgnore = []string{"node_modules", "dist", "public"}

// WalkerOptions controls which entries a Walker lists.
type WalkerOptions struct {
	Ignore       []string
	HiddenPrefix string
}

// Walker lists a documentation tree. It is the only place that reads
// directories; paths it hands out are slash separated and relative to the
// root of its file system ("." being the root itself).
type Walker struct {
	fsys         fs.FS
	ignore       map[string]struct{}
	hiddenPrefix string
}

// Listing holds the surviving children of one directory, in name order.
type Listing struct {
	Dirs  []string
	Files []string
}

// NewWalker creates a walker over fsys. Zero options fall back to the defaults.
func NewWalker(fsys fs.FS, opts WalkerOptions) *Walker {
	ignore := opts.Ignore
	if ignore == nil {
		ignore = DefaultIgnore
	}
	set := make(map[string]struct{}, len(ignore))
	for _, name := range ignore {
		set[name] = struct{}{}
	}
	hidden := opts.HiddenPrefix
	if hidden == "" {
		hidden = DefaultHiddenPrefix
	}
	return &Walker{fsys: fsys, ignore: set, hiddenPrefix: hidden}
}

// Skipped reports whether name is hidden or in the ignore set.
func (w *Walker) Skipped(name string) bool {
	if strings.HasPrefix(name, w.hiddenPrefix) {
		return true
	}
	_, ok := w.ignore[name]
	return ok
}

// Walk calls visitDir or visitFile for every listed child of dir. A nil
// callback skips that kind of entry. A directory that does not exist is
// walked with zero visits.
func (w *Walker) Walk(dir string, visitDir, visitFile func(p string) error) error {
	entries, err := fs.ReadDir(w.fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("Directory not found, nothing to walk", logfields.Path(dir))
			return nil
		}
		return ferrors.FileSystemError("list directory").
			WithCause(fmt.Errorf("%w: %w", derrors.ErrDocsDirWalkFailed, err)).
			WithContext("path", dir).
			Build()
	}

	for _, entry := range entries {
		name := entry.Name()
		if w.Skipped(name) {
			continue
		}
		p := path.Join(dir, name)

		// Stat rather than entry.IsDir so symlinked directories are followed.
		info, err := fs.Stat(w.fsys, p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug("Skipping dangling entry", logfields.Path(p))
				continue
			}
			return ferrors.FileSystemError("stat entry").
				WithCause(fmt.Errorf("%w: %w", derrors.ErrStatFailed, err)).
				WithContext("path", p).
				Build()
		}

		visit := visitFile
		if info.IsDir() {
			visit = visitDir
		}
		if visit == nil {
			continue
		}
		if err := visit(p); err != nil {
			return err
		}
	}
	return nil
}

// List returns the listed children of dir split into directories and files.
func (w *Walker) List(dir string) (Listing, error) {
	var l Listing
	err := w.Walk(dir,
		func(p string) error { l.Dirs = append(l.Dirs, p); return nil },
		func(p string) error { l.Files = append(l.Files, p); return nil },
	)
	return l, err
}

// HasFile reports whether dir directly contains a regular file called name.
func (w *Walker) HasFile(dir, name string) (bool, error) {
	p := path.Join(dir, name)
	info, err := fs.Stat(w.fsys, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, ferrors.FileSystemError("stat entry").
			WithCause(fmt.Errorf("%w: %w", derrors.ErrStatFailed, err)).
			WithContext("path", p).
			Build()
	}
	return !info.IsDir(), nil
}

// Documents returns every markdown document below dir. The files of a
// directory come before the documents of its subdirectories, each in name order.
func (w *Walker) Documents(dir string) ([]Document, error) {
	l, err := w.List(dir)
	if err != nil {
		return nil, err
	}
	var out []Document
	for _, p := range l.Files {
		if !IsMarkdown(p) {
			continue
		}
		doc, err := w.ReadDocument(p)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	for _, sub := range l.Dirs {
		nested, err := w.Documents(sub)
		if err != nil {
			return nil, err
		}
		out = append(out, nested...)
	}
	return out, nil
}
