package docs

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/inful/mdfp"

	derrors "git.home.luguber.info/inful/docnav/internal/docs/errors"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/frontmatter"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/markdown"
)

const (
	// MarkdownExt is the source extension of documents.
	MarkdownExt = ".md"
	// RenderedExt replaces MarkdownExt in document links.
	RenderedExt = ".html"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Document is a markdown file with its derived title and link.
type Document struct {
	Path  string // Slash path relative to the docs root
	Name  string // Base file name
	Title string // First level 1/2 heading, or the file name
	Link  string // Root-relative rendered link
	// Fingerprint identifies the frontmatter and body content.
	Fingerprint string
}

// IsMarkdown reports whether name has the markdown extension. The match is
// case-sensitive, so "README.MD" is not a document.
func IsMarkdown(name string) bool {
	return path.Ext(name) == MarkdownExt
}

// FileLink returns the root-relative rendered link of the document at p.
func FileLink(p string) string {
	return "/" + strings.TrimSuffix(p, path.Ext(p)) + RenderedExt
}

// DirLink returns the root-relative link of directory dir, ending in "/".
func DirLink(dir string) string {
	if dir == Root || dir == "" {
		return "/"
	}
	return "/" + strings.Trim(dir, "/") + "/"
}

// RenderedName returns the file name a source file is rendered to.
func RenderedName(name string) string {
	return strings.TrimSuffix(name, path.Ext(name)) + RenderedExt
}

// Depth counts the non-empty segments of a root-relative link.
func Depth(link string) int {
	n := 0
	for _, seg := range strings.Split(link, "/") {
		if seg != "" {
			n++
		}
	}
	return n
}

// ReadDocument reads the markdown file at p and derives its title and link.
// Unreadable or non UTF-8 files are fatal.
func (w *Walker) ReadDocument(p string) (Document, error) {
	content, err := fs.ReadFile(w.fsys, p)
	if err != nil {
		return Document{}, ferrors.FileSystemError("read markdown file").
			WithCause(fmt.Errorf("%w: %w", derrors.ErrFileReadFailed, err)).
			WithContext("path", p).
			Build()
	}
	if !utf8.Valid(content) {
		return Document{}, ferrors.DocsError("decode markdown file").
			WithCause(derrors.ErrInvalidEncoding).
			WithContext("path", p).
			Build()
	}

	name := path.Base(p)
	doc := Document{
		Path: p,
		Name: name,
		Link: FileLink(p),
	}

	content = bytes.TrimPrefix(content, utf8BOM)
	fm, body, _, err := frontmatter.Split(content)
	if err != nil {
		fm, body = nil, content
	}
	doc.Fingerprint = mdfp.CalculateFingerprintFromParts(string(fm), string(body))

	if title, ok := markdown.FirstHeading(body); ok {
		doc.Title = title
	} else {
		doc.Title = name
		slog.Debug("No title heading, using file name", logfields.Path(p), logfields.Title(doc.Title))
	}
	return doc, nil
}
