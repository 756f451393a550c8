package docs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docnav/internal/docs/errors"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

func testTree() fstest.MapFS {
	return fstest.MapFS{
		"README.md":                 {Data: []byte("# Home\n")},
		"guide/README.md":           {Data: []byte("# Guide\n")},
		"guide/intro.md":            {Data: []byte("## Intro\n")},
		"guide/image.png":           {Data: []byte{0x89, 0x50}},
		".vitepress/config.md":      {Data: []byte("# hidden\n")},
		"node_modules/pkg/index.md": {Data: []byte("# dep\n")},
		"dist/out.md":               {Data: []byte("# built\n")},
		"notes/a.md":                {Data: []byte("# A\n")},
		"empty":                     {Mode: fs.ModeDir | 0o755},
	}
}

func TestWalkerList(t *testing.T) {
	w := NewWalker(testTree(), WalkerOptions{})

	l, err := w.List(Root)
	require.NoError(t, err)
	require.Equal(t, []string{"empty", "guide", "notes"}, l.Dirs)
	require.Equal(t, []string{"README.md"}, l.Files)

	l, err = w.List("guide")
	require.NoError(t, err)
	require.Empty(t, l.Dirs)
	require.Equal(t, []string{"guide/README.md", "guide/image.png", "guide/intro.md"}, l.Files)
}

func TestWalkerCustomIgnore(t *testing.T) {
	w := NewWalker(testTree(), WalkerOptions{Ignore: []string{"notes"}, HiddenPrefix: "_"})

	l, err := w.List(Root)
	require.NoError(t, err)
	require.Equal(t, []string{".vitepress", "dist", "empty", "guide", "node_modules"}, l.Dirs)
}

func TestWalkerNilCallbacks(t *testing.T) {
	w := NewWalker(testTree(), WalkerOptions{})

	var files []string
	err := w.Walk(Root, nil, func(p string) error {
		files = append(files, p)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"README.md"}, files)
}

func TestWalkerCallbackErrorStopsWalk(t *testing.T) {
	w := NewWalker(testTree(), WalkerOptions{})
	stop := errors.New("stop")

	visits := 0
	err := w.Walk(Root, func(string) error {
		visits++
		return stop
	}, nil)
	require.ErrorIs(t, err, stop)
	require.Equal(t, 1, visits)
}

func TestWalkerMissingRoot(t *testing.T) {
	w := NewWalker(os.DirFS(filepath.Join(t.TempDir(), "missing")), WalkerOptions{})

	visits := 0
	count := func(string) error { visits++; return nil }
	require.NoError(t, w.Walk(Root, count, count))
	require.Zero(t, visits)

	w = NewWalker(testTree(), WalkerOptions{})
	l, err := w.List("does/not/exist")
	require.NoError(t, err)
	require.Empty(t, l.Dirs)
	require.Empty(t, l.Files)
}

func TestWalkerFollowsSymlinkedDirectories(t *testing.T) {
	root := t.TempDir()
	target := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(target, "page.md"), []byte("# Page\n"), 0o644))
	require.NoError(t, os.Symlink(target, filepath.Join(root, "linked")))
	require.NoError(t, os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling")))

	w := NewWalker(os.DirFS(root), WalkerOptions{})
	l, err := w.List(Root)
	require.NoError(t, err)
	require.Equal(t, []string{"linked"}, l.Dirs)
	require.Empty(t, l.Files)
}

func TestWalkerHasFile(t *testing.T) {
	w := NewWalker(testTree(), WalkerOptions{})

	ok, err := w.HasFile("guide", DefaultIndexFile)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = w.HasFile("notes", DefaultIndexFile)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = w.HasFile(Root, "guide")
	require.NoError(t, err)
	require.False(t, ok, "a directory is not an index file")
}

func TestWalkerDocuments(t *testing.T) {
	w := NewWalker(testTree(), WalkerOptions{})

	docs, err := w.Documents(Root)
	require.NoError(t, err)

	links := make([]string, 0, len(docs))
	for _, d := range docs {
		links = append(links, d.Link)
	}
	require.Equal(t, []string{"/README.html", "/guide/README.html", "/guide/intro.html", "/notes/a.html"}, links)
}

type unreadableFS struct {
	fstest.MapFS
	path string
}

func (u unreadableFS) ReadFile(name string) ([]byte, error) {
	if name == u.path {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrPermission}
	}
	return u.MapFS.ReadFile(name)
}

func TestWalkerDocumentsUnreadableFileIsFatal(t *testing.T) {
	w := NewWalker(unreadableFS{MapFS: testTree(), path: "guide/intro.md"}, WalkerOptions{})

	_, err := w.Documents(Root)
	require.Error(t, err)
	require.ErrorIs(t, err, derrors.ErrFileReadFailed)
	require.ErrorIs(t, err, fs.ErrPermission)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryFileSystem))
}
