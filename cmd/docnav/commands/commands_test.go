package commands

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
	return root
}

func TestGenerateWithoutConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	docs := writeTree(t, map[string]string{
		"guide/README.md": "# Guide\n",
		"guide/intro.md":  "## Intro\n",
	})
	out := filepath.Join(t.TempDir(), "menu.json")

	cmd := &GenerateCmd{Docs: docs, Output: out}
	require.NoError(t, cmd.Run(&Global{}, &CLI{Config: "missing.yaml"}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"nav": [{"text": "guide", "link": "/guide/", "activeMatch": "/guide/"}],
		"sidebar": {"/guide/": [{"text": "Intro", "link": "/guide/intro.html"}]}
	}`, string(data))
}

func TestGenerateRequiresConfigOrDocs(t *testing.T) {
	t.Chdir(t.TempDir())
	err := (&GenerateCmd{}).Run(&Global{}, &CLI{Config: "missing.yaml"})
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}

func TestGenerateRejectsUnknownFormat(t *testing.T) {
	t.Chdir(t.TempDir())
	cmd := &GenerateCmd{Docs: t.TempDir(), Format: "toml"}
	err := cmd.Run(&Global{}, &CLI{Config: "missing.yaml"})
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestGenerateFromConfigWithMetrics(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	docs := writeTree(t, map[string]string{"notes/a.md": "# A\n"})
	cfgPath := filepath.Join(dir, "docnav.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("docs:\n  root: "+docs+"\n"+
		"output:\n  path: out/menu.yaml\n  format: yaml\n"+
		"metrics:\n  textfile: docnav.prom\n"), 0o600))

	require.NoError(t, (&GenerateCmd{}).Run(&Global{}, &CLI{Config: cfgPath}))

	data, err := os.ReadFile(filepath.Join(dir, "out", "menu.yaml"))
	require.NoError(t, err)
	require.Contains(t, string(data), "text: notes")
	require.NotContains(t, string(data), "sidebar")

	prom, err := os.ReadFile(filepath.Join(dir, "docnav.prom"))
	require.NoError(t, err)
	require.Contains(t, string(prom), "docnav_build_outcomes_total")
}

func TestGenerateMetricsExportFailureIsAWarning(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	docs := writeTree(t, map[string]string{"notes/a.md": "# A\n"})
	cfgPath := filepath.Join(dir, "docnav.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("docs:\n  root: "+docs+"\n"+
		"output:\n  path: menu.json\n"+
		"metrics:\n  textfile: no-such-dir/docnav.prom\n"), 0o600))

	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	require.NoError(t, (&GenerateCmd{}).Run(&Global{}, &CLI{Config: cfgPath}))
	require.FileExists(t, filepath.Join(dir, "menu.json"))
	require.Contains(t, logs.String(), "level=WARN")
	require.Contains(t, logs.String(), "write metrics textfile")
	require.Contains(t, logs.String(), "category=output")
}

func TestGenerateFailsOnInvalidDocument(t *testing.T) {
	t.Chdir(t.TempDir())
	docs := writeTree(t, map[string]string{"notes/bad.md": "# \xff\n"})
	out := filepath.Join(t.TempDir(), "menu.json")

	err := (&GenerateCmd{Docs: docs, Output: out}).Run(&Global{}, &CLI{Config: "missing.yaml"})
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryDocs))
	require.NoFileExists(t, out)
}

func TestDiscover(t *testing.T) {
	t.Chdir(t.TempDir())
	docs := writeTree(t, map[string]string{
		"guide/README.md": "# Guide\n",
		"guide/intro.md":  "## Intro\n",
	})
	require.NoError(t, (&DiscoverCmd{Docs: docs}).Run(&Global{}, &CLI{Config: "missing.yaml"}))
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docnav.yaml")
	require.NoError(t, (&InitCmd{}).Run(&Global{}, &CLI{Config: path}))
	require.FileExists(t, path)

	err := (&InitCmd{}).Run(&Global{}, &CLI{Config: path})
	require.Error(t, err)
	require.NoError(t, (&InitCmd{Force: true}).Run(&Global{}, &CLI{Config: path}))
}
