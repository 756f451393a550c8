package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/menu"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "docnav.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("DOCNAV_TEST_DOCS", "/srv/docs")
	path := writeConfig(t, "docs:\n"+
		"  root: ${DOCNAV_TEST_DOCS}\n"+
		"  index_file: index.md\n"+
		"  ignore: [vendor]\n"+
		"sidebar:\n"+
		"  collapse_depth: 3\n"+
		"nav:\n"+
		"  breadcrumb_separator: \" / \"\n"+
		"locale: en\n"+
		"output:\n"+
		"  path: out/menu.yaml\n"+
		"  format: YAML\n"+
		"watch:\n"+
		"  debounce: 1s\n"+
		"  poll_interval: 5m\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "/srv/docs", cfg.Docs.Root)
	require.Equal(t, "index.md", cfg.Docs.IndexFile)
	require.Equal(t, ".", cfg.Docs.HiddenPrefix)
	require.Equal(t, []string{"vendor"}, cfg.Docs.Ignore)
	require.Equal(t, 3, *cfg.Sidebar.CollapseDepth)
	require.Equal(t, " / ", cfg.Nav.BreadcrumbSeparator)
	require.Equal(t, "en", cfg.Locale)
	require.Equal(t, FormatYAML, cfg.Output.Format)
	require.Equal(t, time.Second, cfg.Watch.Debounce)
	require.Equal(t, 5*time.Minute, cfg.Watch.PollInterval)

	opts := cfg.MenuOptions()
	require.Equal(t, "index.md", opts.IndexFile)
	require.Equal(t, 3, opts.CollapseDepth)
	require.Equal(t, language.English, opts.Locale)
	require.Equal(t, []string{"vendor"}, opts.Walker.Ignore)
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	require.Equal(t, DefaultDocsRoot, cfg.Docs.Root)
	require.Equal(t, "README.md", cfg.Docs.IndexFile)
	require.Equal(t, []string{"node_modules", "dist", "public"}, cfg.Docs.Ignore)
	require.Equal(t, 2, *cfg.Sidebar.CollapseDepth)
	require.Equal(t, " » ", cfg.Nav.BreadcrumbSeparator)
	require.Equal(t, "zh", cfg.Locale)
	require.Equal(t, FormatJSON, cfg.Output.Format)
	require.Equal(t, DefaultDebounce, cfg.Watch.Debounce)
	require.Zero(t, cfg.Watch.PollInterval)
	require.Equal(t, language.Chinese, cfg.MenuOptions().Locale)
}

func TestLoadZeroCollapseDepthCollapsesEverything(t *testing.T) {
	cfg, err := Load(writeConfig(t, "sidebar:\n  collapse_depth: 0\n"))
	require.NoError(t, err)
	require.Equal(t, 0, *cfg.Sidebar.CollapseDepth)
	require.Equal(t, menu.CollapseAll, cfg.MenuOptions().CollapseDepth)

	cfg, err = Load(writeConfig(t, "{}\n"))
	require.NoError(t, err)
	require.Equal(t, menu.DefaultCollapseDepth, cfg.MenuOptions().CollapseDepth)
}

func TestLoadEmptyIgnoreListDisablesIgnoring(t *testing.T) {
	cfg, err := Load(writeConfig(t, "docs:\n  ignore: []\n"))
	require.NoError(t, err)
	require.NotNil(t, cfg.Docs.Ignore)
	require.Empty(t, cfg.Docs.Ignore)
}

func TestLoadMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load("does-not-exist.yaml")
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "docs: [unclosed\n"))
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, "output:\n  format: toml\n"))
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "docnav.yaml")

	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	err = Init(path, false)
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))

	require.NoError(t, Init(path, true))
}
