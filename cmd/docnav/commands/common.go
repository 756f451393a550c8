package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docnav/internal/config"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// Global context passed to subcommands.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docnav.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" help:"Build the sidebar and navigation once and write them out"`
	Discover DiscoverCmd `cmd:"" help:"List documents and sections without writing output"`
	Watch    WatchCmd    `cmd:"" help:"Rebuild menus whenever the documentation tree changes"`
	Init     InitCmd     `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig loads the configuration file and applies the docs root
// override. A missing file is tolerated when docsDir is given.
func loadConfig(path, docsDir string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if docsDir == "" || !ferrors.HasCategory(err, ferrors.CategoryNotFound) {
			return nil, err
		}
		slog.Debug("No configuration file, using defaults", logfields.File(path))
		cfg = config.Default()
	}
	if docsDir != "" {
		cfg.Docs.Root = docsDir
	}
	return cfg, nil
}
