package commands

import (
	"context"
	"io"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Docs   string `short:"d" help:"Documentation root directory (overrides docs.root)"`
	Output string `short:"o" help:"Output file (overrides output.path)"`
	Format string `short:"f" help:"Output format, json or yaml (overrides output.format)"`
	Stdout bool   `help:"Write the result to stdout instead of the output file"`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := g.resolveConfig(root.Config)
	if err != nil {
		return err
	}
	var stdout io.Writer
	if g.Stdout {
		stdout = os.Stdout
	}
	slog.Info("Generating menus",
		logfields.Path(cfg.Docs.Root),
		logfields.File(cfg.Output.Path),
		logfields.Format(string(cfg.Output.Format)))
	return newPipeline(cfg, stdout).run(context.Background())
}

func (g *GenerateCmd) resolveConfig(path string) (*config.Config, error) {
	cfg, err := loadConfig(path, g.Docs)
	if err != nil {
		return nil, err
	}
	if g.Output != "" {
		cfg.Output.Path = g.Output
	}
	if g.Format != "" {
		cfg.Output.Format = config.OutputFormat(g.Format)
		config.NormalizeConfig(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
