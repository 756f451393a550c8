package commands

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/docnav/internal/docs"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/menu"
)

// DiscoverCmd implements the 'discover' command.
type DiscoverCmd struct {
	Docs string `short:"d" help:"Documentation root directory (overrides docs.root)"`
}

func (d *DiscoverCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config, d.Docs)
	if err != nil {
		return err
	}
	fsys := os.DirFS(cfg.Docs.Root)

	documents, err := docs.NewWalker(fsys, cfg.WalkerOptions()).Documents(docs.Root)
	if err != nil {
		return err
	}
	for _, doc := range documents {
		slog.Info("Document",
			logfields.File(doc.Path),
			logfields.Title(doc.Title),
			logfields.Link(doc.Link),
			logfields.Fingerprint(doc.Fingerprint))
	}

	sections, err := menu.NewBuilder(fsys, cfg.MenuOptions()).Sections()
	if err != nil {
		return err
	}
	for _, s := range sections {
		slog.Info("Section", logfields.Section(s.Key), logfields.Title(s.Title), logfields.Count(len(s.Items)))
	}

	slog.Info("Discovery completed",
		logfields.Path(cfg.Docs.Root),
		slog.Int("documents", len(documents)),
		slog.Int("sections", len(sections)))
	return nil
}
