package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/docnav/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Docs string `short:"d" help:"Documentation root directory (overrides docs.root)"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root.Config, w.Docs)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	p := newPipeline(cfg, nil)
	watcher, err := watch.New(watch.Options{
		Root:         cfg.Docs.Root,
		Debounce:     cfg.Watch.Debounce,
		PollInterval: cfg.Watch.PollInterval,
		Walker:       cfg.WalkerOptions(),
	}, func(ctx context.Context, _ string) error {
		return p.run(ctx)
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watcher.Run(ctx)
}
