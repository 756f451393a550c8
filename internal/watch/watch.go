// Package watch rebuilds menus when the documentation tree changes.
package watch

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/docnav/internal/docs"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// Rebuild reasons passed to BuildFunc.
const (
	ReasonInitial = "initial"
	ReasonChange  = "change"
	ReasonPoll    = "poll"
)

// DefaultDebounce is the quiet window used when Options.Debounce is zero.
const DefaultDebounce = 300 * time.Millisecond

// BuildFunc performs one build. Errors are logged and do not stop watching.
type BuildFunc func(ctx context.Context, reason string) error

// Options configures a Watcher.
type Options struct {
	// Root is the documentation directory on disk.
	Root         string
	Debounce     time.Duration
	PollInterval time.Duration // 0 disables periodic rebuilds
	Walker       docs.WalkerOptions
}

// Watcher runs an initial build, then rebuilds after filesystem changes and
// on an optional fixed interval. Builds never overlap; requests arriving
// during a build collapse into a single follow-up build.
type Watcher struct {
	opts     Options
	build    BuildFunc
	filter   *docs.Walker
	requests chan string
	ready    chan struct{}
}

// New validates opts and returns a Watcher.
func New(opts Options, build BuildFunc) (*Watcher, error) {
	if build == nil {
		return nil, ferrors.ValidationError("build function is required").Build()
	}
	if opts.Root == "" {
		return nil, ferrors.ValidationError("watch root is required").Build()
	}
	if opts.Debounce < 0 || opts.PollInterval < 0 {
		return nil, ferrors.ValidationError("watch intervals cannot be negative").Build()
	}
	if opts.Debounce == 0 {
		opts.Debounce = DefaultDebounce
	}
	return &Watcher{
		opts:     opts,
		build:    build,
		filter:   docs.NewWalker(nil, opts.Walker),
		requests: make(chan string, 1),
		ready:    make(chan struct{}),
	}, nil
}

// Ready is closed once the initial build finished and watches are in place.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	w.runBuild(ctx, ReasonInitial)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryRuntime, "create file watcher").Build()
	}
	defer func() { _ = fw.Close() }()
	if err := w.addDirsRecursive(fw, w.opts.Root); err != nil {
		return err
	}

	if w.opts.PollInterval > 0 {
		s, err := w.startScheduler()
		if err != nil {
			return err
		}
		defer func() {
			if err := s.Shutdown(); err != nil {
				slog.Warn("Scheduler shutdown failed", logfields.Error(err))
			}
		}()
	}

	var wg sync.WaitGroup
	defer wg.Wait()
	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	wg.Add(1)
	go func() {
		defer wg.Done()
		w.worker(workerCtx)
	}()

	trigger, stop := w.debouncer()
	defer stop()

	slog.Info("Watching documentation tree",
		logfields.Path(w.opts.Root),
		slog.Duration("debounce", w.opts.Debounce),
		slog.Duration("poll_interval", w.opts.PollInterval))
	close(w.ready)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Stopping watcher")
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(fw, ev, trigger)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

// request queues a build unless one is already pending.
func (w *Watcher) request(reason string) {
	select {
	case w.requests <- reason:
	default:
	}
}

func (w *Watcher) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case reason := <-w.requests:
			w.runBuild(ctx, reason)
		}
	}
}

func (w *Watcher) runBuild(ctx context.Context, reason string) {
	start := time.Now()
	err := w.build(ctx, reason)
	elapsed := float64(time.Since(start).Microseconds()) / 1000
	if err == nil {
		slog.Debug("Rebuild finished", logfields.Op(reason), logfields.DurationMS(elapsed))
		return
	}
	if errors.Is(err, context.Canceled) {
		return
	}
	attrs := []any{logfields.Op(reason), logfields.Error(err), logfields.DurationMS(elapsed)}
	if ferrors.GetRetryStrategy(err) == ferrors.RetryNextChange {
		slog.Warn("Rebuild failed, waiting for the next change", attrs...)
		return
	}
	slog.Error("Rebuild failed", attrs...)
}

// debouncer returns a trigger that requests a change build once events stop
// arriving for the debounce window.
func (w *Watcher) debouncer() (trigger func(), stop func()) {
	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	trigger = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(w.opts.Debounce, func() { w.request(ReasonChange) })
	}
	stop = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
	}
	return trigger, stop
}

func (w *Watcher) startScheduler() (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRuntime, "create scheduler").Build()
	}
	_, err = s.NewJob(
		gocron.DurationJob(w.opts.PollInterval),
		gocron.NewTask(w.request, ReasonPoll),
		gocron.WithName("periodic-rebuild"),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, ferrors.WrapError(err, ferrors.CategoryRuntime, "schedule periodic rebuild").Build()
	}
	s.Start()
	return s, nil
}

func (w *Watcher) handleEvent(fw *fsnotify.Watcher, ev fsnotify.Event, trigger func()) {
	if w.shouldIgnoreEvent(ev.Name) {
		return
	}
	if ev.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			_ = w.addDirsRecursive(fw, ev.Name)
		}
	}
	slog.Debug("File change detected", logfields.Path(ev.Name), logfields.Op(ev.Op.String()))
	trigger()
}

func (w *Watcher) addDirsRecursive(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return ferrors.WrapError(err, ferrors.CategoryFileSystem, "watch documentation root").
					WithContext("path", root).
					Build()
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.opts.Root && w.filter.Skipped(d.Name()) {
			return filepath.SkipDir
		}
		if err := fw.Add(path); err != nil {
			slog.Warn("Watch add failed", logfields.Path(path), logfields.Error(err))
		}
		return nil
	})
}

// shouldIgnoreEvent reports events on skipped names and editor temp files.
func (w *Watcher) shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)
	if w.filter.Skipped(base) {
		return true
	}
	if strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#") {
		return true
	}
	return base == "Thumbs.db"
}
