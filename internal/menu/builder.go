package menu

import (
	"io/fs"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docnav/internal/docs"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
)

// Stage names used for logging and metrics.
const (
	StageSidebar = "sidebar"
	StageNav     = "nav"
)

// Builder derives the sidebar and the top navigation of a documentation
// tree. Every call performs its own traversal; nothing is shared between
// calls, so a Builder may be reused across rebuilds.
type Builder struct {
	fsys     fs.FS
	opts     Options
	recorder metrics.Recorder
}

// NewBuilder returns a Builder over the documentation root fsys.
func NewBuilder(fsys fs.FS, opts Options) *Builder {
	return &Builder{
		fsys:     fsys,
		opts:     opts.withDefaults(),
		recorder: metrics.NoopRecorder{},
	}
}

// WithRecorder sets the metrics recorder.
func (b *Builder) WithRecorder(r metrics.Recorder) *Builder {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	b.recorder = r
	return b
}

// Sections returns every sidebar section ordered by key.
func (b *Builder) Sections() ([]Section, error) {
	sb := &sidebarBuilder{
		walker:    docs.NewWalker(b.fsys, b.opts.Walker),
		sorter:    NewSorter(b.opts.Locale),
		opts:      b.opts,
		indexLink: "/" + docs.RenderedName(b.opts.IndexFile),
	}
	_, sections, err := sb.parse(docs.Root)
	b.recorder.AddDocuments(sb.documents)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(sections, func(a, c Section) int { return strings.Compare(a.Key, c.Key) })
	return sections, nil
}

// Sidebar returns the sidebar map, or nil when no section was found.
func (b *Builder) Sidebar() (Sidebar, error) {
	sections, err := b.Sections()
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, nil
	}
	sidebar := make(Sidebar, len(sections))
	for _, s := range sections {
		sidebar[s.Key] = s.Items
	}
	return sidebar, nil
}

// Nav returns the top navigation, or nil when it would be empty.
func (b *Builder) Nav() ([]NavEntry, error) {
	nb := &navBuilder{
		walker: docs.NewWalker(b.fsys, b.opts.Walker),
		sorter: NewSorter(b.opts.Locale),
		opts:   b.opts,
	}
	entries, err := nb.entries()
	b.recorder.AddDocuments(nb.documents)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries, nil
}

// Build runs the sidebar and navigation passes and reports them as one build.
func (b *Builder) Build() (*Result, error) {
	res := &Result{BuildID: uuid.NewString()}
	log := slog.With(logfields.BuildID(res.BuildID))
	start := time.Now()

	fail := func(stage string, err error) (*Result, error) {
		b.recorder.IncBuildOutcome(metrics.OutcomeFailed)
		log.Error("Menu build failed", logfields.Stage(stage), logfields.Error(err))
		return nil, err
	}

	stageStart := time.Now()
	sidebar, err := b.Sidebar()
	if err != nil {
		return fail(StageSidebar, err)
	}
	b.recorder.ObserveStageDuration(StageSidebar, time.Since(stageStart))
	res.Sidebar = sidebar

	stageStart = time.Now()
	nav, err := b.Nav()
	if err != nil {
		return fail(StageNav, err)
	}
	b.recorder.ObserveStageDuration(StageNav, time.Since(stageStart))
	res.Nav = nav

	elapsed := time.Since(start)
	b.recorder.ObserveBuildDuration(elapsed)
	b.recorder.SetSidebarSections(len(sidebar))
	b.recorder.SetNavEntries(len(nav))

	if sidebar == nil && nav == nil {
		b.recorder.IncBuildOutcome(metrics.OutcomeEmpty)
		log.Warn("No documentation content found, menus omitted")
		return res, nil
	}
	b.recorder.IncBuildOutcome(metrics.OutcomeSuccess)
	log.Info("Menu build completed",
		slog.Int("sidebar_sections", len(sidebar)),
		slog.Int("nav_entries", len(nav)),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	return res, nil
}
