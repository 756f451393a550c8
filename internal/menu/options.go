package menu

import (
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/docnav/internal/docs"
)

const (
	// DefaultCollapseDepth is the deepest directory level whose sidebar group starts expanded.
	DefaultCollapseDepth = 2
	// CollapseAll starts every sidebar group collapsed.
	CollapseAll = -1
	// DefaultBreadcrumbSeparator joins path segments in dropdown group titles.
	DefaultBreadcrumbSeparator = " » "
)

// Options configures a Builder. Zero values fall back to the defaults; use
// CollapseAll to collapse groups at every depth.
type Options struct {
	IndexFile           string
	CollapseDepth       int
	BreadcrumbSeparator string
	Locale              language.Tag
	Walker              docs.WalkerOptions
}

func (o Options) withDefaults() Options {
	if o.IndexFile == "" {
		o.IndexFile = docs.DefaultIndexFile
	}
	if o.CollapseDepth == 0 {
		o.CollapseDepth = DefaultCollapseDepth
	}
	if o.BreadcrumbSeparator == "" {
		o.BreadcrumbSeparator = DefaultBreadcrumbSeparator
	}
	if o.Locale == language.Und {
		o.Locale = DefaultLocale
	}
	return o
}
