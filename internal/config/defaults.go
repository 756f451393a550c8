package config

import (
	"fmt"
	"time"

	"git.home.luguber.info/inful/docnav/internal/docs"
	"git.home.luguber.info/inful/docnav/internal/menu"
)

// Default values not owned by another package.
const (
	DefaultDocsRoot   = "./docs"
	DefaultOutputPath = "./docs/.vitepress/menu.json"
	DefaultLocale     = "zh"
	DefaultDebounce   = 300 * time.Millisecond
)

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// DocsDefaultApplier handles docs configuration defaults.
type DocsDefaultApplier struct{}

func (d *DocsDefaultApplier) Domain() string { return "docs" }

func (d *DocsDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Docs.Root == "" {
		cfg.Docs.Root = DefaultDocsRoot
	}
	if cfg.Docs.IndexFile == "" {
		cfg.Docs.IndexFile = docs.DefaultIndexFile
	}
	if cfg.Docs.HiddenPrefix == "" {
		cfg.Docs.HiddenPrefix = docs.DefaultHiddenPrefix
	}
	// An explicit empty list disables ignoring.
	if cfg.Docs.Ignore == nil {
		cfg.Docs.Ignore = append([]string(nil), docs.DefaultIgnore...)
	}
	return nil
}

// MenuDefaultApplier handles sidebar, navigation and locale defaults.
type MenuDefaultApplier struct{}

func (m *MenuDefaultApplier) Domain() string { return "menu" }

func (m *MenuDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Sidebar.CollapseDepth == nil {
		depth := menu.DefaultCollapseDepth
		cfg.Sidebar.CollapseDepth = &depth
	}
	if cfg.Nav.BreadcrumbSeparator == "" {
		cfg.Nav.BreadcrumbSeparator = menu.DefaultBreadcrumbSeparator
	}
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}
	return nil
}

// OutputDefaultApplier handles output configuration defaults.
type OutputDefaultApplier struct{}

func (o *OutputDefaultApplier) Domain() string { return "output" }

func (o *OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Output.Path == "" {
		cfg.Output.Path = DefaultOutputPath
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = FormatJSON
	}
	return nil
}

// WatchDefaultApplier handles watch mode defaults.
type WatchDefaultApplier struct{}

func (w *WatchDefaultApplier) Domain() string { return "watch" }

func (w *WatchDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = DefaultDebounce
	}
	return nil
}

// CompositeDefaultApplier applies defaults across all configuration domains.
type CompositeDefaultApplier struct {
	appliers []DefaultApplier
}

// NewDefaultApplier creates a composite default applier with all domain appliers.
func NewDefaultApplier() *CompositeDefaultApplier {
	return &CompositeDefaultApplier{
		appliers: []DefaultApplier{
			&DocsDefaultApplier{},
			&MenuDefaultApplier{},
			&OutputDefaultApplier{},
			&WatchDefaultApplier{},
		},
	}
}

// ApplyDefaults applies defaults for all configuration domains.
func (c *CompositeDefaultApplier) ApplyDefaults(cfg *Config) error {
	for _, applier := range c.appliers {
		if err := applier.ApplyDefaults(cfg); err != nil {
			return fmt.Errorf("applying defaults for %s: %w", applier.Domain(), err)
		}
	}
	return nil
}

// GetApplierByDomain returns a specific domain applier (useful for testing).
func (c *CompositeDefaultApplier) GetApplierByDomain(domain string) DefaultApplier {
	for _, applier := range c.appliers {
		if applier.Domain() == domain {
			return applier
		}
	}
	return nil
}

func applyDefaults(cfg *Config) error {
	return NewDefaultApplier().ApplyDefaults(cfg)
}
