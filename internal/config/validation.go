package config

import (
	"strings"

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/docnav/internal/docs"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// Validate checks a defaulted configuration and returns the first problem
// as a classified config error.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateDocs,
		c.validateMenu,
		c.validateOutput,
		c.validateWatch,
	}
	for _, v := range validators {
		if err := v(); err != nil {
			return err
		}
	}
	return nil
}

func invalid(field, message string, value any) error {
	return ferrors.ConfigError(message).
		WithContext("field", field).
		WithContext("value", value).
		Build()
}

func (c *Config) validateDocs() error {
	if c.Docs.Root == "" {
		return invalid("docs.root", "docs root cannot be empty", c.Docs.Root)
	}
	idx := c.Docs.IndexFile
	if idx == "" || strings.ContainsAny(idx, `/\`) {
		return invalid("docs.index_file", "index file must be a plain file name", idx)
	}
	if !docs.IsMarkdown(idx) {
		return invalid("docs.index_file", "index file must be a markdown file", idx)
	}
	if strings.HasPrefix(idx, c.Docs.HiddenPrefix) {
		return invalid("docs.index_file", "index file would be hidden", idx)
	}
	return nil
}

func (c *Config) validateMenu() error {
	if d := c.Sidebar.CollapseDepth; d != nil && *d < 0 {
		return invalid("sidebar.collapse_depth", "collapse depth cannot be negative", *d)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryConfig, "invalid locale").
			WithContext("field", "locale").
			WithContext("value", c.Locale).
			UserAction().
			Build()
	}
	return nil
}

func (c *Config) validateOutput() error {
	if _, err := formatNormalizer.NormalizeWithError("output format", string(c.Output.Format)); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryConfig, "unsupported output format").
			WithContext("field", "output.format").
			WithContext("value", string(c.Output.Format)).
			UserAction().
			Build()
	}
	if c.Output.Path == "" {
		return invalid("output.path", "output path cannot be empty", c.Output.Path)
	}
	return nil
}

func (c *Config) validateWatch() error {
	if c.Watch.Debounce < 0 {
		return invalid("watch.debounce", "debounce cannot be negative", c.Watch.Debounce.String())
	}
	if c.Watch.PollInterval < 0 {
		return invalid("watch.poll_interval", "poll interval cannot be negative", c.Watch.PollInterval.String())
	}
	return nil
}
