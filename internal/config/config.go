package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docnav/internal/docs"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/menu"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "docnav.yaml"

// Config represents the application configuration.
type Config struct {
	Docs    DocsConfig    `yaml:"docs"`
	Sidebar SidebarConfig `yaml:"sidebar"`
	Nav     NavConfig     `yaml:"nav"`
	Locale  string        `yaml:"locale"`
	Output  OutputConfig  `yaml:"output"`
	Metrics MetricsConfig `yaml:"metrics"`
	Watch   WatchConfig   `yaml:"watch"`
}

// DocsConfig describes the documentation tree.
type DocsConfig struct {
	Root         string   `yaml:"root"`
	IndexFile    string   `yaml:"index_file"`
	HiddenPrefix string   `yaml:"hidden_prefix"`
	Ignore       []string `yaml:"ignore"`
}

// SidebarConfig holds sidebar rendering settings.
type SidebarConfig struct {
	// CollapseDepth is the deepest expanded group level. 0 collapses every
	// group; unset means menu.DefaultCollapseDepth.
	CollapseDepth *int `yaml:"collapse_depth,omitempty"`
}

// NavConfig holds top navigation settings.
type NavConfig struct {
	BreadcrumbSeparator string `yaml:"breadcrumb_separator"`
}

// OutputFormat selects the serialization of the generated menus.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// OutputConfig represents output configuration.
type OutputConfig struct {
	Path   string       `yaml:"path"`
	Format OutputFormat `yaml:"format"`
}

// MetricsConfig configures the Prometheus textfile export. An empty
// textfile disables it.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// WatchConfig configures rebuilds in watch mode.
type WatchConfig struct {
	Debounce     time.Duration `yaml:"debounce"`
	PollInterval time.Duration `yaml:"poll_interval"` // 0 disables periodic rebuilds
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	// The default appliers never fail on an empty configuration.
	_ = applyDefaults(cfg)
	return cfg
}

// Load reads, normalizes, defaults and validates the configuration at
// configPath. Environment variables in the file are expanded after .env
// files have been loaded.
func Load(configPath string) (*Config, error) {
	if _, err := loadEnvFile(); err != nil {
		slog.Debug("No .env file loaded", logfields.Error(err))
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.NewError(ferrors.CategoryNotFound, "configuration file not found").
				WithContext("path", configPath).
				UserAction().
				Build()
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}

	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal config").
			WithContext("path", configPath).
			UserAction().
			Build()
	}

	res := NormalizeConfig(&config)
	for _, w := range res.Warnings {
		slog.Warn("Config normalization", slog.String("detail", w))
	}
	if err := applyDefaults(&config); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Init writes an example configuration file.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return ferrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal config").Build()
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryOutput, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}

// WalkerOptions returns the tree listing options.
func (c *Config) WalkerOptions() docs.WalkerOptions {
	return docs.WalkerOptions{Ignore: c.Docs.Ignore, HiddenPrefix: c.Docs.HiddenPrefix}
}

// MenuOptions converts the configuration into menu builder options. The
// configuration must have been validated.
func (c *Config) MenuOptions() menu.Options {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		tag = menu.DefaultLocale
	}
	collapse := menu.DefaultCollapseDepth
	if c.Sidebar.CollapseDepth != nil {
		collapse = *c.Sidebar.CollapseDepth
	}
	if collapse == 0 {
		collapse = menu.CollapseAll
	}
	return menu.Options{
		IndexFile:           c.Docs.IndexFile,
		CollapseDepth:       collapse,
		BreadcrumbSeparator: c.Nav.BreadcrumbSeparator,
		Locale:              tag,
		Walker:              c.WalkerOptions(),
	}
}
