// Package config loads graphexport's optional TOML configuration file.
//
// The file lives at $XDG_CONFIG_HOME/graphexport/config.toml (falling back to
// ~/.config/graphexport/config.toml) unless a path is given explicitly:
//
//	[export]
//	node_prefix    = "node"
//	edge_prefix    = "rel"
//	delimiter      = "\t"
//	list_separator = "|"
//	formats        = ["csv", "json"]
//
// Values from the file only fill options that were not set on the command
// line. Unknown keys are rejected so typos do not pass silently.
package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/graphexport/pkg/errors"
	"github.com/matzehuels/graphexport/pkg/export"
)

// appName is used for the configuration directory.
const appName = "graphexport"

// Config is the decoded configuration file.
type Config struct {
	Export ExportSection `toml:"export"`
}

// ExportSection holds export defaults. Pointer fields distinguish "unset"
// from an explicit empty value.
type ExportSection struct {
	NodePrefix    *string  `toml:"node_prefix"`
	EdgePrefix    *string  `toml:"edge_prefix"`
	Delimiter     string   `toml:"delimiter"`
	ListSeparator string   `toml:"list_separator"`
	Formats       []string `toml:"formats"`
}

// Set reports which option names were given explicitly by the caller.
type Set map[string]bool

// Option names understood by Apply.
const (
	OptNodePrefix    = "node-prefix"
	OptEdgePrefix    = "edge-prefix"
	OptDelimiter     = "delimiter"
	OptListSeparator = "list-separator"
	OptFormats       = "format"
)

// Load decodes the file at path.
func Load(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// LoadDefault loads the file at DefaultPath. A missing file is not an error
// and yields an empty Config.
func LoadDefault() (Config, string, error) {
	path, err := DefaultPath()
	if err != nil {
		return Config{}, "", nil
	}
	if _, err := os.Stat(path); stderrors.Is(err, os.ErrNotExist) {
		return Config{}, "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

// DefaultPath returns the config file location using the XDG convention.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

func (c Config) validate() error {
	if d := c.Export.Delimiter; d != "" && utf8.RuneCountInString(d) != 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "delimiter must be a single character, got %q", d)
	}
	return export.ValidateFormats(c.Export.Formats)
}

// Apply fills opts with file values for every option not in explicit.
func (c Config) Apply(opts *export.Options, explicit Set) {
	e := c.Export
	if e.NodePrefix != nil && !explicit[OptNodePrefix] {
		opts.NodePrefix = *e.NodePrefix
	}
	if e.EdgePrefix != nil && !explicit[OptEdgePrefix] {
		opts.EdgePrefix = *e.EdgePrefix
	}
	if e.Delimiter != "" && !explicit[OptDelimiter] {
		r, _ := utf8.DecodeRuneInString(e.Delimiter)
		opts.Delimiter = r
	}
	if e.ListSeparator != "" && !explicit[OptListSeparator] {
		opts.ListSeparator = e.ListSeparator
	}
	if len(e.Formats) > 0 && !explicit[OptFormats] {
		opts.Formats = append([]string(nil), e.Formats...)
	}
}
