package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphexport/pkg/buildinfo"
	"github.com/matzehuels/graphexport/pkg/config"
	"github.com/matzehuels/graphexport/pkg/errors"
	"github.com/matzehuels/graphexport/pkg/export"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "graphexport"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Graphexport turns node-link graphs into CSV tables",
		Long: `Graphexport reads a node-link graph document (JSON or YAML), assigns stable
enumerated labels to its nodes and edges, merges the properties of repeated
entries, and writes the result as CSV tables, JSON, DOT, or SVG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.exportCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates an export runner for CLI use.
func (c *CLI) newRunner() *export.Runner {
	return export.NewRunner(c.Logger)
}

// =============================================================================
// Options Helpers
// =============================================================================

// loadConfig reads the file at path, or the default config file when path is empty.
func loadConfig(path string) (config.Config, string, error) {
	if path != "" {
		cfg, err := config.Load(path)
		return cfg, path, err
	}
	return config.LoadDefault()
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return []string{export.FormatCSV}, nil
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		if err := export.ValidateFormat(f); err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// parseDelimiter accepts a single character, or "tab" / `\t` for a tab.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// defaultOutputDir derives the output directory from the input file name.
func defaultOutputDir(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return fmt.Sprintf("%s_export", base)
}
