// Package export turns node-link documents into tabular graph exports.
//
// This package composes the identifier enumerator, the property merger and
// the graph assembler into one pass, then hands the result to the sinks.
//
// # Architecture
//
// An export has two stages:
//
//  1. Build: enumerate node and edge labels, merge repeated occurrences'
//     properties, and assemble the graph with nodes sorted by identifier
//  2. Write: serialize the result as CSV tables, JSON, DOT or SVG, plus a
//     manifest describing the run
//
// # Usage
//
//	runner := export.NewRunner(logger)
//	opts := export.DefaultOptions()
//	opts.Formats = []string{export.FormatCSV, export.FormatJSON}
//	res, files, err := runner.Export(ctx, doc, opts, "out")
//
// # CSV Layout
//
// nodes.csv has the columns label, id, name followed by one column per
// property key (sorted). edges.csv has label, from, to, type and the edge
// property keys. Multi-valued properties are joined with the list separator.
// ids.csv maps every original identifier to its label.
package export

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/matzehuels/graphexport/pkg/errors"
	"github.com/matzehuels/graphexport/pkg/graph"
	"github.com/matzehuels/graphexport/pkg/idmap"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	DefaultNodePrefix    = "n"
	DefaultEdgePrefix    = "e"
	DefaultDelimiter     = ','
	DefaultListSeparator = ";"
)

// Format constants for output formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatCSV:  true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// Output file names.
const (
	FileNodes    = "nodes.csv"
	FileEdges    = "edges.csv"
	FileIDs      = "ids.csv"
	FileJSON     = "graph.json"
	FileDOT      = "graph.dot"
	FileSVG      = "graph.svg"
	FileManifest = "manifest.json"
)

// =============================================================================
// Options
// =============================================================================

// Options configures an export run.
type Options struct {
	NodePrefix    string   `json:"node_prefix"`
	EdgePrefix    string   `json:"edge_prefix"`
	Delimiter     rune     `json:"delimiter,omitempty"`
	ListSeparator string   `json:"list_separator,omitempty"`
	Formats       []string `json:"formats,omitempty"`
	RunID         string   `json:"run_id,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// DefaultOptions returns options with the default label prefixes.
func DefaultOptions() Options {
	return Options{
		NodePrefix: DefaultNodePrefix,
		EdgePrefix: DefaultEdgePrefix,
	}
}

// ValidateAndSetDefaults checks options and fills unset fields.
// Prefixes are never defaulted: an empty prefix yields bare numeric labels.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Delimiter == 0 {
		o.Delimiter = DefaultDelimiter
	}
	if o.ListSeparator == "" {
		o.ListSeparator = DefaultListSeparator
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatCSV}
	}
	if o.RunID == "" {
		o.RunID = uuid.NewString()
	}

	if err := errors.ValidatePrefix(o.NodePrefix); err != nil {
		return fmt.Errorf("node prefix: %w", err)
	}
	if err := errors.ValidatePrefix(o.EdgePrefix); err != nil {
		return fmt.Errorf("edge prefix: %w", err)
	}
	if err := ValidateDelimiter(o.Delimiter); err != nil {
		return err
	}
	if strings.ContainsRune(o.ListSeparator, o.Delimiter) {
		return errors.New(errors.ErrCodeInvalidInput, "list separator %q contains the delimiter %q", o.ListSeparator, o.Delimiter)
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	o.validated = true
	return nil
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: csv, json, dot, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDelimiter checks that r can separate CSV fields.
func ValidateDelimiter(r rune) error {
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError || !utf8.ValidRune(r) {
		return errors.New(errors.ErrCodeInvalidInput, "invalid delimiter: %q", r)
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// NodeRow is one exported node.
type NodeRow struct {
	Label      string              `json:"label"`
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Properties map[string][]string `json:"properties,omitempty"`
}

// EdgeRow is one exported edge. From and To are node labels.
type EdgeRow struct {
	Label      string              `json:"label"`
	From       string              `json:"from"`
	To         string              `json:"to"`
	Type       string              `json:"type,omitempty"`
	Properties map[string][]string `json:"properties,omitempty"`
}

// Result contains the outputs of the build stage.
type Result struct {
	// RunID identifies this export in logs and the manifest.
	RunID string

	// InputHash is the SHA-256 of the canonical JSON encoding of the input.
	InputHash string

	// Graph holds node rows sorted by original identifier and edge rows
	// in first-seen order.
	Graph graph.Graph[NodeRow, []EdgeRow]

	// NodeIDs and EdgeIDs hold the label assignments.
	NodeIDs *idmap.Map
	EdgeIDs *idmap.Map

	Stats Stats
}

// Stats contains build statistics.
type Stats struct {
	NodeCount      int
	EdgeCount      int
	DuplicateNodes int // Node occurrences merged into an earlier one
	DuplicateEdges int // Edge occurrences merged into an earlier one
	DanglingEdges  int // Edges with an endpoint that is not a declared node
	BuildTime      time.Duration
}
