package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphexport/pkg/config"
	"github.com/matzehuels/graphexport/pkg/export"
	"github.com/matzehuels/graphexport/pkg/graph"
)

// exportFlags holds the raw flag values of the export command.
type exportFlags struct {
	output        string
	formats       string
	nodePrefix    string
	edgePrefix    string
	delimiter     string
	listSeparator string
	configPath    string
}

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export [graph.json|graph.yaml]",
		Short: "Export a graph document as CSV tables",
		Long: `Export reads a node-link graph document and writes tabular output.

Nodes and edges get enumerated labels (n1, n2, ... and e1, e2, ...) in the order
they first appear. Repeated nodes or edges are merged: their properties are
combined with duplicate values removed.

Output files (per format):
  csv   nodes.csv, edges.csv, ids.csv
  json  graph.json
  dot   graph.dot
  svg   graph.svg

A manifest.json describing the run is always written.`,
		Example: `  # Export to CSV next to the input
  graphexport export graph.json

  # Export CSV and SVG with custom prefixes
  graphexport export graph.yaml -o out -f csv,svg --node-prefix N --edge-prefix E

  # Tab-separated output
  graphexport export graph.json --delimiter tab`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			output := flags.output
			if output == "" {
				output = defaultOutputDir(args[0])
			}
			return c.runExport(cmd.Context(), args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output directory (default: <input>_export)")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", export.FormatCSV, "output formats: csv, json, dot, svg (comma-separated)")
	cmd.Flags().StringVar(&flags.nodePrefix, config.OptNodePrefix, export.DefaultNodePrefix, "label prefix for nodes")
	cmd.Flags().StringVar(&flags.edgePrefix, config.OptEdgePrefix, export.DefaultEdgePrefix, "label prefix for edges")
	cmd.Flags().StringVar(&flags.delimiter, config.OptDelimiter, string(export.DefaultDelimiter), "CSV field delimiter (single character or \"tab\")")
	cmd.Flags().StringVar(&flags.listSeparator, config.OptListSeparator, export.DefaultListSeparator, "separator for multi-valued properties")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/graphexport/config.toml)")

	return cmd
}

// options merges flag values with the config file. Flags the user set
// explicitly take precedence over file values.
func (f exportFlags) options(cmd *cobra.Command) (export.Options, error) {
	logger := loggerFromContext(cmd.Context())

	opts := export.DefaultOptions()
	opts.NodePrefix = f.nodePrefix
	opts.EdgePrefix = f.edgePrefix
	opts.ListSeparator = f.listSeparator

	delim, err := parseDelimiter(f.delimiter)
	if err != nil {
		return opts, err
	}
	opts.Delimiter = delim

	if opts.Formats, err = parseFormats(f.formats); err != nil {
		return opts, err
	}

	cfg, path, err := loadConfig(f.configPath)
	if err != nil {
		return opts, err
	}
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}

	explicit := config.Set{}
	for _, name := range []string{config.OptNodePrefix, config.OptEdgePrefix, config.OptDelimiter, config.OptListSeparator, config.OptFormats} {
		explicit[name] = cmd.Flags().Changed(name)
	}
	cfg.Apply(&opts, explicit)

	return opts, nil
}

// runExport reads the input document and writes the export to output.
func (c *CLI) runExport(ctx context.Context, input string, opts export.Options, output string) error {
	logger := loggerFromContext(ctx)

	doc, err := graph.ReadDocumentFile(input)
	if err != nil {
		return err
	}
	logger.Debug("read document", "path", input, "nodes", len(doc.Nodes), "edges", len(doc.Edges))

	res, files, err := c.newRunner().Export(ctx, doc, opts, output)
	if err != nil {
		return err
	}

	printSuccess("Exported %s", StyleHighlight.Render(input))
	for _, f := range files {
		printFile(f)
	}
	printStats(res.Stats)
	if res.Stats.DanglingEdges > 0 {
		printWarning("%d edges reference undeclared nodes", res.Stats.DanglingEdges)
	}
	printNewline()
	printNextStep("Inspect the input", fmt.Sprintf("%s inspect %s", appName, input))
	return nil
}
