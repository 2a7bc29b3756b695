package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphexport/pkg/export"
	"github.com/matzehuels/graphexport/pkg/graph"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [graph.json|graph.yaml]",
		Short: "Summarize a graph document without writing output",
		Long: `Inspect reads a graph document and reports node and edge counts, repeated
node identifiers, edges whose endpoints are not declared as nodes, and the
property keys that an export would turn into columns.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0])
		},
	}
	return cmd
}

// inspection is the summary printed by inspect.
type inspection struct {
	stats     export.Stats
	repeated  []string
	dangling  []string
	nodeKeys  []string
	edgeKeys  []string
	inputHash string
}

func (c *CLI) runInspect(ctx context.Context, input string) error {
	prog := newProgress(loggerFromContext(ctx))

	doc, err := graph.ReadDocumentFile(input)
	if err != nil {
		return err
	}
	res, err := c.newRunner().Build(ctx, doc, export.DefaultOptions())
	if err != nil {
		return err
	}
	prog.done("Inspected " + input)

	printInspection(input, inspect(doc, res))
	return nil
}

// inspect derives the summary from the document and its build result.
func inspect(doc graph.Document, res *export.Result) inspection {
	seen := make(map[string]int, len(doc.Nodes))
	var repeated []string
	for _, n := range doc.Nodes {
		seen[n.ID]++
		if seen[n.ID] == 2 {
			repeated = append(repeated, n.ID)
		}
	}

	var dangling []string
	for id := range res.NodeIDs.All() {
		if _, ok := seen[id]; !ok {
			dangling = append(dangling, id)
		}
	}

	nodeKeys := map[string]struct{}{}
	for _, n := range res.Graph.Nodes {
		for k := range n.Properties {
			nodeKeys[k] = struct{}{}
		}
	}
	edgeKeys := map[string]struct{}{}
	for _, e := range res.Graph.Edges {
		for k := range e.Properties {
			edgeKeys[k] = struct{}{}
		}
	}

	return inspection{
		stats:     res.Stats,
		repeated:  repeated,
		dangling:  dangling,
		nodeKeys:  graph.SortedKeys(nodeKeys),
		edgeKeys:  graph.SortedKeys(edgeKeys),
		inputHash: res.InputHash,
	}
}

func printInspection(input string, in inspection) {
	printNewline()
	fmt.Println(StyleTitle.Render(input))
	printKeyValue("Nodes", StyleNumber.Render(fmt.Sprint(in.stats.NodeCount)))
	printKeyValue("Edges", StyleNumber.Render(fmt.Sprint(in.stats.EdgeCount)))
	printKeyValue("Node keys", joinOrNone(in.nodeKeys))
	printKeyValue("Edge keys", joinOrNone(in.edgeKeys))
	printKeyValue("Input hash", StyleDim.Render(shortHash(in.inputHash)))

	if len(in.repeated) > 0 {
		printNewline()
		printInfo("%d repeated node ids (merged on export)", len(in.repeated))
		for _, id := range in.repeated {
			printDetail("%s", id)
		}
	}
	if in.stats.DuplicateEdges > 0 {
		printInfo("%d repeated edges (merged on export)", in.stats.DuplicateEdges)
	}
	if len(in.dangling) > 0 {
		printNewline()
		printWarning("%d edge endpoints are not declared as nodes", len(in.dangling))
		for _, id := range in.dangling {
			printDetail("%s", id)
		}
	}
	printNewline()
}

func joinOrNone(keys []string) string {
	if len(keys) == 0 {
		return StyleDim.Render("none")
	}
	return strings.Join(keys, ", ")
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
