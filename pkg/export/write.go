package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphexport/pkg/buildinfo"
	"github.com/matzehuels/graphexport/pkg/errors"
	"github.com/matzehuels/graphexport/pkg/graph"
	"github.com/matzehuels/graphexport/pkg/observability"
	"github.com/matzehuels/graphexport/pkg/sink"
)

// Manifest describes one export run. It is written next to the outputs.
type Manifest struct {
	RunID     string         `json:"run_id"`
	Build     buildinfo.Info `json:"build"`
	InputHash string         `json:"input_hash"`
	Nodes     int            `json:"nodes"`
	Edges     int            `json:"edges"`
	Formats   []string       `json:"formats"`
	Files     []string       `json:"files"`
}

// Export runs Build and Write, reporting progress to the observability hooks.
func (r *Runner) Export(ctx context.Context, doc graph.Document, opts Options, dir string) (*Result, []string, error) {
	// Defaults first so the hooks and the result share one run ID.
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, fmt.Errorf("invalid options: %w", err)
	}

	start := time.Now()
	hooks := observability.Export()
	hooks.OnExportStart(ctx, opts.RunID, len(doc.Nodes), len(doc.Edges))

	res, err := r.Build(ctx, doc, opts)
	if err != nil {
		err = fmt.Errorf("build: %w", err)
		hooks.OnExportComplete(ctx, opts.RunID, time.Since(start), err)
		return nil, nil, err
	}

	files, err := r.Write(ctx, res, opts, dir)
	hooks.OnExportComplete(ctx, res.RunID, time.Since(start), err)
	if err != nil {
		return nil, nil, fmt.Errorf("write: %w", err)
	}

	r.Logger.Info("exported graph",
		"run", res.RunID,
		"nodes", res.Stats.NodeCount,
		"edges", res.Stats.EdgeCount,
		"files", len(files),
		"duration", time.Since(start).Round(time.Millisecond))

	return res, files, nil
}

// Write serializes res into dir in every requested format and adds a
// manifest. It returns the written paths in write order.
func (r *Runner) Write(ctx context.Context, res *Result, opts Options, dir string) ([]string, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
	}

	w := &fileWriter{ctx: ctx, dir: dir, logger: r.Logger}
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return w.files, err
		}
		if err := w.writeFormat(res, opts, format); err != nil {
			return w.files, err
		}
	}

	manifest := Manifest{
		RunID:     res.RunID,
		Build:     buildinfo.Current(),
		InputHash: res.InputHash,
		Nodes:     res.Stats.NodeCount,
		Edges:     res.Stats.EdgeCount,
		Formats:   opts.Formats,
		Files:     w.names(),
	}
	if err := w.write(FileManifest, FormatJSON, func(b *bytes.Buffer) error {
		return sink.WriteJSON(b, manifest)
	}); err != nil {
		return w.files, err
	}
	return w.files, nil
}

// fileWriter renders outputs into memory and writes them under dir.
type fileWriter struct {
	ctx    context.Context
	dir    string
	logger *log.Logger
	files  []string
}

func (w *fileWriter) writeFormat(res *Result, opts Options, format string) error {
	csvTable := func(name string, t sink.Table) error {
		return w.write(name, FormatCSV, func(b *bytes.Buffer) error {
			return sink.WriteTable(sink.NewCSVWriter(b, sink.WithDelimiter(opts.Delimiter)), t)
		})
	}

	switch format {
	case FormatCSV:
		if err := csvTable(FileNodes, NodeTable(res.Graph.Nodes, opts.ListSeparator)); err != nil {
			return err
		}
		if err := csvTable(FileEdges, EdgeTable(res.Graph.Edges, opts.ListSeparator)); err != nil {
			return err
		}
		return csvTable(FileIDs, IDTable(res))
	case FormatJSON:
		return w.write(FileJSON, format, func(b *bytes.Buffer) error {
			return sink.WriteJSON(b, res.Graph)
		})
	case FormatDOT:
		return w.write(FileDOT, format, func(b *bytes.Buffer) error {
			_, err := b.WriteString(sink.ToDOT(DOTGraph(res)))
			return err
		})
	case FormatSVG:
		return w.write(FileSVG, format, func(b *bytes.Buffer) error {
			svg, err := sink.RenderSVG(w.ctx, sink.ToDOT(DOTGraph(res)))
			if err != nil {
				return err
			}
			_, err = b.Write(svg)
			return err
		})
	default:
		return ValidateFormat(format)
	}
}

func (w *fileWriter) write(name, format string, render func(*bytes.Buffer) error) error {
	if err := errors.ValidateOutputName(name); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	observability.Export().OnSinkWrite(w.ctx, format, buf.Len())
	w.logger.Debug("wrote output", "file", path, "bytes", buf.Len())
	w.files = append(w.files, path)
	return nil
}

func (w *fileWriter) names() []string {
	out := make([]string, len(w.files))
	for i, f := range w.files {
		out[i] = filepath.Base(f)
	}
	return out
}

// DOTGraph converts res into the DOT sink's shape, naming nodes by label.
func DOTGraph(res *Result) sink.DOTGraph {
	g := sink.DOTGraph{
		Nodes: make([]sink.DOTNode, len(res.Graph.Nodes)),
		Edges: make([]sink.DOTEdge, len(res.Graph.Edges)),
	}
	for i, n := range res.Graph.Nodes {
		g.Nodes[i] = sink.DOTNode{ID: n.Label, Label: n.Name}
	}
	for i, e := range res.Graph.Edges {
		g.Edges[i] = sink.DOTEdge{From: e.From, To: e.To, Label: e.Type}
	}
	return g
}
