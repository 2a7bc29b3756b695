package export

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphexport/pkg/graph"
	"github.com/matzehuels/graphexport/pkg/idmap"
	"github.com/matzehuels/graphexport/pkg/props"
)

// Runner executes exports.
//
// The Runner holds no per-export state, so one Runner may serve several
// exports in sequence.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// nodeAcc accumulates every occurrence of one node identifier.
type nodeAcc struct {
	label string
	name  string
	named bool // an explicit label has been taken
	props *props.Properties[string]
}

// edgeAcc accumulates every occurrence of one edge key.
type edgeAcc struct {
	row   EdgeRow
	props *props.Properties[string]
}

// Build enumerates labels, merges properties and assembles the graph.
func (r *Runner) Build(ctx context.Context, doc graph.Document, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	start := time.Now()

	hash, err := hashDocument(doc)
	if err != nil {
		r.Logger.Warn("input hash unavailable", "err", err)
	}

	res := &Result{
		RunID:     opts.RunID,
		InputHash: hash,
		NodeIDs:   idmap.New(opts.NodePrefix),
		EdgeIDs:   idmap.New(opts.EdgePrefix),
	}

	nodes := make(map[string]*nodeAcc, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		acc, ok := nodes[n.ID]
		if !ok {
			acc = &nodeAcc{
				label: res.NodeIDs.Resolve(n.ID),
				name:  n.ID,
				props: props.New[string](),
			}
			nodes[n.ID] = acc
		} else {
			res.Stats.DuplicateNodes++
		}
		// The first explicit label wins over the ID fallback.
		if n.Label != "" && !acc.named {
			acc.name = n.Label
			acc.named = true
		}
		acc.props.Merge(metaPairs(n.Meta)...)
	}

	var edges []*edgeAcc
	edgeIndex := make(map[graph.EdgeKey]int, len(doc.Edges))
	for _, e := range doc.Edges {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		key := e.Key()
		idx, seen := edgeIndex[key]
		if seen {
			res.Stats.DuplicateEdges++
		} else {
			_, fromOK := nodes[e.From]
			_, toOK := nodes[e.To]
			if !fromOK || !toOK {
				res.Stats.DanglingEdges++
				r.Logger.Warn("edge references undeclared node", "from", e.From, "to", e.To)
			}
			idx = len(edges)
			edgeIndex[key] = idx
			edges = append(edges, &edgeAcc{
				row: EdgeRow{
					Label: res.EdgeIDs.Resolve(key.String()),
					From:  res.NodeIDs.Resolve(e.From),
					To:    res.NodeIDs.Resolve(e.To),
					Type:  e.Label,
				},
				props: props.New[string](),
			})
		}
		edges[idx].props.Merge(metaPairs(e.Meta)...)
	}

	rows := make(map[string]NodeRow, len(nodes))
	for id, acc := range nodes {
		rows[id] = NodeRow{Label: acc.label, ID: id, Name: acc.name, Properties: nonEmpty(acc.props.Map())}
	}
	edgeRows := make([]EdgeRow, len(edges))
	for i, acc := range edges {
		row := acc.row
		row.Properties = nonEmpty(acc.props.Map())
		edgeRows[i] = row
	}

	res.Graph = graph.Assemble(rows, edgeRows)
	res.Stats.NodeCount = len(res.Graph.Nodes)
	res.Stats.EdgeCount = len(res.Graph.Edges)
	res.Stats.BuildTime = time.Since(start)

	r.Logger.Debug("built export",
		"run", res.RunID,
		"nodes", res.Stats.NodeCount,
		"edges", res.Stats.EdgeCount,
		"duplicates", res.Stats.DuplicateNodes+res.Stats.DuplicateEdges,
		"duration", res.Stats.BuildTime)

	return res, nil
}

// metaPairs converts a meta object into property updates, one per key in
// sorted order. Lists contribute each element; everything else one value.
func metaPairs(meta map[string]any) []props.Pair[string] {
	if len(meta) == 0 {
		return nil
	}
	pairs := make([]props.Pair[string], 0, len(meta))
	for _, k := range slices.Sorted(maps.Keys(meta)) {
		pairs = append(pairs, props.Pair[string]{Key: k, Values: metaValues(meta[k])})
	}
	return pairs
}

func metaValues(v any) []string {
	switch v := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			out = append(out, formatValue(item))
		}
		return out
	case []string:
		return v
	default:
		return []string{formatValue(v)}
	}
}

// formatValue renders a scalar as its cell text and anything structured as
// compact JSON.
func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

// nonEmpty returns nil for an empty map so rows without properties omit them.
func nonEmpty(m map[string][]string) map[string][]string {
	if len(m) == 0 {
		return nil
	}
	return m
}

// hashDocument computes a SHA-256 over the canonical JSON of doc.
// encoding/json sorts map keys, so equal documents hash equally.
func hashDocument(doc graph.Document) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("hash input: %w", err)
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:]), nil
}
