package export

import (
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/graphexport/pkg/sink"
)

// NodeTable lays out node rows as label, id, name and one column per
// property key. Multi-valued cells are joined with sep.
func NodeTable(nodes []NodeRow, sep string) sink.Table {
	keys := propertyKeys(len(nodes), func(i int) map[string][]string { return nodes[i].Properties })
	t := sink.Table{
		Header: append([]string{"label", "id", "name"}, keys...),
		Rows:   make([][]string, len(nodes)),
	}
	for i, n := range nodes {
		row := append(make([]string, 0, 3+len(keys)), n.Label, n.ID, n.Name)
		t.Rows[i] = appendCells(row, n.Properties, keys, sep)
	}
	return t
}

// EdgeTable lays out edge rows as label, from, to, type and one column per
// property key.
func EdgeTable(edges []EdgeRow, sep string) sink.Table {
	keys := propertyKeys(len(edges), func(i int) map[string][]string { return edges[i].Properties })
	t := sink.Table{
		Header: append([]string{"label", "from", "to", "type"}, keys...),
		Rows:   make([][]string, len(edges)),
	}
	for i, e := range edges {
		row := append(make([]string, 0, 4+len(keys)), e.Label, e.From, e.To, e.Type)
		t.Rows[i] = appendCells(row, e.Properties, keys, sep)
	}
	return t
}

// IDTable maps original identifiers to labels in first-seen order.
func IDTable(res *Result) sink.Table {
	t := sink.Table{Header: []string{"id", "label", "kind"}}
	for id, label := range res.NodeIDs.All() {
		t.Rows = append(t.Rows, []string{id, label, "node"})
	}
	for id, label := range res.EdgeIDs.All() {
		t.Rows = append(t.Rows, []string{id, label, "edge"})
	}
	return t
}

// propertyKeys returns the sorted union of property keys over n rows.
func propertyKeys(n int, at func(int) map[string][]string) []string {
	seen := make(map[string]struct{})
	for i := range n {
		for k := range at(i) {
			seen[k] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

func appendCells(row []string, props map[string][]string, keys []string, sep string) []string {
	for _, k := range keys {
		row = append(row, strings.Join(props[k], sep))
	}
	return row
}
