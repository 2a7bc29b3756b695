package graph

import (
	"maps"
	"slices"
)

// Graph is an assembled graph with deterministically ordered nodes.
type Graph[N, E any] struct {
	Nodes []N `json:"nodes" yaml:"nodes"`
	Edges E   `json:"edges" yaml:"edges"`
}

// Assemble builds a Graph from a node mapping and a prepared edge value.
// Nodes are the values of nodes in ascending key order. Edges is returned
// as given.
func Assemble[N, E any](nodes map[string]N, edges E) Graph[N, E] {
	keys := SortedKeys(nodes)
	out := make([]N, len(keys))
	for i, k := range keys {
		out[i] = nodes[k]
	}
	return Graph[N, E]{Nodes: out, Edges: edges}
}

// SortedKeys returns the keys of nodes in the order Assemble uses.
func SortedKeys[N any](nodes map[string]N) []string {
	return slices.Sorted(maps.Keys(nodes))
}
