package graph

import "encoding/json"

// Supported document encodings.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// =============================================================================
// Document - Node-Link Input Format
// =============================================================================

// Document is the node-link input format.
type Document struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// Node is one node occurrence in a Document.
type Node struct {
	ID    string         `json:"id" yaml:"id"`
	Label string         `json:"label,omitempty" yaml:"label,omitempty"` // Display name (defaults to ID)
	Meta  map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is a directed edge between two node IDs.
type Edge struct {
	From  string         `json:"from" yaml:"from"`
	To    string         `json:"to" yaml:"to"`
	Label string         `json:"label,omitempty" yaml:"label,omitempty"` // Relationship type
	Meta  map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// EdgeKey identifies an edge by its endpoints and relationship type.
// It is comparable and can key a map directly.
type EdgeKey struct {
	From  string
	To    string
	Label string
}

// Key returns the identity of e. Edges with equal keys are the same edge.
func (e *Edge) Key() EdgeKey {
	return EdgeKey{From: e.From, To: e.To, Label: e.Label}
}

// String encodes k as a JSON array, ["from","to"] or ["from","to","label"].
// Distinct keys always encode differently, whatever characters the
// identifiers contain.
func (k EdgeKey) String() string {
	parts := []string{k.From, k.To}
	if k.Label != "" {
		parts = append(parts, k.Label)
	}
	data, _ := json.Marshal(parts)
	return string(data)
}
