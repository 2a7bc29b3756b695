// Package graph assembles and reads node-link graphs.
//
// This package sits at both ends of an export: it decodes the node-link
// documents graphexport consumes, and it assembles the ordered graph value the
// sinks serialize.
//
// # Assembly
//
// [Assemble] turns an unordered node mapping into a [Graph] whose nodes are
// ordered by sorting the mapping's keys:
//
//	g := graph.Assemble(map[string]string{"b": "B", "a": "A"}, []string{})
//	// g.Nodes == []string{"A", "B"}
//
// Node order is a pure function of the key set, so output is reproducible
// regardless of Go's randomized map iteration. Edges are passed through
// untouched; nothing checks that they reference known nodes.
//
// # Document Format
//
// Input documents use a simple node-link format, as JSON or YAML:
//
//	{
//	  "nodes": [{"id": "app", "meta": {"version": "1.0"}}, {"id": "lib"}],
//	  "edges": [{"from": "app", "to": "lib", "label": "DEPENDS_ON"}]
//	}
//
// Node IDs may repeat; the export pipeline merges the properties of repeated
// occurrences. Meta values may be scalars, lists or nested objects.
//
// Common operations:
//
//	doc, _ := graph.ReadDocumentFile("deps.yaml")     // File → Document
//	doc, _ := graph.ReadDocument(r, graph.FormatJSON) // io.Reader → Document
//
// # Concurrency
//
// Assemble does not retain its arguments beyond the returned value; the
// returned Edges alias the input.
package graph
