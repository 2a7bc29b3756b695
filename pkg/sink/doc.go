// Package sink serializes exported graphs.
//
// A sink turns already-assembled rows or graphs into bytes:
//
//   - [CSVWriter]: delimited text via the [RowWriter] capability
//   - [WriteJSON]: indented JSON
//   - [ToDOT] and [RenderSVG]: Graphviz DOT source and its SVG rendering
//
// Sinks do not reorder or validate their input. Determinism is the caller's
// job; given the same rows a sink produces the same bytes.
package sink
