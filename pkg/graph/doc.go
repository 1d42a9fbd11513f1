// Package graph holds the weighted directed graphs that stepdoc draws.
//
// A [Graph] is a fixed set of nodes addressed by zero-based index, an
// adjacency matrix of positive arc weights, and the per-node display state
// that traversals mutate between pages: [State], [Flags], a numeric value,
// a name and a page position. Arcs may carry a control point, in which case
// the renderer draws them as circular arcs through it.
//
// # Text Format
//
// Graphs are exchanged in a line oriented text format. Node indices are
// 1-based in the file:
//
//	Graph
//	3
//	node "A"
//	node "B"
//	node "C"
//	weighted_arc 1 2 4
//	arc 2 3
//	node_pos 1 0 0
//	node_pos 2 1 0
//	node_pos 3 2 1
//	arc_point 2 3 1.8 0.2
//
// Use [Read] to parse this format and [Graph.Write] to produce it. Blank
// lines and lines starting with # are ignored, and a line holding just q
// ends the input early.
//
// # JSON
//
// [Wire] is the JSON and BSON form of a graph, used by the HTTP API and the
// document archive. [ToWire] and [FromWire] convert between the two.
//
// # Errors
//
// Reading errors carry the errors.ErrCodeInvalidGraph code and a
// source:line prefix. Mutators reject bad node indices with
// errors.ErrCodeIndexRange. Queries on bad indices return zero values.
package graph
