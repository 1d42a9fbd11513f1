// Package io provides JSON import and export for stepdoc graphs.
//
// # Overview
//
// The text format read by graph.Read is what people write by hand. API
// clients and other tools usually prefer JSON, so this package maps a
// [graph.Graph] to and from the [graph.Wire] document:
//
//	{
//	  "directed": true,
//	  "weighted": true,
//	  "nodes": [
//	    {"name": "A", "pos": [0, 0]},
//	    {"name": "B", "pos": [2, 0], "value": 3}
//	  ],
//	  "arcs": [
//	    {"from": 1, "to": 2, "weight": 4, "point": [1, 0.5]}
//	  ]
//	}
//
// # Node Fields
//
// All optional:
//   - name: display name
//   - value: numeric value shown with the ShowNodeValues flag
//   - state: "active", "visited" or "finished"
//   - pos: [x, y] position in graph units; graphs without positions are
//     laid out automatically before drawing
//
// # Arc Fields
//
// Required:
//   - from, to: 1-based node indices
//
// Optional:
//   - weight: positive weight (defaults to 1)
//   - point: [x, y] control point; the arc is drawn as a circular arc
//     through it
//
// # Import
//
// Use [ImportJSON] to read a graph from a file path, or [ReadJSON] to read
// from any io.Reader. Both validate node indices and weights and return
// errors coded errors.ErrCodeInvalidFormat for malformed JSON.
//
// # Export
//
// Use [ExportJSON] to write a graph to a file, or [WriteJSON] to write to any
// io.Writer. Export followed by import reproduces the graph exactly.
package io
