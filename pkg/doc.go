// Package pkg provides the core libraries for stepdoc, which draws graph
// algorithms one step per page into a PDF.
//
// # Overview
//
// A traversal of a small graph becomes a document: every page shows the
// whole graph with the nodes colored by their current state and a caption
// saying what just happened. The pkg directory is organized by layer:
//
//  1. [graph] - The graph model and its text and JSON formats
//  2. [traverse] - BFS, DFS and Dijkstra with a per-step visitor
//  3. [scene] - Turns graph state into drawing commands on a page
//  4. [pdf] - A minimal PDF 1.4 writer with the 14 standard fonts
//  5. [pipeline] - Orchestration (parse → layout → traverse → render)
//
// # Architecture
//
// The typical data flow:
//
//	Graph text or JSON
//	         ↓
//	    [graph] package (parse, validate)
//	         ↓
//	    [render/nodelink] package (Graphviz layout when positions are missing)
//	         ↓
//	    [traverse] package (one visitor call per step)
//	         ↓
//	    [scene] package (draw the graph onto a page)
//	         ↓
//	    [pdf] package (pages, objects, xref, trailer)
//
// # Quick Start
//
//	g, _ := graph.ReadBytes(src, "chain.graph")
//	res, err := pipeline.NewRunner(nil, nil, nil).Execute(ctx, pipeline.Options{
//	    Algorithm: pipeline.AlgorithmBFS,
//	    Title:     "Breadth-first search",
//	}, src)
//	os.WriteFile("chain.pdf", res.PDF, 0o644)
//
// # Main Packages
//
// ## Drawing
//
// [pdf] - Documents, pages, paths, text and the page-object limits that
// keep a document within PDF 1.4 reader limits.
//
// [fonts] - Metrics and MacRoman encoding for the standard PDF fonts.
//
// [geom] - Points and the small amount of vector math the scene needs.
//
// ## Infrastructure
//
// [cache] - Rendered documents keyed by a hash of the source and options.
// FileCache for the CLI, RedisCache for servers, NullCache for --no-cache.
//
// [io] - JSON import and export of graphs.
//
// [observability] - Pipeline hooks and structured logging.
//
// [errors] - Error codes shared by the CLI and the HTTP API.
//
// [buildinfo] - Version information set at link time.
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/stepdoc/pkg/graph
// [traverse]: https://pkg.go.dev/github.com/matzehuels/stepdoc/pkg/traverse
// [scene]: https://pkg.go.dev/github.com/matzehuels/stepdoc/pkg/scene
// [pdf]: https://pkg.go.dev/github.com/matzehuels/stepdoc/pkg/pdf
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/stepdoc/pkg/pipeline
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/stepdoc/pkg/render/nodelink
// [fonts]: https://pkg.go.dev/github.com/matzehuels/stepdoc/pkg/fonts
// [geom]: https://pkg.go.dev/github.com/matzehuels/stepdoc/pkg/geom
// [cache]: https://pkg.go.dev/github.com/matzehuels/stepdoc/pkg/cache
// [io]: https://pkg.go.dev/github.com/matzehuels/stepdoc/pkg/io
// [observability]: https://pkg.go.dev/github.com/matzehuels/stepdoc/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/stepdoc/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/stepdoc/pkg/buildinfo
package pkg
