// Package pdf writes multi-page PDF 1.4 documents made of vector line art and
// text set in the fourteen builtin fonts.
//
// The package is an immediate-mode page-description engine: every drawing
// call appends one operator record to the content stream of the current
// page. Nothing is written until [Document.Finish], which serializes the
// catalog, page tree, font resources and content streams in a fixed order
// and computes the cross-reference table from the exact byte length of each
// object.
//
// # Coordinates
//
// Path operators take user coordinates and map them through the page
// transform (see [Document.SetTransform]) before formatting. The transform
// is reset to the identity whenever a new page starts, so callers that draw
// in their own coordinate system set it once per page.
//
// # Derived Operations
//
// Arcs and circles are approximated by cubic Bezier segments of at most π/8
// each. On top of the primitives the package provides rounded boxes,
// polylines, arrowheads, arrowed lines and arcs, anchored multi-line text
// and outlined label boxes.
//
// # Errors
//
// A Document carries a sticky error. The first failure (a record longer than
// [MaxRecord], more pages than the configured limit, a relative move with no
// current point) is recorded and every later operator becomes a no-op.
// [Document.Err] reports it and [Document.Finish] returns it without writing
// any bytes.
//
// # Concurrency
//
// A Document is not safe for concurrent use. Build each document on a single
// goroutine.
package pdf
