// Package nodelink connects step graphs to Graphviz.
//
// # Overview
//
// Graphs read from text files often carry no node_pos lines. The step
// renderer needs a position for every node, so this package asks Graphviz
// for a layout and copies the node coordinates back into the graph. The
// same DOT source can also be rendered to SVG for a quick preview of the
// graph outside the PDF.
//
// # Usage
//
// Lay out a graph in place:
//
//	if !g.HasPositions() {
//	    if err := nodelink.Layout(ctx, g, nodelink.Options{}); err != nil {
//	        return err
//	    }
//	}
//
// Export DOT or SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Names: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Coordinates
//
// Graphviz reports positions in points with y growing upwards, the same
// orientation as PDF user space. [Layout] divides them by 72 so that the
// graph's default scale of 72 reproduces the Graphviz drawing size.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz], which runs Graphviz in
// process. No external binaries are needed.
package nodelink
