// Package scene draws graphs onto the pages of a pdf.Document.
//
// A [Renderer] maps graph coordinates to the page once, from the bounding
// box of the node positions and arc control points, and then draws the
// graph in one of two modes:
//
//   - [Renderer.Draw]: nodes shaded by traversal state with labels, arcs as
//     arrowed lines or circular arcs, and weights when the graph is weighted
//   - [Renderer.DrawBeneath]: thick blue arcs without nodes, used to show a
//     spanning tree underneath the graph being traversed
//
// A [Bridge] turns traversal steps into pages. Each call to
// [Bridge.VisitNode] starts a page, highlights the visited node, embeds the
// current graph as a PDF comment, and draws the tree beneath the graph:
//
//	doc := pdf.New()
//	r := scene.New(doc, g)
//	b := scene.NewBridge(r)
//	for _, i := range order {
//	    if err := b.VisitNode(i, "BFS", tree); err != nil {
//	        return err
//	    }
//	}
//	b.Draw("Completed", tree)
//	return b.Finish(w)
//
// Neither type is safe for concurrent use; both write to the one Document
// they were built around.
package scene
