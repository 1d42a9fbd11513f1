// Package traverse runs graph traversals one step at a time, handing every
// step to a [Visitor] so that it can be drawn.
//
// Each traversal resets the node states of the graph it is given and then
// marks nodes as it goes: Active while a node is being worked on, Visited
// once a shortest path run has reached it, Finished when it is done. The
// spanning tree found so far is grown in a node subgraph of the input, with
// every tree arc pointing from child to parent, and is passed to the visitor
// so it can be drawn beneath the graph.
//
//	b := scene.NewBridge(scene.New(doc, g))
//	tree, err := traverse.BreadthFirst(g, 0, traverse.WithVisitor(b))
//
// Without a visitor the traversals only compute; [Distances] never draws.
package traverse
