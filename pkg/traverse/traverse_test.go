package traverse

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/geom"
	"github.com/matzehuels/stepdoc/pkg/graph"
	"github.com/matzehuels/stepdoc/pkg/pdf"
	"github.com/matzehuels/stepdoc/pkg/scene"
)

// chain returns 0→1→…→n-1 laid out on a line.
func chain(t *testing.T, n int) *graph.Graph {
	t.Helper()
	g := graph.New(n)
	for i := range n {
		require.NoError(t, g.SetPosition(i, geom.Pt(float64(i), 0)))
		if i > 0 {
			_, err := g.AddArc(i-1, i)
			require.NoError(t, err)
		}
	}
	return g
}

// diamond is 0→1, 0→2, 1→3, 2→3 with 3→0 closing a cycle.
func diamond(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(4)
	for _, a := range []graph.Arc{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}, {From: 2, To: 3}, {From: 3, To: 0}} {
		_, err := g.AddArc(a.From, a.To)
		require.NoError(t, err)
	}
	return g
}

// recorder captures the node states at every step.
type recorder struct {
	g      *graph.Graph
	visits []int
	states [][]graph.State
	draws  []string
	fail   int
}

func (r *recorder) VisitNode(i int, _ string, _ *graph.Graph) error {
	if r.fail > 0 && len(r.visits) == r.fail {
		return fmt.Errorf("visitor failed")
	}
	r.visits = append(r.visits, i)
	var s []graph.State
	for _, n := range r.g.Nodes() {
		s = append(s, n.State)
	}
	r.states = append(r.states, s)
	return nil
}

func (r *recorder) Draw(annotation string, _ *graph.Graph) error {
	r.draws = append(r.draws, annotation)
	return nil
}

func TestBreadthFirstEndToEnd(t *testing.T) {
	g := chain(t, 5)
	doc := pdf.New()
	r := scene.New(doc, g)
	tree, err := BreadthFirst(g, 0, WithVisitor(scene.NewBridge(r)))
	require.NoError(t, err)

	// One page per discovered node plus the completed page.
	require.Equal(t, 6, doc.PageCount())
	assert.Equal(t, "Breadth-first traversal: visiting node 1", doc.Page(0).Annotation)
	assert.Equal(t, "Completed breadth-first traversal", doc.Page(5).Annotation)

	halo := haloStart(r, g, 0)
	first := doc.Page(0).Content.String()
	assert.Contains(t, first, "%node_state 1 active\n")
	assert.Contains(t, first, halo, "node 1 is highlighted on its own page")
	for p := 1; p < 6; p++ {
		s := doc.Page(p).Content.String()
		assert.NotContains(t, s, halo, "page %d", p)
		if p < 5 {
			assert.Contains(t, s, "%node_state 1 finished\n", "page %d", p)
		}
	}

	assert.Equal(t, []graph.Arc{{From: 1, To: 0}, {From: 2, To: 1}, {From: 3, To: 2}, {From: 4, To: 3}}, tree.Arcs())

	var out bytes.Buffer
	require.NoError(t, doc.Finish(&out))
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF-1.4\n")))
}

// haloStart is the moveto that begins the highlight halo around node i.
func haloStart(r *scene.Renderer, g *graph.Graph, i int) string {
	c := r.Transform().Apply(g.Node(i).Pos)
	return fmt.Sprintf("%.3f %.3f m\n", c.X+1.618*scene.NodeRadius, c.Y)
}

func TestBreadthFirstStates(t *testing.T) {
	g := diamond(t)
	rec := &recorder{g: g}
	var steps []Step
	tree, err := BreadthFirst(g, 0, WithVisitor(rec), WithOnVisit(func(s Step) { steps = append(steps, s) }))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, rec.visits)
	want := [][]graph.State{
		{graph.Active, graph.NoState, graph.NoState, graph.NoState},
		{graph.Finished, graph.Active, graph.NoState, graph.NoState},
		{graph.Finished, graph.Active, graph.Active, graph.NoState},
		{graph.Finished, graph.Finished, graph.Active, graph.Active},
	}
	if diff := cmp.Diff(want, rec.states); diff != "" {
		t.Errorf("states mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"Completed breadth-first traversal"}, rec.draws)
	assert.Equal(t, []graph.Arc{{From: 1, To: 0}, {From: 2, To: 0}, {From: 3, To: 1}}, tree.Arcs())
	assert.Equal(t, Step{Seq: 3, Node: 3, Parent: 1}, steps[3])
	assert.Equal(t, -1, steps[0].Parent)
	for i := range 4 {
		assert.Equal(t, graph.Finished, g.Node(i).State)
	}
}

func TestDepthFirst(t *testing.T) {
	g := diamond(t)
	_ = g.SetNodeState(3, graph.Visited) // reset by the traversal
	rec := &recorder{g: g}
	tree, err := DepthFirst(g, 0, WithVisitor(rec), WithAnnotation("DFS"))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3, 2}, rec.visits)
	want := [][]graph.State{
		{graph.Active, graph.NoState, graph.NoState, graph.NoState},
		{graph.Active, graph.Active, graph.NoState, graph.NoState},
		{graph.Active, graph.Active, graph.NoState, graph.Active},
		{graph.Active, graph.Finished, graph.Active, graph.Finished},
	}
	if diff := cmp.Diff(want, rec.states); diff != "" {
		t.Errorf("states mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"Running depth-first traversal", "Completed depth-first traversal"}, rec.draws)
	assert.Equal(t, []graph.Arc{{From: 1, To: 0}, {From: 2, To: 0}, {From: 3, To: 1}}, tree.Arcs())
}

func TestDepthFirstPages(t *testing.T) {
	g := chain(t, 3)
	doc := pdf.New()
	_, err := DepthFirst(g, 1, WithVisitor(scene.NewBridge(scene.New(doc, g))))
	require.NoError(t, err)
	// Running page, nodes 2 and 3, completed page.
	require.Equal(t, 4, doc.PageCount())
	assert.Equal(t, "Running depth-first traversal", doc.Page(0).Annotation)
	assert.Equal(t, "Depth-first traversal: visiting node 3", doc.Page(2).Annotation)
}

func weighted(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New(5)
	for _, a := range []struct {
		from, to int
		w        float64
	}{
		{0, 1, 4}, {0, 2, 1}, {2, 1, 2}, {1, 3, 1}, {2, 3, 5},
	} {
		_, err := g.AddWeightedArc(a.from, a.to, a.w)
		require.NoError(t, err)
	}
	g.SetWeighted(true)
	return g
}

func TestShortestPaths(t *testing.T) {
	g := weighted(t)
	rec := &recorder{g: g}
	var steps []Step
	tree, err := ShortestPaths(g, 0, WithVisitor(rec), WithOnVisit(func(s Step) { steps = append(steps, s) }))
	require.NoError(t, err)

	// Node 5 is unreachable and never settled.
	assert.Equal(t, []int{0, 2, 1, 3}, rec.visits)
	assert.Equal(t, []graph.Arc{{From: 1, To: 2}, {From: 2, To: 0}, {From: 3, To: 1}}, tree.Arcs())
	assert.Equal(t, []string{"Completed shortest paths"}, rec.draws)

	// While node 3 (index 2) is settled, 2 was reached through 1 and 4 not at all.
	assert.Equal(t, []graph.State{graph.Finished, graph.Visited, graph.Active, graph.NoState, graph.NoState}, rec.states[1])

	var dists []float64
	for _, s := range steps {
		dists = append(dists, s.Distance)
	}
	assert.Equal(t, []float64{0, 1, 3, 4}, dists)
	assert.Equal(t, 3.0, g.Node(1).Value)
	assert.True(t, math.IsInf(g.Node(4).Value, 1))
	assert.Equal(t, graph.NoState, g.Node(4).State)
}

func TestShortestPathsTieBreak(t *testing.T) {
	g := graph.New(3)
	_, _ = g.AddArc(0, 1)
	_, _ = g.AddArc(0, 2)
	rec := &recorder{g: g}
	_, err := ShortestPaths(g, 0, WithVisitor(rec))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, rec.visits)
}

func TestDistances(t *testing.T) {
	g := weighted(t)
	d, err := Distances(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 1, 4, math.Inf(1)}, d)

	d, err = Distances(g, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d[3])
	for _, i := range []int{0, 1, 2, 4} {
		assert.True(t, math.IsInf(d[i], 1), "node %d", i+1)
	}
}

func TestBadStart(t *testing.T) {
	g := chain(t, 2)
	runs := map[string]func() error{
		"BreadthFirst":  func() error { _, err := BreadthFirst(g, 2); return err },
		"DepthFirst":    func() error { _, err := DepthFirst(g, -1); return err },
		"ShortestPaths": func() error { _, err := ShortestPaths(g, 5); return err },
		"Distances":     func() error { _, err := Distances(g, 2); return err },
	}
	for name, run := range runs {
		t.Run(name, func(t *testing.T) {
			assert.True(t, errors.Is(run(), errors.ErrCodeIndexRange))
		})
	}
}

func TestVisitorErrorStops(t *testing.T) {
	g := chain(t, 5)
	rec := &recorder{g: g, fail: 2}
	_, err := BreadthFirst(g, 0, WithVisitor(rec))
	require.EqualError(t, err, "visitor failed")
	assert.Len(t, rec.visits, 2)
	assert.Empty(t, rec.draws)
}

func TestContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var seen int
	_, err := DepthFirst(chain(t, 4), 0, WithContext(ctx), WithOnVisit(func(Step) {
		seen++
		if seen == 2 {
			cancel()
		}
	}))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, seen)
}

func TestTooManyPagesAbortsTraversal(t *testing.T) {
	g := chain(t, 5)
	doc := pdf.New(pdf.WithMaxPages(3))
	_, err := BreadthFirst(g, 0, WithVisitor(scene.NewBridge(scene.New(doc, g))))
	assert.True(t, errors.Is(err, errors.ErrCodeTooManyPages))

	var out bytes.Buffer
	assert.Error(t, doc.Finish(&out))
	assert.Zero(t, out.Len())
	assert.False(t, strings.Contains(out.String(), "%PDF"))
}
