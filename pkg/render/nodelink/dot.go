package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/graph"
)

// Engines lists the Graphviz layout engines accepted by [Options].
var Engines = []string{"dot", "neato", "circo", "fdp", "twopi"}

// Options configures DOT generation.
type Options struct {
	// Engine selects the Graphviz layout program. Empty means "dot".
	Engine string
	// Names labels nodes with their names instead of their 1-based index.
	// Nameless nodes keep the index.
	Names bool
	// Pinned adds the graph's current positions as fixed pos attributes.
	// Only the neato and fdp engines honor them.
	Pinned bool
}

func (o Options) engine() string {
	if o.Engine == "" {
		return "dot"
	}
	return o.Engine
}

// ValidateEngine checks that name is one of [Engines].
func ValidateEngine(name string) error {
	for _, e := range Engines {
		if name == e {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidInput, "unknown layout engine %q (must be one of %s)", name, strings.Join(Engines, ", "))
}

// nodeID is the DOT identifier of node i. Layout relies on it to map
// Graphviz output back to indices.
func nodeID(i int) string { return "n" + strconv.Itoa(i+1) }

// ToDOT converts g to Graphviz DOT source. Directed graphs become a
// digraph, undirected ones a graph with each arc pair drawn once. Arc
// weights become edge labels when g is weighted.
func ToDOT(g *graph.Graph, opts Options) string {
	var buf bytes.Buffer
	kind, edge := "digraph", "->"
	if !g.Directed() {
		kind, edge = "graph", "--"
	}
	fmt.Fprintf(&buf, "%s G {\n", kind)
	fmt.Fprintf(&buf, "  layout=%s;\n", opts.engine())
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, fixedsize=true, width=0.33, fontname=\"Helvetica-Bold\", fontsize=12];\n")
	buf.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n")
	buf.WriteString("\n")

	for i, n := range g.Nodes() {
		attrs := []string{fmt.Sprintf("label=%q", label(i, n, opts))}
		if opts.Pinned && g.HasPositions() {
			attrs = append(attrs, fmt.Sprintf("pos=\"%s,%s!\"", num(n.Pos.X), num(n.Pos.Y)))
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeID(i), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, a := range g.Arcs() {
		if !g.Directed() && a.From > a.To && g.Adjacent(a.To, a.From) {
			continue
		}
		fmt.Fprintf(&buf, "  %s %s %s", nodeID(a.From), edge, nodeID(a.To))
		if g.Weighted() {
			fmt.Fprintf(&buf, " [label=%q]", num(g.ArcWeight(a.From, a.To)))
		}
		buf.WriteString(";\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func label(i int, n graph.Node, opts Options) string {
	if opts.Names && n.Name != "" {
		return n.Name
	}
	return strconv.Itoa(i + 1)
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	var buf bytes.Buffer
	if err := render(ctx, dot, "", graphviz.SVG, &buf); err != nil {
		return nil, err
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// render runs Graphviz on dot. A non-empty engine overrides the layout
// attribute of the source.
func render(ctx context.Context, dot, engine string, format graphviz.Format, buf *bytes.Buffer) error {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	if engine != "" {
		gv.SetLayout(graphviz.Layout(engine))
	}

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	if err := gv.Render(ctx, g, format, buf); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}
	return nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
