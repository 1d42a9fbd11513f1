package graph

import (
	"bufio"
	"cmp"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Write emits g in the text format read by [Read]. Every line starts with
// prefix, which lets the output be embedded as PDF comments. Brief output
// leaves out names, positions, control points and the drawing options, and
// keeps what a traversal changes: values, states and arcs.
func (g *Graph) Write(w io.Writer, brief bool, prefix string) error {
	bw := bufio.NewWriter(w)
	line := func(parts ...string) {
		bw.WriteString(prefix)
		bw.WriteString(strings.Join(parts, " "))
		bw.WriteByte('\n')
	}

	line(Magic)
	line(strconv.Itoa(len(g.nodes)))
	if !brief {
		if !g.directed {
			line("undirected")
		}
		if g.scale != DefaultScale {
			line("scale", num(g.scale))
		}
		for _, n := range g.nodes {
			line("node", quote(n.Name))
		}
	}
	for i, n := range g.nodes {
		if n.Value != 0 {
			line("node_value", strconv.Itoa(i+1), num(n.Value))
		}
	}
	for i, n := range g.nodes {
		if n.State != NoState {
			line("node_state", strconv.Itoa(i+1), n.State.String())
		}
	}
	for _, a := range g.Arcs() {
		from, to := strconv.Itoa(a.From+1), strconv.Itoa(a.To+1)
		if g.weighted {
			line("weighted_arc", from, to, num(g.adj[a.From][a.To]))
		} else {
			line("arc", from, to)
		}
	}
	if !brief {
		if g.positioned {
			for i, n := range g.nodes {
				line("node_pos", strconv.Itoa(i+1), num(n.Pos.X), num(n.Pos.Y))
			}
		}
		arcs := make([]Arc, 0, len(g.points))
		for a := range g.points {
			arcs = append(arcs, a)
		}
		slices.SortFunc(arcs, func(a, b Arc) int {
			return cmp.Or(cmp.Compare(a.From, b.From), cmp.Compare(a.To, b.To))
		})
		for _, a := range arcs {
			p := g.points[a]
			line("arc_point", strconv.Itoa(a.From+1), strconv.Itoa(a.To+1), num(p.X), num(p.Y))
		}
	}
	return bw.Flush()
}

// Text returns the output of Write as a string.
func (g *Graph) Text(brief bool, prefix string) string {
	var sb strings.Builder
	_ = g.Write(&sb, brief, prefix)
	return sb.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func quote(name string) string {
	if strings.Contains(name, `"`) && !strings.Contains(name, "'") {
		return "'" + name + "'"
	}
	return `"` + name + `"`
}
