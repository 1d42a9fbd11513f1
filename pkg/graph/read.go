package graph

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/geom"
)

// Magic is the first word of every graph file.
const Magic = "Graph"

// MaxNodes bounds the node count accepted by [Read]. The adjacency matrix is
// dense, so memory grows with the square of the count.
const MaxNodes = 4096

// Read parses a graph in the text format. source names the input in error
// messages, typically a file name or "<stdin>".
func Read(r io.Reader, source string) (*Graph, error) {
	p := &parser{source: source, sc: bufio.NewScanner(r)}
	p.sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	if err := p.header(); err != nil {
		return nil, err
	}
	for p.next() {
		key, rest, _ := strings.Cut(p.text, " ")
		if key == "q" {
			break
		}
		if err := p.line(key, strings.TrimSpace(rest)); err != nil {
			return nil, err
		}
	}
	if err := p.sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "%s: read failed", source)
	}
	return p.g, nil
}

// ReadBytes is Read over an in-memory buffer.
func ReadBytes(data []byte, source string) (*Graph, error) {
	return Read(bytes.NewReader(data), source)
}

type parser struct {
	source string
	sc     *bufio.Scanner
	lineNo int
	text   string
	g      *Graph
	named  int
}

// next advances to the next line that is neither blank nor a comment, with
// tabs folded to spaces.
func (p *parser) next() bool {
	for p.sc.Scan() {
		p.lineNo++
		s := strings.TrimSpace(strings.ReplaceAll(p.sc.Text(), "\t", " "))
		if s == "" || s[0] == '#' {
			continue
		}
		p.text = s
		return true
	}
	return false
}

func (p *parser) errorf(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidGraph, "%s:%d: "+format, append([]any{p.source, p.lineNo}, args...)...)
}

// header reads the magic word and the node count, which may share a line.
func (p *parser) header() error {
	if !p.next() {
		return errors.New(errors.ErrCodeInvalidGraph, "%s: empty input", p.source)
	}
	fields := strings.Fields(p.text)
	if fields[0] != Magic {
		return errors.New(errors.ErrCodeInvalidGraph, "%s: input is not in %s format", p.source, Magic)
	}
	if len(fields) == 1 {
		if !p.next() {
			return p.errorf("missing node count")
		}
		fields = strings.Fields(p.text)
	} else {
		fields = fields[1:]
	}
	if len(fields) != 1 {
		return p.errorf("expected a single node count, got %q", strings.Join(fields, " "))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return p.errorf("invalid node count %q", fields[0])
	}
	if n < 1 || n > MaxNodes {
		return p.errorf("node count %d out of range [1, %d]", n, MaxNodes)
	}
	p.g = New(n)
	return nil
}

func (p *parser) line(key, rest string) error {
	switch key {
	case "node":
		if p.named >= p.g.Len() {
			return p.errorf("too many nodes")
		}
		p.g.nodes[p.named].Name = unquote(rest)
		p.named++
		return nil
	case "directed", "undirected":
		if rest != "" {
			return p.errorf("%s takes no arguments", key)
		}
		p.g.directed = key == "directed"
		return nil
	}

	args := strings.Fields(rest)
	switch key {
	case "arc":
		i, j, err := p.arc(args, 2)
		if err != nil {
			return err
		}
		p.g.adj[i][j] = 1
	case "weighted_arc":
		i, j, err := p.arc(args, 3)
		if err != nil {
			return err
		}
		w, err := p.float(args[2], "weight")
		if err != nil {
			return err
		}
		if w <= 0 {
			return p.errorf("arc weight must be positive: %s", args[2])
		}
		p.g.adj[i][j] = w
		p.g.weighted = true
	case "node_value", "node_state":
		if err := p.count(key, args, 2); err != nil {
			return err
		}
		i, err := p.index(args[0])
		if err != nil {
			return err
		}
		if key == "node_state" {
			s, ok := ParseState(args[1])
			if !ok {
				return p.errorf("unknown node state %q", args[1])
			}
			p.g.nodes[i].State = s
			return nil
		}
		v, err := p.float(args[1], "value")
		if err != nil {
			return err
		}
		p.g.nodes[i].Value = v
	case "node_pos":
		if err := p.count(key, args, 3); err != nil {
			return err
		}
		i, err := p.index(args[0])
		if err != nil {
			return err
		}
		pt, err := p.point(args[1:])
		if err != nil {
			return err
		}
		p.g.nodes[i].Pos = pt
		p.g.positioned = true
	case "arc_point":
		i, j, err := p.arc(args, 4)
		if err != nil {
			return err
		}
		pt, err := p.point(args[2:])
		if err != nil {
			return err
		}
		p.g.points[Arc{i, j}] = pt
	case "scale":
		if err := p.count(key, args, 1); err != nil {
			return err
		}
		s, err := p.float(args[0], "scale")
		if err != nil {
			return err
		}
		if s <= 0 {
			return p.errorf("scale must be positive: %s", args[0])
		}
		p.g.scale = s
	default:
		return p.errorf("unknown key %q", key)
	}
	return nil
}

func (p *parser) count(key string, args []string, want int) error {
	if len(args) != want {
		return p.errorf("%s takes %d arguments, got %d", key, want, len(args))
	}
	return nil
}

// index parses a 1-based node index and returns it zero-based.
func (p *parser) index(s string) (int, error) {
	k, err := strconv.Atoi(s)
	if err != nil {
		return 0, p.errorf("invalid node index %q", s)
	}
	if k < 1 || k > p.g.Len() {
		return 0, errors.New(errors.ErrCodeIndexRange, "%s:%d: node index %d out of range [1, %d]", p.source, p.lineNo, k, p.g.Len())
	}
	return k - 1, nil
}

func (p *parser) arc(args []string, want int) (int, int, error) {
	if len(args) != want {
		return 0, 0, p.errorf("expected %d arguments, got %d", want, len(args))
	}
	i, err := p.index(args[0])
	if err != nil {
		return 0, 0, err
	}
	j, err := p.index(args[1])
	if err != nil {
		return 0, 0, err
	}
	return i, j, nil
}

func (p *parser) float(s, what string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, p.errorf("invalid %s %q", what, s)
	}
	return v, nil
}

func (p *parser) point(args []string) (geom.Point, error) {
	x, err := p.float(args[0], "coordinate")
	if err != nil {
		return geom.Point{}, err
	}
	y, err := p.float(args[1], "coordinate")
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Pt(x, y), nil
}

// unquote strips one pair of matching single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
