package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stepdoc/pkg/buildinfo"
	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/graph"
	"github.com/matzehuels/stepdoc/pkg/pipeline"
)

const chainGraph = `Graph
5
node "a"
node "b"
node "c"
node "d"
node "e"
node_pos 1 0 0
node_pos 2 1 0
node_pos 3 2 0
node_pos 4 3 0
node_pos 5 4 0
arc 1 2
arc 2 3
arc 3 4
arc 4 5
`

const weightedGraph = `Graph
4
node_pos 1 0 0
node_pos 2 1 1
node_pos 3 1 -1
node_pos 4 2 0
weighted_arc 1 2 4
weighted_arc 1 3 1
weighted_arc 3 2 2
weighted_arc 2 4 1
`

// isolate points the XDG config and cache directories at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv(envCacheURL, "")
	t.Setenv(envMongoURI, "")
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the CLI with args and returns what commands wrote to Out.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeContext(t, context.Background(), args...)
}

func executeContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	c.Out = &out
	root := c.RootCommand()
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func readPDF(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.4")) {
		t.Fatalf("%s is not a PDF: %.20q", path, data)
	}
	return data
}

func TestRenderCommand(t *testing.T) {
	dir := isolate(t)
	input := writeFile(t, dir, "chain.graph", chainGraph)

	if _, err := execute(t, "render", input, "--no-cache"); err != nil {
		t.Fatal(err)
	}
	readPDF(t, filepath.Join(dir, "chain.pdf"))
}

func TestTraverseCommand(t *testing.T) {
	dir := isolate(t)
	input := writeFile(t, dir, "chain.graph", chainGraph)
	cacheDir := filepath.Join(dir, "docs")

	for _, algo := range []string{"bfs", "dfs", "dijkstra"} {
		t.Run(algo, func(t *testing.T) {
			out := filepath.Join(dir, algo+".pdf")
			_, err := execute(t, "traverse", algo, input, "-o", out, "--start", "2", "--title", "Chain", "--cache-url", "file://"+cacheDir)
			if err != nil {
				t.Fatal(err)
			}
			readPDF(t, out)
		})
	}

	var entries int
	_ = filepath.Walk(cacheDir, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() && strings.HasSuffix(path, ".json") {
			entries++
		}
		return nil
	})
	if entries != 3 {
		t.Errorf("cache holds %d documents, want 3", entries)
	}
}

func TestTraverseErrors(t *testing.T) {
	dir := isolate(t)
	input := writeFile(t, dir, "chain.graph", chainGraph)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"start out of range", []string{"traverse", "bfs", input, "--start", "9", "--no-cache"}, errors.ErrCodeIndexRange},
		{"page limit", []string{"traverse", "bfs", input, "--max-pages", "2", "--no-cache"}, errors.ErrCodeTooManyPages},
		{"missing input", []string{"render", filepath.Join(dir, "nope.graph")}, errors.ErrCodeInvalidPath},
		{"bad engine", []string{"render", input, "--engine", "bogus", "--no-cache"}, errors.ErrCodeInvalidInput},
		{"bad cache url", []string{"render", input, "--cache-url", "ftp://x"}, errors.ErrCodeInvalidInput},
		{"missing config", []string{"render", input, "--config", filepath.Join(dir, "none.toml")}, errors.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestTraverseCanceled(t *testing.T) {
	dir := isolate(t)
	input := writeFile(t, dir, "chain.graph", chainGraph)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := executeContext(t, ctx, "traverse", "dfs", input, "--no-cache")
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestDistancesCommand(t *testing.T) {
	dir := isolate(t)
	input := writeFile(t, dir, "weighted.graph", weightedGraph)

	out, err := execute(t, "distances", input, "--start", "3", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var table pipeline.DistanceTable
	if err := json.Unmarshal([]byte(out), &table); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if table.Start != 3 || table.Distances[0] != nil || *table.Distances[1] != 2 || *table.Distances[3] != 3 {
		t.Errorf("table = %+v", table)
	}

	out, err = execute(t, "distances", input, "-s", "1")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Node", "Distance", "3", "4"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}

	out, err = execute(t, "distances", input, "-s", "4")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "∞") {
		t.Errorf("unreachable nodes should show ∞:\n%s", out)
	}
}

func TestExportCommand(t *testing.T) {
	dir := isolate(t)
	input := writeFile(t, dir, "chain.graph", chainGraph)

	if _, err := execute(t, "export", input, "--names"); err != nil {
		t.Fatal(err)
	}
	dot, err := os.ReadFile(filepath.Join(dir, "chain.dot"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"digraph G {", `n1 [label="a", pos="0,0!"];`, "n4 -> n5;"} {
		if !strings.Contains(string(dot), want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	jsonPath := filepath.Join(dir, "out.json")
	if _, err := execute(t, "export", input, "-f", "json", "-o", jsonPath); err != nil {
		t.Fatal(err)
	}
	var w graph.Wire
	data, _ := os.ReadFile(jsonPath)
	if err := json.Unmarshal(data, &w); err != nil {
		t.Fatal(err)
	}
	if len(w.Nodes) != 5 || w.Nodes[2].Name != "c" || len(w.Arcs) != 4 {
		t.Errorf("wire = %+v", w)
	}

	// The JSON export reads back through --input-format detection.
	pdfPath := filepath.Join(dir, "from-json.pdf")
	if _, err := execute(t, "traverse", "bfs", jsonPath, "-o", pdfPath, "--no-cache"); err != nil {
		t.Fatal(err)
	}
	readPDF(t, pdfPath)
}

func TestExportErrors(t *testing.T) {
	dir := isolate(t)
	input := writeFile(t, dir, "chain.graph", chainGraph)

	if _, err := execute(t, "export", input, "-f", "png"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("unknown format: err = %v", err)
	}
	if _, err := execute(t, "export", input, "-f", "graph"); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("overwriting the input: err = %v", err)
	}
}

func TestExportLayout(t *testing.T) {
	if testing.Short() {
		t.Skip("runs Graphviz")
	}
	dir := isolate(t)
	input := writeFile(t, dir, "plain.graph", "Graph\n3\narc 1 2\narc 2 3\n")

	if _, err := execute(t, "export", input, "-f", "graph", "-o", filepath.Join(dir, "laid-out.graph"), "--engine", "neato"); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(filepath.Join(dir, "laid-out.graph"))
	if got := strings.Count(string(data), "node_pos "); got != 3 {
		t.Errorf("exported %d positions, want 3:\n%s", got, data)
	}
}

func TestFontsCommand(t *testing.T) {
	isolate(t)
	out, err := execute(t, "fonts", "--sample", "W", "--size", "10")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Helvetica-Bold", "Courier", "ZapfDingbats", "Width (pt)", "9.40", "6.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("fonts output missing %q:\n%s", want, out)
		}
	}
}

func TestCacheCommands(t *testing.T) {
	dir := isolate(t)
	input := writeFile(t, dir, "chain.graph", chainGraph)

	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "cache", appName)
	if strings.TrimSpace(out) != want {
		t.Errorf("cache path = %q, want %q", out, want)
	}

	if _, err := execute(t, "cache", "clear"); err != nil {
		t.Fatalf("clearing a missing cache: %v", err)
	}
	if _, err := execute(t, "render", input, "-a", "bfs"); err != nil {
		t.Fatal(err)
	}
	if n := countFiles(t, want); n != 1 {
		t.Fatalf("cache holds %d files after render, want 1", n)
	}
	if _, err := execute(t, "cache", "clear"); err != nil {
		t.Fatal(err)
	}
	if n := countFiles(t, want); n != 0 {
		t.Errorf("cache holds %d files after clear", n)
	}
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	_ = filepath.Walk(dir, func(_ string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			n++
		}
		return nil
	})
	return n
}

func TestConfigFile(t *testing.T) {
	dir := isolate(t)
	input := writeFile(t, dir, "chain.graph", chainGraph)
	cfg := writeFile(t, dir, "stepdoc.toml", "algorithm = \"dfs\"\nstart = 9\n")

	// start = 9 is out of range, so the file was read.
	_, err := execute(t, "render", input, "--config", cfg, "--no-cache")
	if !errors.Is(err, errors.ErrCodeIndexRange) {
		t.Fatalf("err = %v, want INDEX_OUT_OF_RANGE from the config start", err)
	}
	// The flag wins.
	if _, err := execute(t, "render", input, "--config", cfg, "--start", "2", "--no-cache"); err != nil {
		t.Fatal(err)
	}

	bad := writeFile(t, dir, "bad.toml", "colour = \"red\"\n")
	if _, err := execute(t, "render", input, "--config", bad); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("unknown key: err = %v", err)
	}
}

func TestMergeOptions(t *testing.T) {
	var opts pipeline.Options
	cmd := &cobra.Command{Use: "test"}
	addStartFlag(cmd, &opts.Start)
	addDocumentFlags(cmd, &opts)
	if err := cmd.Flags().Set("title", "From flag"); err != nil {
		t.Fatal(err)
	}

	cfg := pipeline.Options{Title: "From file", Author: "Ada", Start: 2, Algorithm: "dfs", PageWidth: 595}
	mergeOptions(cmd, &opts, cfg)

	if opts.Title != "From flag" {
		t.Errorf("Title = %q, flag should win", opts.Title)
	}
	if opts.Author != "Ada" || opts.Start != 2 || opts.PageWidth != 595 {
		t.Errorf("file values not applied: %+v", opts)
	}
	if opts.Algorithm != "" {
		t.Errorf("Algorithm = %q, command has no algorithm flag", opts.Algorithm)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		output, input, ext, want string
	}{
		{"", "graphs/chain.graph", ".pdf", "graphs/chain.pdf"},
		{"", "chain", ".pdf", "chain.pdf"},
		{"", "-", ".dot", "graph.dot"},
		{"out.pdf", "chain.graph", ".pdf", "out.pdf"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.output, tt.input, tt.ext); got != tt.want {
			t.Errorf("outputPath(%q, %q, %q) = %q, want %q", tt.output, tt.input, tt.ext, got, tt.want)
		}
	}
}

func TestReadInputFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "g.JSON", "{}")

	var opts pipeline.Options
	if _, err := readInput(path, &opts); err != nil {
		t.Fatal(err)
	}
	if opts.InputFormat != pipeline.FormatJSON || opts.SourceName != path {
		t.Errorf("opts = %+v", opts)
	}

	opts = pipeline.Options{InputFormat: pipeline.FormatText}
	if _, err := readInput(path, &opts); err != nil {
		t.Fatal(err)
	}
	if opts.InputFormat != pipeline.FormatText {
		t.Errorf("explicit format overridden: %q", opts.InputFormat)
	}
}

func TestStartPickerModel(t *testing.T) {
	g, err := graph.ReadBytes([]byte(chainGraph), "chain")
	if err != nil {
		t.Fatal(err)
	}
	var m tea.Model = NewStartPickerModel(g)
	for _, k := range []tea.KeyType{tea.KeyDown, tea.KeyDown, tea.KeyUp, tea.KeyDown} {
		m, _ = m.Update(tea.KeyMsg{Type: k})
	}
	if got := m.(StartPickerModel).Cursor; got != 2 {
		t.Fatalf("Cursor = %d, want 2", got)
	}
	if view := m.View(); !strings.Contains(view, "Select Start Node") || !strings.Contains(view, "[3/5]") {
		t.Errorf("View() = %q", view)
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.(StartPickerModel).Selected; got != 3 {
		t.Errorf("Selected = %d, want 3", got)
	}
	if cmd == nil {
		t.Error("enter should quit the picker")
	}

	m, _ = NewStartPickerModel(g).Update(tea.KeyMsg{Type: tea.KeyEsc})
	if got := m.(StartPickerModel).Selected; got != 0 {
		t.Errorf("esc selected node %d", got)
	}
}

func TestDocStats(t *testing.T) {
	got := docStats{nodes: 5, arcs: 1, pages: 6, cached: true}.String()
	for _, want := range []string{"5 nodes", "1 arc", "6 pages", iconCached} {
		if !strings.Contains(got, want) {
			t.Errorf("docStats = %q, missing %q", got, want)
		}
	}
	if got := (docStats{nodes: 2}).String(); strings.Contains(got, iconFresh) {
		t.Errorf("docStats without pages shows cache status: %q", got)
	}
}

func TestVersionAndCompletion(t *testing.T) {
	isolate(t)
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, appName+" version "+buildinfo.Version) {
		t.Errorf("--version = %q", out)
	}

	out, err = execute(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "bash completion") {
		t.Errorf("completion output = %.80q", out)
	}
}

func TestServeCommand(t *testing.T) {
	isolate(t)
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	if _, err := executeContext(t, ctx, "serve", "--addr", "127.0.0.1:0", "--no-cache"); err != nil {
		t.Errorf("serve returned %v after shutdown", err)
	}
}
