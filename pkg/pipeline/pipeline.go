// Package pipeline turns graph source into a step document.
//
// This package implements the complete parse → layout → render pipeline used
// by the CLI and the HTTP API. By centralizing this logic, both entry points
// produce byte-identical documents for the same input and options.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: read the graph text format or its JSON form
//  2. Layout: ask Graphviz for node positions when the source has none
//  3. Render: draw the graph, run the traversal page by page and finish
//     the PDF
//
// Rendered documents are cached under a key derived from the source and
// every option that changes the output.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	opts := pipeline.Options{Algorithm: "bfs", Start: 1}
//	result, err := runner.Execute(ctx, opts, source)
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("steps.pdf", result.PDF, 0o644)
//
// # Configuration
//
// [Options] carries json and toml tags. [LoadConfig] reads defaults from
// $XDG_CONFIG_HOME/stepdoc/config.toml; command line flags override them.
package pipeline

import (
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/graph"
	"github.com/matzehuels/stepdoc/pkg/pdf"
	"github.com/matzehuels/stepdoc/pkg/render/nodelink"
	"github.com/matzehuels/stepdoc/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultAlgorithm draws the graph on a single page.
	DefaultAlgorithm = AlgorithmNone

	// DefaultStart is the 1-based start node of traversals.
	DefaultStart = 1

	// DefaultEngine is the Graphviz engine used for unpositioned graphs.
	DefaultEngine = "dot"

	// DefaultInputFormat is the graph text format.
	DefaultInputFormat = FormatText
)

// Algorithm names.
const (
	AlgorithmNone     = "none"
	AlgorithmBFS      = "bfs"
	AlgorithmDFS      = "dfs"
	AlgorithmDijkstra = "dijkstra"
)

// Input formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidInputFormats is the set of supported input formats.
var ValidInputFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the document pipeline. Every
// serialized field is part of the cache key.
type Options struct {
	// Parse options
	InputFormat string `json:"input_format,omitempty" toml:"input_format"`

	// Layout options
	Engine string  `json:"engine,omitempty" toml:"engine"`
	Scale  float64 `json:"scale,omitempty" toml:"scale"` // overrides the graph's scale when > 0

	// Traversal options
	Algorithm string `json:"algorithm,omitempty" toml:"algorithm"`
	Start     int    `json:"start,omitempty" toml:"start"` // 1-based

	// Document options
	PageWidth  float64 `json:"page_width,omitempty" toml:"page_width"`
	PageHeight float64 `json:"page_height,omitempty" toml:"page_height"`
	MaxPages   int     `json:"max_pages,omitempty" toml:"max_pages"`
	Title      string  `json:"title,omitempty" toml:"title"` // adds a title page when set
	Subtitle   string  `json:"subtitle,omitempty" toml:"subtitle"`
	Author     string  `json:"author,omitempty" toml:"author"`

	// Display options
	ShowValues bool `json:"show_values,omitempty" toml:"show_values"`
	ShowNames  bool `json:"show_names,omitempty" toml:"show_names"`
	HideLabels bool `json:"hide_labels,omitempty" toml:"hide_labels"`

	// Runtime options (not serialized)
	SourceName string      `json:"-" toml:"-"` // used in parse error messages
	Refresh    bool        `json:"-" toml:"-"` // skip cache lookups
	Logger     *log.Logger `json:"-" toml:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the parsed graph. After a render it holds the layout and
	// the final traversal state; after a cache hit it is as parsed.
	Graph *graph.Graph

	// PDF is the finished document.
	PDF []byte

	// Pages is the number of pages in PDF.
	Pages int

	// Distances holds the shortest path distance of every node from the
	// start node for the dijkstra algorithm, +Inf when unreachable.
	Distances []float64

	// Key is the cache key of the document.
	Key string

	// CacheHit reports whether PDF came from the cache.
	CacheHit bool

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	ArcCount   int
	Positioned bool // the source carried node positions
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills every unset field. It is idempotent.
func (o *Options) SetDefaults() {
	if o.InputFormat == "" {
		o.InputFormat = DefaultInputFormat
	}
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.Algorithm == "" {
		o.Algorithm = DefaultAlgorithm
	}
	o.Algorithm = strings.ToLower(o.Algorithm)
	if o.Start == 0 {
		o.Start = DefaultStart
	}
	if o.PageWidth == 0 {
		o.PageWidth = pdf.LetterWidth
	}
	if o.PageHeight == 0 {
		o.PageHeight = pdf.LetterHeight
	}
	if o.MaxPages == 0 {
		o.MaxPages = pdf.MaxPages
	}
	if o.SourceName == "" {
		o.SourceName = "<input>"
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks the options after SetDefaults.
func (o *Options) Validate() error {
	if !ValidInputFormats[o.InputFormat] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid input format %q (must be one of: text, json)", o.InputFormat)
	}
	if err := errors.ValidateAlgorithm(o.Algorithm); err != nil {
		return err
	}
	if err := nodelink.ValidateEngine(o.Engine); err != nil {
		return err
	}
	if err := errors.ValidatePageSize(o.PageWidth, o.PageHeight); err != nil {
		return err
	}
	if o.MaxPages < 1 || o.MaxPages > pdf.MaxPages {
		return errors.New(errors.ErrCodeInvalidInput, "max pages %d out of range [1, %d]", o.MaxPages, pdf.MaxPages)
	}
	if o.Start < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "start node must be at least 1, got %d", o.Start)
	}
	if o.Scale < 0 || math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be a positive number, got %v", o.Scale)
	}
	return nil
}

// ValidateAndSetDefaults applies defaults and validates.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	return o.Validate()
}

// DisplayFlags returns the renderer flags selected by the display options.
func (o *Options) DisplayFlags() scene.Flags {
	var f scene.Flags
	if o.ShowValues {
		f |= scene.ShowNodeValues
	}
	if o.ShowNames {
		f |= scene.ShowNodeNames
	}
	if o.HideLabels {
		f |= scene.NoNodeLabels
	}
	return f
}

// IsTraversal reports whether the options select a traversal rather than a
// single drawing.
func (o *Options) IsTraversal() bool {
	return o.Algorithm != "" && o.Algorithm != AlgorithmNone
}
