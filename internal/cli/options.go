package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/pipeline"
)

// stdinName is the input argument that reads the graph from stdin.
const stdinName = "-"

// addDocumentFlags binds the document, layout and display flags to opts.
// Unset flags keep their zero value so the config file and
// pipeline.Options.SetDefaults can fill them.
func addDocumentFlags(cmd *cobra.Command, opts *pipeline.Options) {
	f := cmd.Flags()
	f.StringVar(&opts.InputFormat, "input-format", "", "input format: text, json (default: by file extension)")
	f.StringVar(&opts.Engine, "engine", "", "Graphviz engine for graphs without positions: dot (default), neato, circo, fdp, twopi")
	f.Float64Var(&opts.Scale, "scale", 0, "points per graph unit (default: the graph's own scale)")
	f.Float64Var(&opts.PageWidth, "page-width", 0, "page width in points (default 612)")
	f.Float64Var(&opts.PageHeight, "page-height", 0, "page height in points (default 792)")
	f.IntVar(&opts.MaxPages, "max-pages", 0, "maximum number of pages (default 1024)")
	f.StringVar(&opts.Title, "title", "", "add a title page")
	f.StringVar(&opts.Subtitle, "subtitle", "", "title page subtitle")
	f.StringVar(&opts.Author, "author", "", "title page author")
	f.BoolVar(&opts.ShowValues, "show-values", false, "label nodes with their values")
	f.BoolVar(&opts.ShowNames, "show-names", false, "label nodes with their names")
	f.BoolVar(&opts.HideLabels, "hide-labels", false, "draw nodes without labels")
	f.BoolVar(&opts.Refresh, "refresh", false, "ignore cached documents")
}

// addStartFlag binds --start. Start is 1-based.
func addStartFlag(cmd *cobra.Command, start *int) {
	cmd.Flags().IntVarP(start, "start", "s", 0, "1-based start node (default 1, or ask on a terminal)")
}

// flagOverrides maps each option flag to the copy from the config file
// that applies when the flag was not given.
var flagOverrides = map[string]func(dst *pipeline.Options, cfg pipeline.Options){
	"input-format": func(d *pipeline.Options, c pipeline.Options) { d.InputFormat = c.InputFormat },
	"engine":       func(d *pipeline.Options, c pipeline.Options) { d.Engine = c.Engine },
	"scale":        func(d *pipeline.Options, c pipeline.Options) { d.Scale = c.Scale },
	"algorithm":    func(d *pipeline.Options, c pipeline.Options) { d.Algorithm = c.Algorithm },
	"start":        func(d *pipeline.Options, c pipeline.Options) { d.Start = c.Start },
	"page-width":   func(d *pipeline.Options, c pipeline.Options) { d.PageWidth = c.PageWidth },
	"page-height":  func(d *pipeline.Options, c pipeline.Options) { d.PageHeight = c.PageHeight },
	"max-pages":    func(d *pipeline.Options, c pipeline.Options) { d.MaxPages = c.MaxPages },
	"title":        func(d *pipeline.Options, c pipeline.Options) { d.Title = c.Title },
	"subtitle":     func(d *pipeline.Options, c pipeline.Options) { d.Subtitle = c.Subtitle },
	"author":       func(d *pipeline.Options, c pipeline.Options) { d.Author = c.Author },
	"show-values":  func(d *pipeline.Options, c pipeline.Options) { d.ShowValues = c.ShowValues },
	"show-names":   func(d *pipeline.Options, c pipeline.Options) { d.ShowNames = c.ShowNames },
	"hide-labels":  func(d *pipeline.Options, c pipeline.Options) { d.HideLabels = c.HideLabels },
}

// applyConfig loads the config file and copies its values into opts for
// every option flag the command has but the user did not set.
func (c *CLI) applyConfig(cmd *cobra.Command, opts *pipeline.Options) error {
	cfg, err := pipeline.LoadConfig(c.configPath)
	if err != nil {
		return err
	}
	mergeOptions(cmd, opts, cfg)
	return nil
}

func mergeOptions(cmd *cobra.Command, opts *pipeline.Options, cfg pipeline.Options) {
	for name, apply := range flagOverrides {
		if flag := cmd.Flags().Lookup(name); flag == nil || flag.Changed {
			continue
		}
		apply(opts, cfg)
	}
}

// readInput reads the graph from path, or stdin for "-". The input format
// follows the file extension unless opts already names one.
func readInput(path string, opts *pipeline.Options) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == stdinName {
		data, err = io.ReadAll(os.Stdin)
		opts.SourceName = "<stdin>"
	} else {
		data, err = os.ReadFile(path)
		opts.SourceName = path
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	if opts.InputFormat == "" && strings.EqualFold(filepath.Ext(path), ".json") {
		opts.InputFormat = pipeline.FormatJSON
	}
	return data, nil
}

// outputPath returns output, or the input path with ext replacing its
// extension. Stdin input writes to "graph"+ext.
func outputPath(output, input, ext string) string {
	if output != "" {
		return output
	}
	if input == stdinName {
		return "graph" + ext
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

// resolveStart fills opts.Start when --start was not given, asking on a
// terminal and falling back to the config file or node 1.
func (c *CLI) resolveStart(ctx context.Context, cmd *cobra.Command, opts *pipeline.Options, source []byte, input string) error {
	if cmd.Flags().Changed("start") || opts.Start != 0 || input == stdinName || !interactive() {
		return nil
	}
	g, err := pipeline.Parse(ctx, source, *opts)
	if err != nil {
		return err
	}
	start, err := pickStart(ctx, g)
	if err != nil {
		return err
	}
	opts.Start = start
	return nil
}
