package cli

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stepdoc/pkg/errors"
	stepio "github.com/matzehuels/stepdoc/pkg/io"
	"github.com/matzehuels/stepdoc/pkg/pipeline"
	"github.com/matzehuels/stepdoc/pkg/render/nodelink"
)

// Export formats.
const (
	exportDOT  = "dot"
	exportSVG  = "svg"
	exportJSON = "json"
	exportText = "graph"
)

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		output string
		format string
		names  bool
		opts   pipeline.Options
	)

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Convert a graph to DOT, SVG, JSON or the text format",
		Long: `Convert a graph to another format.

  dot    Graphviz source; positioned graphs pin their nodes
  svg    a Graphviz drawing of the graph
  json   the JSON form read by the API and --input-format json
  graph  the text format, with node_pos lines from Graphviz when missing

JSON and text exports lay the graph out first when it has no positions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd, args[0], output, format, names, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default: <input>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", exportDOT, "output format: dot, svg, json, graph")
	cmd.Flags().BoolVar(&names, "names", false, "label DOT and SVG nodes with their names")
	cmd.Flags().StringVar(&opts.InputFormat, "input-format", "", "input format: text, json (default: by file extension)")
	cmd.Flags().StringVar(&opts.Engine, "engine", "", "Graphviz engine: dot (default), neato, circo, fdp, twopi")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "points per graph unit (default: the graph's own scale)")

	return cmd
}

func (c *CLI) runExport(cmd *cobra.Command, input, output, format string, names bool, opts pipeline.Options) error {
	ctx := cmd.Context()
	if err := c.applyConfig(cmd, &opts); err != nil {
		return err
	}
	source, err := readInput(input, &opts)
	if err != nil {
		return err
	}
	opts.Logger = loggerFromContext(ctx)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	g, err := pipeline.Parse(ctx, source, opts)
	if err != nil {
		return err
	}

	dotOpts := nodelink.Options{Engine: opts.Engine, Names: names, Pinned: g.HasPositions()}
	var data []byte
	switch format {
	case exportDOT:
		data = []byte(nodelink.ToDOT(g, dotOpts))
	case exportSVG:
		if data, err = nodelink.RenderSVG(ctx, nodelink.ToDOT(g, dotOpts)); err != nil {
			return err
		}
	case exportJSON, exportText:
		if _, err := pipeline.Layout(ctx, g, opts); err != nil {
			return err
		}
		var buf bytes.Buffer
		if format == exportJSON {
			err = stepio.WriteJSON(g, &buf)
		} else {
			err = g.Write(&buf, false, "")
		}
		if err != nil {
			return err
		}
		data = buf.Bytes()
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown export format %q (must be one of: dot, svg, json, graph)", format)
	}

	path := outputPath(output, input, "."+format)
	if path == input {
		return errors.New(errors.ErrCodeInvalidPath, "export would overwrite %s; pass --output", input)
	}
	if err := writeOutput(path, data); err != nil {
		return err
	}
	if path != stdinName {
		printSuccess("Exported %s", format)
		printFile(path)
		printStats(docStats{nodes: g.Len(), arcs: len(g.Arcs())})
	}
	return nil
}
