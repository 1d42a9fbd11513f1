package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/pipeline"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output string
		opts   pipeline.Options
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw a graph as a PDF, optionally running an algorithm",
		Long: `Draw a graph as a PDF.

The input is a graph in the text format, or its JSON form when the file ends
in .json. Use "-" to read stdin. Graphs without node_pos lines are laid out
with Graphviz.

Without --algorithm the document has a single page. With bfs, dfs or
dijkstra it has one page per traversal step.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDocument(cmd, args[0], output, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PDF (default: <input>.pdf)")
	cmd.Flags().StringVarP(&opts.Algorithm, "algorithm", "a", "", "algorithm: none (default), bfs, dfs, dijkstra")
	addStartFlag(cmd, &opts.Start)
	addDocumentFlags(cmd, &opts)

	return cmd
}

// traverseCommand creates the traverse command with one subcommand per
// algorithm.
func (c *CLI) traverseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "traverse",
		Short: "Write a step-by-step PDF of a graph traversal",
	}
	cmd.AddCommand(c.traverseAlgorithmCommand(pipeline.AlgorithmBFS, "Breadth-first search from the start node"))
	cmd.AddCommand(c.traverseAlgorithmCommand(pipeline.AlgorithmDFS, "Depth-first search from the start node"))
	cmd.AddCommand(c.traverseAlgorithmCommand(pipeline.AlgorithmDijkstra, "Dijkstra's shortest paths from the start node"))
	return cmd
}

func (c *CLI) traverseAlgorithmCommand(algorithm, short string) *cobra.Command {
	var (
		output string
		opts   pipeline.Options
	)

	cmd := &cobra.Command{
		Use:   algorithm + " [file]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o := opts
			o.Algorithm = algorithm
			return c.runDocument(cmd, args[0], output, o)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PDF (default: <input>.pdf)")
	addStartFlag(cmd, &opts.Start)
	addDocumentFlags(cmd, &opts)

	return cmd
}

// runDocument renders input and writes the PDF.
func (c *CLI) runDocument(cmd *cobra.Command, input, output string, opts pipeline.Options) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if err := c.applyConfig(cmd, &opts); err != nil {
		return err
	}
	source, err := readInput(input, &opts)
	if err != nil {
		return err
	}
	if opts.IsTraversal() {
		if err := c.resolveStart(ctx, cmd, &opts, source, input); err != nil {
			return err
		}
	}

	runner, err := c.newRunner(ctx)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = logger

	prog := newProgress(logger)
	stop := c.track(newSpinnerWithContext(ctx, "Rendering "+describe(opts)+"..."))
	res, err := runner.Execute(ctx, opts, source)
	stop()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		printError("Render failed")
		return err
	}
	prog.done("document ready", "pages", res.Pages, "bytes", len(res.PDF), "cached", res.CacheHit)

	path := outputPath(output, input, ".pdf")
	if err := writeOutput(path, res.PDF); err != nil {
		return err
	}

	printSuccess("Wrote %s", plural(res.Pages, "page"))
	printFile(path)
	printStats(docStats{nodes: res.Stats.NodeCount, arcs: res.Stats.ArcCount, pages: res.Pages, cached: res.CacheHit})
	if opts.Algorithm == pipeline.AlgorithmDijkstra {
		printNewline()
		printNextStep("Distance table", fmt.Sprintf("%s distances --start %d %s", appName, max(opts.Start, 1), input))
	}
	return nil
}

// describe names what a run draws, for progress messages.
func describe(opts pipeline.Options) string {
	switch opts.Algorithm {
	case pipeline.AlgorithmBFS:
		return "breadth-first search"
	case pipeline.AlgorithmDFS:
		return "depth-first search"
	case pipeline.AlgorithmDijkstra:
		return "shortest paths"
	}
	return "graph"
}

// writeOutput writes data to path, or stdout for "-".
func writeOutput(path string, data []byte) error {
	if path == stdinName {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
