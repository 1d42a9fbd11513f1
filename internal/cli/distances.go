package cli

import (
	"encoding/json"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stepdoc/pkg/pipeline"
)

// distancesCommand creates the distances command.
func (c *CLI) distancesCommand() *cobra.Command {
	var (
		opts   pipeline.Options
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "distances [file]",
		Short: "Print shortest path distances from a start node",
		Long: `Print the shortest path distance of every node from the start node, as
computed by Dijkstra's algorithm. Unreachable nodes show ∞ (null in JSON).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDistances(cmd, args[0], opts, asJSON)
		},
	}

	addStartFlag(cmd, &opts.Start)
	cmd.Flags().StringVar(&opts.InputFormat, "input-format", "", "input format: text, json (default: by file extension)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

func (c *CLI) runDistances(cmd *cobra.Command, input string, opts pipeline.Options, asJSON bool) error {
	ctx := cmd.Context()
	if err := c.applyConfig(cmd, &opts); err != nil {
		return err
	}
	source, err := readInput(input, &opts)
	if err != nil {
		return err
	}
	opts.Algorithm = pipeline.AlgorithmDijkstra
	if err := c.resolveStart(ctx, cmd, &opts, source, input); err != nil {
		return err
	}

	runner := pipeline.NewRunner(nil, nil, loggerFromContext(ctx))
	dist, g, err := runner.Distances(ctx, opts, source)
	if err != nil {
		return err
	}
	table := pipeline.NewDistanceTable(g, max(opts.Start, pipeline.DefaultStart), dist)

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(table)
	}

	rows := make([][]string, len(dist))
	for i, d := range table.Distances {
		name := g.Node(i).Name
		if name == "" {
			name = "—"
		}
		value := "∞"
		if d != nil {
			value = strconv.FormatFloat(*d, 'g', -1, 64)
		}
		rows[i] = []string{strconv.Itoa(i + 1), name, value}
	}
	t := newTable([]string{"Node", "Name", "Distance"}, rows, func(row int) bool {
		return table.Distances[row] == nil
	})
	_, err = out.Write([]byte(t.Render() + "\n"))
	return err
}
