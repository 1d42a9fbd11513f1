package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stepdoc/pkg/fonts"
)

// fontsCommand creates the fonts command, which lists the builtin PDF fonts.
func (c *CLI) fontsCommand() *cobra.Command {
	var (
		sample string
		size   float64
	)

	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "List the builtin PDF fonts and their metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := [][]string{}
			for i, f := range fonts.All() {
				rows = append(rows, []string{
					strconv.Itoa(i),
					f.Name(),
					strconv.FormatFloat(fonts.Width(sample, f, size), 'f', 2, 64),
				})
			}
			t := newTable([]string{"Index", "Name", "Width (pt)"}, rows, nil)
			_, err := cmd.OutOrStdout().Write([]byte(t.Render() + "\n"))
			return err
		},
	}

	cmd.Flags().StringVar(&sample, "sample", "Breadth-first search", "text to measure")
	cmd.Flags().Float64Var(&size, "size", 12, "font size in points")

	return cmd
}
