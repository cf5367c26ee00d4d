package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pathgrid/config"
	"github.com/katalvlaran/pathgrid/dijkstra"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/search"
)

func newSolveCmd(cfgFile *string) *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search the grid headless and print the result",
		Example: `  pathgrid solve
  pathgrid solve --start node-0-0 --end node-7-19 --algorithm bfs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(viper.New(), cmd.Flags(), *cfgFile)
			if err != nil {
				return err
			}
			g, _, err := gridgraph.Build(cfg.Layout())
			if err != nil {
				return err
			}

			// Defaults: opposite corners of the board.
			if start == "" {
				start = gridgraph.NodeID(0, 0)
			}
			if end == "" {
				end = gridgraph.NodeID(cfg.Rows-1, cfg.Cols-1)
			}

			alg, err := cfg.SearchAlgorithm()
			if err != nil {
				return err
			}
			res, err := search.Run(cmd.Context(), alg, g, start, end)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), alg, res)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start node ID (default top-left corner)")
	cmd.Flags().StringVar(&end, "end", "", "end node ID (default bottom-right corner)")

	return cmd
}

func printResult(w io.Writer, alg search.Algorithm, res *dijkstra.Result) error {
	lines := []string{
		fmt.Sprintf("algorithm: %s", alg),
		fmt.Sprintf("outcome:   %s", res.Outcome),
		fmt.Sprintf("visited:   %s nodes", humanize.Comma(int64(len(res.Trace)))),
	}
	if res.Found() {
		lines = append(lines,
			fmt.Sprintf("distance:  %s", humanize.CommafWithDigits(res.Distance, 2)),
			fmt.Sprintf("path:      %s nodes", humanize.Comma(int64(len(res.Path)))),
			fmt.Sprintf("route:     %s", strings.Join(res.Path, " -> ")),
		)
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))

	return err
}
