package cli

import (
	"github.com/spf13/cobra"

	"ggscaf-core/scaffold"
	"ggscaf/internal/app"
	"ggscaf/internal/writers"
)

func newBreakpointsCmd(st *State) *cobra.Command {
	var truth, out string
	var deltas []int
	var table bool

	cmd := &cobra.Command{
		Use:   "breakpoints links.tsv",
		Short: "Count scaffolding errors against a ground-truth tiling",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ls, err := readLinkFile(args[0])
			if err != nil {
				return err
			}
			paths, err := scaffold.BuildPaths(ls)
			if err != nil {
				return err
			}
			rep, err := app.Breakpoints(truth, paths, deltas)
			if err != nil {
				return err
			}

			w, closeOut, err := openOut(out)
			if err != nil {
				return err
			}
			defer func() { _ = closeOut() }()
			if table {
				writers.RenderBreakpoints(w, rep)
				return nil
			}
			return rep.WriteText(w)
		},
	}

	cmd.Flags().StringVar(&truth, "truth", "", "tiling of the contigs against the true genome (required)")
	cmd.Flags().IntSliceVar(&deltas, "deltas", nil, "gap-error resolutions in bases (default 100,500,1000,10000)")
	cmd.Flags().BoolVar(&table, "table", false, "render a per-scaffold table instead of the plain report")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "report output")
	_ = cmd.MarkFlagRequired("truth")
	return cmd
}
