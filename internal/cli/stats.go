package cli

import (
	"github.com/spf13/cobra"

	"ggscaf-core/fasta"
	"ggscaf-core/stats"
	"ggscaf/internal/writers"
)

func newStatsCmd(st *State) *cobra.Command {
	var out string
	var lengths bool

	cmd := &cobra.Command{
		Use:   "stats assembly.fasta",
		Short: "Summarize an assembly (sequence count, total length, N50)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := fasta.Open(args[0])
			if err != nil {
				return err
			}
			w, closeOut, err := openOut(out)
			if err != nil {
				return err
			}
			defer func() { _ = closeOut() }()
			if lengths {
				return stats.WriteLengths(w, set)
			}
			writers.RenderStats(w, args[0], stats.Summarize(set))
			return nil
		},
	}

	cmd.Flags().BoolVar(&lengths, "lengths", false, "print per-sequence lengths instead of the summary")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output")
	return cmd
}
