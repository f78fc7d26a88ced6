package cli

import (
	"github.com/spf13/cobra"

	"ggscaf-core/fasta"
)

func newEndsCmd(st *State) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "ends contigs.fasta",
		Short: "Extract labelled contig ends for alignment",
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
			ends := fasta.ExtractEnds(set, st.Params.NCut)
			return fasta.Write(w, ends, fasta.DefaultWidth)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "-", "end FASTA output")
	return cmd
}
