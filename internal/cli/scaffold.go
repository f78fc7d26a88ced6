package cli

import (
	"os"

	"github.com/spf13/cobra"

	"ggscaf-core/fasta"
	"ggscaf-core/links"
	"ggscaf-core/scaffold"
	"ggscaf/internal/writers"
)

func newScaffoldCmd(st *State) *cobra.Command {
	var contigs, out string

	cmd := &cobra.Command{
		Use:   "scaffold links.tsv",
		Short: "Assemble scaffold sequences from a link table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ls, err := readLinkFile(args[0])
			if err != nil {
				return err
			}
			set, err := fasta.Open(contigs)
			if err != nil {
				return err
			}
			paths, err := scaffold.BuildPaths(ls)
			if err != nil {
				return err
			}
			recs, err := scaffold.Assemble(paths, set, scaffold.Options{
				MinFill:       st.Params.MinFill,
				MergeOverlaps: st.Params.MergeOverlaps,
			})
			if err != nil {
				return err
			}

			w, closeOut, err := openOut(out)
			if err != nil {
				return err
			}
			defer func() { _ = closeOut() }()

			in, errCh := writers.StartScaffoldWriter(w, fasta.DefaultWidth, 0)
			for _, r := range recs {
				in <- r
			}
			close(in)
			if werr := <-errCh; werr != nil && !writers.IsBrokenPipe(werr) {
				return werr
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&contigs, "contigs", "", "draft assembly FASTA (required)")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "scaffold FASTA output")
	_ = cmd.MarkFlagRequired("contigs")
	return cmd
}

func readLinkFile(path string) ([]links.Link, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return links.ReadLinks(fh, path)
}
