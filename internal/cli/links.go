package cli

import (
	"github.com/spf13/cobra"

	"ggscaf-core/links"
	"ggscaf-core/tiling"
)

func newLinksCmd(st *State) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "links guide1.tiling [guide2.tiling...]",
		Short: "Aggregate tilings into a consensus link table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cands []links.Candidate
			for _, path := range args {
				t, err := tiling.ParseFile(path)
				if err != nil {
					return err
				}
				cands = append(cands, links.Candidates(t)...)
			}

			nGuides := st.Params.NGuides
			if nGuides == 0 {
				nGuides = len(args)
			}
			aggs := links.Aggregate(cands, st.Params.WindowSize)
			consensus, err := links.Select(aggs, links.MinSupport(st.Params.Threshold, nGuides))
			if err != nil {
				return err
			}

			w, closeOut, err := openOut(out)
			if err != nil {
				return err
			}
			defer func() { _ = closeOut() }()
			return links.WriteLinks(w, consensus)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "-", "link table output")
	return cmd
}
