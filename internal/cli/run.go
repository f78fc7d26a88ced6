package cli

import (
	"io"

	"github.com/spf13/cobra"

	"ggscaf/internal/app"
)

func newRunCmd(st *State) *cobra.Command {
	var contigs, workDir, out, linksOut, truth, report string

	cmd := &cobra.Command{
		Use:   "run --contigs draft.fasta [flags] guide.fasta...",
		Short: "Run the full pipeline: align, link, select, scaffold",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, closeOut, err := openOut(out)
			if err != nil {
				return err
			}
			defer func() { _ = closeOut() }()

			var lw, rw io.Writer
			if linksOut != "" {
				f, closeLinks, err := openOut(linksOut)
				if err != nil {
					return err
				}
				defer func() { _ = closeLinks() }()
				lw = f
			}
			if truth != "" {
				f, closeReport, err := openOut(report)
				if err != nil {
					return err
				}
				defer func() { _ = closeReport() }()
				rw = f
			}

			p := &app.Pipeline{
				Params:  st.Params,
				Contigs: contigs,
				Guides:  args,
				WorkDir: workDir,
				Truth:   truth,
			}
			return p.Run(cmd.Context(), w, lw, rw)
		},
	}

	cmd.Flags().StringVar(&contigs, "contigs", "", "draft assembly FASTA (required)")
	cmd.Flags().StringVar(&workDir, "workdir", "ggscaf-work", "scratch directory for alignments and tilings")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "scaffold FASTA output")
	cmd.Flags().StringVar(&linksOut, "links-out", "", "also write the consensus link table here")
	cmd.Flags().StringVar(&truth, "truth", "", "ground-truth tiling; enables the breakpoint report")
	cmd.Flags().StringVar(&report, "report", "-", "breakpoint report output (with --truth)")
	_ = cmd.MarkFlagRequired("contigs")
	return cmd
}
