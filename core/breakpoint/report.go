package breakpoint

import (
	"bufio"
	"fmt"
	"io"
)

// WriteText renders the report: one disagreement line per scaffold,
// then the aggregate counters with their per-contig / per-pair ratios.
func (r *Report) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, sc := range r.Scaffolds {
		fmt.Fprintf(bw, "SCAFFOLD\t%s\t%d\n", sc.Name, sc.Breakpoints())
	}
	t := r.Total
	fmt.Fprintf(bw, "N_PAIRS\t%d\n", t.Pairs)
	fmt.Fprintf(bw, "DIFF_CHROMOSOMES\t%d\n", t.DiffChromosome)
	fmt.Fprintf(bw, "DIFF_ORIENTATION\t%d\n", t.DiffOrientation)
	fmt.Fprintf(bw, "DIFF_ORDER\t%d\n", t.DiffOrder)
	for i, d := range r.Deltas {
		fmt.Fprintf(bw, "GAP_ERROR_%d\t%d\n", d, t.GapErrors[i])
	}
	fmt.Fprintf(bw, "REL_DIFF_CHROMOSOMES\t%f\n", ratio(t.DiffChromosome, t.Contigs))
	fmt.Fprintf(bw, "REL_DIFF_ORIENTATION\t%f\n", ratio(t.DiffOrientation, t.Contigs))
	fmt.Fprintf(bw, "REL_DIFF_ORDER\t%f\n", ratio(t.DiffOrder, t.Pairs))
	for i, d := range r.Deltas {
		fmt.Fprintf(bw, "REL_GAP_ERROR_%d\t%f\n", d, ratio(t.GapErrors[i], t.Pairs))
	}
	if t.MissingTruth > 0 {
		fmt.Fprintf(bw, "MISSING_IN_TRUTH\t%d\n", t.MissingTruth)
	}
	return bw.Flush()
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}
