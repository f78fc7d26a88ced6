// Package stats computes assembly summary metrics from a FASTA set.
package stats

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"ggscaf-core/fasta"
)

// Summary are the headline assembly metrics.
type Summary struct {
	Count    int
	TotalLen int
	Min      int
	Max      int
	Mean     float64
	N50      int
}

// Summarize computes the summary for a record set.
func Summarize(set *fasta.Set) Summary {
	lengths := make([]int, 0, set.Len())
	for _, r := range set.Records {
		lengths = append(lengths, len(r.Seq))
	}
	s := Summary{Count: len(lengths), N50: N50(lengths)}
	for i, l := range lengths {
		s.TotalLen += l
		if i == 0 || l < s.Min {
			s.Min = l
		}
		if l > s.Max {
			s.Max = l
		}
	}
	if s.Count > 0 {
		s.Mean = float64(s.TotalLen) / float64(s.Count)
	}
	return s
}

// N50 is the length x such that pieces of length >= x cover at least
// half of the assembly.
func N50(lengths []int) int {
	if len(lengths) == 0 {
		return 0
	}
	sorted := append([]int(nil), lengths...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	total := 0
	for _, l := range sorted {
		total += l
	}
	cum := 0
	for _, l := range sorted {
		cum += l
		if 2*cum >= total {
			return l
		}
	}
	return sorted[len(sorted)-1]
}

// WriteLengths emits a "length TAB id" line per record, in set order.
func WriteLengths(w io.Writer, set *fasta.Set) error {
	bw := bufio.NewWriter(w)
	for _, r := range set.Records {
		if _, err := fmt.Fprintf(bw, "%d\t%s\n", len(r.Seq), r.ID); err != nil {
			return err
		}
	}
	return bw.Flush()
}
