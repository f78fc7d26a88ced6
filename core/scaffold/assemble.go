package scaffold

import (
	"bytes"
	"fmt"

	"ggscaf-core/fasta"
	"ggscaf-core/links"
)

// Options tunes scaffold rendering.
type Options struct {
	// MinFill is the smallest N filler placed between joined contigs.
	// Gap estimates at or below zero are clamped to it so downstream
	// tools never see an empty junction. Values < 1 are raised to 1.
	MinFill int
	// MergeOverlaps enables joining contigs whose negative gap estimate
	// is confirmed by an exact suffix/prefix overlap of the sequences.
	MergeOverlaps bool
}

// DefaultOptions is plain clamped rendering.
var DefaultOptions = Options{MinFill: 1}

// ScaffoldPrefix names multi-contig output records; singletons keep
// their contig header.
const ScaffoldPrefix = "Scaffold"

// ScaffoldName is the header of the i-th (0-based) multi-contig
// scaffold.
func ScaffoldName(i int) string { return fmt.Sprintf("%s%d", ScaffoldPrefix, i+1) }

// Assemble renders each path into a scaffold sequence and appends every
// contig untouched by the link set as a singleton record, preserving
// contig-set order. Paths referencing a contig absent from the set are
// an error.
func Assemble(paths []Path, contigs *fasta.Set, opt Options) ([]fasta.Record, error) {
	if opt.MinFill < 1 {
		opt.MinFill = 1
	}
	used := make(map[string]bool)
	out := make([]fasta.Record, 0, len(paths))

	for pi, p := range paths {
		name := ScaffoldName(pi)
		seqs := make([][]byte, len(p))
		for i, st := range p {
			seq, ok := contigs.Get(st.Contig)
			if !ok {
				return nil, fmt.Errorf("scaffold %s: contig %q not in contig set", name, st.Contig)
			}
			if st.Orient == links.Reverse {
				seq = fasta.RevComp(seq)
			}
			seqs[i] = seq
			used[st.Contig] = true
		}

		buf := append([]byte(nil), seqs[0]...)
		for i := 1; i < len(seqs); i++ {
			gap := p[i-1].Gap
			if gap < 0 && opt.MergeOverlaps {
				if o := overlapLen(buf, seqs[i]); o > 0 {
					buf = append(buf, seqs[i][o:]...)
				} else {
					buf = append(buf, seqs[i]...)
				}
				continue
			}
			fill := gap
			if fill < opt.MinFill {
				fill = opt.MinFill
			}
			buf = append(buf, bytes.Repeat([]byte{'N'}, fill)...)
			buf = append(buf, seqs[i]...)
		}
		out = append(out, fasta.Record{ID: name, Seq: buf})
	}

	for _, r := range contigs.Records {
		if !used[r.ID] {
			out = append(out, r)
		}
	}
	return out, nil
}

// overlapLen finds the longest exact overlap between the end of s1 and
// the start of s2.
func overlapLen(s1, s2 []byte) int {
	x := len(s1)
	if len(s2) < x {
		x = len(s2)
	}
	for ; x > 0; x-- {
		if bytes.Equal(s1[len(s1)-x:], s2[:x]) {
			return x
		}
	}
	return 0
}
