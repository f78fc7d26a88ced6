package fasta

import "strings"

// End-label prefixes attached to contig ids when contig ends are
// extracted for alignment. Tilings produced from such a FASTA carry the
// prefixes through, so the link layer can tell which end of a contig an
// alignment placement represents.
const (
	LabelLeft  = "LFT_" // leading nCut bases
	LabelRight = "RGT_" // trailing nCut bases
	LabelWhole = "ALL_" // whole contig (too short to split, or nCut = 0)
)

// SplitEndID strips an end-label prefix from a tiling contig id.
// The returned end is "LFT", "RGT" or "ALL"; ids without a label return
// the id unchanged and an empty end.
func SplitEndID(id string) (contig, end string) {
	for _, p := range []string{LabelLeft, LabelRight, LabelWhole} {
		if strings.HasPrefix(id, p) {
			return id[len(p):], p[:3]
		}
	}
	return id, ""
}

// ExtractEnds cuts nCut bases off both ends of every record, producing a
// FASTA suitable for aligning contig extremities against a guiding
// genome. Contigs shorter than 2*nCut are kept whole under the ALL_
// label, as is everything when nCut is 0.
func ExtractEnds(set *Set, nCut int) []Record {
	out := make([]Record, 0, 2*set.Len())
	for _, r := range set.Records {
		l := len(r.Seq)
		if nCut <= 0 || l < 2*nCut {
			out = append(out, Record{ID: LabelWhole + r.ID, Seq: r.Seq})
			continue
		}
		out = append(out,
			Record{ID: LabelLeft + r.ID, Seq: r.Seq[:nCut]},
			Record{ID: LabelRight + r.ID, Seq: r.Seq[l-nCut:]},
		)
	}
	return out
}
