// Package tiling parses reference-ordered alignment tilings, the
// show-tiling style record lists produced per guiding genome. A tiling
// is grouped into clusters, one per reference chromosome, each an
// ordered list of contig placements along that chromosome.
package tiling

import (
	"ggscaf-core/fasta"
)

// Record is one contig placement along a reference chromosome.
type Record struct {
	RefStart  int     // 1-based start on the reference
	RefEnd    int     // end on the reference
	GapToNext int     // reported distance to the next placement
	AlignLen  int     // aligned length
	Identity  float64 // percent identity
	ContigLen int     // full contig length
	Coverage  float64 // percent of the contig covered
	Strand    byte    // '+' or '-'
	Tag       string  // aligner tag column
	ContigID  string  // possibly end-labelled (LFT_/RGT_/ALL_)
}

// Contig returns the contig id with any end label stripped.
func (r Record) Contig() string {
	c, _ := fasta.SplitEndID(r.ContigID)
	return c
}

// End returns the end label of the placement ("LFT", "RGT", "ALL") or
// "" when the id carries none.
func (r Record) End() string {
	_, e := fasta.SplitEndID(r.ContigID)
	return e
}

// Cluster is the ordered tiling of one reference chromosome.
type Cluster struct {
	Ref     string
	Records []Record
}

// Tiling is one guiding genome's full tiling.
type Tiling struct {
	Genome   string
	Clusters []Cluster
}

// Placements returns the cluster records folded to contig granularity:
// consecutive records of the same contig (the two extracted ends)
// collapse into one placement spanning both. Strand is taken from the
// first record of the run.
func (c *Cluster) Placements() []Placement {
	var out []Placement
	for _, r := range c.Records {
		contig := r.Contig()
		if n := len(out); n > 0 && out[n-1].Contig == contig {
			p := &out[n-1]
			if r.RefStart < p.RefStart {
				p.RefStart = r.RefStart
			}
			if r.RefEnd > p.RefEnd {
				p.RefEnd = r.RefEnd
			}
			continue
		}
		out = append(out, Placement{
			Contig:   contig,
			Strand:   r.Strand,
			RefStart: r.RefStart,
			RefEnd:   r.RefEnd,
		})
	}
	return out
}

// Placement is a contig-granular position on a reference chromosome.
type Placement struct {
	Contig   string
	Strand   byte
	RefStart int
	RefEnd   int
}
