// Package align models the external aligner as a capability: the
// scaffolder chooses between nucmer and promer, shells out to whichever
// is selected, turns the delta output into a tiling, and memoizes the
// result per (guiding genome, contig set, trim length). Sequence
// alignment itself is never reimplemented in-process.
package align

import (
	"context"
)

// Kind identifies an aligner backend.
type Kind int

const (
	Nucmer Kind = iota // nucleotide-level, close genomes
	Promer             // protein-level, diverged genomes
)

func (k Kind) String() string {
	if k == Promer {
		return "promer"
	}
	return "nucmer"
}

// Binary is the executable name for the backend.
func (k Kind) Binary() string { return k.String() }

// ChooseAligner picks the backend for one guiding genome from the
// average percent identity of a probe alignment: at or above limit the
// nucleotide aligner is kept, below it the protein-level aligner takes
// over.
func ChooseAligner(avgIdentity, limit float64) Kind {
	if avgIdentity >= limit {
		return Nucmer
	}
	return Promer
}

// Result locates one finished alignment on disk.
type Result struct {
	DeltaPath string
}

// Aligner aligns a query FASTA against a reference FASTA.
type Aligner interface {
	Align(ctx context.Context, query, reference string) (Result, error)
}

// TilingExtractor turns an alignment result into a tiling file.
type TilingExtractor interface {
	Tile(ctx context.Context, res Result, out string) error
}
