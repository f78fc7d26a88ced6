// Package app wires the scaffolding stages into one pipeline: extract
// contig ends, tile them against every guiding genome, aggregate the
// observed adjacencies, pick a consensus, and emit scaffolds.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"ggscaf-core/breakpoint"
	"ggscaf-core/fasta"
	"ggscaf-core/links"
	"ggscaf-core/scaffold"
	"ggscaf-core/tiling"
	"ggscaf/internal/align"
	"ggscaf/internal/config"
	"ggscaf/internal/writers"
)

// Pipeline holds everything one scaffolding run needs.
type Pipeline struct {
	Params  config.Params
	Contigs string   // draft assembly FASTA
	Guides  []string // guiding genome FASTAs
	WorkDir string   // scratch space for ends, deltas and tilings
	Truth   string   // optional ground-truth tiling for breakpoint counting
}

// Run executes the full pipeline and writes the scaffold FASTA to out,
// plus the consensus link table to linksOut when non-nil. With a truth
// tiling configured, the breakpoint report goes to reportOut.
func (p *Pipeline) Run(ctx context.Context, out, linksOut, reportOut io.Writer) error {
	contigs, err := fasta.Open(p.Contigs)
	if err != nil {
		return err
	}
	log.Info().Int("contigs", contigs.Len()).Str("file", p.Contigs).Msg("loaded draft assembly")

	endsPath, digest, err := p.PrepareEnds(contigs)
	if err != nil {
		return err
	}

	tilings, err := p.TileGuides(ctx, endsPath, digest)
	if err != nil {
		return err
	}

	consensus, err := p.BuildLinks(tilings)
	if err != nil {
		return err
	}
	if linksOut != nil {
		if err := links.WriteLinks(linksOut, consensus); err != nil {
			return err
		}
	}

	if err := p.WriteScaffolds(consensus, contigs, out); err != nil {
		return err
	}

	if p.Truth != "" && reportOut != nil {
		paths, err := BuildPathsOnly(consensus)
		if err != nil {
			return err
		}
		rep, err := Breakpoints(p.Truth, paths, nil)
		if err != nil {
			return err
		}
		if err := rep.WriteText(reportOut); err != nil {
			return err
		}
	}
	return nil
}

// PrepareEnds writes the trimmed contig-end FASTA into the work
// directory and returns its path together with a digest of the source
// contig set for cache keying.
func (p *Pipeline) PrepareEnds(contigs *fasta.Set) (path, digest string, err error) {
	if err := os.MkdirAll(p.WorkDir, 0o755); err != nil {
		return "", "", err
	}
	ends := fasta.ExtractEnds(contigs, p.Params.NCut)

	path = filepath.Join(p.WorkDir, fmt.Sprintf("ends_%d.fasta", p.Params.NCut))
	fh, err := os.Create(path)
	if err != nil {
		return "", "", err
	}
	werr := fasta.Write(fh, ends, fasta.DefaultWidth)
	if cerr := fh.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return "", "", werr
	}

	digest, err = align.DigestFile(p.Contigs)
	if err != nil {
		return "", "", err
	}
	log.Debug().Int("ends", len(ends)).Str("digest", digest).Msg("contig ends prepared")
	return path, digest, nil
}

// BuildLinks turns per-guide tilings into the consensus link set.
func (p *Pipeline) BuildLinks(tilings []*tiling.Tiling) ([]links.Link, error) {
	var cands []links.Candidate
	for _, t := range tilings {
		cs := links.Candidates(t)
		log.Debug().Str("genome", t.Genome).Int("candidates", len(cs)).Msg("extracted candidate links")
		cands = append(cands, cs...)
	}

	nGuides := p.Params.NGuides
	if nGuides == 0 {
		nGuides = len(tilings)
	}
	aggs := links.Aggregate(cands, p.Params.WindowSize)
	minSup := links.MinSupport(p.Params.Threshold, nGuides)
	consensus, err := links.Select(aggs, minSup)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("candidates", len(cands)).
		Int("aggregated", len(aggs)).
		Int("min_support", minSup).
		Int("consensus", len(consensus)).
		Msg("consensus links selected")
	return consensus, nil
}

// WriteScaffolds orders the contigs along consensus links and streams
// the assembled sequences to out.
func (p *Pipeline) WriteScaffolds(consensus []links.Link, contigs *fasta.Set, out io.Writer) error {
	paths, err := scaffold.BuildPaths(consensus)
	if err != nil {
		return err
	}
	recs, err := scaffold.Assemble(paths, contigs, scaffold.Options{
		MinFill:       p.Params.MinFill,
		MergeOverlaps: p.Params.MergeOverlaps,
	})
	if err != nil {
		return err
	}
	log.Info().Int("scaffolds", len(recs)).Msg("assembled scaffolds")

	in, errCh := writers.StartScaffoldWriter(out, fasta.DefaultWidth, 0)
	for _, r := range recs {
		in <- r
	}
	close(in)
	if werr := <-errCh; werr != nil && !writers.IsBrokenPipe(werr) {
		return werr
	}
	return nil
}

// BuildPathsOnly is the scaffold ordering without sequence assembly,
// used by breakpoint evaluation.
func BuildPathsOnly(consensus []links.Link) ([]scaffold.Path, error) {
	return scaffold.BuildPaths(consensus)
}

// Breakpoints evaluates consensus paths against a ground-truth tiling.
func Breakpoints(truthPath string, paths []scaffold.Path, deltas []int) (*breakpoint.Report, error) {
	truth, err := tiling.ParseFile(truthPath)
	if err != nil {
		return nil, err
	}
	return breakpoint.Count(breakpoint.NewTruth(truth), paths, deltas), nil
}
