package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"ggscaf-core/scaferr"
	"ggscaf-core/tiling"
	"ggscaf/internal/align"
)

// TileGuides aligns the contig ends against every guiding genome and
// parses the resulting tilings. Guides run concurrently up to the
// configured thread limit. A guide that fails to align is logged and
// dropped; the run only fails when no guide survives.
func (p *Pipeline) TileGuides(ctx context.Context, endsPath, digest string) ([]*tiling.Tiling, error) {
	cache := &align.Cache{Dir: p.WorkDir}

	results := make([]*tiling.Tiling, len(p.Guides))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Params.EffectiveThreads())

	for i, guide := range p.Guides {
		i, guide := i, guide
		g.Go(func() error {
			t, err := p.tileOne(gctx, cache, guide, endsPath, digest)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.Warn().Err(err).Str("guide", guide).Msg("guide dropped")
				return nil
			}
			mu.Lock()
			results[i] = t
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tilings := make([]*tiling.Tiling, 0, len(results))
	for _, t := range results {
		if t != nil {
			tilings = append(tilings, t)
		}
	}
	if len(tilings) == 0 {
		return nil, &scaferr.MissingInputError{Path: "no usable guide tilings"}
	}
	return tilings, nil
}

func (p *Pipeline) tileOne(ctx context.Context, cache *align.Cache, guide, endsPath, digest string) (*tiling.Tiling, error) {
	name := GuideName(guide)
	key := align.Key{Genome: name, ContigDigest: digest, NCut: p.Params.NCut}
	if cache.Has(key) {
		log.Debug().Str("guide", name).Msg("tiling cached")
		return parseTilingFile(cache.Path(key), name)
	}

	dir := filepath.Join(p.WorkDir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	t, err := p.alignAndTile(ctx, align.Nucmer, dir, guide, endsPath, name)
	if err != nil {
		return nil, err
	}

	// The nucleotide probe decides whether this guide is close enough;
	// diverged guides are redone at the protein level.
	ident := avgIdentity(t)
	if kind := align.ChooseAligner(ident, p.Params.IdentityLimit); kind == align.Promer {
		log.Info().Str("guide", name).Float64("identity", ident).Msg("switching to promer")
		if t, err = p.alignAndTile(ctx, align.Promer, dir, guide, endsPath, name); err != nil {
			return nil, err
		}
	}

	if err := os.Rename(tilingPath(dir, name), cache.Path(key)); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *Pipeline) alignAndTile(ctx context.Context, kind align.Kind, dir, guide, endsPath, name string) (*tiling.Tiling, error) {
	aligner := &align.ExecAligner{Kind: kind, WorkDir: dir, Prefix: name}
	res, err := aligner.Align(ctx, endsPath, guide)
	if err != nil {
		return nil, err
	}
	tiler := &align.ExecTiler{}
	out := tilingPath(dir, name)
	if err := tiler.Tile(ctx, res, out); err != nil {
		return nil, err
	}
	return parseTilingFile(out, name)
}

func parseTilingFile(path, name string) (*tiling.Tiling, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, &scaferr.MissingInputError{Path: path}
	}
	defer func() { _ = fh.Close() }()
	t, skipped, err := tiling.ParseSkipping(fh, name)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		log.Warn().Str("guide", name).Int("skipped", skipped).Msg("malformed tiling lines skipped")
	}
	return t, nil
}

func tilingPath(dir, name string) string {
	return filepath.Join(dir, name+".tiling")
}

// GuideName is the genome label for a guide FASTA path: the base name
// with its extension removed.
func GuideName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func avgIdentity(t *tiling.Tiling) float64 {
	n, sum := 0, 0.0
	for _, cl := range t.Clusters {
		for _, r := range cl.Records {
			sum += r.Identity
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
