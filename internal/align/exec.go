package align

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"ggscaf-core/scaferr"
)

// ExecAligner shells out to a MUMmer aligner binary.
type ExecAligner struct {
	Kind    Kind
	WorkDir string // where delta files land
	Prefix  string // output prefix within WorkDir
}

// Align runs `<nucmer|promer> -p <prefix> <reference> <query>` and
// returns the delta file location.
func (a *ExecAligner) Align(ctx context.Context, query, reference string) (Result, error) {
	prefix := filepath.Join(a.WorkDir, a.Prefix)
	cmd := exec.CommandContext(ctx, a.Kind.Binary(), "-p", prefix, reference, query)
	cmd.Stderr = os.Stderr
	log.Debug().Str("aligner", a.Kind.String()).Str("query", query).Str("reference", reference).Msg("aligning")
	if err := cmd.Run(); err != nil {
		return Result{}, errors.Wrapf(err, "%s %s vs %s", a.Kind, query, reference)
	}
	delta := prefix + ".delta"
	if _, err := os.Stat(delta); err != nil {
		return Result{}, &scaferr.MissingInputError{Path: delta}
	}
	return Result{DeltaPath: delta}, nil
}

// ExecTiler runs MUMmer's show-tiling over a delta file.
type ExecTiler struct {
	Binary string // defaults to "show-tiling"
}

// Tile writes the reference-ordered tiling for res to out.
func (t *ExecTiler) Tile(ctx context.Context, res Result, out string) error {
	bin := t.Binary
	if bin == "" {
		bin = "show-tiling"
	}
	fh, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() { _ = fh.Close() }()

	cmd := exec.CommandContext(ctx, bin, res.DeltaPath)
	cmd.Stdout = fh
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		_ = os.Remove(out)
		return errors.Wrapf(err, "%s %s", bin, res.DeltaPath)
	}
	return nil
}
