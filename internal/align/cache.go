package align

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Key identifies one alignment product: which guiding genome, which
// contig-end set (by content digest) and which trim length produced it.
type Key struct {
	Genome       string
	ContigDigest string
	NCut         int
}

// Cache memoizes tiling files on disk. Existence of the keyed file is
// the "already computed" predicate; there is no locking because a
// pipeline run has no concurrent writers for the same key.
type Cache struct {
	Dir string
}

// Path is the tiling location for k.
func (c *Cache) Path(k Key) string {
	return filepath.Join(c.Dir, fmt.Sprintf("%s_%s_%d.tiling", k.Genome, k.ContigDigest, k.NCut))
}

// Has reports whether the tiling for k already exists.
func (c *Cache) Has(k Key) bool {
	fi, err := os.Stat(c.Path(k))
	return err == nil && !fi.IsDir()
}

// DigestFile returns a short content digest of the file at path,
// suitable as the contig-set identity in a Key.
func DigestFile(path string) (string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = fh.Close() }()
	h := sha256.New()
	if _, err := io.Copy(h, fh); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil))[:12], nil
}
