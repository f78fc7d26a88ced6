package align

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseAligner(t *testing.T) {
	assert.Equal(t, Nucmer, ChooseAligner(95, 90))
	assert.Equal(t, Nucmer, ChooseAligner(90, 90), "limit itself keeps nucmer")
	assert.Equal(t, Promer, ChooseAligner(89.9, 90))
}

func TestKindBinary(t *testing.T) {
	assert.Equal(t, "nucmer", Nucmer.Binary())
	assert.Equal(t, "promer", Promer.Binary())
}

func TestCachePathAndHas(t *testing.T) {
	dir := t.TempDir()
	c := &Cache{Dir: dir}
	k := Key{Genome: "guide1", ContigDigest: "abc123def456", NCut: 2000}

	want := filepath.Join(dir, "guide1_abc123def456_2000.tiling")
	assert.Equal(t, want, c.Path(k))
	assert.False(t, c.Has(k))

	require.NoError(t, os.WriteFile(want, []byte(">chr1\n"), 0o644))
	assert.True(t, c.Has(k))
}

func TestCacheHasIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	c := &Cache{Dir: dir}
	k := Key{Genome: "g", ContigDigest: "d", NCut: 1}
	require.NoError(t, os.Mkdir(c.Path(k), 0o755))
	assert.False(t, c.Has(k))
}

func TestDigestFile(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.fasta")
	p2 := filepath.Join(dir, "b.fasta")
	require.NoError(t, os.WriteFile(p1, []byte(">c\nACGT\n"), 0o644))
	require.NoError(t, os.WriteFile(p2, []byte(">c\nACGA\n"), 0o644))

	d1, err := DigestFile(p1)
	require.NoError(t, err)
	d1again, err := DigestFile(p1)
	require.NoError(t, err)
	d2, err := DigestFile(p2)
	require.NoError(t, err)

	assert.Len(t, d1, 12)
	assert.Equal(t, d1, d1again)
	assert.NotEqual(t, d1, d2)
}
