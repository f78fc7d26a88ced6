package tiling

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ggscaf-core/scaferr"
)

const sampleTiling = `/data/guide1.fasta 4641652 bases
>chr1 2000000 bases
1	1000	50	1000	98.50	1200	83.33	+	nucmer	LFT_ctgA
1051	2050	0	1000	97.10	1200	83.33	+	nucmer	RGT_ctgA
2051	3050	-10	1000	96.00	3000	33.33	-	nucmer	ALL_ctgB
>chr2 500000 bases
10	500	0	491	99.00	600	81.83	+	nucmer	ctgC
`

func TestParseTiling(t *testing.T) {
	ti, err := Parse(strings.NewReader(sampleTiling), "guide1")
	require.NoError(t, err)
	assert.Equal(t, "guide1", ti.Genome)
	require.Len(t, ti.Clusters, 2)

	c1 := ti.Clusters[0]
	assert.Equal(t, "chr1", c1.Ref)
	require.Len(t, c1.Records, 3)

	r := c1.Records[0]
	assert.Equal(t, 1, r.RefStart)
	assert.Equal(t, 1000, r.RefEnd)
	assert.Equal(t, 50, r.GapToNext)
	assert.Equal(t, 1000, r.AlignLen)
	assert.InDelta(t, 98.5, r.Identity, 1e-9)
	assert.Equal(t, 1200, r.ContigLen)
	assert.InDelta(t, 83.33, r.Coverage, 1e-9)
	assert.Equal(t, byte('+'), r.Strand)
	assert.Equal(t, "nucmer", r.Tag)
	assert.Equal(t, "LFT_ctgA", r.ContigID)
	assert.Equal(t, "ctgA", r.Contig())
	assert.Equal(t, "LFT", r.End())

	assert.Equal(t, byte('-'), c1.Records[2].Strand)
	assert.Equal(t, "ctgC", ti.Clusters[1].Records[0].Contig())
	assert.Equal(t, "", ti.Clusters[1].Records[0].End())
}

func TestParseRejectsMalformedRecord(t *testing.T) {
	in := ">chr1\n1\t1000\t50\n"
	_, err := Parse(strings.NewReader(in), "bad")
	var pe *scaferr.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "bad", pe.File)
	assert.Equal(t, 2, pe.Line)
}

func TestParseRejectsNonNumericCoordinate(t *testing.T) {
	in := ">chr1\nx\t1000\t0\t1000\t98.0\t1200\t83.0\t+\tnucmer\tctgA\n"
	_, err := Parse(strings.NewReader(in), "bad")
	var pe *scaferr.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Msg, "bad start")
}

func TestParseSkippingCountsMalformed(t *testing.T) {
	in := ">chr1\n" +
		"1\t1000\t0\t1000\t98.0\t1200\t83.0\t+\tnucmer\tctgA\n" +
		"garbage line\n" +
		"1100\t2000\t0\t900\t97.0\t1000\t90.0\t+\tnucmer\tctgB\n"
	ti, skipped, err := ParseSkipping(strings.NewReader(in), "g")
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, ti.Clusters, 1)
	assert.Len(t, ti.Clusters[0].Records, 2)
}

func TestParseToleratesPreambleAndComments(t *testing.T) {
	ti, err := Parse(strings.NewReader(sampleTiling), "g")
	require.NoError(t, err)
	assert.Len(t, ti.Clusters, 2)

	withComment := "# produced by show-tiling\n>chr1\n1\t9\t0\t9\t99.0\t9\t100.0\t+\tnucmer\tctgA\n"
	ti, err = Parse(strings.NewReader(withComment), "g")
	require.NoError(t, err)
	require.Len(t, ti.Clusters, 1)
}

func TestPlacementsFoldContigEnds(t *testing.T) {
	ti, err := Parse(strings.NewReader(sampleTiling), "g")
	require.NoError(t, err)
	ps := ti.Clusters[0].Placements()
	require.Len(t, ps, 2, "the two ends of ctgA fold into one placement")
	assert.Equal(t, "ctgA", ps[0].Contig)
	assert.Equal(t, 1, ps[0].RefStart)
	assert.Equal(t, 2050, ps[0].RefEnd)
	assert.Equal(t, byte('+'), ps[0].Strand)
	assert.Equal(t, "ctgB", ps[1].Contig)
}

func TestSelectFile(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "guide1_2000.tiling")
	require.NoError(t, os.WriteFile(want, []byte(">chr1\n"), 0o644))

	got, err := SelectFile(dir, "guide1", 2000)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = SelectFile(dir, "guide1", 500)
	var me *scaferr.MissingInputError
	require.ErrorAs(t, err, &me)
	assert.Contains(t, me.Path, "guide1_500.tiling")
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.tiling"))
	var me *scaferr.MissingInputError
	require.ErrorAs(t, err, &me)
}
