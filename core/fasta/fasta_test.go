package fasta

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ggscaf-core/scaferr"
)

const sample = `>ctgA description ignored
ACGTACGT
ACGT
>ctgB
TTTT

>ctgC
`

func TestReadMultiFASTA(t *testing.T) {
	set, err := Read(strings.NewReader(sample), "sample")
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())

	seq, ok := set.Get("ctgA")
	require.True(t, ok)
	assert.Equal(t, "ACGTACGTACGT", string(seq))

	seq, ok = set.Get("ctgB")
	require.True(t, ok)
	assert.Equal(t, "TTTT", string(seq))

	seq, ok = set.Get("ctgC")
	require.True(t, ok)
	assert.Empty(t, seq)

	assert.Equal(t, "ctgA", set.Records[0].ID, "input order preserved")
	assert.False(t, set.Has("ctgD"))
}

func TestReadRejectsHeaderlessSequence(t *testing.T) {
	_, err := Read(strings.NewReader("ACGT\n>ctgA\nACGT\n"), "bad")
	var pe *scaferr.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "bad", pe.File)
	assert.Equal(t, 1, pe.Line)
}

func TestWriteWraps(t *testing.T) {
	rec := Record{ID: "s", Seq: bytes.Repeat([]byte{'A'}, 25)}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []Record{rec}, 10))
	assert.Equal(t, ">s\nAAAAAAAAAA\nAAAAAAAAAA\nAAAAA\n", buf.String())
}

func TestRevComp(t *testing.T) {
	assert.Equal(t, "ACGT", string(RevComp([]byte("ACGT"))))
	assert.Equal(t, "YRWSN", string(RevComp([]byte("NSWYR"))))
	assert.Equal(t, "N", string(RevComp([]byte("Q"))), "unknown symbol maps to N")
	assert.Nil(t, RevComp(nil))
}

func TestExtractEnds(t *testing.T) {
	set := NewSet([]Record{
		{ID: "long", Seq: []byte("AAACCCGGGTTT")}, // 12 bp
		{ID: "short", Seq: []byte("ACGTA")},       // < 2*nCut
	})
	recs := ExtractEnds(set, 4)
	require.Len(t, recs, 3)
	assert.Equal(t, "LFT_long", recs[0].ID)
	assert.Equal(t, "AAAC", string(recs[0].Seq))
	assert.Equal(t, "RGT_long", recs[1].ID)
	assert.Equal(t, "GTTT", string(recs[1].Seq))
	assert.Equal(t, "ALL_short", recs[2].ID)
	assert.Equal(t, "ACGTA", string(recs[2].Seq))
}

func TestExtractEndsZeroCutKeepsWhole(t *testing.T) {
	set := NewSet([]Record{{ID: "c", Seq: []byte("ACGT")}})
	recs := ExtractEnds(set, 0)
	require.Len(t, recs, 1)
	assert.Equal(t, "ALL_c", recs[0].ID)
}

func TestSplitEndID(t *testing.T) {
	for _, tc := range []struct {
		in, contig, end string
	}{
		{"LFT_ctg1", "ctg1", "LFT"},
		{"RGT_ctg1", "ctg1", "RGT"},
		{"ALL_ctg1", "ctg1", "ALL"},
		{"ctg1", "ctg1", ""},
	} {
		c, e := SplitEndID(tc.in)
		assert.Equal(t, tc.contig, c)
		assert.Equal(t, tc.end, e)
	}
}
