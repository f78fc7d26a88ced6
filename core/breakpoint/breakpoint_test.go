package breakpoint

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ggscaf-core/links"
	"ggscaf-core/scaffold"
	"ggscaf-core/tiling"
)

func truthTiling() *Truth {
	return NewTruth(&tiling.Tiling{
		Genome: "genome",
		Clusters: []tiling.Cluster{
			{Ref: "chr1", Records: []tiling.Record{
				{RefStart: 1, RefEnd: 100, Strand: '+', ContigID: "A"},
				{RefStart: 151, RefEnd: 250, Strand: '+', ContigID: "B"},
				{RefStart: 301, RefEnd: 400, Strand: '+', ContigID: "C"},
			}},
			{Ref: "chr2", Records: []tiling.Record{
				{RefStart: 1, RefEnd: 100, Strand: '+', ContigID: "D"},
			}},
		},
	})
}

func step(c string, o links.Orient, gap int) scaffold.Step {
	return scaffold.Step{Contig: c, Orient: o, Gap: gap}
}

func TestCountAgreeingScaffold(t *testing.T) {
	// A -> B in true order and orientation, gap estimate spot on.
	p := scaffold.Path{step("A", links.Forward, 51), step("B", links.Forward, 0)}
	rep := Count(truthTiling(), []scaffold.Path{p}, nil)

	require.Len(t, rep.Scaffolds, 1)
	c := rep.Total
	assert.Equal(t, 1, c.Pairs)
	assert.Equal(t, 0, c.DiffChromosome)
	assert.Equal(t, 0, c.DiffOrientation)
	assert.Equal(t, 0, c.DiffOrder)
	assert.Equal(t, []int{0, 0, 0, 0}, c.GapErrors)
	assert.Equal(t, 0, rep.Scaffolds[0].Breakpoints())
}

func TestCountGloballyFlippedScaffoldIsCorrect(t *testing.T) {
	// B- then A- is the same region read from the other strand.
	p := scaffold.Path{step("B", links.Reverse, 51), step("A", links.Reverse, 0)}
	rep := Count(truthTiling(), []scaffold.Path{p}, nil)
	c := rep.Total
	assert.Equal(t, 0, c.DiffOrientation, "uniformly flipped strands are not errors")
	assert.Equal(t, 0, c.DiffOrder, "reversed order scores against the reversed truth")
}

func TestCountDisagreements(t *testing.T) {
	paths := []scaffold.Path{
		// B's orientation disagrees with the truth.
		{step("A", links.Forward, 51), step("B", links.Reverse, 0)},
		// C and D sit on different true chromosomes, and the gap
		// estimate is far off the true distance.
		{step("C", links.Forward, 10), step("D", links.Forward, 0)},
	}
	rep := Count(truthTiling(), paths, nil)
	c := rep.Total
	assert.Equal(t, 2, c.Pairs)
	assert.Equal(t, 1, c.DiffChromosome)
	assert.Equal(t, 1, c.DiffOrientation)
	assert.Equal(t, 0, c.DiffOrder)
	// true C-D distance is 201; |10-201| = 191 exceeds only delta 100.
	assert.Equal(t, []int{1, 0, 0, 0}, c.GapErrors)

	assert.Equal(t, 1, rep.Scaffolds[0].Breakpoints())
	assert.Equal(t, 1, rep.Scaffolds[1].Breakpoints())
}

func TestCountOrderInversion(t *testing.T) {
	p := scaffold.Path{
		step("A", links.Forward, 1),
		step("C", links.Forward, 1),
		step("B", links.Forward, 0),
	}
	rep := Count(truthTiling(), []scaffold.Path{p}, nil)
	assert.Equal(t, 1, rep.Total.DiffOrder)
}

func TestCountMissingTruth(t *testing.T) {
	p := scaffold.Path{step("A", links.Forward, 5), step("unknown", links.Forward, 0)}
	rep := Count(truthTiling(), []scaffold.Path{p}, nil)
	c := rep.Total
	assert.Equal(t, 1, c.MissingTruth)
	assert.Equal(t, 0, c.DiffChromosome, "pairs without truth are not judged")
}

func TestReportWriteText(t *testing.T) {
	paths := []scaffold.Path{
		{step("A", links.Forward, 51), step("B", links.Reverse, 0)},
	}
	rep := Count(truthTiling(), paths, nil)
	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "SCAFFOLD\tScaffold1\t1\n")
	assert.Contains(t, out, "N_PAIRS\t1\n")
	assert.Contains(t, out, "DIFF_ORIENTATION\t1\n")
	assert.Contains(t, out, "GAP_ERROR_100\t0\n")
	assert.Contains(t, out, "REL_DIFF_ORIENTATION\t0.5")
}
