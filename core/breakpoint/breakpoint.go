// Package breakpoint evaluates a predicted contig ordering against a
// ground-truth tiling of the same contigs on the true genome. It
// consumes consensus output and writes nothing back.
package breakpoint

import (
	"ggscaf-core/links"
	"ggscaf-core/scaffold"
	"ggscaf-core/tiling"
)

// DefaultDeltas are the resolutions used when judging gap estimates.
var DefaultDeltas = []int{100, 500, 1000, 10000}

// Truth indexes a ground-truth tiling by contig.
type Truth struct {
	byContig map[string]truthInfo
	chroms   [][]string // contig order per true chromosome
}

type truthInfo struct {
	chrom string
	rec   tiling.Record
}

// NewTruth builds the lookup from a tiling of the contigs against the
// true target genome.
func NewTruth(t *tiling.Tiling) *Truth {
	tr := &Truth{byContig: make(map[string]truthInfo)}
	for _, cl := range t.Clusters {
		order := make([]string, 0, len(cl.Records))
		for _, r := range cl.Records {
			c := r.Contig()
			tr.byContig[c] = truthInfo{chrom: cl.Ref, rec: r}
			order = append(order, c)
		}
		tr.chroms = append(tr.chroms, order)
	}
	return tr
}

// Counts accumulates adjacency disagreements.
type Counts struct {
	Contigs         int
	Pairs           int
	DiffChromosome  int // adjacent pair mapping to different true chromosomes
	DiffOrientation int // contigs whose strand disagrees with the truth (minority count)
	DiffOrder       int // adjacent pairs inverted relative to true order
	MissingTruth    int // contigs absent from the ground-truth tiling
	GapErrors       []int
}

func (c Counts) add(o Counts) Counts {
	c.Contigs += o.Contigs
	c.Pairs += o.Pairs
	c.DiffChromosome += o.DiffChromosome
	c.DiffOrientation += o.DiffOrientation
	c.DiffOrder += o.DiffOrder
	c.MissingTruth += o.MissingTruth
	for i := range c.GapErrors {
		c.GapErrors[i] += o.GapErrors[i]
	}
	return c
}

// Breakpoints is the per-scaffold disagreement total.
func (c Counts) Breakpoints() int {
	return c.DiffChromosome + c.DiffOrientation + c.DiffOrder
}

// ScaffoldCounts ties counts to one predicted scaffold.
type ScaffoldCounts struct {
	Name string
	Counts
}

// Report holds per-scaffold and aggregate results.
type Report struct {
	Deltas    []int
	Scaffolds []ScaffoldCounts
	Total     Counts
}

// Count evaluates predicted paths against the truth at the given
// delta resolutions (DefaultDeltas when nil).
func Count(truth *Truth, paths []scaffold.Path, deltas []int) *Report {
	if len(deltas) == 0 {
		deltas = DefaultDeltas
	}
	rep := &Report{Deltas: deltas, Total: Counts{GapErrors: make([]int, len(deltas))}}
	for i, p := range paths {
		sc := ScaffoldCounts{
			Name:   scaffold.ScaffoldName(i),
			Counts: countPath(truth, p, deltas),
		}
		rep.Scaffolds = append(rep.Scaffolds, sc)
		rep.Total = rep.Total.add(sc.Counts)
	}
	return rep
}

func countPath(truth *Truth, p scaffold.Path, deltas []int) Counts {
	c := Counts{Contigs: len(p), GapErrors: make([]int, len(deltas))}

	alike, unlike := 0, 0
	for _, st := range p {
		ti, ok := truth.byContig[st.Contig]
		if !ok {
			c.MissingTruth++
			continue
		}
		if links.Orient(ti.rec.Strand) == st.Orient {
			alike++
		} else {
			unlike++
		}
	}
	// A globally flipped scaffold is still correctly ordered, so the
	// minority orientation is the error count.
	if unlike < alike {
		c.DiffOrientation = unlike
	} else {
		c.DiffOrientation = alike
	}

	for i := 0; i+1 < len(p); i++ {
		c.Pairs++
		t1, ok1 := truth.byContig[p[i].Contig]
		t2, ok2 := truth.byContig[p[i+1].Contig]
		if !ok1 || !ok2 {
			continue
		}
		if t1.chrom != t2.chrom {
			c.DiffChromosome++
		}
		trueGap := links.RangeDistance(t1.rec.RefStart, t1.rec.RefEnd, t2.rec.RefStart, t2.rec.RefEnd)
		for di, delta := range deltas {
			if abs(p[i].Gap-trueGap) > delta {
				c.GapErrors[di]++
			}
		}
	}

	// Relative order is direction-agnostic: score the path both ways
	// and keep the smaller inversion count.
	fwd := orderInversions(truth, p, false)
	rev := orderInversions(truth, p, true)
	if rev < fwd {
		c.DiffOrder = rev
	} else {
		c.DiffOrder = fwd
	}
	return c
}

func orderInversions(truth *Truth, p scaffold.Path, reversed bool) int {
	at := func(i int) string {
		if reversed {
			return p[len(p)-1-i].Contig
		}
		return p[i].Contig
	}
	tot := 0
	for i := 0; i+1 < len(p); i++ {
		c1, c2 := at(i), at(i+1)
		for _, chrom := range truth.chroms {
			i1, i2 := indexOf(chrom, c1), indexOf(chrom, c2)
			if i1 >= 0 && i2 >= 0 {
				if i2 < i1 {
					tot++
				}
				break
			}
		}
	}
	return tot
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
