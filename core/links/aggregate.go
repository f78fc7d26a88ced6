package links

import (
	"sort"

	"ggscaf-core/tiling"
)

// Candidate is one adjacency observed in a single guiding genome's
// tiling.
type Candidate struct {
	Link   Link
	Genome string
}

// Candidates extracts the adjacencies implied by one tiling: every pair
// of neighbouring contig placements in a cluster yields a candidate
// from the trailing end of the first to the leading end of the second,
// oriented per their strands. Candidates are canonicalized so mirrored
// observations group together.
func Candidates(t *tiling.Tiling) []Candidate {
	var out []Candidate
	for ci := range t.Clusters {
		ps := t.Clusters[ci].Placements()
		for i := 0; i+1 < len(ps); i++ {
			a, b := ps[i], ps[i+1]
			if a.Contig == b.Contig {
				continue
			}
			l := Link{
				From:       a.Contig,
				FromOrient: Orient(a.Strand),
				To:         b.Contig,
				ToOrient:   Orient(b.Strand),
				Gap:        RangeDistance(a.RefStart, a.RefEnd, b.RefStart, b.RefEnd),
			}
			out = append(out, Candidate{Link: l.Canonical(), Genome: t.Genome})
		}
	}
	return out
}

// RangeDistance measures the separation of reference ranges [a,b] and
// [c,d]. Overlap is reported negated; identical ranges count as zero
// overlap and fall through to the endpoint rule.
func RangeDistance(a, b, c, d int) int {
	o := 0
	if !(a == c && b == d) {
		o = minInt(b, d) - maxInt(a, c)
	}
	if o > 0 {
		return -o
	}
	return minInt(
		absInt(maxInt(a, b)-minInt(c, d)),
		absInt(maxInt(c, d)-minInt(a, b)),
	)
}

// Aggregated is a group of candidates sharing (end pair, orientation)
// whose gap estimates agree within the matching window.
type Aggregated struct {
	From       string
	FromOrient Orient
	To         string
	ToOrient   Orient
	Gap        int     // median of member gap estimates
	Variance   float64 // spread of member gap estimates
	Support    int     // distinct contributing guiding genomes
	Gaps       []int
	Genomes    []string
}

// Link renders the group as a consensus-ready link.
func (a Aggregated) Link() Link {
	return Link{
		From:       a.From,
		FromOrient: a.FromOrient,
		To:         a.To,
		ToOrient:   a.ToOrient,
		Gap:        a.Gap,
		Support:    a.Support,
		Variance:   a.Variance,
	}
}

// Aggregate merges candidates from all guiding genomes. Candidates with
// the same identity join one group only while their gap estimates stay
// within window bases of the group's smallest; a sorted sweep keeps the
// grouping deterministic. The inputs are never mutated.
func Aggregate(cands []Candidate, window int) []Aggregated {
	buckets := make(map[identity][]Candidate)
	for _, c := range cands {
		id := c.Link.identity()
		buckets[id] = append(buckets[id], c)
	}

	ids := make([]identity, 0, len(buckets))
	for id := range buckets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return identityLess(Link{From: ids[i].From, FromOrient: ids[i].FromOrient, To: ids[i].To, ToOrient: ids[i].ToOrient},
			Link{From: ids[j].From, FromOrient: ids[j].FromOrient, To: ids[j].To, ToOrient: ids[j].ToOrient})
	})

	var out []Aggregated
	for _, id := range ids {
		bucket := buckets[id]
		sort.Slice(bucket, func(i, j int) bool {
			if bucket[i].Link.Gap != bucket[j].Link.Gap {
				return bucket[i].Link.Gap < bucket[j].Link.Gap
			}
			return bucket[i].Genome < bucket[j].Genome
		})
		start := 0
		for i := 1; i <= len(bucket); i++ {
			if i < len(bucket) && bucket[i].Link.Gap-bucket[start].Link.Gap <= window {
				continue
			}
			out = append(out, newAggregated(id, bucket[start:i]))
			start = i
		}
	}
	return out
}

func newAggregated(id identity, members []Candidate) Aggregated {
	a := Aggregated{
		From:       id.From,
		FromOrient: id.FromOrient,
		To:         id.To,
		ToOrient:   id.ToOrient,
	}
	genomes := make(map[string]struct{}, len(members))
	for _, m := range members {
		a.Gaps = append(a.Gaps, m.Link.Gap)
		genomes[m.Genome] = struct{}{}
	}
	for g := range genomes {
		a.Genomes = append(a.Genomes, g)
	}
	sort.Strings(a.Genomes)
	a.Support = len(a.Genomes)
	a.Gap = median(a.Gaps)
	a.Variance = variance(a.Gaps)
	return a
}

// median assumes gaps is sorted ascending, which Aggregate guarantees.
func median(gaps []int) int {
	n := len(gaps)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return gaps[n/2]
	}
	return (gaps[n/2-1] + gaps[n/2]) / 2
}

func variance(gaps []int) float64 {
	n := len(gaps)
	if n < 2 {
		return 0
	}
	var mean float64
	for _, g := range gaps {
		mean += float64(g)
	}
	mean /= float64(n)
	var vv float64
	for _, g := range gaps {
		d := float64(g) - mean
		vv += d * d
	}
	return vv / float64(n)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
