// Package scaffold walks a consensus link set into linear chains and
// renders them, together with the untouched leftover contigs, into
// scaffold sequences.
package scaffold

import (
	"sort"

	"ggscaf-core/links"
	"ggscaf-core/scaferr"
)

// Step is one contig in a chain: its orientation and the gap estimate
// to the next step (0 on the last step).
type Step struct {
	Contig string
	Orient links.Orient
	Gap    int
}

// Path is an ordered, oriented chain of contigs.
type Path []Step

// BuildPaths resolves the consensus graph into simple paths. Ends are
// tracked as arena indices (two slots per contig), so the walk does no
// per-node allocation. Every chain is grown from a head, an end with no
// incoming link; contigs left unvisited afterwards sit on cycles, which
// are broken by discarding the lowest-support edge (ties by link
// identity) before walking the remainder as an ordinary chain.
func BuildPaths(ls []links.Link) ([]Path, error) {
	if err := links.CheckTopology(ls); err != nil {
		return nil, err
	}

	contigs := collectContigs(ls)
	idx := make(map[string]int, len(contigs))
	for i, c := range contigs {
		idx[c] = i
	}

	// Arena: end e of contig i lives at slot 2*i+e (0 head, 1 tail).
	const free = -1
	joins := make([]int, 2*len(contigs))
	for i := range joins {
		joins[i] = free
	}
	endSlot := func(e links.End) int {
		s := 2 * idx[e.Contig]
		if e.Side == links.Tail {
			s++
		}
		return s
	}
	for li, l := range ls {
		joins[endSlot(l.OutEnd())] = li
		joins[endSlot(l.InEnd())] = li
	}
	otherSlot := func(li, slot int) int {
		a, b := endSlot(ls[li].OutEnd()), endSlot(ls[li].InEnd())
		if slot == a {
			return b
		}
		return a
	}

	visited := make([]bool, len(contigs))
	walk := func(entry int) (Path, error) {
		var p Path
		for {
			ci := entry / 2
			if visited[ci] {
				// Unreachable once the chain invariant holds; a revisit
				// means the input graph loops back on itself.
				return nil, &scaferr.TopologyError{End: contigs[ci]}
			}
			visited[ci] = true
			orient := links.Forward
			if entry%2 == 1 {
				orient = links.Reverse
			}
			exit := entry ^ 1
			li := joins[exit]
			gap := 0
			if li != free {
				gap = ls[li].Gap
			}
			p = append(p, Step{Contig: contigs[ci], Orient: orient, Gap: gap})
			if li == free {
				return p, nil
			}
			entry = otherSlot(li, exit)
		}
	}

	var paths []Path
	for ci := range contigs {
		if visited[ci] {
			continue
		}
		head, tail := joins[2*ci] == free, joins[2*ci+1] == free
		if !head && !tail {
			continue // cycle, handled below
		}
		entry := 2 * ci
		if !head {
			entry++
		}
		p, err := walk(entry)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}

	// Remaining contigs all sit on cycles.
	for ci := range contigs {
		if visited[ci] {
			continue
		}
		drop := lowestSupportEdge(ls, joins, endSlot, otherSlot, 2*ci+1)
		joins[endSlot(ls[drop].OutEnd())] = free
		joins[endSlot(ls[drop].InEnd())] = free
		p, err := walk(endSlot(ls[drop].InEnd()))
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// lowestSupportEdge traverses the cycle through slot start and returns
// the index of the edge to discard.
func lowestSupportEdge(ls []links.Link, joins []int, endSlot func(links.End) int, otherSlot func(int, int) int, start int) int {
	best := -1
	slot := start
	for {
		li := joins[slot]
		if best == -1 || cycleEdgeLess(ls[li], ls[best]) {
			best = li
		}
		slot = otherSlot(li, slot) ^ 1
		if slot == start {
			return best
		}
	}
}

func cycleEdgeLess(a, b links.Link) bool {
	if a.Support != b.Support {
		return a.Support < b.Support
	}
	if a.From != b.From {
		return a.From < b.From
	}
	if a.To != b.To {
		return a.To < b.To
	}
	if a.FromOrient != b.FromOrient {
		return a.FromOrient < b.FromOrient
	}
	return a.ToOrient < b.ToOrient
}

func collectContigs(ls []links.Link) []string {
	set := make(map[string]struct{}, 2*len(ls))
	for _, l := range ls {
		set[l.From] = struct{}{}
		set[l.To] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
