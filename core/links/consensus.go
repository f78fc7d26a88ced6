package links

import (
	"math"
	"sort"

	"ggscaf-core/scaferr"
)

// MinSupport derives the absolute support a link needs from the
// threshold parameter: values >= 1 are an absolute genome count, values
// in (0,1) a fraction of nGuides rounded up. The result is never below
// one.
func MinSupport(threshold float64, nGuides int) int {
	var n int
	if threshold >= 1 {
		n = int(math.Ceil(threshold))
	} else {
		n = int(math.Ceil(threshold * float64(nGuides)))
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Select filters aggregated links down to a conflict-free consensus
// set: links below minSupport are dropped, then each contig end keeps
// at most one link. Higher support wins a contested end; ties fall to
// the lower gap variance, then to contig-id order, so output is
// reproducible across runs. The surviving set satisfies the chain
// invariant (in-degree and out-degree at most one per end), which
// CheckTopology re-verifies before returning.
func Select(aggs []Aggregated, minSupport int) ([]Link, error) {
	retained := make([]Aggregated, 0, len(aggs))
	for _, a := range aggs {
		if a.Support >= minSupport {
			retained = append(retained, a)
		}
	}
	sort.Slice(retained, func(i, j int) bool {
		if retained[i].Support != retained[j].Support {
			return retained[i].Support > retained[j].Support
		}
		if retained[i].Variance != retained[j].Variance {
			return retained[i].Variance < retained[j].Variance
		}
		return identityLess(retained[i].Link(), retained[j].Link())
	})

	occupied := make(map[End]bool)
	var out []Link
	for _, a := range retained {
		l := a.Link()
		if occupied[l.OutEnd()] || occupied[l.InEnd()] {
			continue
		}
		occupied[l.OutEnd()] = true
		occupied[l.InEnd()] = true
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return identityLess(out[i], out[j]) })

	if err := CheckTopology(out); err != nil {
		return nil, err
	}
	return out, nil
}

// CheckTopology verifies the linear-chain invariant: no contig end may
// participate in more than one link. Violations are TopologyErrors;
// they only occur on externally supplied link sets, Select cannot
// produce one.
func CheckTopology(ls []Link) error {
	seen := make(map[End]bool, 2*len(ls))
	for _, l := range ls {
		for _, e := range []End{l.OutEnd(), l.InEnd()} {
			if seen[e] {
				return &scaferr.TopologyError{End: e.String()}
			}
			seen[e] = true
		}
	}
	return nil
}
