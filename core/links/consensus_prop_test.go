package links

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var contigPool = []string{"c0", "c1", "c2", "c3", "c4", "c5", "c6", "c7"}

func genAggregated() gopter.Gen {
	return gopter.CombineGens(
		gen.IntRange(0, len(contigPool)-1),
		gen.IntRange(0, len(contigPool)-1),
		gen.Bool(),
		gen.Bool(),
		gen.IntRange(-50, 500),
		gen.IntRange(1, 5),
		gen.Float64Range(0, 100),
	).Map(func(vals []interface{}) Aggregated {
		fi, ti := vals[0].(int), vals[1].(int)
		if fi == ti {
			ti = (ti + 1) % len(contigPool)
		}
		orient := func(b bool) Orient {
			if b {
				return Forward
			}
			return Reverse
		}
		return Aggregated{
			From:       contigPool[fi],
			FromOrient: orient(vals[2].(bool)),
			To:         contigPool[ti],
			ToOrient:   orient(vals[3].(bool)),
			Gap:        vals[4].(int),
			Support:    vals[5].(int),
			Variance:   vals[6].(float64),
		}
	})
}

// The chain invariant must hold for any aggregated input: consensus
// selection never leaves a contig end in more than one link.
func TestSelectDegreeInvariant(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("every contig end keeps at most one consensus link", prop.ForAll(
		func(aggs []Aggregated) bool {
			out, err := Select(aggs, 1)
			if err != nil {
				return false
			}
			seen := make(map[End]bool)
			for _, l := range out {
				if seen[l.OutEnd()] || seen[l.InEnd()] {
					return false
				}
				seen[l.OutEnd()] = true
				seen[l.InEnd()] = true
			}
			return true
		},
		gen.SliceOf(genAggregated()),
	))

	properties.TestingRun(t)
}
