// Package links turns per-genome tilings into a consensus contig
// adjacency graph: candidate extraction, cross-genome aggregation and
// threshold/conflict filtering down to a linear-chain link set.
package links

import "fmt"

// Orient is a contig orientation within a chain.
type Orient byte

const (
	Forward Orient = '+'
	Reverse Orient = '-'
)

// Flip returns the opposite orientation.
func (o Orient) Flip() Orient {
	if o == Forward {
		return Reverse
	}
	return Forward
}

func (o Orient) String() string { return string(o) }

// Side selects one extremity of a contig.
type Side uint8

const (
	Head Side = iota // 5' end of the forward strand
	Tail             // 3' end of the forward strand
)

func (s Side) String() string {
	if s == Head {
		return "head"
	}
	return "tail"
}

// End is one contig extremity, the node granularity of the link graph.
type End struct {
	Contig string
	Side   Side
}

func (e End) String() string { return fmt.Sprintf("%s:%s", e.Contig, e.Side) }

// Link is a directed adjacency: From, read in FromOrient, is
// immediately followed by To read in ToOrient, separated by Gap bases
// (negative when the placements overlapped). Support and Variance are
// filled during aggregation.
type Link struct {
	From       string
	FromOrient Orient
	To         string
	ToOrient   Orient
	Gap        int
	Support    int
	Variance   float64
}

// OutEnd is the trailing end of From: the extremity that faces To.
func (l Link) OutEnd() End {
	if l.FromOrient == Forward {
		return End{l.From, Tail}
	}
	return End{l.From, Head}
}

// InEnd is the leading end of To: the extremity that faces From.
func (l Link) InEnd() End {
	if l.ToOrient == Forward {
		return End{l.To, Head}
	}
	return End{l.To, Tail}
}

// Mirror is the same physical adjacency read from the other side:
// To precedes From with both orientations flipped.
func (l Link) Mirror() Link {
	return Link{
		From:       l.To,
		FromOrient: l.ToOrient.Flip(),
		To:         l.From,
		ToOrient:   l.FromOrient.Flip(),
		Gap:        l.Gap,
		Support:    l.Support,
		Variance:   l.Variance,
	}
}

// Canonical returns the representative direction of the adjacency, so
// a link and its mirror compare and aggregate identically.
func (l Link) Canonical() Link {
	if m := l.Mirror(); identityLess(m, l) {
		return m
	}
	return l
}

// identity is the grouping key of a link: end pair plus orientation.
type identity struct {
	From       string
	FromOrient Orient
	To         string
	ToOrient   Orient
}

func (l Link) identity() identity {
	return identity{l.From, l.FromOrient, l.To, l.ToOrient}
}

func identityLess(a, b Link) bool {
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
