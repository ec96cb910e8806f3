// Dyadic-interval decomposition for range queries.
//
// A range query walks a frontier of dyadic sub-intervals called
// checks. A check either overhangs the query on one side (covering),
// in which case it is probed through a single bit and split further,
// or lies fully inside the query (contained), in which case one
// intra-word bitmask probe settles it. The checkSet below maintains
// the frontier; the probes live in range.go.
package bloomrf

// intervalLocation records which side of the query a check tracks
// after the first straddling split.
type intervalLocation uint8

const (
	notYetSplit intervalLocation = iota
	sideLeft
	sideRight
)

// check is one dyadic sub-interval of the frontier, closed on both
// ends. low and high always satisfy high-low+1 == 2^w for some w, with
// low aligned to 2^w.
type check[K Key] struct {
	low  K
	high K
	loc  intervalLocation
}

// covering reports whether the check overhangs the query [lo, hi].
func (c check[K]) covering(lo, hi K) bool {
	return c.low < lo || c.high > hi
}

// checkSet is the frontier of one range query. cur holds the live
// checks; next is the scratch buffer advance swaps into.
type checkSet[K Key] struct {
	lo, hi K
	cur    []check[K]
	next   []check[K]
}

func newCheckSet[K Key](lo, hi K) *checkSet[K] {
	return &checkSet[K]{
		lo:  lo,
		hi:  hi,
		cur: []check[K]{{low: 0, high: ^K(0), loc: notYetSplit}},
	}
}

// advance halves the frontier rounds times. Covering checks always
// split, keeping only halves that can still hold a query key.
// Contained checks split only while wider than spanMask+1, the word
// span of the layer probed next; at or below that width one bitmask
// probe covers them, so further splitting would only multiply probes.
//
// Before the first straddling split the frontier is a single check
// enclosing the whole query; it shrinks toward the smallest enclosing
// dyadic interval and splits into a left and right side once the
// midpoint falls strictly inside the query.
func (cs *checkSet[K]) advance(rounds int, spanMask K) {
	for ; rounds > 0; rounds-- {
		cs.next = cs.next[:0]
		for _, c := range cs.cur {
			cs.step(c, spanMask)
		}
		cs.cur, cs.next = cs.next, cs.cur
	}
}

func (cs *checkSet[K]) step(c check[K], spanMask K) {
	if c.loc != notYetSplit && !c.covering(cs.lo, cs.hi) {
		if c.high-c.low <= spanMask {
			cs.next = append(cs.next, c)
			return
		}
		mid := c.high - (c.high-c.low)>>1
		cs.next = append(cs.next,
			check[K]{low: c.low, high: mid - 1, loc: c.loc},
			check[K]{low: mid, high: c.high, loc: c.loc})
		return
	}

	// mid is computed right-leaning so low+high cannot overflow; it is
	// the first key of the upper half.
	mid := c.high - (c.high-c.low)>>1
	switch c.loc {
	case notYetSplit:
		switch {
		case mid <= cs.lo:
			// Query lies wholly in the upper half.
			cs.next = append(cs.next, check[K]{low: mid, high: c.high, loc: notYetSplit})
		case mid-1 >= cs.hi:
			// Query lies wholly in the lower half.
			cs.next = append(cs.next, check[K]{low: c.low, high: mid - 1, loc: notYetSplit})
		default:
			cs.next = append(cs.next,
				check[K]{low: c.low, high: mid - 1, loc: sideLeft},
				check[K]{low: mid, high: c.high, loc: sideRight})
		}
	case sideLeft:
		// The lower half survives only while it can still hold lo.
		if mid > cs.lo {
			cs.next = append(cs.next, check[K]{low: c.low, high: mid - 1, loc: sideLeft})
		}
		cs.next = append(cs.next, check[K]{low: mid, high: c.high, loc: sideLeft})
	default:
		cs.next = append(cs.next, check[K]{low: c.low, high: mid - 1, loc: sideRight})
		if mid <= cs.hi {
			cs.next = append(cs.next, check[K]{low: mid, high: c.high, loc: sideRight})
		}
	}
}
