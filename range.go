// Range-query descent.
//
// The engine initializes the check frontier at the coarsest layer and
// walks down. At each layer, covering checks are exactly one bit
// granule wide (2^shift keys, all sharing one bit), so a clear bit
// disproves the whole check and a set bit sends its halves to the next
// layer. Contained checks are at most one word span wide and are
// settled by a single intra-word bitmask probe: any set bit in the
// masked range proves possible overlap and ends the query.
package bloomrf

// overlaps runs the range query [lo, hi] against the bit array exposed
// by load. It is shared by Filter and AtomicFilter.
func overlaps[K Key, C Cell](g *geometry[K], load func(uint64) C, lo, hi K) bool {
	if hi < lo {
		return false
	}

	last := len(g.deltas) - 1
	cs := newCheckSet(lo, hi)
	// Bring covering checks down to the coarsest layer's bit granule
	// and contained checks down to its word span.
	cs.advance(g.keyBits-g.shifts[last], g.spanMask(last))

	for layer := last; ; layer-- {
		var live []check[K]
		for _, c := range cs.cur {
			if c.covering(lo, hi) {
				idx, mask := position[K, C](g, c.low, layer)
				if load(idx)&mask == 0 {
					continue // no stored key anywhere in c
				}
				if layer == 0 {
					// Granule width is 1 at the finest layer; nothing
					// left to refine.
					return true
				}
				live = append(live, c)
			} else if rangeProbe(g, load, c.low, c.high, layer) {
				return true
			}
		}
		if layer == 0 || len(live) == 0 {
			return false
		}
		// Surviving covering checks descend one layer: granule width
		// shrinks by the next layer's width.
		cs.cur = live
		cs.advance(g.deltas[layer-1], g.spanMask(layer-1))
	}
}
