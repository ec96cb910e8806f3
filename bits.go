// Bit-array addressing.
//
// Every layer partitions the shared bit array into PMHF words of
// 2^(d-1) bits. A word may be narrower than one storage cell (several
// words share a cell) or wider (one word spans consecutive cells).
// The helpers here turn a key and layer into a cell index and mask,
// and build the intra-word masks used by range probes. They are pure;
// both the plain and the atomic filter run on them.
package bloomrf

import "math/bits"

// Key is the set of unsigned key types the core accepts. Signed and
// floating-point keys go through the wrapper types in signed.go and
// float.go.
type Key interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Cell is the set of storage cell widths. A layer word wider than the
// cell is laid out across consecutive cells, so narrow cells never
// restrict the layer schedule.
type Cell interface {
	~uint32 | ~uint64
}

// geometry holds the derived layer layout shared by all filter
// variants: the width schedule, its prefix sums, and the hash
// parameters. It is fixed at construction.
type geometry[K Key] struct {
	deltas   []int // per-layer widths, layer 0 finest
	shifts   []int // prefix sums of deltas, shifts[0] = 0
	seed     uint64
	alg      int
	keyBits  int
	keyBytes int
	nbits    uint64 // total bits in the cell array
}

func keyBitsOf[K Key]() int {
	return bits.Len64(uint64(^K(0)))
}

func cellBitsOf[C Cell]() int {
	return bits.Len64(uint64(^C(0)))
}

// words returns how many PMHF words of the layer's width fit in the
// bit array. The layer hash is reduced modulo this count.
func (g *geometry[K]) words(layer int) uint64 {
	return g.nbits >> uint(g.deltas[layer]-1)
}

// spanMask returns the key-space span of one PMHF word at the layer,
// minus one. A dyadic interval no wider than this fits a single word.
func (g *geometry[K]) spanMask(layer int) K {
	return (K(1) << uint(g.shifts[layer]+g.deltas[layer]-1)) - 1
}

// onesRange returns a cell mask with bits lo through hi inclusive set.
// Requires 0 <= lo <= hi < cell width.
func onesRange[C Cell](lo, hi int) C {
	m := ^C(0) >> uint(cellBitsOf[C]()-(hi-lo+1))
	return m << uint(lo)
}

// position locates the single bit for key k at the layer: the cell
// index and a mask with exactly one bit set. The word index comes from
// the layer hash; the in-word offset comes from the d-1 key bits above
// the layer's shift.
func position[K Key, C Cell](g *geometry[K], k K, layer int) (uint64, C) {
	span := 1 << uint(g.deltas[layer]-1)
	word := g.layerHash(k, layer) % g.words(layer)
	off := int((k >> uint(g.shifts[layer])) & K(span-1))
	cb := cellBitsOf[C]()

	if span <= cb {
		perCell := uint64(cb / span)
		slot := int(word % perCell)
		return word / perCell, C(1) << uint(slot*span+off)
	}
	perWord := uint64(span / cb)
	return word*perWord + uint64(off/cb), C(1) << uint(off%cb)
}

// rangeProbe tests whether any bit is set in the layer's word between
// the offsets of low and high inclusive. Both keys must map to the
// same PMHF word, which holds for any aligned dyadic interval no wider
// than the word span. Cells are fetched through load so the atomic
// variant can substitute atomic reads.
func rangeProbe[K Key, C Cell](g *geometry[K], load func(uint64) C, low, high K, layer int) bool {
	span := 1 << uint(g.deltas[layer]-1)
	word := g.layerHash(low, layer) % g.words(layer)
	lo := int((low >> uint(g.shifts[layer])) & K(span-1))
	hi := int((high >> uint(g.shifts[layer])) & K(span-1))
	cb := cellBitsOf[C]()

	if span <= cb {
		// Word fits one cell; shift the mask into the word's slot.
		perCell := uint64(cb / span)
		base := int(word%perCell) * span
		return load(word/perCell)&onesRange[C](base+lo, base+hi) != 0
	}

	// Word spans several cells; masked first and last, full middles.
	first, last := lo/cb, hi/cb
	base := word * uint64(span/cb)
	for ci := first; ci <= last; ci++ {
		var m C
		switch {
		case ci == first && ci == last:
			m = onesRange[C](lo%cb, hi%cb)
		case ci == first:
			m = onesRange[C](lo%cb, cb-1)
		case ci == last:
			m = onesRange[C](0, hi%cb)
		default:
			m = ^C(0)
		}
		if load(base+uint64(ci))&m != 0 {
			return true
		}
	}
	return false
}

// pointProbe tests the key's bit at every layer. Any clear bit proves
// the key absent.
func pointProbe[K Key, C Cell](g *geometry[K], load func(uint64) C, k K) bool {
	for layer := range g.deltas {
		idx, mask := position[K, C](g, k, layer)
		if load(idx)&mask == 0 {
			return false
		}
	}
	return true
}
