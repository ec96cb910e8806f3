// Bit-plan tests.
//
// The (cell, mask) computations are the most error-prone surface:
// an off-by-one here silently breaks the no-false-negative guarantee
// only for some layer widths and cell sizes. The tests pin both
// regimes (words sharing a cell, words spanning cells) for both cell
// widths, and cross-check the single-bit plan against the range plan.
package bloomrf

import (
	"math/rand"
	"testing"
)

// TestOnesRange pins the inclusive mask builder at the edges.
func TestOnesRange(t *testing.T) {
	if got := onesRange[uint64](0, 0); got != 1 {
		t.Errorf("onesRange(0,0) = %#x, want 1", got)
	}
	if got := onesRange[uint64](0, 63); got != ^uint64(0) {
		t.Errorf("onesRange(0,63) = %#x, want all ones", got)
	}
	if got := onesRange[uint64](3, 5); got != 0b111000 {
		t.Errorf("onesRange(3,5) = %#x, want 0x38", got)
	}
	if got := onesRange[uint32](0, 31); got != ^uint32(0) {
		t.Errorf("onesRange(0,31) = %#x, want all ones", got)
	}
	if got := onesRange[uint32](31, 31); got != 1<<31 {
		t.Errorf("onesRange(31,31) = %#x, want top bit", got)
	}
}

// TestPositionBounds hammers position with random keys across
// schedules covering sub-cell, exact-cell and multi-cell words, and
// asserts the cell index stays in range with exactly one mask bit set.
func TestPositionBounds(t *testing.T) {
	schedules := [][]int{
		{7, 7, 7, 7, 7, 7}, // 64-bit words, exact cell for uint64
		{5, 8, 6},          // 16, 128 and 32-bit words
		{2, 2, 2},          // 2-bit words
		{1, 1, 1},          // 1-bit words, offset always zero
	}
	rng := rand.New(rand.NewSource(11))
	for _, layers := range schedules {
		f, err := New[uint64, uint64](Params{Size: 16000, Seed: 1, Layers: layers})
		if err != nil {
			t.Fatalf("New(%v): %v", layers, err)
		}
		for i := 0; i < 5000; i++ {
			k := rng.Uint64()
			for layer := range f.geo.deltas {
				idx, mask := position[uint64, uint64](&f.geo, k, layer)
				if idx >= uint64(len(f.cells)) {
					t.Fatalf("layers %v layer %d: cell %d out of range", layers, layer, idx)
				}
				if mask == 0 || mask&(mask-1) != 0 {
					t.Fatalf("layers %v layer %d: mask %#x not a single bit", layers, layer, mask)
				}
			}
		}
	}
}

// TestPositionGranuleSharing verifies that keys differing only below a
// layer's shift map to the same bit at that layer, and that the next
// granule maps elsewhere (same word, different bit, or a different
// word entirely).
func TestPositionGranuleSharing(t *testing.T) {
	f, err := New[uint64, uint64](Params{Size: 16000, Seed: 0, Layers: []int{7, 7, 7, 7, 7, 7}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	k := uint64(0xABCDEF0123456789)
	for layer, shift := range f.geo.shifts {
		if shift == 0 {
			continue
		}
		base := k &^ (uint64(1)<<uint(shift) - 1)
		i0, m0 := position[uint64, uint64](&f.geo, base, layer)
		i1, m1 := position[uint64, uint64](&f.geo, base+(uint64(1)<<uint(shift))-1, layer)
		if i0 != i1 || m0 != m1 {
			t.Errorf("layer %d: keys in one granule map to different bits", layer)
		}
		i2, m2 := position[uint64, uint64](&f.geo, base+(uint64(1)<<uint(shift)), layer)
		if i0 == i2 && m0 == m2 {
			t.Errorf("layer %d: adjacent granules map to the same bit", layer)
		}
	}
}

// TestRangeProbeSeesAddedBit cross-checks the two plans: after Add(k),
// a range probe over any granule-aligned window around k at each layer
// must see the bit that position placed.
func TestRangeProbeSeesAddedBit(t *testing.T) {
	for _, layers := range [][]int{{7, 7, 7, 7, 7, 7}, {5, 8, 6}} {
		f, err := New[uint64, uint64](Params{Size: 16000, Seed: 0, Layers: layers})
		if err != nil {
			t.Fatalf("New(%v): %v", layers, err)
		}
		rng := rand.New(rand.NewSource(12))
		for i := 0; i < 200; i++ {
			k := rng.Uint64()
			f.Add(k)
			for layer := range f.geo.deltas {
				span := f.geo.spanMask(layer)
				lo := k &^ span // word-aligned window containing k
				if !rangeProbe(&f.geo, f.load, lo, lo+span, layer) {
					t.Fatalf("layers %v layer %d: word probe missed bit for key %d", layers, layer, k)
				}
				gran := uint64(1)<<uint(f.geo.shifts[layer]) - 1
				glo := k &^ gran // single granule containing k
				if !rangeProbe(&f.geo, f.load, glo, glo+gran, layer) {
					t.Fatalf("layers %v layer %d: granule probe missed bit for key %d", layers, layer, k)
				}
			}
		}
	}
}

// TestNarrowCellsMatchWideCells verifies that uint32 and uint64 cells
// produce the same absolute bit layout for sizes that round equally,
// by comparing probe answers over many keys.
func TestNarrowCellsMatchWideCells(t *testing.T) {
	p := Params{Size: 16000, Seed: 7, Layers: []int{5, 8, 6}}
	w, err := New[uint64, uint64](p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	n, err := New[uint64, uint32](p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 1000; i++ {
		k := rng.Uint64()
		w.Add(k)
		n.Add(k)
	}
	for i := 0; i < 1000; i++ {
		k := rng.Uint64()
		if w.Contains(k) != n.Contains(k) {
			t.Fatalf("cell widths disagree on Contains(%d)", k)
		}
		if w.Overlaps(k, k+100000) != n.Overlaps(k, k+100000) {
			t.Fatalf("cell widths disagree on Overlaps at %d", k)
		}
	}
}
