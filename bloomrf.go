// Core filter type and its operations.
//
// Filter is generic over the key type and the storage cell type. The
// cell width is a tuning parameter: wider cells let wide layer words
// sit in fewer cells, narrower cells waste less space on odd sizes.
// When the size rounds to the same bit count, the bit layout for a
// given Params is identical across cell widths.
package bloomrf

// Filter is a BloomRF filter over unsigned keys of type K stored in
// cells of type C. Construct with New; the zero value is not usable.
//
// Contains and Overlaps are pure reads and may run concurrently. Add
// requires exclusive access relative to all other calls.
type Filter[K Key, C Cell] struct {
	geo   geometry[K]
	cells []C
}

// New builds an empty filter from p. The bit array is p.Size bytes
// rounded up to whole cells, all zero.
func New[K Key, C Cell](p Params) (*Filter[K, C], error) {
	geo, ncells, err := newGeometry[K](p, cellBitsOf[C]())
	if err != nil {
		return nil, err
	}
	return &Filter[K, C]{geo: geo, cells: make([]C, ncells)}, nil
}

// Add inserts k, setting one bit per layer. Bits are only ever set,
// so earlier positive answers stay positive.
func (f *Filter[K, C]) Add(k K) {
	for layer := range f.geo.deltas {
		idx, mask := position[K, C](&f.geo, k, layer)
		f.cells[idx] |= mask
	}
}

// Contains reports whether k may be present. False means definitely
// absent; true means present or a false positive.
func (f *Filter[K, C]) Contains(k K) bool {
	return pointProbe(&f.geo, f.load, k)
}

// Overlaps reports whether any key in the closed interval [lo, hi] may
// be present. False means the interval is definitely empty. An
// inverted interval is empty and reports false.
func (f *Filter[K, C]) Overlaps(lo, hi K) bool {
	return overlaps(&f.geo, f.load, lo, hi)
}

func (f *Filter[K, C]) load(idx uint64) C {
	return f.cells[idx]
}
