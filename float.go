// Floating-point filters.
//
// Same shape as the signed wrappers: the float encoding from encode.go
// composed around the unsigned core. The whole representable order is
// preserved, including infinities, subnormals and negative zero. NaN
// is not a supported input; queries over NaN give meaningless answers
// but never panic.
package bloomrf

// Float32Filter is a filter over float32 keys.
type Float32Filter[C Cell] struct {
	f *Filter[uint32, C]
}

// NewFloat32 builds an empty float32 filter from p.
func NewFloat32[C Cell](p Params) (*Float32Filter[C], error) {
	f, err := New[uint32, C](p)
	if err != nil {
		return nil, err
	}
	return &Float32Filter[C]{f: f}, nil
}

// Add inserts k.
func (s *Float32Filter[C]) Add(k float32) { s.f.Add(encodeFloat32(k)) }

// Contains reports whether k may be present.
func (s *Float32Filter[C]) Contains(k float32) bool { return s.f.Contains(encodeFloat32(k)) }

// Overlaps reports whether any key in [lo, hi] may be present.
func (s *Float32Filter[C]) Overlaps(lo, hi float32) bool {
	return s.f.Overlaps(encodeFloat32(lo), encodeFloat32(hi))
}

// Float64Filter is a filter over float64 keys.
type Float64Filter[C Cell] struct {
	f *Filter[uint64, C]
}

// NewFloat64 builds an empty float64 filter from p.
func NewFloat64[C Cell](p Params) (*Float64Filter[C], error) {
	f, err := New[uint64, C](p)
	if err != nil {
		return nil, err
	}
	return &Float64Filter[C]{f: f}, nil
}

// Add inserts k.
func (s *Float64Filter[C]) Add(k float64) { s.f.Add(encodeFloat64(k)) }

// Contains reports whether k may be present.
func (s *Float64Filter[C]) Contains(k float64) bool { return s.f.Contains(encodeFloat64(k)) }

// Overlaps reports whether any key in [lo, hi] may be present.
func (s *Float64Filter[C]) Overlaps(lo, hi float64) bool {
	return s.f.Overlaps(encodeFloat64(lo), encodeFloat64(hi))
}
