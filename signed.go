// Signed-integer filters.
//
// One wrapper per key width, each composing the unsigned core with the
// sign-bit flip from encode.go at every entry point. No storage or
// probe logic of its own.
package bloomrf

// Int16Filter is a filter over int16 keys.
type Int16Filter[C Cell] struct {
	f *Filter[uint16, C]
}

// NewInt16 builds an empty int16 filter from p.
func NewInt16[C Cell](p Params) (*Int16Filter[C], error) {
	f, err := New[uint16, C](p)
	if err != nil {
		return nil, err
	}
	return &Int16Filter[C]{f: f}, nil
}

// Add inserts k.
func (s *Int16Filter[C]) Add(k int16) { s.f.Add(encodeInt16(k)) }

// Contains reports whether k may be present.
func (s *Int16Filter[C]) Contains(k int16) bool { return s.f.Contains(encodeInt16(k)) }

// Overlaps reports whether any key in [lo, hi] may be present.
func (s *Int16Filter[C]) Overlaps(lo, hi int16) bool {
	return s.f.Overlaps(encodeInt16(lo), encodeInt16(hi))
}

// Int32Filter is a filter over int32 keys.
type Int32Filter[C Cell] struct {
	f *Filter[uint32, C]
}

// NewInt32 builds an empty int32 filter from p.
func NewInt32[C Cell](p Params) (*Int32Filter[C], error) {
	f, err := New[uint32, C](p)
	if err != nil {
		return nil, err
	}
	return &Int32Filter[C]{f: f}, nil
}

// Add inserts k.
func (s *Int32Filter[C]) Add(k int32) { s.f.Add(encodeInt32(k)) }

// Contains reports whether k may be present.
func (s *Int32Filter[C]) Contains(k int32) bool { return s.f.Contains(encodeInt32(k)) }

// Overlaps reports whether any key in [lo, hi] may be present.
func (s *Int32Filter[C]) Overlaps(lo, hi int32) bool {
	return s.f.Overlaps(encodeInt32(lo), encodeInt32(hi))
}

// Int64Filter is a filter over int64 keys.
type Int64Filter[C Cell] struct {
	f *Filter[uint64, C]
}

// NewInt64 builds an empty int64 filter from p.
func NewInt64[C Cell](p Params) (*Int64Filter[C], error) {
	f, err := New[uint64, C](p)
	if err != nil {
		return nil, err
	}
	return &Int64Filter[C]{f: f}, nil
}

// Add inserts k.
func (s *Int64Filter[C]) Add(k int64) { s.f.Add(encodeInt64(k)) }

// Contains reports whether k may be present.
func (s *Int64Filter[C]) Contains(k int64) bool { return s.f.Contains(encodeInt64(k)) }

// Overlaps reports whether any key in [lo, hi] may be present.
func (s *Int64Filter[C]) Overlaps(lo, hi int64) bool {
	return s.f.Overlaps(encodeInt64(lo), encodeInt64(hi))
}
