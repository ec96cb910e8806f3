// Order-preserving key encodings.
//
// Signed integers and IEEE-754 floats map onto unsigned keys through
// monotone bijections, so the unsigned core's interval decomposition
// carries over unchanged. For signed integers the map flips the sign
// bit. For floats the bits are reinterpreted as a signed integer,
// negative values have their magnitude bits inverted to reverse their
// order, and the sign bit is flipped. Negative zero sorts immediately
// below positive zero; NaN is not a supported input.
package bloomrf

import "math"

func encodeInt16(x int16) uint16 { return uint16(x) ^ (1 << 15) }

func encodeInt32(x int32) uint32 { return uint32(x) ^ (1 << 31) }

func encodeInt64(x int64) uint64 { return uint64(x) ^ (1 << 63) }

func encodeFloat32(x float32) uint32 {
	k := int32(math.Float32bits(x))
	if k < 0 {
		k ^= math.MaxInt32
	}
	return uint32(k) ^ (1 << 31)
}

func encodeFloat64(x float64) uint64 {
	k := int64(math.Float64bits(x))
	if k < 0 {
		k ^= math.MaxInt64
	}
	return uint64(k) ^ (1 << 63)
}
