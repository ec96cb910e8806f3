// Package bloomrf implements BloomRF, a probabilistic filter over
// fixed-width numeric keys that answers point membership and range
// overlap queries. Like a classic bloom filter it never reports a
// false negative; false positives occur at a small tunable rate, for
// range queries as well as point queries.
//
// The filter stores each key at L layers sharing one bit array. Layer
// i hashes a prefix of the key to a PMHF word, a 2^(d-1)-bit slice of
// the array where d is the layer's width, and sets a single bit inside
// that word chosen by the next d-1 key bits. Point queries re-derive
// and test the L bits. Range queries decompose [lo, hi] into dyadic
// intervals and walk them from the coarsest layer to the finest,
// disproving boundary intervals with single-bit probes and proving
// interior intervals with intra-word bitmask probes.
//
// Keys are unsigned integers; signed and floating-point keys are
// supported through thin wrappers over an order-preserving bit
// encoding. A filter is built once and then queried from any number of
// goroutines. Add requires exclusive access; AtomicFilter relaxes that
// for concurrent building.
//
// Range queries are cheapest when hi-lo is small next to the coarsest
// layer's word span. A query much wider than the word span degrades to
// enumerating word-width sub-intervals of the interior.
package bloomrf

import "errors"

// Sentinel errors for programmatic handling. All are raised only by
// New and NewAtomic (and the wrapper constructors built on New);
// ParseParams does not validate, and a constructed filter never fails.
// Callers can use errors.Is to distinguish which parameter was bad.
var (
	ErrZeroSize         = errors.New("filter size must be positive")
	ErrNoLayers         = errors.New("layer schedule is empty")
	ErrZeroDelta        = errors.New("layer width must be at least one bit")
	ErrLayersTooWide    = errors.New("layer widths exceed the key width")
	ErrSizeTooSmall     = errors.New("filter too small for the widest layer word")
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
)
