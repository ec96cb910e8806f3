// Filter parameters.
//
// Params is the one runtime input to construction: the byte size of
// the bit array, the hash seed, the layer width schedule and the hash
// algorithm. It round-trips through JSON so experiment configurations
// can live in files.
package bloomrf

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Params configures a filter.
//
// Layers lists the per-layer widths in bits, finest layer first. Each
// width d gives that layer PMHF words of 2^(d-1) bits; the widths must
// sum to at most the key width. A zero Algorithm selects AlgXXH3.
type Params struct {
	Size      int    `json:"size"`                // bit array size in bytes
	Seed      uint64 `json:"seed"`                // hash seed
	Layers    []int  `json:"layers"`              // width schedule, finest first
	Algorithm int    `json:"algorithm,omitempty"` // 1=xxh3, 2=murmur3, 3=blake2b
}

// ParseParams decodes a JSON parameter document.
func ParseParams(data []byte) (Params, error) {
	var p Params
	if err := json.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("parse params: %w", err)
	}
	return p, nil
}

// Encode returns the JSON form of p.
func (p Params) Encode() ([]byte, error) {
	return json.Marshal(p)
}

func (p Params) String() string {
	buf, _ := json.Marshal(p)
	return string(buf)
}

// validate checks p against the key width and fills defaults. Returns
// the validated copy.
func (p Params) validate(keyBits int) (Params, error) {
	if p.Algorithm == 0 {
		p.Algorithm = AlgXXH3
	}
	switch p.Algorithm {
	case AlgXXH3, AlgMurmur3, AlgBlake2b:
	default:
		return p, ErrUnknownAlgorithm
	}
	if p.Size <= 0 {
		return p, ErrZeroSize
	}
	if len(p.Layers) == 0 {
		return p, ErrNoLayers
	}
	total := 0
	for _, d := range p.Layers {
		if d < 1 {
			return p, ErrZeroDelta
		}
		total += d
	}
	if total > keyBits {
		return p, ErrLayersTooWide
	}
	return p, nil
}

// newGeometry validates p against the key width and derives the layer
// layout for an array of cellBits-wide cells. The second result is the
// cell count.
func newGeometry[K Key](p Params, cellBits int) (geometry[K], int, error) {
	kb := keyBitsOf[K]()
	p, err := p.validate(kb)
	if err != nil {
		return geometry[K]{}, 0, err
	}

	cellBytes := cellBits / 8
	ncells := (p.Size + cellBytes - 1) / cellBytes
	nbits := uint64(ncells) * uint64(cellBits)

	shifts := make([]int, len(p.Layers))
	for i := 1; i < len(p.Layers); i++ {
		shifts[i] = shifts[i-1] + p.Layers[i-1]
	}
	for _, d := range p.Layers {
		// Every layer needs at least one whole word in the array.
		if uint64(1)<<uint(d-1) > nbits {
			return geometry[K]{}, 0, ErrSizeTooSmall
		}
	}

	return geometry[K]{
		deltas:   p.Layers,
		shifts:   shifts,
		seed:     p.Seed,
		alg:      p.Algorithm,
		keyBits:  kb,
		keyBytes: kb / 8,
		nbits:    nbits,
	}, ncells, nil
}
