// Fill diagnostics.
//
// Stats reports how saturated the bit array is. Besides the raw
// population count, it includes the zstd-compressed size of the array:
// a freshly built filter compresses to almost nothing, a healthy one
// stays well below its raw size, and a filter whose compressed size
// approaches the raw size has near-random bit density and a false
// positive rate to match. Useful when picking Size for a workload.
package bloomrf

import (
	"encoding/binary"
	"math/bits"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/zstd"
)

// Shared encoder, allocated once because zstd encoder construction is
// expensive. SpeedFastest is plenty: the compressed size is a density
// signal, not storage, so the ratio at higher levels buys nothing.
var statsEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))

// Stats describes the fill state of a filter's bit array.
type Stats struct {
	Bits       uint64  `json:"bits"`       // total bits in the array
	SetBits    uint64  `json:"set_bits"`   // population count
	FillRatio  float64 `json:"fill_ratio"` // SetBits / Bits
	Compressed int     `json:"compressed"` // zstd-compressed byte size of the array
}

func (s Stats) String() string {
	buf, _ := json.Marshal(s)
	return string(buf)
}

// Stats computes fill diagnostics. It reads every cell; call it
// between builds and query phases, not per operation.
func (f *Filter[K, C]) Stats() Stats {
	cellBytes := cellBitsOf[C]() / 8
	raw := make([]byte, len(f.cells)*cellBytes)

	var set uint64
	var tmp [8]byte
	for i, c := range f.cells {
		set += uint64(bits.OnesCount64(uint64(c)))
		binary.LittleEndian.PutUint64(tmp[:], uint64(c))
		copy(raw[i*cellBytes:(i+1)*cellBytes], tmp[:cellBytes])
	}

	return Stats{
		Bits:       f.geo.nbits,
		SetBits:    set,
		FillRatio:  float64(set) / float64(f.geo.nbits),
		Compressed: len(statsEncoder.EncodeAll(raw, nil)),
	}
}
