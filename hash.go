// Hash scheme for layer probes.
//
// Every layer derives its hash from two seeded 64-bit base hashes of
// the key prefix via double hashing: g(i) = h1 + i*h2 + i*i. Three
// base algorithms are supported, selectable via Params.Algorithm. All
// three hash the little-endian byte layout of the prefix, truncated to
// the key width.
package bloomrf

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Hash algorithm constants.
const (
	AlgXXH3    = 1 // Default, fastest
	AlgMurmur3 = 2 // Seed truncated to 32 bits by the murmur3 API
	AlgBlake2b = 3 // Best distribution
)

// Seed-schedule constants. The second base hash is seeded with
// seedGenA*seed + seedGenB. Fixed values so that two filters built
// from the same parameters address the same bits.
const (
	seedGenA = 845897321
	seedGenB = 217728422
)

// hash64 hashes the low keyBytes bytes of pref, little-endian, with
// the given seed and algorithm.
func hash64(pref uint64, keyBytes int, seed uint64, alg int) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], pref)
	b := buf[:keyBytes]

	switch alg {
	case AlgXXH3:
		return xxh3.HashSeed(b, seed)
	case AlgMurmur3:
		return murmur3.Sum64WithSeed(b, uint32(seed))
	case AlgBlake2b:
		var key [8]byte
		binary.LittleEndian.PutUint64(key[:], seed)
		h, _ := blake2b.New(8, key[:]) // 8 bytes = 64 bits
		h.Write(b)
		return binary.LittleEndian.Uint64(h.Sum(nil))
	default:
		return 0
	}
}

// layerHash computes the layer hash g = h1 + layer*h2 + layer^2 over
// the layer's key prefix. The prefix drops the layer's shift plus its
// in-word offset bits, so all keys of one PMHF word hash alike.
func (g *geometry[K]) layerHash(k K, layer int) uint64 {
	pref := uint64(k >> uint(g.shifts[layer]+g.deltas[layer]-1))
	h1 := hash64(pref, g.keyBytes, g.seed, g.alg)
	h2 := hash64(pref, g.keyBytes, seedGenA*g.seed+seedGenB, g.alg)
	i := uint64(layer)
	return h1 + i*h2 + i*i
}
