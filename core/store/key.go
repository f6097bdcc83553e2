package store

import (
	"encoding/binary"
	"math"

	"path-cache/core/world"
)

// PathKey identifies a cached path by its (start, end) query endpoints. The
// same endpoints produce the same key on every peer.
type PathKey uint64

// Key derives the cache key for a (start, end) pair. It feeds the raw
// little-endian float32 bit patterns of both endpoints through FNV-1a, which
// is stable across architectures and runtimes.
//
// Keys are intentionally NOT quantized: two queries that differ by less than
// the positional tolerance still map to different keys, defeating reuse for
// near-identical queries. The approximate-match lookup papers over this, but
// the key scheme itself mirrors the original behavior and is a known gap.
func Key(start, end world.Position) PathKey {
	var buf [24]byte
	putPosition(buf[0:], start)
	putPosition(buf[12:], end)

	// FNV-1a 64-bit.
	h := uint64(14695981039346656037)
	for _, b := range buf {
		h ^= uint64(b)
		h *= 1099511628211
	}
	return PathKey(h)
}

func putPosition(b []byte, p world.Position) {
	binary.LittleEndian.PutUint32(b[0:], math.Float32bits(float32(p.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(p.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(p.Z)))
}
