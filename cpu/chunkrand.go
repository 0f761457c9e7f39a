package cpu

import "github.com/vktec/leafseed/util"

// ChunkRandom derives bounded values from a Xoroshiro the same way the
// game's legacy random wrapper does. It has no state of its own; every draw
// advances the generator it points at.
type ChunkRandom struct {
	x *Xoroshiro
}

func NewChunkRandom(x *Xoroshiro) ChunkRandom {
	return ChunkRandom{x}
}

func (r ChunkRandom) SetSeed(seed int64) {
	r.x.SetSeed(seed)
}

// NextBits returns the top count bits of the next output
func (r ChunkRandom) NextBits(count int) int32 {
	util.Assert(count >= 1 && count <= 63, "bit count out of range")
	return int32(uint64(r.x.Next()) >> (64 - count))
}

// NextInt returns a value in [0, bound). It panics if bound, read as an
// int32, is not positive.
func (r ChunkRandom) NextInt(bound uint32) int32 {
	n := int32(bound)
	if n <= 0 {
		panic("bound must be positive")
	}

	if n&-n == n {
		return int32((int64(n) * int64(r.NextBits(31))) >> 31)
	}

	for {
		bits := r.NextBits(31)
		val := bits % n
		if bits-val+(n-1) >= 0 {
			return val
		}
	}
}

func (r ChunkRandom) NextLong() int64 {
	return int64(r.NextBits(32))<<32 + int64(r.NextBits(32))
}
