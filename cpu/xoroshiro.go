// Go implementation of Xoroshiro128++ as seeded by the game
// Not safe for concurrent use
package cpu

import "math/bits"

const (
	goldenRatio64 = 0x6A09E667F3BCC909
	silverRatio64 = 7046029254386353131
)

// Xoroshiro is the full generator state. It is a plain value: copying it
// forks the stream.
type Xoroshiro struct {
	Lo, Hi int64
}

func NewXoroshiro(seed int64) Xoroshiro {
	return ExpandSeed(seed)
}

// NewXoroshiroState builds a generator from raw state words. The all-zero
// state is a fixed point of the generator, so it is swapped for the two
// seeding constants.
func NewXoroshiroState(lo, hi int64) Xoroshiro {
	if lo|hi == 0 {
		return Xoroshiro{-silverRatio64, goldenRatio64}
	}
	return Xoroshiro{lo, hi}
}

// ExpandSeed stretches a 64-bit seed into both state words.
func ExpandSeed(seed int64) Xoroshiro {
	l := seed ^ goldenRatio64
	m := l - silverRatio64
	return Xoroshiro{mixStafford13(l), mixStafford13(m)}
}

func mixStafford13(seed int64) int64 {
	seed = (seed ^ int64(uint64(seed)>>30)) * -4658895280553007687
	seed = (seed ^ int64(uint64(seed)>>27)) * -7723592293110705685
	return seed ^ int64(uint64(seed)>>31)
}

func (x *Xoroshiro) SetSeed(seed int64) {
	*x = ExpandSeed(seed)
}

func (x *Xoroshiro) Next() int64 {
	l, m := x.Lo, x.Hi
	n := rotl(l+m, 17) + l
	m ^= l
	x.Lo = rotl(l, 49) ^ m ^ (m << 21)
	x.Hi = rotl(m, 28)
	return n
}

// Skip discards the next count outputs
func (x *Xoroshiro) Skip(count int) {
	for i := 0; i < count; i++ {
		x.Next()
	}
}

func rotl(v int64, k int) int64 {
	return int64(bits.RotateLeft64(uint64(v), k))
}
