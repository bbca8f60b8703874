// Package rng provides the single seeded pseudo-random stream consumed by
// the layout generator, plus seed-keyed coordinate noise for zoning.
//
// Determinism is a contract of this package: all placement randomness is
// drawn from one Stream in a fixed order (documented on layout.Generate),
// and the noise functions depend only on their arguments. There is no
// global random state anywhere in the generator.
package rng

import "math/rand"

// Stream is an explicit seeded random source passed through the pipeline.
type Stream struct {
	seed int64
	r    *rand.Rand
}

// New creates a stream seeded exactly from the given value.
func New(seed int64) *Stream {
	return &Stream{seed: seed, r: rand.New(rand.NewSource(seed))}
}

// Seed returns the seed the stream was constructed with.
func (s *Stream) Seed() int64 { return s.seed }

// Shuffle pseudo-randomizes the order of n elements via the swap function.
func (s *Stream) Shuffle(n int, swap func(i, j int)) {
	s.r.Shuffle(n, swap)
}

// IntBetween returns a pseudo-random integer in [lo, hi].
func (s *Stream) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

// Float64 returns a pseudo-random value in [0, 1).
func (s *Stream) Float64() float64 {
	return s.r.Float64()
}

// Noise returns a repeatable pseudo-random value in [0, 1) for an integer
// coordinate pair. Bit-mixing hash, independent of the Stream: sampling
// order never affects the result.
func Noise(x, y int, seed uint32) float64 {
	h := uint32(x) * 374761393
	h += uint32(y) * 668265263
	h ^= seed + 0x9e3779b9 + (h << 6) + (h >> 2)
	h ^= h >> 17
	h *= 0xed5ad4bb
	h ^= h >> 11
	h *= 0xac4c1b51
	h ^= h >> 15
	return float64(h&0xFFFFFF) / float64(0x1000000)
}

// FractalNoise combines octaves of Noise, each doubling frequency and
// halving amplitude, normalized back to [0, 1).
func FractalNoise(x, y int, seed uint32, octaves int) float64 {
	sum := 0.0
	amplitude := 1.0
	frequency := 1.0
	amplitudeSum := 0.0
	for i := 0; i < octaves; i++ {
		sx := int(float64(x) * frequency)
		sy := int(float64(y) * frequency)
		sum += amplitude * Noise(sx, sy, seed+uint32(i)*17)
		amplitudeSum += amplitude
		amplitude *= 0.5
		frequency *= 2
	}
	return sum / amplitudeSum
}
