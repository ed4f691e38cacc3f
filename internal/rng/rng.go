// Package rng provides the deterministic random stream that drives world
// generation. A seed string is hashed into four 32-bit words (cyrb128) which
// initialise a small-state add-rotate-xor generator (sfc32).
package rng

import (
	"math"
	"strings"
	"unicode/utf16"
)

// WarmupDraws is the number of outputs discarded after seeding.
const WarmupDraws = 12

// RNG is a deterministic pseudo-random number generator seeded from a string.
// It is not safe for concurrent use; each generation owns its own RNG.
type RNG struct {
	a, b, c, d uint32
	draws      int
}

// Hash128 hashes a seed into four mixing words.
// Every UTF-16 code unit perturbs all four accumulators and a final
// avalanche pass mixes them together.
func Hash128(seed string) [4]uint32 {
	h1 := uint32(1779033703)
	h2 := uint32(3144134277)
	h3 := uint32(1013904242)
	h4 := uint32(2773480762)

	for _, unit := range utf16.Encode([]rune(seed)) {
		k := uint32(unit)
		h1 = h2 ^ ((h1 ^ k) * 597399067)
		h2 = h3 ^ ((h2 ^ k) * 2869860233)
		h3 = h4 ^ ((h3 ^ k) * 951274213)
		h4 = h1 ^ ((h4 ^ k) * 2716044179)
	}

	h1 = (h3 ^ (h1 >> 18)) * 597399067
	h2 = (h4 ^ (h2 >> 22)) * 2869860233
	h3 = (h1 ^ (h3 >> 17)) * 951274213
	h4 = (h2 ^ (h4 >> 19)) * 2716044179

	h1 ^= h2 ^ h3 ^ h4
	h2 ^= h1
	h3 ^= h1
	h4 ^= h1

	return [4]uint32{h1, h2, h3, h4}
}

// New creates an RNG for the given seed. Surrounding whitespace is ignored,
// so " abc " and "abc" produce the same stream.
func New(seed string) *RNG {
	h := Hash128(strings.TrimSpace(seed))
	r := &RNG{a: h[0], b: h[1], c: h[2], d: h[3]}
	for i := 0; i < WarmupDraws; i++ {
		r.next()
	}
	r.draws = 0
	return r
}

// next advances the generator one step.
func (r *RNG) next() uint32 {
	t := r.a + r.b
	r.a = r.b ^ (r.b >> 9)
	r.b = r.c + (r.c << 3)
	r.c = (r.c << 21) | (r.c >> 11)
	r.d++
	t += r.d
	r.c += t
	r.draws++
	return t
}

// Uint32 returns the next raw 32-bit output.
func (r *RNG) Uint32() uint32 {
	return r.next()
}

// Float returns the next value in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.next()) / 4294967296.0
}

// Range returns a value in [lo, hi). Consumes one draw.
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + r.Float()*(hi-lo)
}

// Intn returns an int in [0, n). Consumes one draw; n <= 0 yields 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		r.next()
		return 0
	}
	return int(r.Float() * float64(n))
}

// IntRange returns an int in [lo, hi). Consumes one draw.
func (r *RNG) IntRange(lo, hi int) int {
	return lo + r.Intn(hi-lo)
}

// Angle returns an angle in [0, 2π). Consumes one draw.
func (r *RNG) Angle() float64 {
	return r.Float() * 2 * math.Pi
}

// Signed returns a value in [-1, 1). Consumes one draw.
func (r *RNG) Signed() float64 {
	return r.Float()*2 - 1
}

// Draws returns the number of values drawn since warm-up.
func (r *RNG) Draws() int {
	return r.draws
}
