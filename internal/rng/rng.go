// Package rng provides a deterministic pseudo-random stream derived from a
// string seed. Given the same seed, every invocation produces the same
// stream of floats and the same selections from a sequence; no wall clock
// or process state is ever consulted.
package rng

import (
	"hash/fnv"
	"math/rand"
)

// RNG is a seeded pseudo-random source. The zero value is not usable; build
// one with New.
type RNG struct {
	r *rand.Rand
}

// New collapses seed to a 32-bit integer via Hash and uses it to source a
// deterministic stream.
func New(seed string) *RNG {
	return &RNG{r: rand.New(rand.NewSource(Hash(seed)))}
}

// Hash collapses seed to a 32-bit integer via FNV-1a, a stable
// XOR-then-multiply hash over the seed's bytes. Exposed so callers needing a
// raw seed integer (e.g. internal/cipher's rotation seed) derive it the
// same way the stream itself does.
func Hash(seed string) int64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	return int64(h.Sum32())
}

// Float64 returns the next pseudo-random value in [0, 1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// Intn returns a pseudo-random int in [0, n).
func (g *RNG) Intn(n int) int {
	return g.r.Intn(n)
}

// Select deterministically picks one element from a non-empty sequence.
// Calling Select again on the same RNG instance advances the stream, so
// repeated selections from one RNG are not independent draws; callers that
// need decorrelated selections should build separate RNGs from distinct
// sub-seeds (see internal/puzzlegen).
func Select[T any](g *RNG, xs []T) (T, bool) {
	var zero T
	if len(xs) == 0 {
		return zero, false
	}
	return xs[g.Intn(len(xs))], true
}
