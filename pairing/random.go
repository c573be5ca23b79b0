package pairing

import "math/rand/v2"

// Random is the randomness consumed by formation and pairing.
// *rand.Rand from math/rand/v2 satisfies it, which lets tests seed a PCG.
type Random interface {
	Shuffle(n int, swap func(i, j int))
	IntN(n int) int
}

// NewSeeded returns a deterministic source for reproducible rounds.
func NewSeeded(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// globalRandom uses the package-level generator, which is safe for concurrent use.
type globalRandom struct{}

func (globalRandom) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }
func (globalRandom) IntN(n int) int                     { return rand.IntN(n) }

// DefaultRandom is used when an engine is built with a nil source.
var DefaultRandom Random = globalRandom{}

func orDefault(r Random) Random {
	if r == nil {
		return DefaultRandom
	}
	return r
}

func shuffled[T any](r Random, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
