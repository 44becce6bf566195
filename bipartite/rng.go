// File: rng.go
// Role: deterministic RNG streams shared by matching runs.
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Derive one stream per goroutine
//     with DeriveRand, or serialize a single stream with NewLockedRand.

package bipartite

import (
	"math/rand"
	"sync"
)

// DefaultSeed is used when callers pass seed==0.
const DefaultSeed int64 = 42

// RandFromSeed returns a deterministic *rand.Rand.
// seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func RandFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64-style finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand creates an independent deterministic stream from base and a
// stream identifier. base.Int63() is consumed once, so repeated calls with
// the same stream still yield different children. base==nil ⇒ DefaultSeed
// is the parent.
//
// Call during setup, never from several goroutines on the same base.
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// lockedSource serializes access to a rand.Source64.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// NewLockedRand returns a *rand.Rand whose source is mutex-guarded, so one
// stream can be shared by several goroutines. The interleaving of draws
// between goroutines, and therefore the results, is not deterministic.
func NewLockedRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(&lockedSource{src: rand.NewSource(seed).(rand.Source64)})
}
