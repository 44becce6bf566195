package builder

import (
	"fmt"
	"math/rand"
	"sync"
)

// DrawFn produces one raw, nonnegative value for a (left, right) pair before
// column normalization. It must be deterministic for a given RNG state.
type DrawFn func(rng *rand.Rand) float64

// UniformDraw returns rng.Float64() ∈ [0,1). A nil rng yields 0.
func UniformDraw(rng *rand.Rand) float64 {
	if rng == nil {
		return 0
	}

	return rng.Float64()
}

// ConstantDraw returns a DrawFn that always yields value. Every column then
// normalizes to 1/|L|. Panics if value < 0.
func ConstantDraw(value float64) DrawFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantDraw: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// SequenceDraw returns a DrawFn replaying values in order and wrapping
// around at the end. Draws are taken column by column (right node outer,
// left node inner). The returned function is safe for concurrent use.
// Panics on an empty list.
func SequenceDraw(values ...float64) DrawFn {
	if len(values) == 0 {
		panic("SequenceDraw: no values")
	}
	seq := append([]float64(nil), values...)
	var (
		mu sync.Mutex
		i  int
	)

	return func(_ *rand.Rand) float64 {
		mu.Lock()
		defer mu.Unlock()
		v := seq[i%len(seq)]
		i++

		return v
	}
}
