package builder

import "math/rand"

// SampleLabels draws k distinct labels from pool without replacement, in the
// order they were drawn. The pool is not modified.
//
// Errors:
//   - ErrTooFewVertices if k < 1 or k > len(pool).
//   - ErrNeedRandSource if rng is nil.
//   - ErrInvalidLabels if pool holds an empty or repeated label.
//
// Complexity: O(len(pool)) time and space (partial Fisher–Yates on a copy).
func SampleLabels(pool []string, k int, rng *rand.Rand) ([]string, error) {
	if k < MinPartitionSize || k > len(pool) {
		return nil, builderErrorf(MethodSampleLabels, ErrTooFewVertices,
			"k=%d from a pool of %d", k, len(pool))
	}
	if rng == nil {
		return nil, builderErrorf(MethodSampleLabels, ErrNeedRandSource, "sampling needs an rng")
	}

	seen := make(map[string]struct{}, len(pool))
	for _, id := range pool {
		if id == "" {
			return nil, builderErrorf(MethodSampleLabels, ErrInvalidLabels, "empty label in pool")
		}
		if _, dup := seen[id]; dup {
			return nil, builderErrorf(MethodSampleLabels, ErrInvalidLabels, "duplicate label %q in pool", id)
		}
		seen[id] = struct{}{}
	}

	work := append([]string(nil), pool...)
	n := len(work)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		work[i], work[j] = work[j], work[i]
	}

	return work[:k:k], nil
}
