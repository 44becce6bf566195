// Package builder provides validation helpers to enforce parameter
// contracts in Constructor factories.
package builder

import "math"

// validatePartition checks that n1 and n2 are each ≥ MinPartitionSize.
func validatePartition(method string, n1, n2 int) error {
	if n1 < MinPartitionSize || n2 < MinPartitionSize {
		return builderErrorf(method, ErrTooFewVertices,
			"n1=%d, n2=%d (each must be ≥ %d)", n1, n2, MinPartitionSize)
	}

	return nil
}

// validateLabels enforces non-empty sides, non-empty labels, no duplicates
// within a side and no label shared by both sides.
// Complexity: O(|L| + |R|).
func validateLabels(method string, left, right []string) error {
	if err := validatePartition(method, len(left), len(right)); err != nil {
		return err
	}

	seen := make(map[string]string, len(left)+len(right))
	check := func(side string, labels []string) error {
		for i, id := range labels {
			if id == "" {
				return builderErrorf(method, ErrInvalidLabels, "%s label %d is empty", side, i)
			}
			if prev, dup := seen[id]; dup {
				if prev == side {
					return builderErrorf(method, ErrInvalidLabels, "duplicate %s label %q", side, id)
				}
				return builderErrorf(method, ErrInvalidLabels, "label %q appears on both sides", id)
			}
			seen[id] = side
		}
		return nil
	}
	if err := check(SideLeft, left); err != nil {
		return err
	}

	return check(SideRight, right)
}

// normalizeColumn turns raw draws into a probability distribution.
// Negative, NaN or infinite draws and a zero sum are degenerate.
// Complexity: O(len(raw)).
func normalizeColumn(method, column string, raw []float64) ([]float64, error) {
	var total float64
	for i, x := range raw {
		if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, builderErrorf(method, ErrDegenerateDistribution,
				"right node %q: draw %d is %g", column, i, x)
		}
		total += x
	}
	if total == 0 || math.IsInf(total, 0) {
		return nil, builderErrorf(method, ErrDegenerateDistribution,
			"right node %q: draws sum to %g", column, total)
	}

	out := make([]float64, len(raw))
	for i, x := range raw {
		out[i] = x / total
	}

	return out, nil
}
