// SPDX-License-Identifier: MIT
// Package: algo9/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`: "<Method>: <detail>: %w".
//   • Algorithms never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n1, n2, k) is smaller
// than the allowed minimum, or that a label pool cannot supply k labels.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor or helper needs
// a non-nil *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidLabels indicates empty, duplicate or overlapping partition labels.
var ErrInvalidLabels = errors.New("builder: invalid partition labels")

// ErrDegenerateDistribution indicates that the raw draws for one right node
// cannot be normalized into a probability distribution: they sum to zero,
// or one of them is negative, NaN or infinite.
var ErrDegenerateDistribution = errors.New("builder: degenerate weight distribution")

// ErrConstructFailed indicates that a construction step failed on the
// underlying graph, or that a nil constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps a sentinel with the method context:
// "<Method>: <formatted detail>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
