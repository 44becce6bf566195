// Package builder provides reusable functional-options building blocks for
// weighted bipartite graph construction on top of core.Graph.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID scheme, draw function, partition prefixes.
//   - Topology constructors (Constructor implementations):
//     – LabeledBipartite:  complete K_{|L|,|R|} over caller-supplied labels,
//     column-stochastic weights (Σ_l w(l,r) = 1 for every r).
//     – CompleteBipartite: same topology with generated "<prefix><id>" labels.
//   - Draw functions (DrawFn implementations) feeding the normalization:
//     – UniformDraw:       rng.Float64() ∈ [0,1), the default.
//     – ConstantDraw:      fixed value, gives the uniform 1/|L| weighting.
//     – SequenceDraw:      replays a fixed list of values (fixtures).
//   - Label helpers:
//     – SampleLabels:      k labels drawn without replacement from a pool.
//     – IDFn schemes:      DefaultIDFn, SymbolIDFn, ExcelColumnIDFn.
//
// Guarantees:
//
//   - Determinism: same labels, options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping sentinels (ErrInvalidLabels,
//     ErrNeedRandSource, ErrDegenerateDistribution, ...) with method context.
//   - Constructors never leave NaN weights behind: a zero column sum is an error.
package builder
