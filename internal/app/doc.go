// Package app wires configuration, logging, graph construction, matching
// and report rendering into the greedymatch command.
//
// A run samples the two sides from the configured pools, builds the
// column-stochastic graph, computes a first matching and then keeps
// matching until the pair set differs from the first one or max_attempts
// is spent. All randomness flows from a single stream seeded with
// config.Seed, so a given configuration always produces the same report.
package app
