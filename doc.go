// Package algo9 builds random weighted bipartite graphs and computes greedy
// randomized matchings over them, keeping every intermediate graph state.
//
// 🚀 What is inside?
//
//	• Core primitives: thread-safe Graph with float64 weights, cloning and
//	  incident-edge removal
//	• Builders: labeled and complete bipartite graphs with column-stochastic
//	  weights, label sampling, pluggable draw functions
//	• Matching: GreedyMatch with live free-set checks, immutable snapshots,
//	  accept/skip hooks, deterministic parallel runs
//	• Driver: the greedymatch command with HCL run files and text/YAML/JSON
//	  reports
//
// Layout:
//
//	core/            - Graph, Vertex, Edge types & thread-safe primitives
//	builder/         - functional-option constructors for bipartite graphs
//	bipartite/       - Graph wrapper, GreedyMatch, Partition, RNG streams
//	internal/        - config, codec, cli, app, ctxlog for the command
//	cmd/greedymatch/ - entrypoint
//
// Quick ASCII example (K2,2 after accepting Ami–A):
//
//	Ami   A        Ami   A
//	 │ ╲ ╱ │   →
//	 │  ╳  │
//	 │ ╱ ╲ │
//	Tami  B        Tami──B
//
//	go run ./cmd/greedymatch -snapshots
package algo9
