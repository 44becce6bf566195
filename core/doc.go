// Package core defines the central Graph, Vertex and Edge types and the
// thread-safe primitives used to build, query, reduce and clone graphs.
//
// Two RWMutex locks guard a Graph: muVert for the vertex catalog and the
// configuration flags, muEdgeAdj for the edge catalog and the adjacency
// buckets. Lock order is always muVert -> muEdgeAdj.
//
// Edges carry float64 weights. Undirected edges are mirrored in the
// adjacency so HasEdge and Neighbors work from either endpoint.
//
// Determinism:
//
//	Vertices() is sorted lexicographically.
//	Edges() and Neighbors() are sorted by insertion sequence ("e1","e2",...).
//	Clone() carries the edge-ID counter so clones continue the sequence.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight on an unweighted graph, or a NaN/Inf weight.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
