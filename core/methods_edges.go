// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/RemoveIncidentEdges/HasEdge/
//       GetEdge/Edges/EdgeCount/FilterEdges, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion sequence ("e1" < "e2" < ... < "e10").
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the given weight and returns its ID.
// Missing endpoints are created.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check the multi-edge constraint.
//  4. Generate the ID, store the edge, link adjacency (mirrored if undirected).
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if !g.Weighted() && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	directed := g.Directed()
	allowMulti := g.Multigraph()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !allowMulti && len(g.adjacencyList[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: directed}
	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}
	if !directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// RemoveEdge deletes one edge and its mirror.
//
// Errors:
//   - ErrEdgeNotFound if eid is absent (no silent ignore).
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// RemoveIncidentEdges deletes every edge with id as an endpoint, in either
// direction, and returns how many edges were removed. The vertex itself
// stays in the graph.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(deg(id)) for undirected graphs, O(E) for directed ones.
func (g *Graph) RemoveIncidentEdges(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	var doomed []*Edge
	if g.directed {
		// Incoming directed edges are not mirrored under id.
		for _, e := range g.edges {
			if e.From == id || e.To == id {
				doomed = append(doomed, e)
			}
		}
	} else {
		for _, edgeSet := range g.adjacencyList[id] {
			for eid := range edgeSet {
				doomed = append(doomed, g.edges[eid])
			}
		}
	}

	removed := 0
	for _, e := range doomed {
		if e.IsNil() {
			continue
		}
		if _, ok := g.edges[e.ID]; !ok {
			continue // self-loop seen twice
		}
		delete(g.edges, e.ID)
		removeAdjacency(g, e)
		removed++
	}

	return removed, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges are mirrored, so HasEdge works both ways.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the edge with the given ID or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeBetween returns the first edge (in ID order) linking from→to, or
// ErrEdgeNotFound.
// Complexity: O(k log k) where k is the number of parallel edges.
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bucket := g.adjacencyList[from][to]
	if len(bucket) == 0 {
		return nil, ErrEdgeNotFound
	}
	ids := make([]string, 0, len(bucket))
	for eid := range bucket {
		ids = append(ids, eid)
	}
	sort.Slice(ids, func(i, j int) bool { return edgeIDLess(ids[i], ids[j]) })

	return g.edges[ids[0]], nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// FilterEdges removes all edges failing the predicate and returns how many
// were removed. pred must not mutate the graph.
// Complexity: O(E).
func (g *Graph) FilterEdges(pred func(*Edge) bool) int {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	removed := 0
	for eid, e := range g.edges {
		if !pred(e) {
			removeAdjacency(g, e)
			delete(g.edges, eid)
			removed++
		}
	}

	return removed
}

// nextEdgeID returns a new unique textual edge ID ("e" + decimal).
// Must be called under muEdgeAdj write lock; the counter itself is atomic.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeIDLess orders "e"+decimal IDs numerically: shorter IDs are smaller.
func edgeIDLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}

// sortEdges sorts edges by ID in insertion order.
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return edgeIDLess(es[i].ID, es[j].ID) })
}
