package bipartite

import (
	"fmt"

	"github.com/ronylevy1/algo9/builder"
	"github.com/ronylevy1/algo9/core"
)

// MethodPartition is the error-context prefix of Partition.
const MethodPartition = "Partition"

// colorer encapsulates mutable 2-coloring state.
type colorer struct {
	graph *core.Graph
	pin   map[string]string
	color map[string]string
	queue []string
}

// Partition splits the vertices of an undirected core graph into two sides
// by breadth-first 2-coloring. Vertices tagged with builder.SideAttr keep
// their tag; every other component starts on the left at its smallest ID.
// Both sides are returned in ascending ID order.
//
// Errors: ErrInvalidGraph for a nil or directed graph, an odd cycle
// (including self-loops) or tags that contradict the edges.
//
// Complexity: O(V + E).
func Partition(g *core.Graph) (left, right []string, err error) {
	if g == nil {
		return nil, nil, fmt.Errorf("%s: nil graph: %w", MethodPartition, ErrInvalidGraph)
	}
	if g.Directed() {
		return nil, nil, fmt.Errorf("%s: graph is directed: %w", MethodPartition, ErrInvalidGraph)
	}

	vertices := g.Vertices()
	c := &colorer{
		graph: g,
		pin:   make(map[string]string),
		color: make(map[string]string, len(vertices)),
		queue: make([]string, 0, len(vertices)),
	}
	var roots []string
	for _, id := range vertices {
		tag, ok := g.VertexAttr(id, builder.SideAttr)
		if s, _ := tag.(string); ok && (s == builder.SideLeft || s == builder.SideRight) {
			c.pin[id] = s
			roots = append(roots, id)
		}
	}
	roots = append(roots, vertices...)

	for _, root := range roots {
		if _, done := c.color[root]; done {
			continue
		}
		side := builder.SideLeft
		if p, ok := c.pin[root]; ok {
			side = p
		}
		c.paint(root, side)
		if err = c.loop(); err != nil {
			return nil, nil, err
		}
	}

	for _, id := range vertices {
		if c.color[id] == builder.SideLeft {
			left = append(left, id)
		} else {
			right = append(right, id)
		}
	}

	return left, right, nil
}

// Infer is Partition followed by FromCore.
func Infer(g *core.Graph) (*Graph, error) {
	left, right, err := Partition(g)
	if err != nil {
		return nil, err
	}

	return FromCore(g, left, right)
}

func (c *colorer) paint(id, side string) {
	c.color[id] = side
	c.queue = append(c.queue, id)
}

// loop drains the queue, painting each neighbor the opposite side.
func (c *colorer) loop() error {
	for len(c.queue) > 0 {
		id := c.queue[0]
		c.queue = c.queue[1:]

		nbs, err := c.graph.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("%s: neighbors of %q: %w", MethodPartition, id, err)
		}
		want := opposite(c.color[id])
		for _, nb := range nbs {
			if got, seen := c.color[nb]; seen {
				if got != want {
					return fmt.Errorf("%s: %q and %q share the %s side: %w",
						MethodPartition, id, nb, got, ErrInvalidGraph)
				}
				continue
			}
			if p, pinned := c.pin[nb]; pinned && p != want {
				return fmt.Errorf("%s: %q is tagged %s but must be %s: %w",
					MethodPartition, nb, p, want, ErrInvalidGraph)
			}
			c.paint(nb, want)
		}
	}

	return nil
}

func opposite(side string) string {
	if side == builder.SideLeft {
		return builder.SideRight
	}
	return builder.SideLeft
}
