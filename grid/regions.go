package grid

import (
	"fmt"

	"github.com/katalvlaran/pathviz/node"
)

// Steps runs a breadth-first walk over walkable nodes from `from`, following
// links, and returns the number of moves needed to reach every visited
// position. Move weights are ignored. A wall at `from` yields an empty map.
//
// Complexity: O(V + E).
func (g *Grid) Steps(from node.Position) (map[node.Position]int, error) {
	n, err := g.Lookup(from.Row, from.Col)
	if err != nil {
		return nil, err
	}
	depth := make(map[node.Position]int, len(g.nodes))
	if !n.Walkable() {
		return depth, nil
	}

	depth[from] = 0
	queue := []*node.Node{n}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		d := depth[cur.Position()]
		for _, e := range cur.Edges() {
			if _, seen := depth[e.To]; seen {
				continue
			}
			nb, err := g.Lookup(e.To.Row, e.To.Col)
			if err != nil {
				return nil, fmt.Errorf("grid: link from %s leaves the grid: %w", cur.Position(), err)
			}
			if !nb.Walkable() {
				continue
			}
			depth[e.To] = d + 1
			queue = append(queue, nb)
		}
	}

	return depth, nil
}

// Reachable reports whether a walkable route links from to to.
func (g *Grid) Reachable(from, to node.Position) (bool, error) {
	if _, err := g.Lookup(to.Row, to.Col); err != nil {
		return false, err
	}
	depth, err := g.Steps(from)
	if err != nil {
		return false, err
	}
	_, ok := depth[to]

	return ok, nil
}

// Components groups walkable positions into linked regions. Regions are
// ordered by their first cell in row-major order, and cells within a region
// by discovery order.
//
// Complexity: O(V + E).
func (g *Grid) Components() [][]node.Position {
	seen := make([]bool, len(g.nodes))
	var comps [][]node.Position
	for i, n := range g.nodes {
		if seen[i] || !n.Walkable() {
			continue
		}
		seen[i] = true
		comp := []node.Position{n.Position()}
		for qi := 0; qi < len(comp); qi++ {
			cur := g.nodes[g.index(comp[qi].Row, comp[qi].Col)]
			for _, e := range cur.Edges() {
				if !g.InBounds(e.To.Row, e.To.Col) {
					continue
				}
				j := g.index(e.To.Row, e.To.Col)
				if seen[j] || !g.nodes[j].Walkable() {
					continue
				}
				seen[j] = true
				comp = append(comp, e.To)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
