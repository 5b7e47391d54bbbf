package grid

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/pathviz/node"
)

// ID maps a position to its row-major gonum node ID.
func (g *Grid) ID(p node.Position) int64 {
	return int64(g.index(p.Row, p.Col))
}

// PositionOf maps a gonum node ID back to a position.
func (g *Grid) PositionOf(id int64) (node.Position, bool) {
	if id < 0 || id >= int64(len(g.nodes)) {
		return node.Position{}, false
	}

	return node.Position{Row: int(id) / g.cols, Col: int(id) % g.cols}, true
}

// WeightedGraph exports the current board to a gonum weighted directed graph.
// Every cell becomes a node (ID from ID); only edges between walkable cells
// are included, so walls are isolated vertices.
// Complexity: O(R×C×d).
func (g *Grid) WeightedGraph() *simple.WeightedDirectedGraph {
	wg := simple.NewWeightedDirectedGraph(0, 0)
	for _, n := range g.nodes {
		wg.AddNode(simple.Node(g.ID(n.Position())))
	}
	for _, n := range g.nodes {
		if !n.Walkable() {
			continue
		}
		from := simple.Node(g.ID(n.Position()))
		for _, e := range n.Edges() {
			to := g.nodes[g.index(e.To.Row, e.To.Col)]
			if !to.Walkable() {
				continue
			}
			wg.SetWeightedEdge(wg.NewWeightedEdge(from, simple.Node(g.ID(e.To)), float64(e.Weight)))
		}
	}

	return wg
}
