package solver

import (
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/node"
)

// RetracePath exposes parent-chain reconstruction to external tests.
func RetracePath(g *grid.Grid, start, end *node.Node) ([]node.Position, int, error) {
	b := newBase("retrace", g, []Option{WithLogger(nil)})

	return b.retracePath(start, end)
}
