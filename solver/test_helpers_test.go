package solver_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/node"
	"github.com/katalvlaran/pathviz/solver"
)

// quietLogger discards run logs so test output stays readable.
func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// buildGrid turns a picture into a grid: 'S' start, 'E' end, '#' wall,
// 'P' portal, anything else empty.
func buildGrid(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.New(len(rows), len(rows[0]), grid.WithLogger(quietLogger()))
	require.NoError(t, err)
	for r, line := range rows {
		require.Len(t, line, len(rows[0]), "row %d", r)
		for c, ch := range line {
			switch ch {
			case 'S':
				g.SetTag(r, c, node.Start)
			case 'E':
				g.SetTag(r, c, node.End)
			case '#':
				g.PlaceWall(r, c)
			case 'P':
				g.SetTag(r, c, node.Portal)
			}
		}
	}

	return g
}

func pos(row, col int) node.Position { return node.Position{Row: row, Col: col} }

// subject is one solver together with the grid it searches.
type subject struct {
	name string
	grid *grid.Grid
	s    solver.Solver
}

// bothSolvers returns an A* and a Dijkstra solver, each bound to its own
// copy of the picture.
func bothSolvers(t *testing.T, opts []solver.Option, rows ...string) []subject {
	t.Helper()
	opts = append([]solver.Option{solver.WithLogger(quietLogger())}, opts...)
	ga, gd := buildGrid(t, rows...), buildGrid(t, rows...)

	return []subject{
		{"astar", ga, solver.NewAStar(ga, opts...)},
		{"dijkstra", gd, solver.NewDijkstra(gd, opts...)},
	}
}

// requireContiguous checks that path starts next to from, every step follows
// an edge and the path total equals cost.
func requireContiguous(t *testing.T, g *grid.Grid, from node.Position, path []node.Position, cost int) {
	t.Helper()
	total := 0
	prev := from
	for _, p := range path {
		n, err := g.Lookup(prev.Row, prev.Col)
		require.NoError(t, err)
		w, ok := n.EdgeWeight(p)
		require.True(t, ok, "%v is not linked to %v", prev, p)
		total += w
		prev = p
	}
	require.Equal(t, cost, total)
}

// tagCounts tallies node tags on g.
func tagCounts(g *grid.Grid) map[node.Tag]int {
	out := map[node.Tag]int{}
	g.Each(func(n *node.Node) { out[n.Tag()]++ })

	return out
}
