package grid

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/pathviz/node"
)

// attemptsPerCell bounds random sampling in PlaceRandomWalls so a crowded
// board cannot spin forever.
const attemptsPerCell = 16

// PlaceRandomWalls places up to n walls at positions that are Free in every
// one of grids, mirroring the same cells on each. It returns how many walls
// were placed, which is less than n only when free cells ran out or the
// attempt budget was exhausted.
// Returns ErrShapeMismatch if the grids differ in size.
func PlaceRandomWalls(rng *rand.Rand, n int, grids ...*Grid) (int, error) {
	if len(grids) == 0 || n <= 0 {
		return 0, nil
	}
	rows, cols := grids[0].rows, grids[0].cols
	for _, g := range grids[1:] {
		if g.rows != rows || g.cols != cols {
			return 0, fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, rows, cols, g.rows, g.cols)
		}
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	placed := 0
	budget := attemptsPerCell * rows * cols
	for attempt := 0; placed < n && attempt < budget; attempt++ {
		p := node.Position{Row: rng.IntN(rows), Col: rng.IntN(cols)}
		if !freeEverywhere(p, grids) {
			continue
		}
		for _, g := range grids {
			g.PlaceWall(p.Row, p.Col)
		}
		placed++
	}

	return placed, nil
}

func freeEverywhere(p node.Position, grids []*Grid) bool {
	for _, g := range grids {
		if !g.nodes[g.index(p.Row, p.Col)].Free() {
			return false
		}
	}

	return true
}
