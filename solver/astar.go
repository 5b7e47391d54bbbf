package solver

import (
	"context"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/node"
)

// AStar is the informed solver: frontier ordered by ByCost, heuristic
// grid.Distance to the end node.
type AStar struct {
	base
}

// NewAStar binds an A* solver to g.
func NewAStar(g *grid.Grid, opts ...Option) *AStar {
	return &AStar{base: newBase("astar", g, opts)}
}

// Solve runs A* from the grid's START to its END.
//
// Each iteration pops the lowest (fCost, hCost) node. Reaching END ends the
// run; otherwise the node is finalized and tagged EXPLORED, and every
// walkable, non-finalized neighbor whose gCost improves (or that is not yet
// queued) gets new costs and a parent, and is queued and tagged QUEUE. The
// solver then pauses on the pacer, which is where cancellation is observed.
//
// Complexity: O((V + E) log V).
func (a *AStar) Solve(ctx context.Context) (Result, error) {
	r, err := a.begin()
	if err != nil {
		return Result{Algorithm: a.name}, err
	}
	if !r.proceed {
		return a.finish(r, NoEndpoints), nil
	}

	g := a.grid
	open := newFrontier(ByCost, g.Rows()*g.Cols())
	closed := make(map[*node.Node]bool, g.Rows()*g.Cols())

	// The endpoints are spared by ResetGridData; give start fresh costs.
	r.start.SetGCost(0)
	r.start.SetHCost(g.Distance(r.start, r.end))
	open.push(r.start)

	for open.Len() > 0 {
		cur := open.pop()
		closed[cur] = true
		if cur == r.end {
			return a.succeed(r)
		}
		cur.SetOverlay(node.Explored)
		r.res.Expanded++

		a.relax(cur, r.end, open, closed)

		if err := a.pause(ctx); err != nil {
			return a.finish(r, Aborted), nil
		}
	}

	return a.finish(r, NoPath), nil
}

func (a *AStar) relax(cur, end *node.Node, open *frontier, closed map[*node.Node]bool) {
	g := a.grid
	curG := cur.GCost()
	for _, e := range cur.Edges() {
		nb, err := g.Lookup(e.To.Row, e.To.Col)
		if err != nil || !nb.Walkable() || closed[nb] {
			continue
		}
		tentative := curG + e.Weight
		queued := open.contains(nb)
		if queued && tentative >= nb.GCost() {
			continue
		}
		nb.SetGCost(tentative)
		nb.SetHCost(g.Distance(nb, end))
		nb.SetParent(cur.Position())
		if queued {
			open.fix(nb)
			continue
		}
		open.push(nb)
		nb.SetOverlay(node.Queue)
	}
}
