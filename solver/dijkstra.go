package solver

import (
	"context"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/node"
)

// Dijkstra is the uniform-cost solver: frontier ordered by ByDistanceToGoal,
// no heuristic.
type Dijkstra struct {
	base
}

// NewDijkstra binds a uniform-cost solver to g.
func NewDijkstra(g *grid.Grid, opts ...Option) *Dijkstra {
	return &Dijkstra{base: newBase("dijkstra", g, opts)}
}

// Solve runs the uniform-cost search from START until END is the frontier
// minimum.
//
// Every node's DistToGoal starts at node.Infinity and the start node's at 0.
// Each iteration removes the minimum, marks it visited and EXPLORED, and
// relaxes neighbors that are walkable, unvisited and not already queued: the
// candidate distance is stored in DistToGoal and mirrored into gCost, the
// parent is set, and the neighbor is queued and tagged QUEUE. An empty
// frontier ends the run with NoPath.
//
// Complexity: O((V + E) log V).
func (d *Dijkstra) Solve(ctx context.Context) (Result, error) {
	r, err := d.begin()
	if err != nil {
		return Result{Algorithm: d.name}, err
	}
	if !r.proceed {
		return d.finish(r, NoEndpoints), nil
	}

	g := d.grid
	queue := newFrontier(ByDistanceToGoal, g.Rows()*g.Cols())
	visited := make(map[*node.Node]bool, g.Rows()*g.Cols())

	g.Each(func(n *node.Node) { n.SetDistToGoal(node.Infinity) })
	r.start.SetDistToGoal(0)
	queue.push(r.start)

	for {
		top := queue.peek()
		if top == nil {
			return d.finish(r, NoPath), nil
		}
		if top == r.end {
			return d.succeed(r)
		}

		cur := queue.pop()
		visited[cur] = true
		cur.SetOverlay(node.Explored)
		r.res.Expanded++

		d.relax(cur, queue, visited)

		if err := d.pause(ctx); err != nil {
			return d.finish(r, Aborted), nil
		}
	}
}

func (d *Dijkstra) relax(cur *node.Node, queue *frontier, visited map[*node.Node]bool) {
	curDist := cur.DistToGoal()
	for _, e := range cur.Edges() {
		nb, err := d.grid.Lookup(e.To.Row, e.To.Col)
		if err != nil || visited[nb] || queue.contains(nb) || !nb.Walkable() {
			continue
		}
		candidate := curDist + e.Weight
		if candidate < nb.DistToGoal() {
			nb.SetDistToGoal(candidate)
			nb.SetGCost(candidate)
			nb.SetParent(cur.Position())
		}
		queue.push(nb)
		nb.SetOverlay(node.Queue)
	}
}
