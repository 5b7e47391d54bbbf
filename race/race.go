package race

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/node"
	"github.com/katalvlaran/pathviz/solver"
)

// Race owns two mirrored grids and one solver per grid.
type Race struct {
	left, right *grid.Grid
	astar       *solver.AStar
	dijkstra    *solver.Dijkstra
	pacer       *solver.Pacer
	log         logrus.FieldLogger

	// ctl serializes Start against the stop-and-reset of NewBoard and Clear.
	// Wait and Cancel never take it.
	ctl sync.Mutex

	mu  sync.Mutex // guards rng and cur
	rng *rand.Rand
	cur *run // nil before the first Start
}

// run is the state of one Start. The solvers write only their own run, and
// report and err are final once done is closed.
type run struct {
	cancel context.CancelFunc
	done   chan struct{}
	report Report
	err    error
}

func (x *run) running() bool {
	select {
	case <-x.done:
		return false
	default:
		return true
	}
}

// New builds two rows×cols grids and binds the solvers to them.
func New(rows, cols int, opts ...Option) (*Race, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	gopts := []grid.Option{grid.WithConnectivity(o.Conn), grid.WithLogger(o.Logger)}
	left, err := grid.New(rows, cols, gopts...)
	if err != nil {
		return nil, fmt.Errorf("race: left grid: %w", err)
	}
	right, err := grid.New(rows, cols, gopts...)
	if err != nil {
		return nil, fmt.Errorf("race: right grid: %w", err)
	}

	seed := o.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	pacer := solver.NewPacer(o.Delay, o.Step)
	sopts := []solver.Option{solver.WithPacer(pacer), solver.WithLogger(o.Logger)}

	return &Race{
		left:     left,
		right:    right,
		astar:    solver.NewAStar(left, sopts...),
		dijkstra: solver.NewDijkstra(right, sopts...),
		pacer:    pacer,
		log:      o.Logger.WithField("component", "race"),
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}, nil
}

// Left returns the grid searched by A*.
func (r *Race) Left() *grid.Grid { return r.left }

// Right returns the grid searched by the uniform-cost solver.
func (r *Race) Right() *grid.Grid { return r.right }

// Pacer returns the delay shared by both solvers.
func (r *Race) Pacer() *solver.Pacer { return r.pacer }

// SetEndpoints tags start and end on both grids. Previous endpoints are
// cleared by the grids' own tracking.
func (r *Race) SetEndpoints(start, end node.Position) error {
	for _, p := range []node.Position{start, end} {
		if _, err := r.left.Lookup(p.Row, p.Col); err != nil {
			return err
		}
	}
	r.SetTag(start.Row, start.Col, node.Start)
	r.SetTag(end.Row, end.Col, node.End)

	return nil
}

// SetTag applies t at (row, col) on both grids and reports whether the
// coordinate was in bounds.
func (r *Race) SetTag(row, col int, t node.Tag) bool {
	okL := r.left.SetTag(row, col, t)
	okR := r.right.SetTag(row, col, t)

	return okL && okR
}

// PlaceRandomWalls places up to n walls at cells free on both grids and
// returns how many were placed.
func (r *Race) PlaceRandomWalls(n int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	placed, err := grid.PlaceRandomWalls(r.rng, n, r.left, r.right)
	if err != nil {
		return placed, err
	}
	r.log.WithFields(logrus.Fields{"requested": n, "placed": placed}).Debug("random walls placed")

	return placed, nil
}

// Solvable reports whether the endpoints are set and connected by walkable
// cells. Both grids share one layout, so the left grid decides.
func (r *Race) Solvable() (bool, error) {
	start, ok := r.left.Start()
	if !ok {
		return false, nil
	}
	end, ok := r.left.End()
	if !ok {
		return false, nil
	}

	return r.left.Reachable(start.Position(), end.Position())
}

// Start launches both solvers under a cancellable child of ctx. It returns
// ErrRunning if the previous race has not ended.
func (r *Race) Start(ctx context.Context) error {
	r.ctl.Lock()
	defer r.ctl.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cur != nil && r.cur.running() {
		return ErrRunning
	}

	ctx, cancel := context.WithCancel(ctx)
	eg, ctx := errgroup.WithContext(ctx)
	cur := &run{cancel: cancel, done: make(chan struct{})}
	r.cur = cur

	eg.Go(func() error {
		res, err := r.astar.Solve(ctx)
		cur.report.AStar = res
		return err
	})
	eg.Go(func() error {
		res, err := r.dijkstra.Solve(ctx)
		cur.report.Dijkstra = res
		return err
	})
	go func() {
		cur.err = eg.Wait()
		cancel()
		close(cur.done)
	}()

	r.log.WithField("delay", r.pacer.Delay()).Info("race started")

	return nil
}

// Running reports whether a race is in flight.
func (r *Race) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.cur != nil && r.cur.running()
}

// Wait blocks until the most recently started race ends and returns both of
// its results. The error is the first solver error, if any. A later Start
// does not change what an earlier Wait returns.
func (r *Race) Wait() (Report, error) {
	r.mu.Lock()
	cur := r.cur
	r.mu.Unlock()
	if cur == nil {
		return Report{}, ErrNotStarted
	}
	<-cur.done

	r.log.WithFields(logrus.Fields{
		"astar":    cur.report.AStar.Outcome,
		"dijkstra": cur.report.Dijkstra.Outcome,
		"winner":   cur.report.Winner(),
	}).Info("race finished")

	return cur.report, cur.err
}

// Cancel asks both solvers to stop at their next pacing checkpoint. It does
// not wait for them.
func (r *Race) Cancel() {
	r.mu.Lock()
	cur := r.cur
	r.mu.Unlock()
	if cur != nil {
		cur.cancel()
	}
}

// stopLocked cancels a running race and waits for both solvers to return.
// Callers hold r.ctl, so no new race can begin until they release it.
func (r *Race) stopLocked() {
	r.mu.Lock()
	cur := r.cur
	r.mu.Unlock()
	if cur == nil {
		return
	}
	cur.cancel()
	<-cur.done
}

// NewBoard stops any running race and resets both grids completely,
// endpoints included.
func (r *Race) NewBoard() {
	r.ctl.Lock()
	defer r.ctl.Unlock()
	r.stopLocked()
	r.left.ResetGrid()
	r.right.ResetGrid()
	r.log.Debug("new board")
}

// Clear stops any running race and removes search tags and costs from both
// grids, keeping walls, portals and endpoints.
func (r *Race) Clear() {
	r.ctl.Lock()
	defer r.ctl.Unlock()
	r.stopLocked()
	for _, g := range []*grid.Grid{r.left, r.right} {
		g.ResetTags()
		g.ResetGridData()
	}
	r.log.Debug("search state cleared")
}

// Faster shortens the shared delay by one step.
func (r *Race) Faster() {
	r.log.WithField("delay", r.pacer.Decrement()).Debug("pace changed")
}

// Slower lengthens the shared delay by one step.
func (r *Race) Slower() {
	r.log.WithField("delay", r.pacer.Increment()).Debug("pace changed")
}
