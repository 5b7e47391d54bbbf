package solver

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/node"
)

// Solver is a search algorithm bound to one grid.
type Solver interface {
	// Name identifies the algorithm in results and logs.
	Name() string
	// Solve searches from the grid's START to its END, mutating node tags and
	// costs as it goes. It blocks until the run ends.
	Solve(ctx context.Context) (Result, error)
	// Path returns the most recently reconstructed route.
	Path() []node.Position
}

// base carries the state shared by every algorithm: the grid, the pacer and
// the last reconstructed path.
type base struct {
	name  string
	grid  *grid.Grid
	pacer *Pacer
	log   logrus.FieldLogger

	mu   sync.Mutex // guards path
	path []node.Position
}

func newBase(name string, g *grid.Grid, opts []Option) base {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return base{
		name:  name,
		grid:  g,
		pacer: o.Pacer,
		log:   o.Logger.WithField("algorithm", name),
	}
}

// Name returns the algorithm name.
func (b *base) Name() string { return b.name }

// Pacer returns the pacer this solver sleeps on.
func (b *base) Pacer() *Pacer { return b.pacer }

// Path returns a copy of the last reconstructed path.
func (b *base) Path() []node.Position {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]node.Position, len(b.path))
	copy(out, b.path)

	return out
}

// run is the per-Solve bookkeeping.
type run struct {
	res     Result
	log     logrus.FieldLogger
	began   time.Time
	start   *node.Node
	end     *node.Node
	proceed bool
}

// begin validates the grid and endpoints. Only when both endpoints exist are
// costs and search tags cleared; otherwise the grid is left untouched and the
// run reports NoEndpoints.
func (b *base) begin() (*run, error) {
	r := &run{
		res:   Result{RunID: uuid.New(), Algorithm: b.name},
		began: time.Now(),
	}
	if b.grid == nil {
		return nil, ErrNilGrid
	}
	r.log = b.log.WithField("run_id", r.res.RunID)

	start, hasStart := b.grid.Start()
	end, hasEnd := b.grid.End()
	if !hasStart || !hasEnd {
		r.res.Outcome = NoEndpoints
		r.log.WithFields(logrus.Fields{"start": hasStart, "end": hasEnd}).Info("no endpoints configured")
		return r, nil
	}
	r.start, r.end, r.proceed = start, end, true

	b.grid.ResetGridData()
	b.grid.ResetTags()
	b.setPath(nil)
	r.log.WithFields(logrus.Fields{
		"start": start.Position(),
		"end":   end.Position(),
		"delay": b.pacer.Delay(),
	}).Debug("search started")

	return r, nil
}

// pause sleeps on the pacer; a non-nil return means the run was cancelled.
func (b *base) pause(ctx context.Context) error {
	return b.pacer.Wait(ctx)
}

// finish stamps the outcome and elapsed time and logs the run.
func (b *base) finish(r *run, o Outcome) Result {
	r.res.Outcome = o
	r.res.Elapsed = time.Since(r.began)
	r.log.WithFields(logrus.Fields{
		"outcome":  o,
		"expanded": r.res.Expanded,
		"cost":     r.res.Cost,
		"steps":    len(r.res.Path),
		"elapsed":  r.res.Elapsed,
	}).Info("search finished")

	return r.res
}

// succeed reconstructs the path and finishes the run as PathFound.
func (b *base) succeed(r *run) (Result, error) {
	path, cost, err := b.retracePath(r.start, r.end)
	if err != nil {
		r.log.WithError(err).Error("path reconstruction failed")
		return b.finish(r, NoPath), err
	}
	b.setPath(path)
	r.res.Path = append([]node.Position(nil), path...)
	r.res.Cost = cost

	return b.finish(r, PathFound), nil
}

// retracePath walks parent links back from end until start, overlaying PATH
// on every visited node except the endpoints. The result excludes start and
// includes end. The walk is bounded by the cell count so a corrupted chain
// yields ErrBrokenParentChain instead of spinning.
func (b *base) retracePath(start, end *node.Node) ([]node.Position, int, error) {
	limit := b.grid.Rows() * b.grid.Cols()
	var reversed []node.Position
	cost := 0
	cur := end
	for steps := 0; cur != start; steps++ {
		if steps >= limit {
			return nil, 0, fmt.Errorf("%w: exceeded %d steps", ErrBrokenParentChain, limit)
		}
		reversed = append(reversed, cur.Position())
		cur.SetOverlay(node.Path)

		pp, ok := cur.Parent()
		if !ok {
			return nil, 0, fmt.Errorf("%w: %s has no parent", ErrBrokenParentChain, cur.Position())
		}
		prev, err := b.grid.Lookup(pp.Row, pp.Col)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrBrokenParentChain, err)
		}
		w, linked := prev.EdgeWeight(cur.Position())
		if !linked {
			return nil, 0, fmt.Errorf("%w: %s is not linked to %s", ErrBrokenParentChain, pp, cur.Position())
		}
		cost += w
		cur = prev
	}

	path := make([]node.Position, len(reversed))
	for i, p := range reversed {
		path[len(reversed)-1-i] = p
	}

	return path, cost, nil
}

func (b *base) setPath(p []node.Position) {
	b.mu.Lock()
	b.path = p
	b.mu.Unlock()
}

// Run is a solver executing on its own goroutine.
type Run struct {
	cancel context.CancelFunc
	done   chan struct{}
	res    Result
	err    error
}

// Start launches s.Solve on a new goroutine under a cancellable child of ctx.
func Start(ctx context.Context, s Solver) *Run {
	ctx, cancel := context.WithCancel(ctx)
	r := &Run{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(r.done)
		defer cancel()
		r.res, r.err = s.Solve(ctx)
	}()

	return r
}

// Cancel asks the run to stop at its next pacing checkpoint.
func (r *Run) Cancel() { r.cancel() }

// Done is closed when the run has ended.
func (r *Run) Done() <-chan struct{} { return r.done }

// Wait blocks until the run ends and returns its result.
func (r *Run) Wait() (Result, error) {
	<-r.done
	return r.res, r.err
}
