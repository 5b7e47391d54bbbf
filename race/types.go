// Package race defines options, the Report and sentinel errors.
package race

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/solver"
)

// Sentinel errors for race control.
var (
	// ErrRunning indicates an operation that needs an idle race.
	ErrRunning = errors.New("race: a race is already running")

	// ErrNotStarted indicates Wait was called before any Start.
	ErrNotStarted = errors.New("race: no race has been started")
)

// Report holds both results of one race.
type Report struct {
	AStar    solver.Result
	Dijkstra solver.Result
}

// Winner names the algorithm that found a path while expanding fewer nodes.
// It returns "" when neither found a path or both expanded the same number.
func (r Report) Winner() string {
	a, d := r.AStar, r.Dijkstra
	switch {
	case a.Outcome != solver.PathFound && d.Outcome != solver.PathFound:
		return ""
	case d.Outcome != solver.PathFound:
		return a.Algorithm
	case a.Outcome != solver.PathFound:
		return d.Algorithm
	case a.Expanded < d.Expanded:
		return a.Algorithm
	case d.Expanded < a.Expanded:
		return d.Algorithm
	default:
		return ""
	}
}

// Options configures a Race.
type Options struct {
	// Delay is the initial pacer delay.
	Delay time.Duration
	// Step is the pacer adjustment used by Faster and Slower.
	Step time.Duration
	// Seed drives PlaceRandomWalls; 0 picks a random seed.
	Seed uint64
	// Conn is the connectivity of both grids.
	Conn grid.Connectivity
	// Logger is shared by the grids, the solvers and the race itself.
	Logger logrus.FieldLogger
}

// Option configures a Race via functional arguments.
type Option func(*Options)

// DefaultOptions returns zero delay, solver.DefaultStep, Conn8 and the
// logrus standard logger.
func DefaultOptions() Options {
	return Options{
		Step:   solver.DefaultStep,
		Conn:   grid.Conn8,
		Logger: logrus.StandardLogger(),
	}
}

// WithDelay sets the initial pause between expansions.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		o.Delay = d
	}
}

// WithStep sets the Faster/Slower increment.
func WithStep(d time.Duration) Option {
	return func(o *Options) {
		o.Step = d
	}
}

// WithSeed makes random wall placement reproducible.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithConnectivity selects Conn4 or Conn8 for both grids.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithLogger routes all race diagnostics to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
