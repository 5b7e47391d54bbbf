// Package solver defines outcomes, results, options and sentinel errors.
package solver

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/node"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGrid indicates the solver has no grid to search.
	ErrNilGrid = errors.New("solver: grid is nil")

	// ErrBrokenParentChain indicates parent links from the end node did not
	// reach the start node within rows×cols steps.
	ErrBrokenParentChain = errors.New("solver: parent chain does not reach the start node")
)

// Outcome classifies how a run ended. None of them is an error.
type Outcome int

const (
	// PathFound means the end node was reached and the path reconstructed.
	PathFound Outcome = iota
	// NoPath means the frontier was exhausted first.
	NoPath
	// NoEndpoints means START or END was not set; nothing was mutated.
	NoEndpoints
	// Aborted means the run was cancelled at a pacing checkpoint.
	Aborted
)

// String returns a snake_case name suitable for logs.
func (o Outcome) String() string {
	switch o {
	case PathFound:
		return "path_found"
	case NoPath:
		return "no_path"
	case NoEndpoints:
		return "no_endpoints"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the outcome of one Solve call.
type Result struct {
	RunID     uuid.UUID
	Algorithm string
	Outcome   Outcome
	// Path excludes the start node and includes the end node.
	Path []node.Position
	// Cost is the sum of edge weights along Path.
	Cost int
	// Expanded counts nodes removed from the frontier and expanded, the start
	// node included.
	Expanded int
	Elapsed  time.Duration
}

// Options configures a solver.
type Options struct {
	// Pacer paces expansions. Share one Pacer between solvers to drive them
	// with a single knob. Default: a fresh zero-delay Pacer.
	Pacer *Pacer
	// Logger receives one line per run. Default: logrus.StandardLogger().
	Logger logrus.FieldLogger
}

// Option represents a functional option for configuring a solver.
type Option func(*Options)

// DefaultOptions returns a zero-delay Pacer and the logrus standard logger.
func DefaultOptions() Options {
	return Options{
		Pacer:  NewPacer(0, DefaultStep),
		Logger: logrus.StandardLogger(),
	}
}

// WithPacer shares p with the solver. A nil p is ignored.
func WithPacer(p *Pacer) Option {
	return func(o *Options) {
		if p != nil {
			o.Pacer = p
		}
	}
}

// WithLogger routes run logs to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
