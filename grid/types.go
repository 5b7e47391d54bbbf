// Package grid defines options, connectivity and sentinel errors.
package grid

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns was requested.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")

	// ErrOutOfBounds indicates a row/column outside the grid.
	ErrOutOfBounds = errors.New("grid: node position outside of the bounds of the model")

	// ErrShapeMismatch indicates grids of different dimensions were combined.
	ErrShapeMismatch = errors.New("grid: grids must have identical dimensions")
)

// Move costs between adjacent cells.
const (
	OrthogonalWeight = 10
	DiagonalWeight   = 14
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4
)

var (
	offsets8 = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	offsets4 = [][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
)

// Options holds tunable grid parameters.
type Options struct {
	// Conn chooses 8- or 4-directional linking. Default Conn8.
	Conn Connectivity
	// Logger receives out-of-bounds warnings and reset traces.
	Logger logrus.FieldLogger
}

// Option configures a Grid via functional arguments.
type Option func(*Options)

// DefaultOptions returns Conn8 and the logrus standard logger.
func DefaultOptions() Options {
	return Options{
		Conn:   Conn8,
		Logger: logrus.StandardLogger(),
	}
}

// WithConnectivity selects Conn4 or Conn8 linking.
func WithConnectivity(c Connectivity) Option {
	return func(o *Options) {
		o.Conn = c
	}
}

// WithLogger routes grid diagnostics to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
