// Package feed defines event kinds, the Event value and options.
package feed

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/node"
)

// DefaultBuffer is the channel capacity used when no WithBuffer option is given.
const DefaultBuffer = 1024

// Kind says which node attribute changed.
type Kind int

const (
	// TagChanged carries a new node.Tag.
	TagChanged Kind = iota
	// CostChanged carries a new gCost or hCost and the resulting fCost.
	CostChanged
)

// String returns "tag" or "cost".
func (k Kind) String() string {
	switch k {
	case TagChanged:
		return "tag"
	case CostChanged:
		return "cost"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is one node mutation.
type Event struct {
	// Seq orders events across all nodes of the grid, starting at 1.
	Seq      uint64
	Kind     Kind
	Position node.Position

	// Tag is set for TagChanged.
	Tag node.Tag

	// Cost, Value and FCost are set for CostChanged.
	Cost  node.CostKind
	Value int
	FCost int
}

// String renders the event for logs.
func (e Event) String() string {
	if e.Kind == TagChanged {
		return fmt.Sprintf("#%d %s tag=%s", e.Seq, e.Position, e.Tag)
	}

	return fmt.Sprintf("#%d %s %s=%d f=%d", e.Seq, e.Position, e.Cost, e.Value, e.FCost)
}

// Options configures a Feed.
type Options struct {
	// Buffer is the channel capacity. Values below zero are treated as zero.
	Buffer int
	// Blocking makes publishers wait for room instead of dropping events.
	Blocking bool
	// Logger receives a summary line on Close.
	Logger logrus.FieldLogger
}

// Option configures a Feed via functional arguments.
type Option func(*Options)

// DefaultOptions returns a dropping feed with DefaultBuffer capacity.
func DefaultOptions() Options {
	return Options{
		Buffer: DefaultBuffer,
		Logger: logrus.StandardLogger(),
	}
}

// WithBuffer sets the channel capacity.
func WithBuffer(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.Buffer = n
	}
}

// WithBlocking makes publishers wait for the consumer.
func WithBlocking() Option {
	return func(o *Options) {
		o.Blocking = true
	}
}

// WithLogger routes feed diagnostics to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
