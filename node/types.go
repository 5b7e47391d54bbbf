// Package node defines Position, Tag, the event payloads and sentinel errors.
package node

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for node operations.
var (
	// ErrNilNode indicates a nil *Node was supplied as a link target.
	ErrNilNode = errors.New("node: node is nil")

	// ErrSelfLink indicates an attempt to link a node to itself.
	ErrSelfLink = errors.New("node: cannot link a node to itself")
)

// Infinity is the "unreached" sentinel for DistToGoal.
const Infinity = math.MaxInt

// Position is an immutable row/column coordinate. Bounds are checked by the
// owning grid, not by Position itself.
type Position struct {
	Row int
	Col int
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Tag is the semantic role of a cell. Exactly one tag is active per node.
type Tag int

const (
	// Empty is a plain walkable cell.
	Empty Tag = iota
	// Start marks the search origin. At most one per grid.
	Start
	// End marks the search goal. At most one per grid.
	End
	// Wall is an impassable cell.
	Wall
	// Portal is a permanent walkable marker.
	Portal
	// Path marks a cell on the reconstructed route.
	Path
	// Queue marks a cell currently in a solver frontier.
	Queue
	// Explored marks a cell a solver has expanded.
	Explored
)

var tagNames = [...]string{
	Empty:    "EMPTY",
	Start:    "START",
	End:      "END",
	Wall:     "WALL",
	Portal:   "PORTAL",
	Path:     "PATH",
	Queue:    "QUEUE",
	Explored: "EXPLORED",
}

// String returns the upper-case tag name.
func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return fmt.Sprintf("Tag(%d)", int(t))
	}

	return tagNames[t]
}

// Permanent reports whether the tag survives a "clear search visualization"
// pass: START, END, WALL and PORTAL.
func (t Tag) Permanent() bool {
	return t == Start || t == End || t == Wall || t == Portal
}

// Edge is a directed, weighted link to a neighbor addressed by position.
type Edge struct {
	To     Position
	Weight int
}

// CostKind identifies which search cost a CostEvent reports.
type CostKind int

const (
	// GCost is the accumulated cost from the start.
	GCost CostKind = iota
	// HCost is the heuristic estimate to the goal.
	HCost
)

// String returns "g" or "h".
func (k CostKind) String() string {
	if k == HCost {
		return "h"
	}

	return "g"
}

// TagEvent is published after a node's tag changed.
// Node is the identity of the source; Tag is the value written.
//
// Version is taken under the node lock together with the write, so it orders
// the mutations of one node even when their events are delivered out of
// order. A consumer that has seen a higher Version for the same node must
// drop the event.
type TagEvent struct {
	Node     *Node
	Position Position
	Tag      Tag
	Version  uint64
}

// CostEvent is published after gCost or hCost changed, paired with the
// recomputed fCost = gCost + hCost. Version shares the node's counter with
// TagEvent.
type CostEvent struct {
	Position Position
	Kind     CostKind
	Value    int
	FCost    int
	Version  uint64
}
