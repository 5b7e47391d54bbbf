// Package node defines the vertex of a pathfinding grid: a fixed Position,
// a mutable Tag, search costs, a parent back-pointer and weighted adjacency.
//
// What:
//
//   - Position is an immutable row/column coordinate.
//   - Tag is the single semantic role of a cell (EMPTY, START, END, WALL, ...).
//   - Node carries gCost/hCost/distToGoal and an optional parent Position.
//   - Every tag or cost mutation is published to subscribers as a value event.
//
// Why:
//
//   - Solvers mutate nodes on their own goroutine while a presentation layer
//     repaints concurrently. Events are snapshots taken under the node lock and
//     delivered after it is released, so observers never read torn state and
//     handlers may safely call back into the node.
//   - The parent link is a Position, not a pointer: it indexes the owning
//     grid's arena and never extends a node's lifetime.
//
// Concurrency:
//
//   - All accessors are safe for concurrent use (sync.RWMutex per node).
//   - Handlers run synchronously on the mutating goroutine in registration order.
//
// Errors:
//
//   - ErrNilNode: a nil *Node was passed where a link target was required.
//   - ErrSelfLink: a node was linked to itself.
package node
