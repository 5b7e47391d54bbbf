// Package solver runs step-paced shortest-path searches over a grid.Grid so
// that every expansion is visible to an observer of the grid's nodes.
//
// Two algorithms are provided:
//
//   - AStar: frontier ordered by fCost then hCost, heuristic = grid.Distance
//     to the end node (admissible and consistent on the octile grid).
//   - Dijkstra: uniform-cost search ordered by DistToGoal. A neighbor is
//     relaxed only the first time it is discovered; its distance is mirrored
//     into gCost so both grids display comparable numbers.
//
// Both walk the same state machine per node:
//
//	unvisited → QUEUE (frontier) → EXPLORED (expanded) → PATH (winning route)
//
// and reconstruct the route by following parent positions from the end node
// back to the start node.
//
// Pacing and cancellation:
//
//   - A Pacer holds the delay slept between two expansions. One Pacer is
//     usually shared by every solver of a comparison; it is updated atomically.
//   - The pause is the only suspension point and the only place the context is
//     consulted, so cancellation latency is at most one pacing interval.
//
// Outcomes (never errors):
//
//   - PathFound:   Result.Path runs from the first step to the end node.
//   - NoPath:      the frontier emptied before the end node was reached.
//   - NoEndpoints: START or END is missing; no node was touched.
//   - Aborted:     the context was cancelled; the grid keeps its partial state.
//
// Errors:
//
//   - ErrNilGrid:           the solver was built without a grid.
//   - ErrBrokenParentChain: parent links did not lead back to the start.
package solver
