// Package grid owns a rectangular arena of node.Node and turns it into a
// weighted graph suitable for step-by-step shortest-path search.
//
// What:
//
//   - New allocates rows×cols nodes and links every node to its in-bounds
//     neighbors: 10 for orthogonal moves, 14 for diagonal moves (Conn8), the
//     integer approximation of 10·√2.
//   - Distance is the octile metric min(dr,dc)*14 + |dr-dc|*10, used both as
//     edge weight and as the A* heuristic.
//   - The grid subscribes to every node's tag changes to keep track of the
//     single START and END node. Tagging a node is the only way to move them.
//   - ResetGrid, ResetGridData and ResetTags implement "new board",
//     "forget costs" and "clear visualization".
//   - WeightedGraph exports the walkable cells to a gonum graph for analysis.
//
// Endpoint rules:
//
//   - Tagging a node START clears the previous START to EMPTY; if the node was
//     END, the grid forgets its END.
//   - Tagging a node END clears the previous END to EMPTY and nothing else.
//   - Any other tag on a tracked endpoint forgets it.
//
// Complexity:
//
//   - New, ResetGrid: O(R×C×d), d = 8 (Conn8) or 4 (Conn4).
//   - ResetGridData, ResetTags: O(R×C).
//   - Node, Neighbors, Distance: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: rows or cols < 1.
//   - ErrOutOfBounds: coordinate outside [0,rows)×[0,cols). Node, PlaceWall and
//     SetTag log it and report absence instead of returning it.
//   - ErrShapeMismatch: grids with different dimensions passed together.
package grid
