// Package race runs A* and the uniform-cost solver side by side on two grids
// of identical shape, so their exploration patterns can be compared step by
// step.
//
// The left grid is searched by solver.AStar and the right one by
// solver.Dijkstra. Both solvers sleep on one shared solver.Pacer, so Faster
// and Slower act on the pair. Edits (endpoints, walls, random walls) are
// mirrored to both grids.
//
// Lifecycle:
//
//	r, _ := race.New(25, 40)
//	_ = r.SetEndpoints(node.Position{Row: 0, Col: 0}, node.Position{Row: 24, Col: 39})
//	_, _ = r.PlaceRandomWalls(300)
//	_ = r.Start(ctx)   // both solvers on their own goroutines
//	rep, err := r.Wait()
//
// Start refuses with ErrRunning while a race is in flight. Cancel stops both
// solvers at their next pacing checkpoint. NewBoard and Clear stop a running
// race before touching the grids.
package race
