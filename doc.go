// Package pathviz is a step-paced pathfinding engine that races A* against a
// uniform-cost search on two grids with identical layouts.
//
// Every node mutation (tag, gCost, hCost) is published, so a presentation
// layer can repaint cells while the solvers run.
//
// Packages:
//
//	node/    Position, Tag and the observable Node (costs, parent, links)
//	grid/    rows×cols arena with 8- or 4-way links, start/end tracking, resets
//	solver/  Pacer, comparators, A*, Dijkstra, path reconstruction
//	feed/    node notifications of a whole grid as one channel
//	race/    two grids, two solvers, one shared pacer
//	config/  layered configuration for the driver
//	logging/ logrus construction
//
// Quick ASCII example (S start, E end, # wall, * path):
//
//	S * # .
//	# # * .
//	# # # E
//
// is solved by both algorithms with cost 10 + 14 + 14 = 38.
//
//	go run ./cmd/pathrace --rows 25 --cols 40 --walls 300 --pace 20ms
package pathviz
