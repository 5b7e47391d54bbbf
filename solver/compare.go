package solver

import (
	"cmp"

	"github.com/katalvlaran/pathviz/node"
)

// Comparator orders nodes in a frontier: negative when a comes first.
type Comparator func(a, b *node.Node) int

// ByCost orders by ascending fCost, ties broken by ascending hCost.
func ByCost(a, b *node.Node) int {
	if c := cmp.Compare(a.FCost(), b.FCost()); c != 0 {
		return c
	}

	return cmp.Compare(a.HCost(), b.HCost())
}

// ByDistanceToGoal orders by ascending DistToGoal.
func ByDistanceToGoal(a, b *node.Node) int {
	return cmp.Compare(a.DistToGoal(), b.DistToGoal())
}
