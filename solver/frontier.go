package solver

import (
	"container/heap"

	"github.com/katalvlaran/pathviz/node"
)

// frontier is an indexed min-heap of nodes. The index makes contains O(1)
// and lets a queued node be re-sifted after its priority improved.
type frontier struct {
	items []*node.Node
	index map[*node.Node]int
	cmp   Comparator
}

func newFrontier(c Comparator, capacity int) *frontier {
	return &frontier{
		items: make([]*node.Node, 0, capacity),
		index: make(map[*node.Node]int, capacity),
		cmp:   c,
	}
}

// Len returns the number of queued nodes.
func (f *frontier) Len() int { return len(f.items) }

// Less defines the comparison through the comparator.
func (f *frontier) Less(i, j int) bool { return f.cmp(f.items[i], f.items[j]) < 0 }

// Swap swaps two elements and keeps the index in sync.
func (f *frontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
	f.index[f.items[i]] = i
	f.index[f.items[j]] = j
}

// Push is called by heap.Push; x must be *node.Node.
func (f *frontier) Push(x any) {
	n := x.(*node.Node)
	f.index[n] = len(f.items)
	f.items = append(f.items, n)
}

// Pop is called by heap.Pop.
func (f *frontier) Pop() any {
	old := f.items
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	f.items = old[:last]
	delete(f.index, n)

	return n
}

func (f *frontier) push(n *node.Node) { heap.Push(f, n) }

func (f *frontier) pop() *node.Node { return heap.Pop(f).(*node.Node) }

func (f *frontier) peek() *node.Node {
	if len(f.items) == 0 {
		return nil
	}

	return f.items[0]
}

func (f *frontier) contains(n *node.Node) bool {
	_, ok := f.index[n]
	return ok
}

// fix restores heap order after n's priority changed.
func (f *frontier) fix(n *node.Node) {
	if i, ok := f.index[n]; ok {
		heap.Fix(f, i)
	}
}
