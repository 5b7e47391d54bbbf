package node

import (
	"fmt"
	"sync"
)

// Node is a grid vertex. Its Position never changes; everything else is
// guarded by mu and published through the subscription hooks in events.go.
type Node struct {
	pos Position

	mu         sync.RWMutex // guards the fields below
	tag        Tag
	gCost      int
	hCost      int
	distToGoal int
	parent     Position
	hasParent  bool
	edges      []Edge // ordered; rebuilt wholesale by the owning grid
	version    uint64 // bumped by every published write

	subs subscribers
}

// New returns an EMPTY node at pos with no links and DistToGoal = Infinity.
func New(pos Position) *Node {
	return &Node{
		pos:        pos,
		tag:        Empty,
		distToGoal: Infinity,
	}
}

// Position returns the fixed coordinate of n.
func (n *Node) Position() Position { return n.pos }

// Tag returns the current tag.
func (n *Node) Tag() Tag {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.tag
}

// SetTag sets the tag unconditionally and publishes a TagEvent.
func (n *Node) SetTag(t Tag) {
	n.mu.Lock()
	n.tag = t
	v := n.bump()
	n.mu.Unlock()

	n.subs.publishTag(TagEvent{Node: n, Position: n.pos, Tag: t, Version: v})
}

// SetOverlay sets a search-visualization tag (PATH, QUEUE, EXPLORED, EMPTY)
// unless the current tag is permanent. It reports whether the tag changed hands.
func (n *Node) SetOverlay(t Tag) bool {
	n.mu.Lock()
	if n.tag.Permanent() {
		n.mu.Unlock()
		return false
	}
	n.tag = t
	v := n.bump()
	n.mu.Unlock()

	n.subs.publishTag(TagEvent{Node: n, Position: n.pos, Tag: t, Version: v})

	return true
}

// Walkable reports tag != WALL.
func (n *Node) Walkable() bool { return n.Tag() != Wall }

// Free reports the tag is none of START, END, WALL.
func (n *Node) Free() bool {
	t := n.Tag()
	return t != Start && t != End && t != Wall
}

// IsStart reports tag == START.
func (n *Node) IsStart() bool { return n.Tag() == Start }

// IsEnd reports tag == END.
func (n *Node) IsEnd() bool { return n.Tag() == End }

// GCost returns the accumulated cost from the start.
func (n *Node) GCost() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.gCost
}

// HCost returns the heuristic estimate to the goal.
func (n *Node) HCost() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.hCost
}

// FCost returns gCost + hCost.
func (n *Node) FCost() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.gCost + n.hCost
}

// SetGCost stores g and publishes a CostEvent carrying the new fCost.
func (n *Node) SetGCost(g int) {
	n.mu.Lock()
	n.gCost = g
	f := n.gCost + n.hCost
	v := n.bump()
	n.mu.Unlock()

	n.subs.publishCost(CostEvent{Position: n.pos, Kind: GCost, Value: g, FCost: f, Version: v})
}

// SetHCost stores h and publishes a CostEvent carrying the new fCost.
func (n *Node) SetHCost(h int) {
	n.mu.Lock()
	n.hCost = h
	f := n.gCost + n.hCost
	v := n.bump()
	n.mu.Unlock()

	n.subs.publishCost(CostEvent{Position: n.pos, Kind: HCost, Value: h, FCost: f, Version: v})
}

// DistToGoal returns the working distance used by the uniform-cost solver.
func (n *Node) DistToGoal() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.distToGoal
}

// SetDistToGoal stores d. It is not published; mirror it into gCost for display.
func (n *Node) SetDistToGoal(d int) {
	n.mu.Lock()
	n.distToGoal = d
	n.mu.Unlock()
}

// Parent returns the predecessor position, if any.
func (n *Node) Parent() (Position, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.parent, n.hasParent
}

// SetParent records p as the predecessor of n.
func (n *Node) SetParent(p Position) {
	n.mu.Lock()
	n.parent, n.hasParent = p, true
	n.mu.Unlock()
}

// ClearParent drops the predecessor link.
func (n *Node) ClearParent() {
	n.mu.Lock()
	n.parent, n.hasParent = Position{}, false
	n.mu.Unlock()
}

// Link adds a directed edge n→target with the given weight, replacing any
// existing edge to the same position. If bidirectional, target→n is added too.
func (n *Node) Link(target *Node, weight int, bidirectional bool) error {
	if target == nil {
		return ErrNilNode
	}
	if target == n {
		return fmt.Errorf("%w: %s", ErrSelfLink, n.pos)
	}
	n.addEdge(Edge{To: target.pos, Weight: weight})
	if bidirectional {
		target.addEdge(Edge{To: n.pos, Weight: weight})
	}

	return nil
}

// Unlink removes the edge n→target; if bidirectional, target→n as well.
func (n *Node) Unlink(target *Node, bidirectional bool) {
	if target == nil {
		return
	}
	n.removeEdge(target.pos)
	if bidirectional {
		target.removeEdge(n.pos)
	}
}

// Linked reports whether n has an edge to p.
func (n *Node) Linked(p Position) bool {
	_, ok := n.EdgeWeight(p)
	return ok
}

// EdgeWeight returns the weight of n→p.
func (n *Node) EdgeWeight(p Position) (int, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, e := range n.edges {
		if e.To == p {
			return e.Weight, true
		}
	}

	return 0, false
}

// Edges returns a copy of the adjacency in link order.
func (n *Node) Edges() []Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)

	return out
}

// ClearLinks drops every outgoing edge.
func (n *Node) ClearLinks() {
	n.mu.Lock()
	n.edges = nil
	n.mu.Unlock()
}

// ResetData zeroes gCost/hCost (publishing both), clears the parent and
// returns DistToGoal to Infinity. The tag is untouched.
func (n *Node) ResetData() {
	n.mu.Lock()
	n.parent, n.hasParent = Position{}, false
	n.distToGoal = Infinity
	n.mu.Unlock()

	n.SetGCost(0)
	n.SetHCost(0)
}

// ResetTag sets the tag to EMPTY unless it is permanent.
func (n *Node) ResetTag() {
	n.SetOverlay(Empty)
}

// Reset returns n to its freshly built state: no links, EMPTY, zero costs.
// Observers receive gCost, hCost and tag notifications in that order.
func (n *Node) Reset() {
	n.mu.Lock()
	n.edges = nil
	n.tag = Empty
	n.gCost, n.hCost = 0, 0
	n.distToGoal = Infinity
	n.parent, n.hasParent = Position{}, false
	vg, vh, vt := n.bump(), n.bump(), n.bump()
	n.mu.Unlock()

	n.subs.publishCost(CostEvent{Position: n.pos, Kind: GCost, Version: vg})
	n.subs.publishCost(CostEvent{Position: n.pos, Kind: HCost, Version: vh})
	n.subs.publishTag(TagEvent{Node: n, Position: n.pos, Tag: Empty, Version: vt})
}

// bump advances the mutation counter. Callers hold n.mu.
func (n *Node) bump() uint64 {
	n.version++
	return n.version
}

func (n *Node) addEdge(e Edge) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := range n.edges {
		if n.edges[i].To == e.To {
			n.edges[i].Weight = e.Weight
			return
		}
	}
	n.edges = append(n.edges, e)
}

func (n *Node) removeEdge(p Position) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := range n.edges {
		if n.edges[i].To == p {
			n.edges = append(n.edges[:i], n.edges[i+1:]...)
			return
		}
	}
}
