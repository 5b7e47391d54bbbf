package grid

import "github.com/katalvlaran/pathviz/node"

// Start returns the node currently tagged START, if any.
func (g *Grid) Start() (*node.Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.start, g.start != nil
}

// End returns the node currently tagged END, if any.
func (g *Grid) End() (*node.Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.end, g.end != nil
}

// handleTag keeps start/end consistent with node tags. It is registered on
// every node before any other subscriber.
//
// Events are applied in node write order: one whose Version is not newer
// than the last applied for that node was overtaken by a later write and is
// dropped.
//
// The references are updated under g.mu; the displaced endpoint is retagged
// only after the lock is released. Its own EMPTY notification then finds it
// untracked and does nothing.
func (g *Grid) handleTag(ev node.TagEvent) {
	src := ev.Node
	var displaced *node.Node

	g.mu.Lock()
	i := g.index(ev.Position.Row, ev.Position.Col)
	if ev.Version <= g.seen[i] {
		g.mu.Unlock()
		return
	}
	g.seen[i] = ev.Version
	switch ev.Tag {
	case node.Start:
		if g.start != nil && g.start != src {
			displaced = g.start
		}
		if src == g.end {
			g.end = nil
		}
		g.start = src
	case node.End:
		// A START node retagged END stays the tracked start: only the previous
		// END is displaced.
		if g.end != nil && g.end != src {
			displaced = g.end
		}
		g.end = src
	default:
		if src == g.start {
			g.start = nil
		}
		if src == g.end {
			g.end = nil
		}
	}
	g.mu.Unlock()

	if displaced != nil {
		g.log.WithField("position", displaced.Position()).Debug("endpoint displaced")
		displaced.SetTag(node.Empty)
	}
}
