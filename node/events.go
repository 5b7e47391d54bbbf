package node

import "sync"

// TagHandler receives tag changes.
type TagHandler func(TagEvent)

// CostHandler receives gCost/hCost changes.
type CostHandler func(CostEvent)

type tagSub struct {
	id uint64
	fn TagHandler
}

type costSub struct {
	id uint64
	fn CostHandler
}

// subscribers is the registration point shared by every Node.
// The handler slices are copied out under the lock and invoked without it,
// so a handler may (un)subscribe or mutate the node it observes.
type subscribers struct {
	mu     sync.RWMutex
	nextID uint64
	tags   []tagSub
	costs  []costSub
}

// OnTagChange registers fn for tag changes and returns a function that
// removes the registration. A nil fn is ignored.
func (n *Node) OnTagChange(fn TagHandler) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s := &n.subs
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.tags = append(s.tags, tagSub{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.tags {
			if s.tags[i].id == id {
				s.tags = append(s.tags[:i:i], s.tags[i+1:]...)
				return
			}
		}
	}
}

// OnCostChange registers fn for cost changes and returns a function that
// removes the registration. A nil fn is ignored.
func (n *Node) OnCostChange(fn CostHandler) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	s := &n.subs
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.costs = append(s.costs, costSub{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.costs {
			if s.costs[i].id == id {
				s.costs = append(s.costs[:i:i], s.costs[i+1:]...)
				return
			}
		}
	}
}

func (s *subscribers) publishTag(ev TagEvent) {
	s.mu.RLock()
	handlers := s.tags
	s.mu.RUnlock()
	for _, h := range handlers {
		h.fn(ev)
	}
}

func (s *subscribers) publishCost(ev CostEvent) {
	s.mu.RLock()
	handlers := s.costs
	s.mu.RUnlock()
	for _, h := range handlers {
		h.fn(ev)
	}
}
