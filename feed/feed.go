package feed

import (
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/node"
)

// Feed forwards node notifications of one grid to a channel.
type Feed struct {
	events   chan Event
	done     chan struct{}
	blocking bool
	log      logrus.FieldLogger

	seq       atomic.Uint64
	delivered atomic.Uint64
	dropped   atomic.Uint64

	mu     sync.RWMutex // held for reading while sending; Close takes it for writing
	closed bool
	unsubs []func()
	once   sync.Once

	order sync.Mutex // serializes the staleness check, Seq and the send
	seen  map[versionKey]uint64
}

// versionKey identifies one published attribute of one node.
type versionKey struct {
	pos  node.Position
	kind Kind
	cost node.CostKind
}

// Attach subscribes to every node of g and returns the running feed.
func Attach(g *grid.Grid, opts ...Option) *Feed {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := &Feed{
		events:   make(chan Event, o.Buffer),
		done:     make(chan struct{}),
		blocking: o.Blocking,
		seen:     make(map[versionKey]uint64, 3*g.Rows()*g.Cols()),
		log: o.Logger.WithFields(logrus.Fields{
			"component": "feed",
			"rows":      g.Rows(),
			"cols":      g.Cols(),
		}),
	}

	unsubs := make([]func(), 0, 2*g.Rows()*g.Cols())
	g.Each(func(n *node.Node) {
		unsubs = append(unsubs,
			n.OnTagChange(f.onTag),
			n.OnCostChange(f.onCost),
		)
	})
	f.mu.Lock()
	f.unsubs = unsubs
	f.mu.Unlock()

	return f
}

// Events returns the receive side of the feed. It is closed by Close.
func (f *Feed) Events() <-chan Event { return f.events }

// Dropped reports how many events were discarded because the buffer was full.
func (f *Feed) Dropped() uint64 { return f.dropped.Load() }

// Delivered reports how many events were placed on the channel.
func (f *Feed) Delivered() uint64 { return f.delivered.Load() }

// Close detaches the feed from the grid and closes the channel. It is safe
// to call more than once and from any goroutine.
func (f *Feed) Close() {
	f.once.Do(func() {
		close(f.done) // release blocked publishers before taking the write lock
		f.mu.Lock()
		f.closed = true
		unsubs := f.unsubs
		f.unsubs = nil
		close(f.events)
		f.mu.Unlock()

		for _, u := range unsubs {
			u()
		}
		f.log.WithFields(logrus.Fields{
			"delivered": f.delivered.Load(),
			"dropped":   f.dropped.Load(),
		}).Debug("feed closed")
	})
}

func (f *Feed) onTag(ev node.TagEvent) {
	f.send(Event{Kind: TagChanged, Position: ev.Position, Tag: ev.Tag}, ev.Version)
}

func (f *Feed) onCost(ev node.CostEvent) {
	f.send(Event{
		Kind:     CostChanged,
		Position: ev.Position,
		Cost:     ev.Kind,
		Value:    ev.Value,
		FCost:    ev.FCost,
	}, ev.Version)
}

// send forwards ev unless a newer write of the same attribute was already
// forwarded. Events overtaken this way are dropped silently: the consumer
// already holds the newer value.
func (f *Feed) send(ev Event, version uint64) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed {
		return
	}

	f.order.Lock()
	defer f.order.Unlock()
	key := versionKey{pos: ev.Position, kind: ev.Kind, cost: ev.Cost}
	if version <= f.seen[key] {
		return
	}
	f.seen[key] = version
	ev.Seq = f.seq.Add(1)

	if f.blocking {
		select {
		case f.events <- ev:
			f.delivered.Add(1)
		case <-f.done:
		}
		return
	}

	select {
	case f.events <- ev:
		f.delivered.Add(1)
	default:
		if f.dropped.Add(1) == 1 {
			f.log.WithField("seq", ev.Seq).Warn("feed buffer full, dropping events")
		}
	}
}
