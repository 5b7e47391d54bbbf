package node_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/node"
)

func TestNew_Defaults(t *testing.T) {
	n := node.New(node.Position{Row: 2, Col: 3})

	assert.Equal(t, node.Position{Row: 2, Col: 3}, n.Position())
	assert.Equal(t, node.Empty, n.Tag())
	assert.Equal(t, node.Infinity, n.DistToGoal())
	assert.Zero(t, n.FCost())
	_, ok := n.Parent()
	assert.False(t, ok)
	assert.Empty(t, n.Edges())
}

func TestPredicates(t *testing.T) {
	cases := []struct {
		tag      node.Tag
		walkable bool
		free     bool
	}{
		{node.Empty, true, true},
		{node.Start, true, false},
		{node.End, true, false},
		{node.Wall, false, false},
		{node.Portal, true, true},
		{node.Path, true, true},
		{node.Queue, true, true},
		{node.Explored, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.tag.String(), func(t *testing.T) {
			n := node.New(node.Position{})
			n.SetTag(tc.tag)
			assert.Equal(t, tc.walkable, n.Walkable())
			assert.Equal(t, tc.free, n.Free())
			assert.Equal(t, tc.tag == node.Start, n.IsStart())
			assert.Equal(t, tc.tag == node.End, n.IsEnd())
		})
	}
}

func TestSetOverlay_SkipsPermanentTags(t *testing.T) {
	for _, tag := range []node.Tag{node.Start, node.End, node.Wall, node.Portal} {
		n := node.New(node.Position{})
		n.SetTag(tag)
		assert.False(t, n.SetOverlay(node.Path), "overlay over %s", tag)
		assert.Equal(t, tag, n.Tag())
	}

	n := node.New(node.Position{})
	n.SetTag(node.Explored)
	assert.True(t, n.SetOverlay(node.Path))
	assert.Equal(t, node.Path, n.Tag())
}

func TestTagEvents(t *testing.T) {
	n := node.New(node.Position{Row: 1, Col: 1})
	var got []node.TagEvent
	unsubscribe := n.OnTagChange(func(ev node.TagEvent) { got = append(got, ev) })

	n.SetTag(node.Wall)
	n.SetOverlay(node.Queue) // skipped: WALL is permanent
	n.SetTag(node.Empty)
	unsubscribe()
	n.SetTag(node.Start)

	require.Len(t, got, 2)
	assert.Equal(t, node.Wall, got[0].Tag)
	assert.Same(t, n, got[0].Node)
	assert.Equal(t, node.Empty, got[1].Tag)
}

func TestCostEvents_CarryFCost(t *testing.T) {
	n := node.New(node.Position{})
	var got []node.CostEvent
	n.OnCostChange(func(ev node.CostEvent) { got = append(got, ev) })

	n.SetGCost(14)
	n.SetHCost(28)

	require.Len(t, got, 2)
	assert.Equal(t, node.CostEvent{Kind: node.GCost, Value: 14, FCost: 14, Version: 1}, got[0])
	assert.Equal(t, node.CostEvent{Kind: node.HCost, Value: 28, FCost: 42, Version: 2}, got[1])
	assert.Equal(t, 42, n.FCost())
}

func TestVersion_FollowsWriteOrder(t *testing.T) {
	n := node.New(node.Position{})
	var versions []uint64
	n.OnTagChange(func(ev node.TagEvent) { versions = append(versions, ev.Version) })
	n.OnCostChange(func(ev node.CostEvent) { versions = append(versions, ev.Version) })

	n.SetTag(node.Wall)
	n.SetOverlay(node.Queue) // refused, no event and no version
	n.SetGCost(3)
	n.SetTag(node.Empty)
	n.SetOverlay(node.Queue)
	n.Reset()

	assert.Equal(t, []uint64{1, 2, 3, 4, 5, 6, 7}, versions)
}

func TestVersion_UniqueUnderConcurrentWriters(t *testing.T) {
	n := node.New(node.Position{})
	var (
		mu       sync.Mutex
		versions = map[uint64]bool{}
	)
	n.OnTagChange(func(ev node.TagEvent) {
		mu.Lock()
		versions[ev.Version] = true
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				n.SetOverlay(node.Explored)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, versions, 400)
	assert.True(t, versions[400])
}

func TestHandler_MayMutateObservedNode(t *testing.T) {
	n := node.New(node.Position{})
	calls := 0
	n.OnTagChange(func(ev node.TagEvent) {
		calls++
		if ev.Tag == node.Path {
			ev.Node.SetTag(node.Empty)
		}
	})

	n.SetTag(node.Path)

	assert.Equal(t, 2, calls)
	assert.Equal(t, node.Empty, n.Tag())
}

func TestLinkUnlink(t *testing.T) {
	a := node.New(node.Position{Row: 0, Col: 0})
	b := node.New(node.Position{Row: 0, Col: 1})

	require.NoError(t, a.Link(b, 10, false))
	assert.True(t, a.Linked(b.Position()))
	assert.False(t, b.Linked(a.Position()))

	require.NoError(t, a.Link(b, 12, true))
	w, ok := a.EdgeWeight(b.Position())
	require.True(t, ok)
	assert.Equal(t, 12, w)
	assert.Len(t, a.Edges(), 1, "relinking replaces the weight")
	assert.True(t, b.Linked(a.Position()))

	a.Unlink(b, true)
	assert.False(t, a.Linked(b.Position()))
	assert.False(t, b.Linked(a.Position()))

	assert.ErrorIs(t, a.Link(nil, 10, false), node.ErrNilNode)
	assert.ErrorIs(t, a.Link(a, 10, false), node.ErrSelfLink)

	c := node.New(node.Position{Row: 1, Col: 1})
	require.NoError(t, a.Link(b, 10, false))
	require.NoError(t, a.Link(c, 14, false))
	edges := a.Edges()
	edges[0].Weight = 99
	w, _ = a.EdgeWeight(b.Position())
	assert.Equal(t, 10, w, "Edges returns a copy")

	require.NoError(t, b.Link(a, 10, false))
	a.ClearLinks()
	assert.Empty(t, a.Edges())
	assert.True(t, b.Linked(a.Position()), "ClearLinks only drops outgoing edges")
}

func TestResetData_KeepsTag(t *testing.T) {
	n := node.New(node.Position{})
	n.SetTag(node.Explored)
	n.SetGCost(10)
	n.SetHCost(4)
	n.SetDistToGoal(10)
	n.SetParent(node.Position{Row: 1})

	n.ResetData()

	assert.Equal(t, node.Explored, n.Tag())
	assert.Zero(t, n.GCost())
	assert.Zero(t, n.HCost())
	assert.Equal(t, node.Infinity, n.DistToGoal())
	_, ok := n.Parent()
	assert.False(t, ok)
}

func TestReset_NotifiesCostsThenTag(t *testing.T) {
	a := node.New(node.Position{})
	b := node.New(node.Position{Col: 1})
	require.NoError(t, a.Link(b, 10, false))
	a.SetTag(node.Wall)
	a.SetGCost(5)

	var order []string
	a.OnCostChange(func(ev node.CostEvent) { order = append(order, ev.Kind.String()) })
	a.OnTagChange(func(ev node.TagEvent) { order = append(order, ev.Tag.String()) })

	a.Reset()

	assert.Equal(t, []string{"g", "h", "EMPTY"}, order)
	assert.Empty(t, a.Edges())
	assert.Zero(t, a.GCost())
}

func TestResetTag(t *testing.T) {
	for tag, want := range map[node.Tag]node.Tag{
		node.Start:    node.Start,
		node.End:      node.End,
		node.Wall:     node.Wall,
		node.Portal:   node.Portal,
		node.Path:     node.Empty,
		node.Queue:    node.Empty,
		node.Explored: node.Empty,
	} {
		n := node.New(node.Position{})
		n.SetTag(tag)
		n.ResetTag()
		assert.Equal(t, want, n.Tag(), "from %s", tag)
	}
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "EXPLORED", node.Explored.String())
	assert.Equal(t, "Tag(42)", node.Tag(42).String())
	assert.Equal(t, "(3,4)", node.Position{Row: 3, Col: 4}.String())
}

// TestConcurrentReadsAndWrites exercises the node under the race detector:
// one writer plays the solver, several readers play the renderer.
func TestConcurrentReadsAndWrites(t *testing.T) {
	n := node.New(node.Position{})
	var seen int
	var mu sync.Mutex
	n.OnCostChange(func(node.CostEvent) {
		mu.Lock()
		seen++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	wg.Add(5)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			n.SetGCost(i)
			n.SetOverlay(node.Queue)
			n.SetOverlay(node.Explored)
		}
	}()
	for r := 0; r < 4; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				_ = n.FCost()
				_ = n.Tag()
				_ = n.Edges()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 200, seen)
	assert.Equal(t, 199, n.GCost())
}
