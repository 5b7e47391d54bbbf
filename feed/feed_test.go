package feed_test

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/feed"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/node"
	"github.com/katalvlaran/pathviz/solver"
)

func quiet() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

func newGrid(t *testing.T, rows, cols int) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols, grid.WithLogger(quiet()))
	require.NoError(t, err)

	return g
}

func drain(f *feed.Feed) []feed.Event {
	var out []feed.Event
	for {
		select {
		case ev, ok := <-f.Events():
			if !ok {
				return out
			}
			out = append(out, ev)
		default:
			return out
		}
	}
}

func TestFeed_ForwardsTagAndCostChanges(t *testing.T) {
	g := newGrid(t, 2, 2)
	f := feed.Attach(g, feed.WithLogger(quiet()))
	defer f.Close()

	n, _ := g.Node(1, 0)
	n.SetTag(node.Wall)
	n.SetGCost(20)
	n.SetHCost(14)

	got := drain(f)
	require.Len(t, got, 3)

	assert.Equal(t, feed.Event{Seq: 1, Kind: feed.TagChanged, Position: node.Position{Row: 1, Col: 0}, Tag: node.Wall}, got[0])
	assert.Equal(t, feed.CostChanged, got[1].Kind)
	assert.Equal(t, node.GCost, got[1].Cost)
	assert.Equal(t, 20, got[1].Value)
	assert.Equal(t, 20, got[1].FCost)
	assert.Equal(t, node.HCost, got[2].Cost)
	assert.Equal(t, 34, got[2].FCost)
	assert.Equal(t, uint64(3), got[2].Seq)
	assert.Equal(t, uint64(3), f.Delivered())
}

func TestFeed_DropsWhenFull(t *testing.T) {
	g := newGrid(t, 1, 3)
	logger, hook := test.NewNullLogger()
	f := feed.Attach(g, feed.WithBuffer(2), feed.WithLogger(logger))
	defer f.Close()

	g.Each(func(n *node.Node) { n.SetTag(node.Queue) })
	n, _ := g.Node(0, 0)
	n.SetTag(node.Explored)

	assert.Len(t, drain(f), 2)
	assert.Equal(t, uint64(2), f.Dropped())
	require.Len(t, hook.AllEntries(), 1, "only the first drop is logged")
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestFeed_BlockingWaitsForConsumer(t *testing.T) {
	g := newGrid(t, 1, 4)
	f := feed.Attach(g, feed.WithBuffer(0), feed.WithBlocking(), feed.WithLogger(quiet()))
	defer f.Close()

	published := make(chan struct{})
	go func() {
		defer close(published)
		g.Each(func(n *node.Node) { n.SetTag(node.Explored) })
	}()

	var got []feed.Event
	for len(got) < 4 {
		select {
		case ev := <-f.Events():
			got = append(got, ev)
		case <-time.After(time.Second):
			t.Fatal("publisher did not deliver")
		}
	}
	<-published
	assert.Zero(t, f.Dropped())
	for i, ev := range got {
		assert.Equal(t, uint64(i+1), ev.Seq)
	}
}

func TestFeed_CloseReleasesBlockedPublisher(t *testing.T) {
	g := newGrid(t, 1, 1)
	f := feed.Attach(g, feed.WithBuffer(0), feed.WithBlocking(), feed.WithLogger(quiet()))

	published := make(chan struct{})
	go func() {
		defer close(published)
		n, _ := g.Node(0, 0)
		n.SetTag(node.Explored)
	}()
	time.Sleep(10 * time.Millisecond)
	f.Close()

	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("Close left the publisher blocked")
	}
}

func TestFeed_CloseDetaches(t *testing.T) {
	g := newGrid(t, 2, 2)
	f := feed.Attach(g, feed.WithLogger(quiet()))
	f.Close()
	f.Close()

	n, _ := g.Node(0, 0)
	n.SetTag(node.Wall)

	_, open := <-f.Events()
	assert.False(t, open)
	assert.Zero(t, f.Delivered())
}

func TestFeed_SurvivesResetGrid(t *testing.T) {
	g := newGrid(t, 2, 2)
	f := feed.Attach(g, feed.WithLogger(quiet()))
	defer f.Close()

	g.ResetGrid()
	got := drain(f)
	// Each node publishes g, h and EMPTY.
	assert.Len(t, got, 12)
}

func TestFeed_ObservesSolverRun(t *testing.T) {
	g := newGrid(t, 6, 6)
	g.SetTag(0, 0, node.Start)
	g.SetTag(5, 5, node.End)
	f := feed.Attach(g, feed.WithLogger(quiet()))

	var (
		wg    sync.WaitGroup
		paths int
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for ev := range f.Events() {
			if ev.Kind == feed.TagChanged && ev.Tag == node.Path {
				paths++
			}
		}
	}()

	res, err := solver.NewAStar(g, solver.WithLogger(quiet())).Solve(context.Background())
	require.NoError(t, err)
	f.Close()
	wg.Wait()

	require.Equal(t, solver.PathFound, res.Outcome)
	assert.Equal(t, len(res.Path)-1, paths)
	assert.Zero(t, f.Dropped())
}

func TestFeed_LastTagMatchesNodeUnderRacingWriters(t *testing.T) {
	g := newGrid(t, 1, 1)
	f := feed.Attach(g, feed.WithBuffer(4096), feed.WithLogger(quiet()))
	defer f.Close()
	n, _ := g.Node(0, 0)

	for i := 0; i < 200; i++ {
		var wg sync.WaitGroup
		for _, tag := range []node.Tag{node.Queue, node.Explored, node.Path} {
			wg.Add(1)
			go func(tag node.Tag) {
				defer wg.Done()
				n.SetOverlay(tag)
			}(tag)
		}
		wg.Wait()

		var last *feed.Event
		for _, ev := range drain(f) {
			if ev.Kind == feed.TagChanged {
				last = &ev
			}
		}
		require.NotNil(t, last, "round %d", i)
		require.Equal(t, n.Tag(), last.Tag, "round %d", i)
	}
	assert.Zero(t, f.Dropped())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "tag", feed.TagChanged.String())
	assert.Equal(t, "cost", feed.CostChanged.String())
	assert.Equal(t, "Kind(7)", feed.Kind(7).String())
}
