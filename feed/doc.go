// Package feed turns the per-node tag and cost notifications of a grid into a
// single ordered channel of value events.
//
// A presentation layer that repaints cells should not run inside the solver
// goroutine. Attach subscribes to every node of a grid.Grid and forwards each
// notification as an Event carrying a monotonically increasing sequence
// number; the consumer drains Events() at its own pace.
//
// Back-pressure:
//
//   - By default the channel is buffered (DefaultBuffer) and a full buffer
//     drops the event. Dropped() reports how many were lost.
//   - WithBlocking makes the publishing goroutine (usually a solver) wait
//     until the consumer catches up or the feed is closed. Combined with a
//     zero pacer delay this couples search speed to repaint speed.
//
// Close unsubscribes from every node and closes the channel. Events published
// after Close are discarded.
//
// Example:
//
//	f := feed.Attach(g)
//	defer f.Close()
//	go func() {
//		for ev := range f.Events() {
//			repaint(ev.Position, ev.Tag)
//		}
//	}()
package feed
