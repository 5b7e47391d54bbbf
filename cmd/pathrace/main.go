// Command pathrace races A* against the uniform-cost solver on two mirrored
// grids with random walls and logs how each one fared.
//
// Configuration comes from defaults, pathviz.toml, PATHVIZ_* variables and
// flags, in increasing priority. Ctrl-C cancels the race at the next pacing
// checkpoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/pathviz/config"
	"github.com/katalvlaran/pathviz/feed"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/logging"
	"github.com/katalvlaran/pathviz/node"
	"github.com/katalvlaran/pathviz/race"
	"github.com/katalvlaran/pathviz/solver"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := config.Flags("pathrace")
	if err := flags.Parse(args); err != nil {
		return err
	}
	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	conn := grid.Conn8
	if cfg.Conn == 4 {
		conn = grid.Conn4
	}
	r, err := race.New(cfg.Rows, cfg.Cols,
		race.WithDelay(cfg.Pace),
		race.WithSeed(cfg.Seed),
		race.WithConnectivity(conn),
		race.WithLogger(log),
	)
	if err != nil {
		return err
	}

	start := node.Position{Row: cfg.Start.Row, Col: cfg.Start.Col}
	end := node.Position{Row: cfg.End.Row, Col: cfg.End.Col}
	if err := r.SetEndpoints(start, end); err != nil {
		return err
	}
	placed, err := r.PlaceRandomWalls(cfg.Walls)
	if err != nil {
		return err
	}
	if placed < cfg.Walls {
		log.WithFields(logrus.Fields{"requested": cfg.Walls, "placed": placed}).Warn("grid too crowded for all walls")
	}

	solvable, err := r.Solvable()
	if err != nil {
		return err
	}
	if !solvable {
		log.Warn("walls separate start from end, both solvers will exhaust their frontier")
	}
	// Optimal cost on the untouched layout; walls are the same on both grids.
	optimal, reachable := shortest(r.Left(), start, end)
	if reachable != solvable {
		return fmt.Errorf("reachability disagrees: bfs=%t gonum=%t", solvable, reachable)
	}

	counters := []*eventCounter{
		watch(r.Left(), log),
		watch(r.Right(), log),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := r.Start(ctx); err != nil {
		return err
	}
	rep, err := r.Wait()
	for _, c := range counters {
		c.close()
	}
	if err != nil {
		return err
	}

	for i, res := range []solver.Result{rep.AStar, rep.Dijkstra} {
		fields := logrus.Fields{
			"run_id":   res.RunID,
			"outcome":  res.Outcome,
			"cost":     res.Cost,
			"steps":    len(res.Path),
			"expanded": res.Expanded,
			"elapsed":  res.Elapsed,
			"events":   counters[i].total,
			"dropped":  counters[i].feed.Dropped(),
		}
		if reachable && res.Outcome == solver.PathFound {
			fields["optimal"] = res.Cost == optimal
		}
		log.WithFields(fields).Info(res.Algorithm)
	}
	if w := rep.Winner(); w != "" {
		log.WithField("winner", w).Info("race decided")
	}

	return nil
}

// shortest returns the reference path cost computed by gonum on g's current
// walls, and whether end is reachable at all.
func shortest(g *grid.Grid, start, end node.Position) (int, bool) {
	tree := path.DijkstraFrom(simple.Node(g.ID(start)), g.WeightedGraph())
	_, w := tree.To(g.ID(end))
	if math.IsInf(w, 1) {
		return 0, false
	}

	return int(w), true
}

// eventCounter drains a grid feed and counts what it saw.
type eventCounter struct {
	feed  *feed.Feed
	wg    sync.WaitGroup
	total int
}

func watch(g *grid.Grid, log logrus.FieldLogger) *eventCounter {
	c := &eventCounter{feed: feed.Attach(g, feed.WithLogger(log))}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for range c.feed.Events() {
			c.total++
		}
	}()

	return c
}

func (c *eventCounter) close() {
	c.feed.Close()
	c.wg.Wait()
}
