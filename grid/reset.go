package grid

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/node"
)

// ResetGrid is the "new board" operation: every node loses its links, costs,
// parent and tag (START and END included), then all links are rebuilt.
func (g *Grid) ResetGrid() {
	for _, n := range g.nodes {
		n.Reset()
	}
	g.mu.Lock()
	g.start, g.end = nil, nil
	g.mu.Unlock()
	g.link()

	g.log.Debug("grid reset")
}

// ResetGridData clears costs, parent and DistToGoal on every node except the
// current start and end. Tags are untouched.
func (g *Grid) ResetGridData() {
	start, _ := g.Start()
	end, _ := g.End()
	for _, n := range g.nodes {
		if n == start || n == end {
			continue
		}
		n.ResetData()
	}
}

// ResetTags sets every non-permanent tag (PATH, QUEUE, EXPLORED) to EMPTY.
func (g *Grid) ResetTags() {
	for _, n := range g.nodes {
		n.ResetTag()
	}
}

// PlaceWall tags (row, col) as WALL. It reports false, after logging, when
// the coordinate is out of bounds.
func (g *Grid) PlaceWall(row, col int) bool {
	return g.SetTag(row, col, node.Wall)
}

// SetTag tags (row, col) through the normal notification path, so START and
// END stay singletons. Out-of-bounds coordinates are logged and reported false.
func (g *Grid) SetTag(row, col int, t node.Tag) bool {
	n, ok := g.Node(row, col)
	if !ok {
		return false
	}
	n.SetTag(t)
	g.log.WithFields(logrus.Fields{"row": row, "col": col, "tag": t}).Debug("tag set")

	return true
}
