package grid

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathviz/node"
)

// Grid is a fixed-size arena of nodes addressed by (row, col).
// Dimensions never change; nodes are created once and reused across runs.
type Grid struct {
	rows, cols int
	conn       Connectivity
	offsets    [][2]int
	nodes      []*node.Node // row-major: row*cols + col
	log        logrus.FieldLogger

	mu    sync.RWMutex // guards start, end and seen
	start *node.Node
	end   *node.Node
	seen  []uint64 // highest TagEvent.Version applied, per node index
}

// New builds a rows×cols grid, subscribes to every node's tag changes and
// links all nodes to their in-bounds neighbors.
// Returns ErrEmptyGrid if rows or cols < 1.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{
		rows:    rows,
		cols:    cols,
		conn:    o.Conn,
		offsets: offsets8,
		nodes:   make([]*node.Node, rows*cols),
		seen:    make([]uint64, rows*cols),
		log:     o.Logger.WithField("component", "grid"),
	}
	if o.Conn == Conn4 {
		g.offsets = offsets4
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			n := node.New(node.Position{Row: row, Col: col})
			n.OnTagChange(g.handleTag)
			g.nodes[g.index(row, col)] = n
		}
	}
	g.link()

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Connectivity returns the linking mode chosen at construction.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Node returns the node at (row, col). Out-of-bounds coordinates are logged
// and reported as absent.
func (g *Grid) Node(row, col int) (*node.Node, bool) {
	n, err := g.Lookup(row, col)
	if err != nil {
		g.log.WithFields(logrus.Fields{"row": row, "col": col}).Warn(err)
		return nil, false
	}

	return n, true
}

// At is Node addressed by Position.
func (g *Grid) At(p node.Position) (*node.Node, bool) {
	return g.Node(p.Row, p.Col)
}

// Lookup returns the node at (row, col) or an error wrapping ErrOutOfBounds.
// Unlike Node it does not log.
func (g *Grid) Lookup(row, col int) (*node.Node, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d) not in %dx%d", ErrOutOfBounds, row, col, g.rows, g.cols)
	}

	return g.nodes[g.index(row, col)], nil
}

// Each calls fn for every node in row-major order.
func (g *Grid) Each(fn func(*node.Node)) {
	for _, n := range g.nodes {
		fn(n)
	}
}

// Neighbors returns the in-bounds adjacent nodes of (row, col) according to
// the grid connectivity. Used for link construction.
func (g *Grid) Neighbors(row, col int) []*node.Node {
	if !g.InBounds(row, col) {
		g.log.WithFields(logrus.Fields{"row": row, "col": col}).Warn(ErrOutOfBounds)
		return nil
	}
	out := make([]*node.Node, 0, len(g.offsets))
	for _, d := range g.offsets {
		r, c := row+d[0], col+d[1]
		if g.InBounds(r, c) {
			out = append(out, g.nodes[g.index(r, c)])
		}
	}

	return out
}

// Distance returns the octile distance between two nodes of the grid.
func (g *Grid) Distance(a, b *node.Node) int {
	return Distance(a.Position(), b.Position())
}

// Distance is min(dr,dc)*14 + |dr-dc|*10 for row/col distances dr, dc.
// It is symmetric and zero only for identical positions.
func Distance(a, b node.Position) int {
	dr := abs(a.Row - b.Row)
	dc := abs(a.Col - b.Col)
	if dc < dr {
		return dc*DiagonalWeight + (dr-dc)*OrthogonalWeight
	}

	return dr*DiagonalWeight + (dc-dr)*OrthogonalWeight
}

// Aligned reports whether a and b share a row or a column.
func Aligned(a, b node.Position) bool {
	return a.Row == b.Row || a.Col == b.Col
}

// link connects every node to each of its neighbors with a directed edge
// weighted by Distance. Both directions are produced by the symmetric loop.
func (g *Grid) link() {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			n := g.nodes[g.index(row, col)]
			for _, nb := range g.Neighbors(row, col) {
				// Neighbors never returns n itself, so Link cannot fail here.
				_ = n.Link(nb, g.Distance(n, nb), false)
			}
		}
	}
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
