package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/core"
)

// NewGrid validates l and precomputes spacing and offsets.
// A single row or column is centred on its axis.
// Complexity: O(1).
func NewGrid(l Layout) (*Grid, error) {
	if l.Rows < 1 || l.Cols < 1 {
		return nil, ErrEmptyGrid
	}
	if l.Width <= 0 || l.Height <= 0 || l.Radius < 0 {
		return nil, ErrBadCanvas
	}

	gr := &Grid{Layout: l}
	gr.hSpacing, gr.offsetX = spacing(l.Width, l.Radius, l.Cols)
	gr.vSpacing, gr.offsetY = spacing(l.Height, l.Radius, l.Rows)

	// Offsets only look "backwards" and "forwards" once each; AddEdge
	// ignores the duplicate the mirrored pass would produce.
	if l.Conn == Conn8 {
		gr.neighborOffsets = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	} else {
		gr.neighborOffsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	}

	return gr, nil
}

// spacing returns the step between n cells along an axis of the given size
// and the offset that centres them.
func spacing(size, radius float64, n int) (step, offset float64) {
	if n == 1 {
		return 0, size / 2
	}
	step = (size - 4*radius) / float64(n-1)
	offset = (size - float64(n-1)*step) / 2

	return step, offset
}

// NodeID formats the identifier of the cell at (row, col).
func NodeID(row, col int) string {
	return fmt.Sprintf("node-%d-%d", row, col)
}

// ParseNodeID is the inverse of NodeID.
func ParseNodeID(id string) (row, col int, ok bool) {
	n, err := fmt.Sscanf(id, "node-%d-%d", &row, &col)
	if err != nil || n != 2 || row < 0 || col < 0 || NodeID(row, col) != id {
		return 0, 0, false
	}

	return row, col, true
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (gr *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < gr.Rows && col >= 0 && col < gr.Cols
}

// NeighborOffsets returns the precomputed (dRow, dCol) offsets.
func (gr *Grid) NeighborOffsets() [][2]int {
	return gr.neighborOffsets
}

// Position returns the canvas coordinates of cell (row, col).
func (gr *Grid) Position(row, col int) (x, y float64) {
	return float64(col)*gr.hSpacing + gr.offsetX, float64(row)*gr.vSpacing + gr.offsetY
}

// Coordinate converts a row-major index back to (row, col).
func (gr *Grid) Coordinate(idx int) (row, col int) {
	return idx / gr.Cols, idx % gr.Cols
}

// ToCoreGraph builds a fresh *core.Graph: one regular node per cell at its
// canvas position, plus edges to every in-bounds neighbor.
// Complexity: O(Rows×Cols×d), Memory: O(Rows×Cols + E).
func (gr *Grid) ToCoreGraph() *core.Graph {
	g := core.NewGraph(core.WithCapacity(gr.Rows * gr.Cols))
	for r := 0; r < gr.Rows; r++ {
		for c := 0; c < gr.Cols; c++ {
			x, y := gr.Position(r, c)
			g.AddNode(core.Node{ID: NodeID(r, c), X: x, Y: y}, core.RoleRegular)
		}
	}
	for r := 0; r < gr.Rows; r++ {
		for c := 0; c < gr.Cols; c++ {
			uID := NodeID(r, c)
			for _, d := range gr.neighborOffsets {
				nr, nc := r+d[0], c+d[1]
				if !gr.InBounds(nr, nc) {
					continue
				}
				g.AddEdge(uID, NodeID(nr, nc))
			}
		}
	}

	return g
}

// Build is shorthand for NewGrid followed by ToCoreGraph.
func Build(l Layout) (*core.Graph, *Grid, error) {
	gr, err := NewGrid(l)
	if err != nil {
		return nil, nil, err
	}

	return gr.ToCoreGraph(), gr, nil
}
