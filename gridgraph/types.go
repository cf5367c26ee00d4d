// Package gridgraph defines layout types, connectivity and sentinel errors.
package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a layout with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrBadCanvas indicates a non-positive canvas size or a negative radius.
	ErrBadCanvas = errors.New("gridgraph: canvas size must be positive and radius non-negative")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Layout contains the parameters of a grid.
type Layout struct {
	Rows, Cols    int
	Width, Height float64 // canvas size
	Radius        float64 // node radius; the margin is two radii per side
	Conn          Connectivity
}

// DefaultLayout returns the layout of the classic board:
// 8 rows × 20 columns on an 800×320 canvas, radius 10, Conn4.
func DefaultLayout() Layout {
	return Layout{
		Rows:   8,
		Cols:   20,
		Width:  800,
		Height: 320,
		Radius: 10,
		Conn:   Conn4,
	}
}

// Grid is a validated, immutable Layout with precomputed spacing.
type Grid struct {
	Layout

	hSpacing, vSpacing float64
	offsetX, offsetY   float64
	neighborOffsets    [][2]int // (dRow, dCol)
}
