package tui

import (
	"math"
	"strings"

	"github.com/katalvlaran/pathgrid/core"
)

// Canvas maps graph coordinates (pixels of a Width×Height board) onto a
// Cols×Rows character grid.
type Canvas struct {
	Width, Height float64
	Cols, Rows    int
}

// CanvasFor returns a canvas for a board of the given pixel size using one
// column per 10px and one row per 20px, shrunk to fit maxCols×maxRows when
// those are positive.
func CanvasFor(width, height float64, maxCols, maxRows int) Canvas {
	c := Canvas{
		Width:  width,
		Height: height,
		Cols:   int(width/10) + 1,
		Rows:   int(height/20) + 1,
	}
	if maxCols > 0 && c.Cols > maxCols {
		c.Cols = maxCols
	}
	if maxRows > 0 && c.Rows > maxRows {
		c.Rows = maxRows
	}
	if c.Cols < 1 {
		c.Cols = 1
	}
	if c.Rows < 1 {
		c.Rows = 1
	}

	return c
}

// Cell returns the character cell of the point (x, y), clamped to the grid.
func (c Canvas) Cell(x, y float64) (col, row int) {
	return scale(x, c.Width, c.Cols), scale(y, c.Height, c.Rows)
}

func scale(v, size float64, n int) int {
	if size <= 0 || n <= 1 {
		return 0
	}
	i := int(math.Round(v / size * float64(n-1)))
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}

	return i
}

// cellKind tells nodes from edge strokes.
type cellKind int

const (
	cellEmpty cellKind = iota
	cellEdge
	cellNode
)

type cell struct {
	kind cellKind
	r    rune
	role core.Role
	id   string
}

// raster is the rasterized graph, indexed [row][col].
type raster [][]cell

// rasterize draws every edge as a line of stroke runes and then every node
// on top of the strokes.
func rasterize(g *core.Graph, c Canvas) raster {
	grid := make(raster, c.Rows)
	for i := range grid {
		grid[i] = make([]cell, c.Cols)
	}

	for _, e := range g.Edges() {
		ax, ay, errA := g.Position(e.A)
		bx, by, errB := g.Position(e.B)
		if errA != nil || errB != nil {
			continue
		}
		c0, r0 := c.Cell(ax, ay)
		c1, r1 := c.Cell(bx, by)
		stroke := strokeRune(c1-c0, r1-r0)
		line(c0, r0, c1, r1, func(col, row int) {
			if grid[row][col].kind == cellEmpty {
				grid[row][col] = cell{kind: cellEdge, r: stroke}
			}
		})
	}

	for _, n := range g.Nodes() {
		col, row := c.Cell(n.X, n.Y)
		grid[row][col] = cell{kind: cellNode, r: glyphs[n.Role], role: n.Role, id: n.ID}
	}

	return grid
}

// strokeRune picks the ASCII stroke for a segment direction.
func strokeRune(dc, dr int) rune {
	switch {
	case dr == 0:
		return '-'
	case dc == 0:
		return '|'
	case (dc > 0) == (dr > 0):
		return '\\'
	default:
		return '/'
	}
}

// line calls plot for every cell of the Bresenham line from (c0, r0) to
// (c1, r1), endpoints included.
func line(c0, r0, c1, r1 int, plot func(col, row int)) {
	dc, dr := abs(c1-c0), -abs(r1-r0)
	sc, sr := sign(c1-c0), sign(r1-r0)
	e := dc + dr
	for {
		plot(c0, r0)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * e
		if e2 >= dr {
			e += dr
			c0 += sc
		}
		if e2 <= dc {
			e += dc
			r0 += sr
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// RenderPlain draws g as plain text, one line per canvas row with trailing
// blanks trimmed. A regular node under the cursor is drawn as the hover
// glyph.
func RenderPlain(g *core.Graph, c Canvas, cursor string) string {
	grid := rasterize(g, c)
	lines := make([]string, len(grid))
	for i, row := range grid {
		var b strings.Builder
		for _, cl := range row {
			b.WriteRune(plainRune(cl, cursor))
		}
		lines[i] = strings.TrimRight(b.String(), " ")
	}

	return strings.Join(lines, "\n")
}

func plainRune(cl cell, cursor string) rune {
	switch cl.kind {
	case cellNode:
		if cl.id == cursor && cl.role == core.RoleRegular {
			return glyphs[core.RoleHover]
		}
		return cl.r
	case cellEdge:
		return cl.r
	default:
		return ' '
	}
}

// renderStyled draws g with lipgloss colors per role; the cursor cell is
// shown in reverse video.
func renderStyled(g *core.Graph, c Canvas, cursor string) string {
	grid := rasterize(g, c)
	lines := make([]string, len(grid))
	for i, row := range grid {
		var b strings.Builder
		for _, cl := range row {
			switch cl.kind {
			case cellNode:
				s := roleStyles[cl.role]
				r := cl.r
				if cl.id == cursor {
					s = s.Inherit(cursorStyle)
					if cl.role == core.RoleRegular {
						r = glyphs[core.RoleHover]
					}
				}
				b.WriteString(s.Render(string(r)))
			case cellEdge:
				b.WriteString(edgeStyle.Render(string(cl.r)))
			default:
				b.WriteByte(' ')
			}
		}
		lines[i] = b.String()
	}

	return strings.Join(lines, "\n")
}
