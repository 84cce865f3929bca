package collision

import (
	"fmt"
	"math"
)

// Edges marks which sides of a solid tile face open space.
type Edges struct {
	Top, Bottom, Left, Right bool
}

// Any reports whether at least one edge is exposed.
func (e Edges) Any() bool {
	return e.Top || e.Bottom || e.Left || e.Right
}

// Cell is the derived collision record of one solid tile.
type Cell struct {
	Index       int
	X, Y        int
	Position    Position
	ActiveEdges Edges
}

// TileMap indexes the static wall tiles of a level. Every solid cell collides as a
// full box; the active edge metadata is kept for callers that want to skip interior
// seams but is not used to filter results.
type TileMap struct {
	width, height int
	tileW, tileH  float64
	cells         []*Cell
	box           *Shape
}

// NewTileMap builds the broadphase from a row-major solid grid.
func NewTileMap(width, height int, tileW, tileH float64, solid []bool) *TileMap {
	if width <= 0 || height <= 0 || len(solid) != width*height {
		panic(fmt.Sprintf("collision: tile grid %dx%d does not match %d cells", width, height, len(solid)))
	}

	m := &TileMap{
		width:  width,
		height: height,
		tileW:  tileW,
		tileH:  tileH,
		cells:  make([]*Cell, len(solid)),
		box:    NewBox(tileW, tileH),
	}

	isSolid := func(x, y int) bool {
		if x < 0 || y < 0 || x >= width || y >= height {
			return false
		}
		return solid[y*width+x]
	}

	for idx, s := range solid {
		if !s {
			continue
		}
		x, y := idx%width, idx/width
		m.cells[idx] = &Cell{
			Index: idx,
			X:     x,
			Y:     y,
			Position: Position{
				X: float64(x)*tileW + tileW/2,
				Y: float64(y)*tileH + tileH/2,
			},
			ActiveEdges: Edges{
				Top:    !isSolid(x, y-1),
				Bottom: !isSolid(x, y+1),
				Left:   !isSolid(x-1, y),
				Right:  !isSolid(x+1, y),
			},
		}
	}

	return m
}

// Test returns the first solid tile, in row-major grid order, that shape placed at pos
// overlaps. Only the cells under the shape's bounds are visited; cells outside them
// cannot overlap, so the answer matches a scan of the whole grid.
func (m *TileMap) Test(shape *Shape, pos Position) (Result, bool) {
	min, max := shape.Bounds(pos)

	x0, x1, ok := span(min.X, max.X, m.tileW, m.width)
	if !ok {
		return Result{}, false
	}
	y0, y1, ok := span(min.Y, max.Y, m.tileH, m.height)
	if !ok {
		return Result{}, false
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cell := m.cells[y*m.width+x]
			if cell == nil {
				continue
			}
			if r, hit := Test(shape, pos, m.box, cell.Position); hit {
				return r, true
			}
		}
	}
	return Result{}, false
}

// span converts a world interval to an inclusive, clamped cell interval.
func span(lo, hi, size float64, count int) (int, int, bool) {
	first := int(math.Floor(lo / size))
	last := int(math.Floor(hi / size))
	if last < 0 || first >= count {
		return 0, 0, false
	}
	if first < 0 {
		first = 0
	}
	if last >= count {
		last = count - 1
	}
	return first, last, true
}

// Cell returns the solid cell at grid coordinates, or nil for open or out-of-map cells.
func (m *TileMap) Cell(x, y int) *Cell {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return nil
	}
	return m.cells[y*m.width+x]
}

// Solid reports whether the grid cell is a wall.
func (m *TileMap) Solid(x, y int) bool {
	return m.Cell(x, y) != nil
}

// Cells returns the solid cells in row-major order.
func (m *TileMap) Cells() []*Cell {
	out := make([]*Cell, 0, len(m.cells))
	for _, c := range m.cells {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Size returns the grid dimensions in cells.
func (m *TileMap) Size() (width, height int) {
	return m.width, m.height
}

// TileSize returns the world size of one cell.
func (m *TileMap) TileSize() (w, h float64) {
	return m.tileW, m.tileH
}

// Bounds returns the world size of the whole grid.
func (m *TileMap) Bounds() (w, h float64) {
	return float64(m.width) * m.tileW, float64(m.height) * m.tileH
}
