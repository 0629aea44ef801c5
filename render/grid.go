// Package render flattens the layers of an LEd level into a single grid of
// tile references ready to be drawn.
package render

import (
	"iter"

	"github.com/milk9111/ledgrid/common"
)

// DefaultTileSize is the pixel size of one cell of a composed grid.
const DefaultTileSize = 16

// RenderCell is one composed cell. AtlasPos is the column/row of the tile in
// its atlas, not a pixel offset; use common.AtlasCellPixel to convert it.
type RenderCell struct {
	IsEmpty  bool
	TileID   int
	AtlasPos common.Point
	FlipX    bool
	FlipY    bool
}

var emptyCell = RenderCell{IsEmpty: true}

// RenderGrid is a dense row-major grid of composed cells. Grids returned by
// Compose are complete and are not modified afterwards.
type RenderGrid struct {
	tiles []RenderCell

	// TileSize is the pixel size of one cell.
	TileSize common.Point
	// GridSize is the grid's width and height in cells.
	GridSize common.Point
}

// NewRenderGrid allocates numCells empty cells.
func NewRenderGrid(numCells int, tileSize, gridSize common.Point) *RenderGrid {
	tiles := make([]RenderCell, numCells)
	for i := range tiles {
		tiles[i] = emptyCell
	}
	return &RenderGrid{
		tiles:    tiles,
		TileSize: tileSize,
		GridSize: gridSize,
	}
}

func (g *RenderGrid) Width() int  { return g.GridSize.X }
func (g *RenderGrid) Height() int { return g.GridSize.Y }
func (g *RenderGrid) Len() int    { return len(g.tiles) }

// PixelSize is the size of the whole grid in pixels.
func (g *RenderGrid) PixelSize() common.Point {
	return common.Point{
		X: g.GridSize.X * g.TileSize.X,
		Y: g.GridSize.Y * g.TileSize.Y,
	}
}

// GetTile returns the cell at (x, y). It panics when x or y lies outside the
// grid.
func (g *RenderGrid) GetTile(x, y int) RenderCell {
	if x < 0 || x >= g.GridSize.X || y < 0 || y >= g.GridSize.Y {
		panic(&OutOfRangeError{X: x, Y: y, Size: g.GridSize})
	}
	return g.tiles[common.ToCoordID(x, y, g.GridSize.X)]
}

// Lookup is GetTile without the panic.
func (g *RenderGrid) Lookup(x, y int) (RenderCell, bool) {
	if x < 0 || x >= g.GridSize.X || y < 0 || y >= g.GridSize.Y {
		return RenderCell{}, false
	}
	return g.tiles[common.ToCoordID(x, y, g.GridSize.X)], true
}

// Cells returns a copy of every cell in row-major order.
func (g *RenderGrid) Cells() []RenderCell {
	out := make([]RenderCell, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// FilledCount counts the non-empty cells.
func (g *RenderGrid) FilledCount() int {
	n := 0
	for _, c := range g.tiles {
		if !c.IsEmpty {
			n++
		}
	}
	return n
}

// Rows yields the grid one row at a time, top to bottom. Each yielded slice
// is GridSize.X long and must not be modified.
// The sequence can be ranged over any number of times.
func (g *RenderGrid) Rows() iter.Seq[[]RenderCell] {
	return func(yield func([]RenderCell) bool) {
		w := g.GridSize.X
		if w <= 0 {
			return
		}
		for start := 0; start < len(g.tiles); start += w {
			end := min(start+w, len(g.tiles))
			if !yield(g.tiles[start:end:end]) {
				return
			}
		}
	}
}

// All yields every cell with its grid position, row by row.
func (g *RenderGrid) All() iter.Seq2[common.Point, RenderCell] {
	return func(yield func(common.Point, RenderCell) bool) {
		w := g.GridSize.X
		if w <= 0 {
			return
		}
		for i, c := range g.tiles {
			if !yield(common.ToPoint(i, w), c) {
				return
			}
		}
	}
}

// set writes one tile during composition. Ids outside the grid are dropped.
func (g *RenderGrid) set(coordID int, cell RenderCell) bool {
	if coordID < 0 || coordID >= len(g.tiles) {
		return false
	}
	g.tiles[coordID] = cell
	return true
}
