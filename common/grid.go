// Package common holds the small pieces of math shared by the document,
// composition and drawing packages: grid/coordinate conversion and atlas
// addressing.
package common

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the panic value (wrapped) raised when grid math is
// handed a width that cannot address any cell.
var ErrInvalidArgument = errors.New("common: invalid argument")

// Point is an integer (x, y) pair. Depending on context it is a grid cell,
// an atlas cell or a pixel offset.
type Point struct {
	X int
	Y int
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// ToCoordID converts a grid (x, y) position into the row-major linear index
// used by LEd for coord ids.
func ToCoordID(x, y, gridWidth int) int {
	mustPositive("gridWidth", gridWidth)
	return x + y*gridWidth
}

// ToPoint converts a coord id back into its grid (x, y) position. It is the
// inverse of ToCoordID for every coordID inside the grid.
func ToPoint(coordID, gridWidth int) Point {
	mustPositive("gridWidth", gridWidth)
	return Point{X: coordID % gridWidth, Y: coordID / gridWidth}
}

// AtlasCell returns the column and row of tileID in an atlas that is
// atlasWidthInCells tiles wide.
func AtlasCell(tileID, atlasWidthInCells int) Point {
	mustPositive("atlasWidthInCells", atlasWidthInCells)
	return Point{X: tileID % atlasWidthInCells, Y: tileID / atlasWidthInCells}
}

// AtlasPixelPosition returns the top-left pixel of tileID inside an atlas
// laid out as a regular grid of cellSize tiles, with padding around the
// whole sheet and spacing between neighbouring tiles.
func AtlasPixelPosition(tileID, atlasWidthInCells, cellSize, padding, spacing int) Point {
	cell := AtlasCell(tileID, atlasWidthInCells)
	return AtlasCellPixel(cell, cellSize, padding, spacing)
}

// AtlasCellPixel converts an atlas column/row into its top-left pixel.
func AtlasCellPixel(cell Point, cellSize, padding, spacing int) Point {
	stride := cellSize + spacing
	return Point{
		X: padding + cell.X*stride,
		Y: padding + cell.Y*stride,
	}
}

func mustPositive(name string, v int) {
	if v <= 0 {
		panic(fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidArgument, name, v))
	}
}
