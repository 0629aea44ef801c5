// Package atlas slices tiles out of a tileset image and paints composed
// grids with them.
package atlas

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/milk9111/ledgrid/common"
	"github.com/milk9111/ledgrid/config"
)

var ErrTileOutsideAtlas = errors.New("atlas: tile outside atlas image")

// Atlas is a tileset image laid out as a regular grid of CellSize tiles with
// Padding pixels around the sheet and Spacing pixels between tiles.
type Atlas struct {
	Image    image.Image
	CellSize int
	Padding  int
	Spacing  int
}

func New(img image.Image, spec config.AtlasSpec) *Atlas {
	return &Atlas{
		Image:    img,
		CellSize: spec.CellSize,
		Padding:  spec.Padding,
		Spacing:  spec.Spacing,
	}
}

// Resolve returns the file Load reads for spec.Path. A relative path is tried
// as given, then relative to baseDir.
func Resolve(spec config.AtlasSpec, baseDir string) (string, error) {
	if spec.Path == "" {
		return "", fmt.Errorf("atlas: empty image path")
	}

	tried := []string{spec.Path}
	if !filepath.IsAbs(spec.Path) && baseDir != "" {
		tried = append(tried, filepath.Join(baseDir, spec.Path))
	}

	var lastErr error
	for _, p := range tried {
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
		if err == nil {
			err = fmt.Errorf("%s is a directory", p)
		}
		lastErr = err
	}
	return "", fmt.Errorf("atlas: resolve %s: %w", spec.Path, lastErr)
}

// Load decodes the atlas image named by spec.Path, found as Resolve finds it.
func Load(spec config.AtlasSpec, baseDir string) (*Atlas, error) {
	if spec.CellSize <= 0 {
		return nil, fmt.Errorf("atlas: invalid cell size %d", spec.CellSize)
	}
	path, err := Resolve(spec, baseDir)
	if err != nil {
		return nil, err
	}
	img, err := decodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("atlas: load %s: %w", path, err)
	}
	return New(img, spec), nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// Columns is the number of whole tiles in one atlas row.
func (a *Atlas) Columns() int {
	stride := a.CellSize + a.Spacing
	if stride <= 0 {
		return 0
	}
	usable := a.Image.Bounds().Dx() - 2*a.Padding + a.Spacing
	return max(usable/stride, 0)
}

// Rows is the number of whole tiles in one atlas column.
func (a *Atlas) Rows() int {
	stride := a.CellSize + a.Spacing
	if stride <= 0 {
		return 0
	}
	usable := a.Image.Bounds().Dy() - 2*a.Padding + a.Spacing
	return max(usable/stride, 0)
}

// CellRect returns the source rectangle of the tile at atlas column/row cell.
func (a *Atlas) CellRect(cell common.Point) (image.Rectangle, error) {
	px := common.AtlasCellPixel(cell, a.CellSize, a.Padding, a.Spacing)
	b := a.Image.Bounds()
	r := image.Rect(px.X, px.Y, px.X+a.CellSize, px.Y+a.CellSize).Add(b.Min)
	if cell.X < 0 || cell.Y < 0 || !r.In(b) {
		return image.Rectangle{}, fmt.Errorf("%w: cell %v, atlas %dx%d", ErrTileOutsideAtlas, cell, b.Dx(), b.Dy())
	}
	return r, nil
}

// TileRect returns the source rectangle of tileID.
func (a *Atlas) TileRect(tileID int) (image.Rectangle, error) {
	cols := a.Columns()
	if cols == 0 {
		return image.Rectangle{}, fmt.Errorf("%w: atlas has no whole columns", ErrTileOutsideAtlas)
	}
	return a.CellRect(common.AtlasCell(tileID, cols))
}
