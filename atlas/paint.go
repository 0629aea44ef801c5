package atlas

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/milk9111/ledgrid/render"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Paint draws every non-empty cell of grid into a new image, each cell being
// grid.TileSize pixels multiplied by scale. Empty cells stay transparent.
func (a *Atlas) Paint(grid *render.RenderGrid, scale int) (*image.RGBA, error) {
	if scale <= 0 {
		scale = 1
	}
	size := grid.PixelSize()
	dst := image.NewRGBA(image.Rect(0, 0, size.X*scale, size.Y*scale))
	tileW, tileH := grid.TileSize.X*scale, grid.TileSize.Y*scale

	for pos, cell := range grid.All() {
		if cell.IsEmpty {
			continue
		}
		sr, err := a.CellRect(cell.AtlasPos)
		if err != nil {
			return nil, fmt.Errorf("cell %v (tile %d): %w", pos, cell.TileID, err)
		}
		dr := image.Rect(pos.X*tileW, pos.Y*tileH, (pos.X+1)*tileW, (pos.Y+1)*tileH)
		xdraw.NearestNeighbor.Transform(dst, tileTransform(dr, sr, cell.FlipX, cell.FlipY), a.Image, sr, xdraw.Over, nil)
	}
	return dst, nil
}

// tileTransform maps sr onto dr, mirroring per axis when flipped.
func tileTransform(dr, sr image.Rectangle, flipX, flipY bool) f64.Aff3 {
	kx := float64(dr.Dx()) / float64(sr.Dx())
	ky := float64(dr.Dy()) / float64(sr.Dy())

	a, c := kx, float64(dr.Min.X)-kx*float64(sr.Min.X)
	if flipX {
		a, c = -kx, float64(dr.Max.X)+kx*float64(sr.Min.X)
	}
	e, f := ky, float64(dr.Min.Y)-ky*float64(sr.Min.Y)
	if flipY {
		e, f = -ky, float64(dr.Max.Y)+ky*float64(sr.Min.Y)
	}
	return f64.Aff3{a, 0, c, 0, e, f}
}

// WritePNG encodes img to the file at path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("atlas: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("atlas: encode %s: %w", path, err)
	}
	return f.Close()
}
