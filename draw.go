package main

import (
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ledgrid/atlas"
	"github.com/milk9111/ledgrid/common"
	"github.com/milk9111/ledgrid/render"
	"golang.org/x/image/colornames"
)

// placeholderColors tint tiles by id when no atlas is loaded.
var placeholderColors = []color.RGBA{
	colornames.Steelblue,
	colornames.Indianred,
	colornames.Seagreen,
	colornames.Goldenrod,
	colornames.Orchid,
	colornames.Slategray,
	colornames.Sandybrown,
	colornames.Teal,
}

var placeholderImg = func() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return img
}()

// tileCache hands out atlas sub-images keyed by atlas cell.
type tileCache struct {
	atlas  *atlas.Atlas
	sheet  *ebiten.Image
	subs   map[common.Point]*ebiten.Image
	failed map[common.Point]bool
}

func newTileCache(a *atlas.Atlas) *tileCache {
	return &tileCache{
		atlas:  a,
		sheet:  ebiten.NewImageFromImage(a.Image),
		subs:   make(map[common.Point]*ebiten.Image),
		failed: make(map[common.Point]bool),
	}
}

func (c *tileCache) get(cell common.Point) (*ebiten.Image, bool) {
	if img, ok := c.subs[cell]; ok {
		return img, true
	}
	if c.failed[cell] {
		return nil, false
	}
	r, err := c.atlas.CellRect(cell)
	if err != nil {
		log.Printf("tile draw failed: %v", err)
		c.failed[cell] = true
		return nil, false
	}
	// sheet bounds start at 0,0 while the decoded image may not
	r = r.Sub(c.atlas.Image.Bounds().Min)
	sub, ok := c.sheet.SubImage(r).(*ebiten.Image)
	if !ok {
		return nil, false
	}
	c.subs[cell] = sub
	return sub, true
}

// drawGrid draws every non-empty cell; offX/offY is the screen position of
// the grid origin.
func drawGrid(screen *ebiten.Image, grid *render.RenderGrid, tiles *tileCache, offX, offY, zoom float64) {
	for pos, cell := range grid.All() {
		if cell.IsEmpty {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		if tiles != nil {
			if img, ok := tiles.get(cell.AtlasPos); ok {
				op.GeoM = tileGeoM(pos, cell, img.Bounds().Size(), grid.TileSize, offX, offY, zoom)
				screen.DrawImage(img, op)
				continue
			}
		}

		op.GeoM = tileGeoM(pos, cell, image.Pt(1, 1), grid.TileSize, offX, offY, zoom)
		op.ColorScale.ScaleWithColor(placeholderColors[cell.TileID%len(placeholderColors)])
		screen.DrawImage(placeholderImg, op)
	}
}

// tileGeoM places a src-sized image over grid cell pos, mirrored as the cell
// asks.
func tileGeoM(pos common.Point, cell render.RenderCell, src image.Point, tileSize common.Point, offX, offY, zoom float64) ebiten.GeoM {
	var m ebiten.GeoM
	if cell.FlipX {
		m.Scale(-1, 1)
		m.Translate(float64(src.X), 0)
	}
	if cell.FlipY {
		m.Scale(1, -1)
		m.Translate(0, float64(src.Y))
	}
	m.Scale(float64(tileSize.X)/float64(src.X), float64(tileSize.Y)/float64(src.Y))
	m.Translate(float64(pos.X*tileSize.X), float64(pos.Y*tileSize.Y))
	m.Scale(zoom, zoom)
	m.Translate(offX, offY)
	return m
}
