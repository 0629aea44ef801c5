package render

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"github.com/milk9111/ledgrid/common"
	"github.com/milk9111/ledgrid/led"
	"golang.org/x/sync/errgroup"
)

// LayerFilter selects the layer instances taking part in a composition.
type LayerFilter func(*led.LayerInstance) bool

// OnlyLayers keeps the layers whose identifier is listed.
func OnlyLayers(identifiers ...string) LayerFilter {
	return func(li *led.LayerInstance) bool {
		return slices.Contains(identifiers, li.Identifier)
	}
}

// ExcludeLayers drops the layers whose identifier is listed.
func ExcludeLayers(identifiers ...string) LayerFilter {
	return func(li *led.LayerInstance) bool {
		return !slices.Contains(identifiers, li.Identifier)
	}
}

// Compose merges every tile layer of level into one grid.
//
// The grid takes its size from the level's first layer instance; LEd gives
// every layer of a level the same size. Layers are painted from the last
// declared to the first, so the first declared layer wins wherever several
// layers place a tile. Within a layer auto-layer tiles are painted before
// explicitly placed ones. Int-grid values and entities are not rendered.
func Compose(p *led.Project, level int) (*RenderGrid, error) {
	return ComposeLayers(p, level, nil)
}

// ComposeLayers is Compose restricted to the layers accepted by keep. A nil
// keep accepts every layer. The grid size is still taken from the first
// layer instance, whether or not it is kept.
func ComposeLayers(p *led.Project, level int, keep LayerFilter) (*RenderGrid, error) {
	if p == nil {
		return nil, &LevelIndexError{Index: level, Count: 0}
	}
	lvl, ok := p.Level(level)
	if !ok {
		return nil, &LevelIndexError{Index: level, Count: len(p.Levels)}
	}
	if len(lvl.LayerInstances) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyLevel, lvl.Identifier)
	}

	first := &lvl.LayerInstances[0]
	if first.GridWidth <= 0 || first.GridHeight <= 0 {
		return nil, fmt.Errorf("%w: %q is %dx%d", ErrInvalidGridSize, lvl.Identifier, first.GridWidth, first.GridHeight)
	}

	grid := NewRenderGrid(
		first.CellCount(),
		common.Point{X: DefaultTileSize, Y: DefaultTileSize},
		common.Point{X: first.GridWidth, Y: first.GridHeight},
	)

	// paint bottom-up
	for i := len(lvl.LayerInstances) - 1; i >= 0; i-- {
		layer := &lvl.LayerInstances[i]
		if keep != nil && !keep(layer) {
			continue
		}
		paintLayer(grid, layer)
	}

	return grid, nil
}

func paintLayer(grid *RenderGrid, layer *led.LayerInstance) {
	for _, rule := range layer.AutoTiles {
		for _, tile := range rule.Tiles {
			grid.set(tile.CoordID, cellFromTile(tile))
		}
	}
	for _, tile := range layer.GridTiles {
		grid.set(tile.CoordID, cellFromTile(tile))
	}
}

func cellFromTile(t led.GridTile) RenderCell {
	return RenderCell{
		IsEmpty:  false,
		TileID:   t.TileID,
		AtlasPos: common.Point{X: t.TileX, Y: t.TileY},
		FlipX:    t.FlipX(),
		FlipY:    t.FlipY(),
	}
}

// ComposeAll composes every level of p concurrently. The result is indexed
// like p.Levels. The first failure cancels the remaining work. A nil project
// fails like Compose does, with a *LevelIndexError.
func ComposeAll(ctx context.Context, p *led.Project) ([]*RenderGrid, error) {
	return ComposeAllLayers(ctx, p, nil)
}

// ComposeAllLayers is ComposeAll restricted to the layers accepted by keep.
func ComposeAllLayers(ctx context.Context, p *led.Project, keep LayerFilter) ([]*RenderGrid, error) {
	if p == nil {
		return nil, &LevelIndexError{Index: 0, Count: 0}
	}

	grids := make([]*RenderGrid, len(p.Levels))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range p.Levels {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			grid, err := ComposeLayers(p, i, keep)
			if err != nil {
				return err
			}
			grids[i] = grid
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return grids, nil
}
