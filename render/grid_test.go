package render_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/milk9111/ledgrid/common"
	"github.com/milk9111/ledgrid/led"
	"github.com/milk9111/ledgrid/render"
)

func TestNewRenderGridIsEmpty(t *testing.T) {
	grid := render.NewRenderGrid(6, common.Point{X: 16, Y: 16}, common.Point{X: 3, Y: 2})
	if got := grid.Len(); got != 6 {
		t.Fatalf("Len = %d, want 6", got)
	}
	for pos, c := range grid.All() {
		if !c.IsEmpty || c.TileID != 0 || c.AtlasPos != (common.Point{}) {
			t.Errorf("cell %v = %+v, want empty", pos, c)
		}
	}
	if got := grid.FilledCount(); got != 0 {
		t.Errorf("FilledCount = %d, want 0", got)
	}
	if got, want := grid.PixelSize(), (common.Point{X: 48, Y: 32}); got != want {
		t.Errorf("PixelSize = %v, want %v", got, want)
	}
}

func sampleGrid(t *testing.T) *render.RenderGrid {
	t.Helper()
	p := project(led.Level{
		Identifier: "g",
		LayerInstances: []led.LayerInstance{
			layer("T", 3, 2, nil, tile(0, 1, 1, 0), tile(4, 5, 1, 1), tile(5, 6, 2, 1)),
		},
	})
	grid, err := render.Compose(p, 0)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	return grid
}

func TestGetTile(t *testing.T) {
	grid := sampleGrid(t)

	cases := []struct {
		x, y int
		want render.RenderCell
	}{
		{0, 0, filled(1, 1, 0)},
		{1, 0, empty},
		{2, 0, empty},
		{0, 1, empty},
		{1, 1, filled(5, 1, 1)},
		{2, 1, filled(6, 2, 1)},
	}
	for _, c := range cases {
		if got := grid.GetTile(c.x, c.y); got != c.want {
			t.Errorf("GetTile(%d, %d) = %+v, want %+v", c.x, c.y, got, c.want)
		}
		if got, ok := grid.Lookup(c.x, c.y); !ok || got != c.want {
			t.Errorf("Lookup(%d, %d) = %+v, %v, want %+v, true", c.x, c.y, got, ok, c.want)
		}
	}
}

func TestGetTileOutOfRange(t *testing.T) {
	grid := sampleGrid(t)

	for _, pos := range []common.Point{{X: 3, Y: 0}, {X: 0, Y: 2}, {X: -1, Y: 0}, {X: 0, Y: -1}} {
		t.Run(pos.String(), func(t *testing.T) {
			if _, ok := grid.Lookup(pos.X, pos.Y); ok {
				t.Errorf("Lookup(%v) reported ok", pos)
			}

			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, render.ErrOutOfRange) {
					t.Fatalf("GetTile(%v) panic = %v, want ErrOutOfRange", pos, r)
				}
			}()
			grid.GetTile(pos.X, pos.Y)
		})
	}
}

func TestRows(t *testing.T) {
	grid := sampleGrid(t)
	want := [][]render.RenderCell{
		{filled(1, 1, 0), empty, empty},
		{empty, filled(5, 1, 1), filled(6, 2, 1)},
	}

	// ranging twice must give the same rows
	for pass := 0; pass < 2; pass++ {
		var got [][]render.RenderCell
		for row := range grid.Rows() {
			if len(row) != grid.Width() {
				t.Fatalf("row length = %d, want %d", len(row), grid.Width())
			}
			got = append(got, row)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("pass %d rows mismatch (-want +got):\n%s", pass, diff)
		}
	}

	var seen int
	for range grid.Rows() {
		seen++
		break
	}
	if seen != 1 {
		t.Errorf("early break visited %d rows, want 1", seen)
	}
}

func TestAllPositions(t *testing.T) {
	grid := sampleGrid(t)
	var got []common.Point
	for pos, c := range grid.All() {
		if !c.IsEmpty {
			got = append(got, pos)
		}
	}
	want := []common.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("filled positions mismatch (-want +got):\n%s", diff)
	}
}

func TestCellsIsACopy(t *testing.T) {
	grid := sampleGrid(t)
	cells := grid.Cells()
	cells[0] = empty
	if got := grid.GetTile(0, 0); got.IsEmpty {
		t.Errorf("modifying Cells() changed the grid")
	}
}
