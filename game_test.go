package main

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/ledgrid/common"
	"github.com/milk9111/ledgrid/config"
	"github.com/milk9111/ledgrid/levels"
	"github.com/milk9111/ledgrid/render"
)

func TestWrapLevel(t *testing.T) {
	cases := []struct {
		i, n, want int
	}{
		{0, 3, 0},
		{3, 3, 0},
		{-1, 3, 2},
		{7, 3, 1},
		{5, 0, 0},
	}
	for _, c := range cases {
		if got := wrapLevel(c.i, c.n); got != c.want {
			t.Errorf("wrapLevel(%d, %d) = %d, want %d", c.i, c.n, got, c.want)
		}
	}
}

func TestTileGeoM(t *testing.T) {
	tileSize := common.Point{X: 16, Y: 16}
	src := image.Pt(16, 16)

	cases := []struct {
		name         string
		cell         render.RenderCell
		inX, inY     float64
		wantX, wantY float64
	}{
		{"origin", render.RenderCell{}, 0, 0, 32, 0},
		{"far_corner", render.RenderCell{}, 16, 16, 64, 32},
		{"flip_x_origin", render.RenderCell{FlipX: true}, 0, 0, 64, 0},
		{"flip_x_far", render.RenderCell{FlipX: true}, 16, 0, 32, 0},
		{"flip_y_origin", render.RenderCell{FlipY: true}, 0, 0, 32, 32},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := tileGeoM(common.Point{X: 1, Y: 0}, c.cell, src, tileSize, 0, 0, 2)
			x, y := m.Apply(c.inX, c.inY)
			if x != c.wantX || y != c.wantY {
				t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)", c.inX, c.inY, x, y, c.wantX, c.wantY)
			}
		})
	}

	t.Run("placeholder_scales_to_tile", func(t *testing.T) {
		m := tileGeoM(common.Point{X: 2, Y: 1}, render.RenderCell{}, image.Pt(1, 1), tileSize, 10, 20, 1)
		x, y := m.Apply(1, 1)
		if x != 58 || y != 52 {
			t.Errorf("Apply(1, 1) = (%v, %v), want (58, 52)", x, y)
		}
	})
}

func TestReloadKeepsStateOnFailure(t *testing.T) {
	data, err := levels.LevelsFS.ReadFile("layered.json")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "layered.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	spec, err := config.LoadRunSpec("")
	if err != nil {
		t.Fatal(err)
	}
	spec.Project = path
	spec.Level = 1

	g, err := NewGame(spec)
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	defer g.Close()

	project, grid, status := g.project, g.grid, g.status
	if status != "layered [2/2] Cellar" {
		t.Fatalf("status = %q", status)
	}

	// same number of levels, but the current one can no longer be composed
	bare := `{"name":"broken","levels":[{"identifier":"A","layerInstances":[]},{"identifier":"B","layerInstances":[]}]}`
	if err := os.WriteFile(path, []byte(bare), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := g.reload(); !errors.Is(err, render.ErrEmptyLevel) {
		t.Fatalf("reload error = %v, want ErrEmptyLevel", err)
	}
	if g.project != project || g.grid != grid || g.status != status || g.level != 1 {
		t.Errorf("failed reload changed the game: project %q level %d status %q", g.project.Name, g.level, g.status)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := g.reload(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if g.project == project || g.grid == grid {
		t.Errorf("successful reload kept the old project or grid")
	}
}
