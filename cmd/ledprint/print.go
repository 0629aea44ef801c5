package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/milk9111/ledgrid/atlas"
	"github.com/milk9111/ledgrid/config"
	"github.com/milk9111/ledgrid/led"
	"github.com/milk9111/ledgrid/levels"
	"github.com/milk9111/ledgrid/render"
)

type printer struct {
	spec *config.RunSpec
	mode string
	out  io.Writer
}

func (p *printer) loadProject() (*led.Project, error) {
	if p.spec.Project != "" {
		return led.LoadProject(p.spec.Project)
	}
	return levels.LoadProjectFromFS(p.spec.Sample)
}

// filter is nil, keeping every layer, unless the run names some layers.
func (p *printer) filter() render.LayerFilter {
	if len(p.spec.Layers) == 0 {
		return nil
	}
	return render.OnlyLayers(p.spec.Layers...)
}

func (p *printer) compose(project *led.Project) (*render.RenderGrid, error) {
	return render.ComposeLayers(project, p.spec.Level, p.filter())
}

func (p *printer) run(ctx context.Context) error {
	project, err := p.loadProject()
	if err != nil {
		return err
	}

	switch p.mode {
	case "debug":
		fmt.Fprintf(p.out, "%+v\n", *project)
	case "summary":
		if err := printSummary(ctx, p.out, project, p.filter()); err != nil {
			return err
		}
	case "all":
		grids, err := render.ComposeAllLayers(ctx, project, p.filter())
		if err != nil {
			return err
		}
		for i, grid := range grids {
			fmt.Fprintf(p.out, "### LEVEL %d: %s ###\n", i, project.Levels[i].Identifier)
			printRows(p.out, grid)
		}
	case "rows", "":
		grid, err := p.compose(project)
		if err != nil {
			return err
		}
		fmt.Fprintln(p.out, "### MAP DATA USING ITER ###")
		printRows(p.out, grid)
	default:
		return fmt.Errorf("unknown mode %q", p.mode)
	}

	if p.spec.Export.PNG != "" {
		return p.exportPNG(project)
	}
	return nil
}

func (p *printer) exportPNG(project *led.Project) error {
	grid, err := p.compose(project)
	if err != nil {
		return err
	}

	baseDir := ""
	if project.ProjectDir != nil {
		baseDir = filepath.FromSlash(*project.ProjectDir)
	}
	a, err := atlas.Load(p.spec.Atlas, baseDir)
	if err != nil {
		return err
	}
	img, err := a.Paint(grid, p.spec.Export.Scale)
	if err != nil {
		return err
	}
	if err := atlas.WritePNG(p.spec.Export.PNG, img); err != nil {
		return err
	}
	log.Printf("wrote %s (%dx%d)", p.spec.Export.PNG, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

// printRows writes one line per cell, row by row.
func printRows(w io.Writer, grid *render.RenderGrid) {
	rowNum := 0
	for row := range grid.Rows() {
		for colNum, cell := range row {
			if cell.IsEmpty {
				fmt.Fprintf(w, "%d, %d: EMPTY\n", rowNum, colNum)
				continue
			}
			fmt.Fprintf(w, "%d, %d: %d @ %d,%d\n", rowNum, colNum, cell.TileID, cell.AtlasPos.X, cell.AtlasPos.Y)
		}
		rowNum++
	}
}

func printSummary(ctx context.Context, w io.Writer, project *led.Project, keep render.LayerFilter) error {
	fmt.Fprintf(w, "project %q (json %s, bg %s): %d levels\n", project.Name, project.JSONVersion, project.BgColor, len(project.Levels))
	if len(project.Levels) == 0 {
		return nil
	}

	grids, err := render.ComposeAllLayers(ctx, project, keep)
	if err != nil {
		return err
	}
	for i, lvl := range project.Levels {
		kinds := make([]string, 0, len(lvl.LayerInstances))
		for _, li := range lvl.LayerInstances {
			kinds = append(kinds, fmt.Sprintf("%s:%s", li.Identifier, li.Type))
		}
		grid := grids[i]
		fmt.Fprintf(w, "  [%d] %s %dx%dpx grid %dx%d, %d/%d cells filled, layers %s\n",
			i, lvl.Identifier, lvl.PxWid, lvl.PxHei, grid.Width(), grid.Height(),
			grid.FilledCount(), grid.Len(), strings.Join(kinds, " "))
	}
	return nil
}
