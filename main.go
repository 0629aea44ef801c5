package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ledgrid/config"
)

func main() {
	specPath := flag.String("config", "", "optional YAML run spec")
	projectPath := flag.String("project", "", "path to an LEd project JSON file")
	sample := flag.String("sample", "", "embedded sample project name")
	level := flag.Int("level", -1, "level index to show first")
	atlasPath := flag.String("atlas", "", "atlas image to draw tiles from")
	cell := flag.Int("cell", 0, "atlas cell size in pixels")
	zoom := flag.Float64("zoom", 0, "initial zoom")
	flag.Parse()

	spec, err := config.LoadRunSpec(*specPath)
	if err != nil {
		log.Fatal(err)
	}
	if *projectPath != "" {
		spec.Project = *projectPath
	}
	if *sample != "" {
		spec.Sample = *sample
	}
	if *level >= 0 {
		spec.Level = *level
	}
	if *atlasPath != "" {
		spec.Atlas.Path = *atlasPath
	}
	if *cell > 0 {
		spec.Atlas.CellSize = *cell
	}
	if *zoom > 0 {
		spec.Viewer.Zoom = *zoom
	}
	if spec.Project == "" && spec.Sample == "" {
		spec.Sample = "layered"
	}

	game, err := NewGame(spec)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("ledgrid")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
