package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/milk9111/ledgrid/config"
	"github.com/milk9111/ledgrid/levels"
)

func main() {
	specPath := flag.String("config", "", "optional YAML run spec")
	projectPath := flag.String("project", "", "path to an LEd project JSON file")
	sample := flag.String("sample", "", "embedded sample project: "+strings.Join(levels.Names(), ", "))
	level := flag.Int("level", -1, "level index to compose (default from spec, else 0)")
	mode := flag.String("mode", "rows", "output mode: debug, rows, summary or all")
	layers := flag.String("layers", "", "comma separated layer identifiers to compose (default all)")
	atlasPath := flag.String("atlas", "", "atlas image used by -png")
	cell := flag.Int("cell", 0, "atlas cell size in pixels")
	padding := flag.Int("padding", -1, "atlas padding in pixels")
	spacing := flag.Int("spacing", -1, "atlas spacing in pixels")
	pngOut := flag.String("png", "", "write the composed level to this PNG file")
	scale := flag.Int("scale", 0, "PNG scale factor")
	watch := flag.Bool("watch", false, "re-run whenever the project or atlas file changes")
	flag.Parse()

	spec, err := config.LoadRunSpec(*specPath)
	if err != nil {
		log.Fatal(err)
	}

	// flags win over the run spec file
	if *projectPath != "" {
		spec.Project = *projectPath
	}
	if *sample != "" {
		spec.Sample = *sample
	}
	if *level >= 0 {
		spec.Level = *level
	}
	if *layers != "" {
		spec.Layers = strings.Split(*layers, ",")
	}
	if *atlasPath != "" {
		spec.Atlas.Path = *atlasPath
	}
	if *cell > 0 {
		spec.Atlas.CellSize = *cell
	}
	if *padding >= 0 {
		spec.Atlas.Padding = *padding
	}
	if *spacing >= 0 {
		spec.Atlas.Spacing = *spacing
	}
	if *pngOut != "" {
		spec.Export.PNG = *pngOut
	}
	if *scale > 0 {
		spec.Export.Scale = *scale
	}

	if spec.Project == "" && spec.Sample == "" {
		spec.Sample = "minimal"
	}

	p := &printer{spec: spec, mode: *mode, out: os.Stdout}

	if !*watch {
		if err := p.run(context.Background()); err != nil {
			log.Fatal(err)
		}
		return
	}

	if spec.Project == "" {
		log.Fatal("-watch needs -project")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := p.watch(ctx); err != nil {
		log.Fatal(err)
	}
}
