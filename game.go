package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/ledgrid/atlas"
	"github.com/milk9111/ledgrid/common"
	"github.com/milk9111/ledgrid/config"
	"github.com/milk9111/ledgrid/led"
	"github.com/milk9111/ledgrid/levels"
	"github.com/milk9111/ledgrid/render"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	panSpeed   = 6.0
	zoomStep   = 1.25
	zoomSmooth = 0.2
	minZoom    = 0.25
	maxZoom    = 16.0
)

// Game shows one composed level of a project at a time.
type Game struct {
	spec    *config.RunSpec
	project *led.Project
	level   int
	grid    *render.RenderGrid
	tiles   *tileCache
	bg      color.RGBA

	watcher *config.Watcher

	camX, camY float64
	zoom       float64
	targetZoom float64
	status     string
}

func NewGame(spec *config.RunSpec) (*Game, error) {
	g := &Game{
		spec:       spec,
		level:      spec.Level,
		zoom:       spec.Viewer.Zoom,
		targetZoom: spec.Viewer.Zoom,
	}
	if err := g.reload(); err != nil {
		return nil, err
	}

	if spec.Project != "" {
		files := []string{spec.Project}
		if spec.Atlas.Path != "" {
			if path, err := atlas.Resolve(spec.Atlas, filepath.Dir(spec.Project)); err == nil {
				files = append(files, path)
			}
		}
		w, err := config.WatchFiles(files...)
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) loadProject() (*led.Project, error) {
	if g.spec.Project != "" {
		return led.LoadProject(g.spec.Project)
	}
	return levels.LoadProjectFromFS(g.spec.Sample)
}

// reload re-reads the project and the atlas and recomposes the current level.
// Nothing changes unless all of it succeeds.
func (g *Game) reload() error {
	p, err := g.loadProject()
	if err != nil {
		return err
	}
	if len(p.Levels) == 0 {
		return fmt.Errorf("project %q has no levels", p.Name)
	}

	var tiles *tileCache
	if g.spec.Atlas.Path != "" {
		baseDir := ""
		if p.ProjectDir != nil {
			baseDir = filepath.FromSlash(*p.ProjectDir)
		}
		a, err := atlas.Load(g.spec.Atlas, baseDir)
		if err != nil {
			return err
		}
		tiles = newTileCache(a)
	}

	level := wrapLevel(g.level, len(p.Levels))
	grid, err := g.compose(p, level)
	if err != nil {
		return err
	}

	g.project = p
	g.tiles = tiles
	g.bg = g.background()
	g.show(level, grid)
	return nil
}

func (g *Game) background() color.RGBA {
	for _, hex := range []string{g.spec.Viewer.Background, g.project.BgColor} {
		if c, ok := common.ParseHexColor(hex); ok {
			return c
		}
	}
	return color.RGBA{A: 0xff}
}

func (g *Game) compose(p *led.Project, level int) (*render.RenderGrid, error) {
	if len(g.spec.Layers) > 0 {
		return render.ComposeLayers(p, level, render.OnlyLayers(g.spec.Layers...))
	}
	return render.Compose(p, level)
}

// show makes grid, composed from level of the current project, the one drawn.
func (g *Game) show(level int, grid *render.RenderGrid) {
	g.level = level
	g.grid = grid

	// center the level
	size := grid.PixelSize()
	g.camX = float64(size.X) / 2
	g.camY = float64(size.Y) / 2
	g.status = fmt.Sprintf("%s [%d/%d] %s", g.project.Name, level+1, len(g.project.Levels), g.project.Levels[level].Identifier)
}

func (g *Game) switchLevel(step int) {
	level := wrapLevel(g.level+step, len(g.project.Levels))
	grid, err := g.compose(g.project, level)
	if err != nil {
		log.Printf("compose level %d: %v", level, err)
		return
	}
	g.show(level, grid)
}

// wrapLevel keeps i inside [0, n).
func wrapLevel(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("%s changed, reloading", path)
			if err := g.reload(); err != nil {
				log.Printf("reload: %v", err)
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("watch: %v", err)
			}
			return
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	g.pollWatcher()

	step := panSpeed / g.zoom
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		g.camX -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		g.camX += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		g.camY -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		g.camY += step
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.targetZoom = min(g.targetZoom*zoomStep, maxZoom)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.targetZoom = max(g.targetZoom/zoomStep, minZoom)
	}
	g.zoom = common.Lerp(g.zoom, g.targetZoom, zoomSmooth)

	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		g.switchLevel(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		g.switchLevel(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reload(); err != nil {
			log.Printf("reload: %v", err)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)

	if g.grid != nil {
		offX := baseWidth/2 - g.camX*g.zoom
		offY := baseHeight/2 - g.camY*g.zoom
		drawGrid(screen, g.grid, g.tiles, offX, offY, g.zoom)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  zoom %.2f  FPS %.0f\narrows: pan  [ ]: zoom  PgUp/PgDn: level  R: reload",
		g.status, g.zoom, ebiten.ActualFPS()))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
