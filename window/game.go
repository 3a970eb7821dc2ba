// Package window shows the spinning mesh in a desktop window.
package window

import (
	"context"
	"fmt"

	"fortio.org/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/smasonuk/spin3d"
)

// Game renders one frame per scheduled tick into an offscreen image and
// presents it on every Draw. Ticks come from ebiten's Update, which runs at
// the configured FPS.
type Game struct {
	ctx       context.Context
	renderer  *spin3d.Renderer
	scheduler *spin3d.TickScheduler
	driver    *spin3d.FrameDriver
	surface   *ImageSurface
	width     int
	height    int
	hud       bool
	angle     float64
	stats     spin3d.FrameStats
	done      bool
}

// NewGame returns a game that quits once ctx is done.
func NewGame(ctx context.Context, cfg spin3d.Config, renderer *spin3d.Renderer) *Game {
	g := &Game{
		ctx:       ctx,
		renderer:  renderer,
		scheduler: spin3d.NewTickScheduler(float64(cfg.FPS)),
		surface:   NewImageSurface(ebiten.NewImage(cfg.Width, cfg.Height)),
		width:     cfg.Width,
		height:    cfg.Height,
		hud:       cfg.HUD,
	}
	g.driver = spin3d.NewFrameDriver(g.scheduler, cfg.Spinner(), cfg.FPS, g.render)
	g.driver.MaxFrames = cfg.Frames
	g.driver.OnStop = func() { g.done = true }
	g.driver.Start()
	return g
}

func (g *Game) render(angle float64) {
	g.angle = angle
	g.stats = g.renderer.RenderFrame(g.surface, angle)
}

// finished reports whether the frame limit was reached or the context ended.
func (g *Game) finished() bool {
	return g.done || g.ctx.Err() != nil
}

func (g *Game) Update() error {
	if g.finished() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.renderer.SetCulling(!g.renderer.Options().Cull)
		log.Infof("Culling %v", g.renderer.Options().Cull)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.renderer.SetOcclusion(!g.renderer.Options().Occlude)
		log.Infof("Occlusion %v", g.renderer.Options().Occlude)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}
	g.scheduler.Tick()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.Image(), nil)
	if g.hud {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nFPS %.1f  c: cull  o: occlude  h: hud  q: quit",
			spin3d.HUDText(g.angle, g.stats, g.renderer.Options()), ebiten.ActualFPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed or ctx is done.
func Run(ctx context.Context, cfg spin3d.Config, renderer *spin3d.Renderer) error {
	ebiten.SetWindowTitle("spin3d - " + cfg.Mesh)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.FPS)
	log.Infof("Window %dx%d at %d fps", cfg.Width, cfg.Height, cfg.FPS)
	return ebiten.RunGame(NewGame(ctx, cfg, renderer))
}
