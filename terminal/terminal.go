// Package terminal shows the spinning mesh in an ANSI terminal, two pixels
// per character cell.
package terminal

import (
	"context"
	"image/color"

	"fortio.org/log"
	"fortio.org/terminal/ansipixels"
	"github.com/smasonuk/spin3d"
)

// Run draws frames until q is pressed, the frame limit is reached or ctx
// ends. Keys c and o toggle culling and occlusion.
func Run(ctx context.Context, cfg spin3d.Config, renderer *spin3d.Renderer) error {
	ap := ansipixels.NewAnsiPixels(float64(cfg.FPS))
	if err := ap.Open(); err != nil {
		return err
	}
	ap.HideCursor()
	defer func() {
		ap.ShowCursor()
		ap.MouseTrackingOff()
		ap.ClearScreen()
		ap.Restore()
	}()
	ap.ClearScreen()
	ap.SyncBackgroundColor()
	renderer.SetBackground(color.RGBA{R: ap.Background.R, G: ap.Background.G, B: ap.Background.B, A: 255})

	surface := spin3d.NewRasterSurface(ap.W, ap.H*2)
	ap.OnResize = func() error {
		surface.Resize(ap.W, ap.H*2)
		return nil
	}

	scheduler := spin3d.NewTickScheduler(float64(cfg.FPS))
	hud := cfg.HUD
	done := false
	var drawErr error
	driver := spin3d.NewFrameDriver(scheduler, cfg.Spinner(), cfg.FPS, func(angle float64) {
		stats := renderer.RenderFrame(surface, angle)
		if hud {
			spin3d.DrawHUD(surface.Image(), spin3d.HUDText(angle, stats, renderer.Options()))
		}
		drawErr = present(ap, surface)
	})
	driver.MaxFrames = cfg.Frames
	driver.OnStop = func() { done = true }
	driver.Start()

	log.Infof("Terminal %dx%d pixels at %d fps", ap.W, ap.H*2, cfg.FPS)
	return ap.FPSTicks(ctx, func(context.Context) bool {
		if len(ap.Data) > 0 {
			switch ap.Data[0] {
			case 'q', 'Q', 3:
				return false
			case 'c':
				renderer.SetCulling(!renderer.Options().Cull)
			case 'o':
				renderer.SetOcclusion(!renderer.Options().Occlude)
			case 'h':
				hud = !hud
			}
		}
		scheduler.Tick()
		if drawErr != nil {
			log.Errf("Draw failed: %v", drawErr)
			return false
		}
		return !done
	})
}

func present(ap *ansipixels.AnsiPixels, surface *spin3d.RasterSurface) error {
	ap.StartSyncMode()
	defer ap.EndSyncMode()
	if ap.ColorOutput.TrueColor {
		return ap.DrawTrueColorImage(0, 0, surface.Image())
	}
	return ap.Draw216ColorImage(0, 0, surface.Image())
}
