package spin3d

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
)

var errNoFrames = errors.New("no frames to encode")

// ShadePalette holds the background, every wireframe shade Shade can
// produce (in steps of 4, plus the brightest), the default shade and the HUD
// colors.
func ShadePalette(background color.RGBA) color.Palette {
	palette := color.Palette{background, DefaultShade, hudColor, color.White}
	for g := shadeGreenMin; g < shadeGreenMax; g += 4 {
		palette = append(palette, color.RGBA{R: shadeRedBlue, G: uint8(g), B: shadeRedBlue, A: 255})
	}
	return append(palette, color.RGBA{R: shadeRedBlue, G: shadeGreenMax, B: shadeRedBlue, A: 255})
}

// GIFRecorder keeps copies of rendered frames for an animated GIF.
type GIFRecorder struct {
	FPS     int
	Palette color.Palette
	frames  []*image.Paletted
}

func NewGIFRecorder(fps int, background color.RGBA) *GIFRecorder {
	return &GIFRecorder{FPS: fps, Palette: ShadePalette(background)}
}

// Add converts img to the palette and stores it.
func (g *GIFRecorder) Add(img image.Image) {
	bounds := img.Bounds()
	p := image.NewPaletted(bounds, g.Palette)
	draw.Draw(p, bounds, img, bounds.Min, draw.Src)
	g.frames = append(g.frames, p)
}

func (g *GIFRecorder) Len() int {
	return len(g.frames)
}

// Encode writes the frames as a looping GIF.
func (g *GIFRecorder) Encode(w io.Writer) error {
	if len(g.frames) == 0 {
		return errNoFrames
	}
	delay := 100 / max(g.FPS, 1) // centiseconds
	if delay < 1 {
		delay = 1
	}

	out := &gif.GIF{LoopCount: 0}
	for _, f := range g.frames {
		out.Image = append(out.Image, f)
		out.Delay = append(out.Delay, delay)
	}
	return gif.EncodeAll(w, out)
}

// RecordFrames renders frames offscreen as fast as possible and adds each
// one to rec. Frames come from a FrameDriver on a TickScheduler that is
// ticked in a loop, so the angle steps exactly as it would on screen.
func RecordFrames(rec *GIFRecorder, renderer *Renderer, spinner *Spinner, width, height, frames int, hud bool) {
	surface := NewRasterSurface(width, height)
	scheduler := NewTickScheduler(float64(rec.FPS))
	driver := NewFrameDriver(scheduler, spinner, rec.FPS, func(angle float64) {
		stats := renderer.RenderFrame(surface, angle)
		if hud {
			DrawHUD(surface.Image(), HUDText(angle, stats, renderer.Options()))
		}
		rec.Add(surface.Image())
	})
	driver.MaxFrames = max(frames, 1)
	driver.Start()
	for scheduler.Pending() > 0 {
		scheduler.Tick()
	}
}
