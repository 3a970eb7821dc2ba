package spin3d

import (
	"fmt"
	"image"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var hudColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// hudDisplay lets tinyfont draw straight into an RGBA image.
type hudDisplay struct {
	img *image.RGBA
}

func (d hudDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(min(b.Dx(), 1<<15-1)), int16(min(b.Dy(), 1<<15-1))
}

func (d hudDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.img.SetRGBA(int(x), int(y), c)
}

func (d hudDisplay) Display() error { return nil }

// HUDText is the status line drawn over raster frames.
func HUDText(angle float64, stats FrameStats, opts Options) string {
	return fmt.Sprintf("a=%.2f faces %d/%d cull:%s occ:%s",
		angle, stats.Drawn, stats.Faces, onOff(opts.Cull), onOff(opts.Occlude))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// DrawHUD writes the lines of text in the top left corner of img.
func DrawHUD(img *image.RGBA, lines ...string) {
	font := &proggy.TinySZ8pt7b
	lineHeight := int16(max(font.YAdvance, 8))
	d := hudDisplay{img: img}
	y := lineHeight
	for _, s := range lines {
		tinyfont.WriteLine(d, font, 2, y, s, hudColor)
		y += lineHeight
	}
}
