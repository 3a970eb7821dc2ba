package spin3d

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// RasterSurface draws into an in-memory RGBA image with anti-aliased
// polygon rasterisation. It backs the terminal and GIF outputs.
type RasterSurface struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func NewRasterSurface(width, height int) *RasterSurface {
	return &RasterSurface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

func (r *RasterSurface) Image() *image.RGBA {
	return r.img
}

func (r *RasterSurface) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the image when the size changes.
func (r *RasterSurface) Resize(width, height int) {
	if w, h := r.Size(); w == width && h == height {
		return
	}
	r.img = image.NewRGBA(image.Rect(0, 0, width, height))
	r.z.Reset(width, height)
}

func (r *RasterSurface) Clear(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *RasterSurface) FillPolygon(points []Vector2, c color.RGBA) {
	if len(points) < 3 || !finite(points...) {
		return
	}
	w, h := r.Size()
	r.z.Reset(w, h)
	x, y := points[0].XY32()
	r.z.MoveTo(x, y)
	for _, p := range points[1:] {
		x, y = p.XY32()
		r.z.LineTo(x, y)
	}
	r.z.ClosePath()
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}

// StrokeLine draws the segment as a quad width pixels wide. A zero length
// segment becomes a square dot.
func (r *RasterSurface) StrokeLine(a, b Vector2, c color.RGBA, width float32) {
	if !finite(a, b) {
		return
	}
	half := math.Max(float64(width), 1) / 2
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	var nx, ny, tx, ty float64
	if length == 0 {
		nx, ty = half, half
	} else {
		nx, ny = -dy/length*half, dx/length*half
	}
	r.FillPolygon([]Vector2{
		{a.X + nx - tx, a.Y + ny - ty},
		{b.X + nx + tx, b.Y + ny + ty},
		{b.X - nx + tx, b.Y - ny + ty},
		{a.X - nx - tx, a.Y - ny - ty},
	}, c)
}

func finite(points ...Vector2) bool {
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}
