package window

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/smasonuk/spin3d"
)

var (
	whiteOnce sync.Once
	whiteSub  *ebiten.Image
)

func whiteSubImage() *ebiten.Image {
	whiteOnce.Do(func() {
		whiteImage := ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSub
}

// ImageSurface draws frames onto an ebiten image.
type ImageSurface struct {
	img      *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{img: img}
}

func (s *ImageSurface) Image() *ebiten.Image {
	return s.img
}

func (s *ImageSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *ImageSurface) Clear(c color.Color) {
	s.img.Fill(c)
}

// FillPolygon fills a convex polygon as a triangle fan.
func (s *ImageSurface) FillPolygon(points []spin3d.Vector2, clr color.RGBA) {
	if len(points) < 3 || len(points) > 1<<16 {
		return
	}

	s.indices = s.indices[:0]
	for i := 2; i < len(points); i++ {
		s.indices = append(s.indices, 0, uint16(i-1), uint16(i))
	}

	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0

	s.vertices = s.vertices[:0]
	for _, p := range points {
		x, y := p.XY32()
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	s.img.DrawTriangles(s.vertices, s.indices, whiteSubImage(), op)
}

func (s *ImageSurface) StrokeLine(a, b spin3d.Vector2, clr color.RGBA, width float32) {
	x0, y0 := a.XY32()
	x1, y1 := b.XY32()
	vector.StrokeLine(s.img, x0, y0, x1, y1, width, clr, true)
}
