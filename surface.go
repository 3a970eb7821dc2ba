package spin3d

import "image/color"

// Surface is the drawing target of a frame. Coordinates are pixels with the
// origin at the top left.
type Surface interface {
	Size() (width, height int)
	Clear(c color.Color)
	FillPolygon(points []Vector2, c color.RGBA)
	StrokeLine(a, b Vector2, c color.RGBA, width float32)
}
