package spin3d

import "image/color"

type drawCall struct {
	op     string // clear, fill or stroke
	points []Vector2
	color  color.RGBA
	width  float32
}

// recordingSurface is a mock Surface that keeps every call in order.
type recordingSurface struct {
	w, h  int
	calls []drawCall
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{w: w, h: h}
}

func (s *recordingSurface) Size() (int, int) {
	return s.w, s.h
}

func (s *recordingSurface) Clear(c color.Color) {
	r, g, b, a := c.RGBA()
	s.calls = append(s.calls, drawCall{op: "clear", color: color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}})
}

func (s *recordingSurface) FillPolygon(points []Vector2, c color.RGBA) {
	s.calls = append(s.calls, drawCall{op: "fill", points: append([]Vector2(nil), points...), color: c})
}

func (s *recordingSurface) StrokeLine(a, b Vector2, c color.RGBA, width float32) {
	s.calls = append(s.calls, drawCall{op: "stroke", points: []Vector2{a, b}, color: c, width: width})
}

func (s *recordingSurface) ops() []string {
	ops := make([]string, len(s.calls))
	for i, c := range s.calls {
		ops[i] = c.op
	}
	return ops
}
