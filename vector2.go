package spin3d

// Vector2 is a point on the projection plane or on a drawing surface.
type Vector2 struct {
	X float64
	Y float64
}

// float32 pair for the drawing backends
func (v Vector2) XY32() (float32, float32) {
	return float32(v.X), float32(v.Y)
}

// Inside reports whether v lies within a w x h surface.
func (v Vector2) Inside(w, h int) bool {
	return v.X >= 0 && v.Y >= 0 && v.X <= float64(w) && v.Y <= float64(h)
}
