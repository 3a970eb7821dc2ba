package spin3d

// Project performs the perspective divide. p.Z must not be zero; keeping the
// mesh in front of the camera is the caller's job (see Options.DepthOffset).
func Project(p Vector3) Vector2 {
	return Vector2{X: p.X / p.Z, Y: p.Y / p.Z}
}

// ToScreen maps normalized device coordinates in [-1,1] to pixels. Device up
// is screen down.
func ToScreen(p Vector2, width, height int) Vector2 {
	return Vector2{
		X: (p.X + 1) / 2 * float64(width),
		Y: (1 - (p.Y+1)/2) * float64(height),
	}
}

// FromScreen is the inverse of ToScreen.
func FromScreen(s Vector2, width, height int) Vector2 {
	return Vector2{
		X: s.X/float64(width)*2 - 1,
		Y: (1-s.Y/float64(height))*2 - 1,
	}
}
