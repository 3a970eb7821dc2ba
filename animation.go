package spin3d

import "math"

// Spinner holds the accumulated rotation angle. Each Advance adds
// RadiansPerSecond / TPS, so the mesh turns at the same speed whatever the
// frame rate.
type Spinner struct {
	RadiansPerSecond float64
	TPS              float64
	// Wrap keeps the angle in [0, 2π). Rendering is unaffected.
	Wrap  bool
	angle float64
}

func NewSpinner(radiansPerSecond, tps float64) *Spinner {
	return &Spinner{RadiansPerSecond: radiansPerSecond, TPS: tps}
}

func (s *Spinner) Angle() float64 {
	return s.angle
}

// Step is the angle added by one Advance.
func (s *Spinner) Step() float64 {
	if s.TPS <= 0 {
		return 0
	}
	return s.RadiansPerSecond / s.TPS
}

// Advance moves the angle on by one tick and returns the new angle.
func (s *Spinner) Advance() float64 {
	s.angle += s.Step()
	if s.Wrap {
		s.angle = math.Mod(s.angle, 2*math.Pi)
		if s.angle < 0 {
			s.angle += 2 * math.Pi
		}
		if s.angle >= 2*math.Pi {
			s.angle = 0
		}
	}
	return s.angle
}
