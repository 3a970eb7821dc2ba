package spin3d

import (
	"image/color"
	"math"

	"fortio.org/safecast"
)

const (
	shadeGreenMin = 60
	shadeGreenMax = 255
	shadeRedBlue  = 30
)

// DefaultShade is used for faces whose normal has zero length.
var DefaultShade = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// Shade derives a wireframe color from how squarely the face points along the
// depth axis: intensity |n.z|/|n| drives the green channel.
func Shade(normal Vector3) color.RGBA {
	length := normal.Length()
	if length == 0 {
		return DefaultShade
	}
	intensity := math.Abs(normal.Z) / length
	if intensity > 1 {
		intensity = 1
	}

	g := shadeGreenMin + intensity*(shadeGreenMax-shadeGreenMin)
	return color.RGBA{
		R: shadeRedBlue,
		G: safecast.MustRound[uint8](g),
		B: shadeRedBlue,
		A: 255,
	}
}
