package spin3d

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// NewCube returns an axis-aligned cube of the given edge length centred on
// the origin. Every face is wound so that its normal points outward.
func NewCube(size float64) *Mesh {
	s := size / 2
	m := NewMesh()
	for _, p := range [8]Vector3{
		{-s, -s, -s}, {s, -s, -s}, {s, s, -s}, {-s, s, -s},
		{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s},
	} {
		m.AddVertex(p)
	}
	m.AddFace(0, 3, 2, 1) // -z
	m.AddFace(4, 5, 6, 7) // +z
	m.AddFace(0, 4, 7, 3) // -x
	m.AddFace(1, 2, 6, 5) // +x
	m.AddFace(0, 1, 5, 4) // -y
	m.AddFace(3, 7, 6, 2) // +y
	return m
}

// NewTorus returns a ring around the Y axis made of segU by segV quads.
func NewTorus(major, minor float64, segU, segV int) *Mesh {
	segU = max(segU, 3)
	segV = max(segV, 3)

	m := NewMesh()
	for u := 0; u < segU; u++ {
		theta := 2 * math.Pi * float64(u) / float64(segU)
		ct, st := math.Cos(theta), math.Sin(theta)
		for v := 0; v < segV; v++ {
			phi := 2 * math.Pi * float64(v) / float64(segV)
			r := major + minor*math.Cos(phi)
			m.AddVertex(Vector3{X: r * ct, Y: minor * math.Sin(phi), Z: r * st})
		}
	}

	idx := func(u, v int) int {
		return (u%segU)*segV + v%segV
	}
	for u := 0; u < segU; u++ {
		for v := 0; v < segV; v++ {
			m.AddFace(idx(u, v), idx(u, v+1), idx(u+1, v+1), idx(u+1, v))
		}
	}
	return m
}

// NewUVSphere returns a sphere of latitude bands and longitude slices. The
// poles are single vertices, so the polar rings are triangles.
func NewUVSphere(radius float64, slices, stacks int) *Mesh {
	slices = max(slices, 3)
	stacks = max(stacks, 2)

	m := NewMesh()
	top := m.AddVertex(Vector3{Y: radius})
	for j := 1; j < stacks; j++ {
		phi := math.Pi * float64(j) / float64(stacks)
		y, r := radius*math.Cos(phi), radius*math.Sin(phi)
		for i := 0; i < slices; i++ {
			theta := 2 * math.Pi * float64(i) / float64(slices)
			m.AddVertex(Vector3{X: r * math.Cos(theta), Y: y, Z: r * math.Sin(theta)})
		}
	}
	bottom := m.AddVertex(Vector3{Y: -radius})

	ring := func(j, i int) int {
		return 1 + (j-1)*slices + i%slices
	}
	for i := 0; i < slices; i++ {
		m.AddFace(top, ring(1, i+1), ring(1, i))
	}
	for j := 1; j < stacks-1; j++ {
		for i := 0; i < slices; i++ {
			m.AddFace(ring(j, i), ring(j, i+1), ring(j+1, i+1), ring(j+1, i))
		}
	}
	for i := 0; i < slices; i++ {
		m.AddFace(bottom, ring(stacks-1, i), ring(stacks-1, i+1))
	}
	return m
}

const (
	terrainAlpha = 2.
	terrainBeta  = 2.
	terrainOct   = 3
	terrainFreq  = 0.15
)

// NewTerrain returns a cols by rows grid of quads in the XZ plane, centred
// on the origin, with heights from 2D Perlin noise scaled by amplitude.
// The same seed always produces the same surface.
func NewTerrain(cols, rows int, cell, amplitude float64, seed int64) *Mesh {
	cols = max(cols, 1)
	rows = max(rows, 1)
	noise := perlin.NewPerlin(terrainAlpha, terrainBeta, terrainOct, seed)

	m := NewMesh()
	for i := 0; i <= cols; i++ {
		for j := 0; j <= rows; j++ {
			h := amplitude * noise.Noise2D(float64(i)*terrainFreq, float64(j)*terrainFreq)
			m.AddVertex(Vector3{
				X: (float64(i) - float64(cols)/2) * cell,
				Y: h,
				Z: (float64(j) - float64(rows)/2) * cell,
			})
		}
	}

	idx := func(i, j int) int {
		return i*(rows+1) + j
	}
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			m.AddFace(idx(i, j), idx(i, j+1), idx(i+1, j+1), idx(i+1, j))
		}
	}
	return m
}
