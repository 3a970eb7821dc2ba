package spin3d

import (
	"errors"
	"fmt"
	"slices"

	"fortio.org/log"
	"github.com/go-gl/mathgl/mgl64"
)

var ErrInvalidMesh = errors.New("invalid mesh")

// Mesh is an ordered vertex list plus an ordered face list. It is built once
// and treated as read-only while rendering.
type Mesh struct {
	Vertices   []Vector3
	Faces      []Face
	pointIndex map[Vector3]int
}

func NewMesh() *Mesh {
	return &Mesh{
		Vertices:   make([]Vector3, 0, 16),
		Faces:      make([]Face, 0, 16),
		pointIndex: make(map[Vector3]int),
	}
}

// AddVertex appends p unconditionally and returns its index.
func (m *Mesh) AddVertex(p Vector3) int {
	m.ensurePointIndex()
	m.Vertices = append(m.Vertices, p)
	idx := len(m.Vertices) - 1
	if _, found := m.pointIndex[p]; !found {
		m.pointIndex[p] = idx
	}
	return idx
}

// ensurePointIndex rebuilds the point lookup after anything that moved the
// vertices or for a Mesh not made by NewMesh.
func (m *Mesh) ensurePointIndex() {
	if m.pointIndex != nil {
		return
	}
	m.pointIndex = make(map[Vector3]int, len(m.Vertices))
	for i, v := range m.Vertices {
		if _, found := m.pointIndex[v]; !found {
			m.pointIndex[v] = i
		}
	}
}

// AddPoint returns the index of p, adding it only if an identical point is
// not already in the mesh.
func (m *Mesh) AddPoint(p Vector3) int {
	m.ensurePointIndex()
	if index, found := m.pointIndex[p]; found {
		return index
	}
	return m.AddVertex(p)
}

func (m *Mesh) AddFace(indices ...int) {
	m.Faces = append(m.Faces, NewFace(indices...))
}

// AddFacePoints adds a face given by its corner positions, sharing any
// vertex already present. Consecutive repeats collapse, so a DXF triangle
// (fourth corner equal to the third) becomes a three-index face.
func (m *Mesh) AddFacePoints(points []Vector3) []int {
	indices := make([]int, 0, len(points))
	for _, p := range points {
		idx := m.AddPoint(p)
		if n := len(indices); n > 0 && indices[n-1] == idx {
			continue
		}
		indices = append(indices, idx)
	}
	if n := len(indices); n > 1 && indices[0] == indices[n-1] {
		indices = indices[:n-1]
	}
	m.Faces = append(m.Faces, Face{Indices: indices})
	return indices
}

// Validate checks that every face index refers to a vertex.
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		for _, idx := range f.Indices {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidMesh, i, idx, len(m.Vertices))
			}
		}
	}
	return nil
}

// PolygonCount is the number of faces with three or more vertices.
func (m *Mesh) PolygonCount() int {
	n := 0
	for _, f := range m.Faces {
		if f.IsPolygon() {
			n++
		}
	}
	return n
}

func (m *Mesh) Copy() *Mesh {
	c := &Mesh{
		Vertices: make([]Vector3, len(m.Vertices)),
		Faces:    make([]Face, len(m.Faces)),
	}
	copy(c.Vertices, m.Vertices)
	for i, f := range m.Faces {
		c.Faces[i] = NewFace(f.Indices...)
	}
	return c
}

// Bounds returns the minimum and maximum corners of the bounding box.
func (m *Mesh) Bounds() (Vector3, Vector3) {
	if len(m.Vertices) == 0 {
		return Vector3{}, Vector3{}
	}
	lo, hi := m.Vertices[0], m.Vertices[0]
	for _, p := range m.Vertices {
		lo.X, hi.X = min(lo.X, p.X), max(hi.X, p.X)
		lo.Y, hi.Y = min(lo.Y, p.Y), max(hi.Y, p.Y)
		lo.Z, hi.Z = min(lo.Z, p.Z), max(hi.Z, p.Z)
	}
	return lo, hi
}

// Extents is the size of the bounding box along each axis.
func (m *Mesh) Extents() Vector3 {
	lo, hi := m.Bounds()
	return Subtract(hi, lo)
}

// Radius is the distance from the origin to the furthest vertex.
func (m *Mesh) Radius() float64 {
	r := 0.0
	for _, p := range m.Vertices {
		r = max(r, p.Length())
	}
	return r
}

// Centre moves all points so that the centre of the bounding box is at 0,0,0.
func (m *Mesh) Centre() {
	lo, hi := m.Bounds()
	centre := lo.Add(hi).Scale(0.5)
	for i := range m.Vertices {
		m.Vertices[i] = Subtract(m.Vertices[i], centre)
	}
	m.pointIndex = nil
}

func (m *Mesh) Scale(s float64) {
	for i := range m.Vertices {
		m.Vertices[i] = m.Vertices[i].Scale(s)
	}
	m.pointIndex = nil
}

// FitTo centres the mesh and scales it so its furthest vertex sits at radius.
func (m *Mesh) FitTo(radius float64) {
	m.Centre()
	if r := m.Radius(); r > 0 {
		m.Scale(radius / r)
	}
	e := m.Extents()
	log.LogVf("Mesh fitted to radius %.2f: X: %.2f, Y: %.2f, Z: %.2f", radius, e.X, e.Y, e.Z)
}

// Transform applies mat to every vertex permanently.
func (m *Mesh) Transform(mat mgl64.Mat4) {
	for i, p := range m.Vertices {
		m.Vertices[i] = vector3FromVec3(mgl64.TransformCoordinate(p.vec3(), mat))
	}
	m.pointIndex = nil
}

// ReverseWinding flips the vertex order of every face, turning each normal
// around.
func (m *Mesh) ReverseWinding() {
	for _, f := range m.Faces {
		slices.Reverse(f.Indices)
	}
}
