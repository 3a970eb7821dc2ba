package spin3d

// Face is an ordered list of indices into a mesh's vertices. Entries with
// fewer than three indices are edges or points and are never filled.
//
// Winding is taken as given. Meshes whose faces are wound inconsistently get
// normals pointing both ways and will show culling holes; that is expected.
type Face struct {
	Indices []int
}

func NewFace(indices ...int) Face {
	idx := make([]int, len(indices))
	copy(idx, indices)
	return Face{Indices: idx}
}

// IsPolygon reports whether the face has at least three vertices.
func (f Face) IsPolygon() bool {
	return len(f.Indices) >= 3
}

// gather collects the face's vertices from points into buf.
func (f Face) gather(buf, points []Vector3) []Vector3 {
	buf = buf[:0]
	for _, idx := range f.Indices {
		buf = append(buf, points[idx])
	}
	return buf
}

// FaceNormal is the unnormalised cross product of (p1-p0) and (p2-p0). Its
// direction follows the listed vertex order.
func FaceNormal(points []Vector3) Vector3 {
	if len(points) < 3 {
		return Vector3{}
	}
	return Cross(Subtract(points[1], points[0]), Subtract(points[2], points[0]))
}

// Centroid is the mean of the points.
func Centroid(points []Vector3) Vector3 {
	if len(points) == 0 {
		return Vector3{}
	}
	var sum Vector3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(points)))
}

// MeanDepth is the mean camera-space z of the points.
func MeanDepth(points []Vector3) float64 {
	if len(points) == 0 {
		return 0
	}
	sumZ := 0.0
	for _, p := range points {
		sumZ += p.Z
	}
	return sumZ / float64(len(points))
}

// IsFrontFacing reports whether a face with the given normal and centroid
// faces a camera sitting at the origin. A normal perpendicular to the view
// vector is back-facing.
func IsFrontFacing(normal, centroid Vector3) bool {
	view := Vector3{X: -centroid.X, Y: -centroid.Y, Z: -centroid.Z}
	return Dot(normal, view) > 0
}
