package spin3d

import (
	"image/color"

	"fortio.org/log"
)

// Options control a Renderer. The zero value draws nothing useful; start
// from DefaultOptions.
type Options struct {
	Cull        bool
	Occlude     bool
	DepthOffset float64
	Background  color.RGBA
	LineWidth   float32
}

func DefaultOptions() Options {
	return Options{
		Cull:        true,
		Occlude:     true,
		DepthOffset: 4,
		Background:  color.RGBA{A: 255},
		LineWidth:   1,
	}
}

// FrameStats counts what happened to the mesh faces in one frame.
type FrameStats struct {
	Faces   int // faces in the mesh
	Skipped int // fewer than three indices
	Culled  int
	Drawn   int
}

// Renderer turns a mesh and an angle into draw calls on a Surface. It keeps
// scratch buffers between frames and is not safe for concurrent use.
type Renderer struct {
	mesh *Mesh
	opts Options

	transformed []Vector3
	facePoints  []Vector3
	store       *FaceStore
	stats       FrameStats
}

func NewRenderer(mesh *Mesh, opts Options) *Renderer {
	return &Renderer{
		mesh:        mesh,
		opts:        opts,
		transformed: make([]Vector3, len(mesh.Vertices)),
		facePoints:  make([]Vector3, 0, 8),
		store:       NewFaceStore(),
	}
}

func (r *Renderer) Mesh() *Mesh {
	return r.mesh
}

func (r *Renderer) Options() Options {
	return r.opts
}

// Stats returns the counts of the last frame built.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

func (r *Renderer) SetCulling(on bool) {
	r.opts.Cull = on
}

func (r *Renderer) SetOcclusion(on bool) {
	r.opts.Occlude = on
}

// SetBackground changes both the clear color and the occlusion fill.
func (r *Renderer) SetBackground(c color.RGBA) {
	r.opts.Background = c
}

// BuildFaceRecords transforms the mesh for angle and returns the surviving
// faces sorted furthest first. The result is reused by the next call.
func (r *Renderer) BuildFaceRecords(angle float64, width, height int) []FaceRecord {
	r.transformed = TransformVertices(r.transformed, r.mesh.Vertices, angle, r.opts.DepthOffset)
	r.store.Reset()
	r.stats = FrameStats{Faces: len(r.mesh.Faces)}

	for _, face := range r.mesh.Faces {
		if !face.IsPolygon() {
			r.stats.Skipped++
			continue
		}
		r.facePoints = face.gather(r.facePoints, r.transformed)
		normal := FaceNormal(r.facePoints)
		if r.opts.Cull && !IsFrontFacing(normal, Centroid(r.facePoints)) {
			r.stats.Culled++
			continue
		}

		screen := make([]Vector2, len(r.facePoints))
		for i, p := range r.facePoints {
			screen[i] = ToScreen(Project(p), width, height)
		}
		r.store.AddFace(FaceRecord{
			Depth:        MeanDepth(r.facePoints),
			ScreenPoints: screen,
			Face:         face,
			Color:        Shade(normal),
		})
	}

	r.store.SortFacesByDepth()
	r.stats.Drawn = r.store.FaceCount()
	return r.store.Faces()
}

// RenderFrame clears s and draws the mesh rotated by angle: each face, from
// the furthest, is filled with the background (when occluding) and then
// outlined in its shade.
func (r *Renderer) RenderFrame(s Surface, angle float64) FrameStats {
	s.Clear(r.opts.Background)
	width, height := s.Size()

	for _, rec := range r.BuildFaceRecords(angle, width, height) {
		if r.opts.Occlude {
			s.FillPolygon(rec.ScreenPoints, r.opts.Background)
		}
		drawOutline(s, rec.ScreenPoints, rec.Color, r.opts.LineWidth)
	}

	log.LogVf("frame angle=%.3f faces=%d skipped=%d culled=%d drawn=%d",
		angle, r.stats.Faces, r.stats.Skipped, r.stats.Culled, r.stats.Drawn)
	return r.stats
}

// drawOutline strokes every edge of the polygon, closing it back to the
// first point.
func drawOutline(s Surface, points []Vector2, c color.RGBA, width float32) {
	if len(points) < 2 {
		return
	}
	for i := range points {
		s.StrokeLine(points[i], points[(i+1)%len(points)], c, width)
	}
}
