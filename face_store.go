package spin3d

import (
	"image/color"
	"sort"
)

// FaceRecord is a face prepared for drawing in the current frame.
type FaceRecord struct {
	Depth        float64
	ScreenPoints []Vector2
	Face         Face
	Color        color.RGBA
}

type FaceStore struct {
	faces []FaceRecord
}

func NewFaceStore() *FaceStore {
	return &FaceStore{faces: make([]FaceRecord, 0, 10)}
}

func (fs *FaceStore) AddFace(f FaceRecord) {
	fs.faces = append(fs.faces, f)
}

func (fs *FaceStore) GetFace(i int) FaceRecord {
	return fs.faces[i]
}

func (fs *FaceStore) FaceCount() int {
	return len(fs.faces)
}

// Faces returns the stored records. The slice is only valid until the next Reset.
func (fs *FaceStore) Faces() []FaceRecord {
	return fs.faces
}

// Reset empties the store, keeping its capacity.
func (fs *FaceStore) Reset() {
	fs.faces = fs.faces[:0]
}

// sort the faces so that the faces farther away are at the start of the slice.
// Equal depths keep their insertion order.
func (fs *FaceStore) SortFacesByDepth() {
	if len(fs.faces) < 2 {
		return
	}
	sort.SliceStable(fs.faces, func(i, j int) bool {
		return fs.faces[i].Depth > fs.faces[j].Depth
	})
}
